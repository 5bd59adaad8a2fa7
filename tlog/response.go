// Copyright 2026 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tlog

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// wireEntry is a single log entry as served by the log service.
type wireEntry struct {
	Body           *string           `json:"body"`
	IntegratedTime *int64            `json:"integratedTime"`
	LogID          *string           `json:"logID"`
	LogIndex       *int64            `json:"logIndex"`
	Verification   *wireVerification `json:"verification"`
}

type wireVerification struct {
	InclusionProof       *wireInclusionProof `json:"inclusionProof"`
	InclusionPromise     string              `json:"inclusionPromise"`
	SignedEntryTimestamp string              `json:"signedEntryTimestamp"`
}

type wireInclusionProof struct {
	Checkpoint string   `json:"checkpoint"`
	Hashes     []string `json:"hashes"`
	LogIndex   int64    `json:"logIndex"`
	RootHash   string   `json:"rootHash"`
	TreeSize   int64    `json:"treeSize"`
}

type entryBody struct {
	Kind       string `json:"kind"`
	APIVersion string `json:"apiVersion"`
}

// ParseResponse parses a log service response body, a JSON object mapping
// the entry UUID to the entry, and returns the single entry it contains.
func ParseResponse(data []byte) (*LogEntry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: response must be a JSON object", ErrInvalidEntry)
	}
	var resp map[string]json.RawMessage
	if err := jsonAPI.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrInvalidEntry, err)
	}
	return FromResponse(resp)
}

// FromResponse builds a LogEntry from a decoded log service response. The
// response must hold exactly one entry.
func FromResponse(resp map[string]json.RawMessage) (*LogEntry, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: response must be a JSON object", ErrInvalidEntry)
	}
	switch n := len(resp); {
	case n > 1:
		return nil, fmt.Errorf("%w: received multiple entries in response", ErrInvalidEntry)
	case n == 0:
		return nil, fmt.Errorf("%w: received no entries in response", ErrInvalidEntry)
	}

	var uuid string
	var raw json.RawMessage
	for k, v := range resp {
		uuid, raw = k, v
	}
	var w wireEntry
	if err := jsonAPI.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("%w: failed to parse entry %q: %v", ErrInvalidEntry, uuid, err)
	}
	if err := w.checkRequired(); err != nil {
		return nil, fmt.Errorf("%w: entry %q: %v", ErrInvalidEntry, uuid, err)
	}
	if err := checkBody(*w.Body); err != nil {
		return nil, err
	}

	e := LogEntry{
		UUID:           uuid,
		Body:           *w.Body,
		IntegratedTime: *w.IntegratedTime,
		LogID:          *w.LogID,
		LogIndex:       *w.LogIndex,
	}
	if v := w.Verification; v != nil {
		if p := v.InclusionProof; p != nil {
			e.InclusionProof = &InclusionProof{
				Checkpoint: p.Checkpoint,
				Hashes:     p.Hashes,
				LogIndex:   p.LogIndex,
				RootHash:   p.RootHash,
				TreeSize:   p.TreeSize,
			}
		}
		e.InclusionPromise = v.InclusionPromise
		if e.InclusionPromise == "" {
			e.InclusionPromise = v.SignedEntryTimestamp
		}
	}
	return NewLogEntry(e)
}

func (w *wireEntry) checkRequired() error {
	switch {
	case w.Body == nil:
		return errors.New("missing body")
	case w.IntegratedTime == nil:
		return errors.New("missing integratedTime")
	case w.LogID == nil:
		return errors.New("missing logID")
	case w.LogIndex == nil:
		return errors.New("missing logIndex")
	}
	return nil
}

// checkBody verifies that the base64 encoded body carries the supported
// kind and apiVersion.
func checkBody(b64 string) error {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return fmt.Errorf("%w: body is not valid base64: %v", ErrInvalidEntry, err)
	}
	var body entryBody
	if err := jsonAPI.Unmarshal(raw, &body); err != nil {
		return fmt.Errorf("%w: body is not a JSON object: %v", ErrInvalidEntry, err)
	}
	if body.Kind != ExpectedKind || body.APIVersion != ExpectedAPIVersion {
		return &SchemaMismatchError{
			Body:               string(raw),
			ExpectedKind:       ExpectedKind,
			ExpectedAPIVersion: ExpectedAPIVersion,
		}
	}
	return nil
}
