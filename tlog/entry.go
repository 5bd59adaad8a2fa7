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

// Package tlog models transparency log entries: parsing log service
// responses, enforcing entry invariants, checking inclusion proofs against
// the entry body and producing the canonical bytes signed by the log.
package tlog

import (
	"errors"
	"fmt"
)

// The record schema supported in entry bodies.
const (
	ExpectedKind       = "hashedrekord"
	ExpectedAPIVersion = "0.0.1"
)

// ErrInvalidEntry is matched by structural errors in log entries and log
// service responses.
var ErrInvalidEntry = errors.New("invalid log entry")

// SchemaMismatchError is returned when an entry body does not carry the
// expected kind and apiVersion.
type SchemaMismatchError struct {
	// Body is the decoded entry body.
	Body               string
	ExpectedKind       string
	ExpectedAPIVersion string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("invalid entry body: %s. Expected kind: %s, apiVersion: %s", e.Body, e.ExpectedKind, e.ExpectedAPIVersion)
}

// InclusionProof is the log's evidence that a leaf is included in a tree of
// a given size. Hashes and RootHash are hex encoded, as served by the log.
// Nothing is validated until the proof is verified.
type InclusionProof struct {
	// Checkpoint is the signed tree head note the proof was issued against.
	Checkpoint string
	// Hashes is the audit path, ordered from the leaf towards the root.
	Hashes   []string
	LogIndex int64
	RootHash string
	TreeSize int64
}

// LogEntry is a single record of an artifact in the transparency log.
// Values returned by NewLogEntry and FromResponse must not be modified.
type LogEntry struct {
	UUID string
	// Body is the base64 encoded entry body, exactly as served by the log.
	Body           string
	IntegratedTime int64
	LogID          string
	LogIndex       int64

	// At least one of InclusionProof and InclusionPromise is set.
	InclusionProof *InclusionProof
	// InclusionPromise is the log's signed promise to include the entry.
	InclusionPromise string
}

// NewLogEntry validates e and returns a copy of it which shares no memory
// with the argument.
func NewLogEntry(e LogEntry) (*LogEntry, error) {
	if e.InclusionProof == nil && e.InclusionPromise == "" {
		return nil, fmt.Errorf("%w: LogEntry must have either inclusion_proof or inclusion_promise", ErrInvalidEntry)
	}
	if e.LogIndex < 0 {
		return nil, fmt.Errorf("%w: negative log index %d", ErrInvalidEntry, e.LogIndex)
	}
	if e.InclusionProof != nil {
		p := *e.InclusionProof
		p.Hashes = append([]string(nil), p.Hashes...)
		e.InclusionProof = &p
	}
	return &e, nil
}
