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

// Package types defines the tree head formats served by transparency logs.
package types

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/sumdb/note"
)

// ErrInvalidCheckpoint is matched by all checkpoint parsing errors.
var ErrInvalidCheckpoint = errors.New("invalid checkpoint")

// Checkpoint is the body of a signed tree head note:
//
//	<origin>
//	<tree size>
//	<base64 root hash>
//	[extension lines...]
//
//	— <signer name> <base64 signature>
//	...
//
// Signature lines are retained verbatim and are not verified here.
type Checkpoint struct {
	Origin     string
	Size       int64
	Hash       []byte
	Extensions []string
	Signatures []string
}

// ParseCheckpoint parses a checkpoint note. The note framing and the shape of
// every signature line are checked, but no signature is verified.
func ParseCheckpoint(text string) (*Checkpoint, error) {
	n, err := openNote(text)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSuffix(n.Text, "\n"), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: body has %d lines, want at least 3", ErrInvalidCheckpoint, len(lines))
	}
	origin := lines[0]
	if origin == "" {
		return nil, fmt.Errorf("%w: empty origin", ErrInvalidCheckpoint)
	}
	// ParseInt accepts a leading sign, which the format does not.
	if strings.HasPrefix(lines[1], "+") || strings.HasPrefix(lines[1], "-") {
		return nil, fmt.Errorf("%w: invalid tree size %q", ErrInvalidCheckpoint, lines[1])
	}
	size, err := strconv.ParseInt(lines[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid tree size %q: %v", ErrInvalidCheckpoint, lines[1], err)
	}
	hash, err := base64.StdEncoding.DecodeString(lines[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid root hash %q: %v", ErrInvalidCheckpoint, lines[2], err)
	}

	c := &Checkpoint{
		Origin: origin,
		Size:   size,
		Hash:   hash,
	}
	for _, ext := range lines[3:] {
		if ext == "" {
			return nil, fmt.Errorf("%w: empty extension line", ErrInvalidCheckpoint)
		}
		c.Extensions = append(c.Extensions, ext)
	}
	for _, sigs := range [][]note.Signature{n.Sigs, n.UnverifiedSigs} {
		for _, s := range sigs {
			c.Signatures = append(c.Signatures, "— "+s.Name+" "+s.Base64)
		}
	}
	return c, nil
}

// openNote splits a signed note into its text and signatures without
// verifying any of them.
func openNote(text string) (*note.Note, error) {
	n, err := note.Open([]byte(text), note.VerifierList())
	var unverified *note.UnverifiedNoteError
	switch {
	case errors.As(err, &unverified):
		return unverified.Note, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidCheckpoint, err)
	}
	return n, nil
}
