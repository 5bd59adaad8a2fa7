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
	"encoding/hex"
	"fmt"

	"github.com/google/tlogverify/merkle/hashers"
	"github.com/google/tlogverify/merkle/logverifier"
	"github.com/google/tlogverify/types"
)

func proofError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", logverifier.ErrInvalidInclusionProof, fmt.Sprintf(format, args...))
}

// LeafHash returns the Merkle leaf hash of the decoded entry body.
func (e *LogEntry) LeafHash(hasher hashers.LogHasher) ([]byte, error) {
	body, err := base64.StdEncoding.DecodeString(e.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: body is not valid base64: %v", ErrInvalidEntry, err)
	}
	return hasher.HashLeaf(body), nil
}

// VerifyInclusion checks that the entry's inclusion proof reproduces the
// proof's root hash from the entry body. Failures other than a missing proof
// or a malformed body match logverifier.ErrInvalidInclusionProof.
func (e *LogEntry) VerifyInclusion(hasher hashers.LogHasher) error {
	p := e.InclusionProof
	if p == nil {
		return fmt.Errorf("%w: entry %q has no inclusion proof", ErrInvalidEntry, e.UUID)
	}
	hashes, err := p.DecodeHashes()
	if err != nil {
		return err
	}
	root, err := p.DecodeRootHash()
	if err != nil {
		return err
	}
	leaf, err := e.LeafHash(hasher)
	if err != nil {
		return err
	}
	return logverifier.New(hasher).VerifyInclusionProof(p.LogIndex, p.TreeSize, hashes, root, leaf)
}

// DecodeHashes returns the binary audit path.
func (p *InclusionProof) DecodeHashes() ([][]byte, error) {
	hashes := make([][]byte, 0, len(p.Hashes))
	for i, h := range p.Hashes {
		b, err := hex.DecodeString(h)
		if err != nil {
			return nil, proofError("hashes[%d] %q is not hex: %v", i, h, err)
		}
		hashes = append(hashes, b)
	}
	return hashes, nil
}

// DecodeRootHash returns the binary root hash.
func (p *InclusionProof) DecodeRootHash() ([]byte, error) {
	root, err := hex.DecodeString(p.RootHash)
	if err != nil {
		return nil, proofError("rootHash %q is not hex: %v", p.RootHash, err)
	}
	return root, nil
}

// VerifyCheckpoint parses the proof's checkpoint and checks that it commits
// to the same tree size and root hash as the proof. The checkpoint signature
// is not verified. The parsed checkpoint is returned on success.
func (p *InclusionProof) VerifyCheckpoint() (*types.Checkpoint, error) {
	cp, err := types.ParseCheckpoint(p.Checkpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", logverifier.ErrInvalidInclusionProof, err)
	}
	if cp.Size != p.TreeSize {
		return nil, proofError("checkpoint tree size %d does not match proof tree size %d", cp.Size, p.TreeSize)
	}
	root, err := p.DecodeRootHash()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(cp.Hash, root) {
		return nil, proofError("checkpoint root hash %x does not match proof root hash %x", cp.Hash, root)
	}
	return cp, nil
}
