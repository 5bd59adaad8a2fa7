// Copyright 2016 Google Inc. All Rights Reserved.
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

// Package logverifier verifies inclusion proofs for append-only logs using
// the RFC 6962 audit path layout.
package logverifier

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"

	"github.com/google/tlogverify/merkle/hashers"
)

// ErrInvalidInclusionProof is matched by every error returned from the
// inclusion proof checks in this package. Callers must not trust an entry
// whose proof fails with it.
var ErrInvalidInclusionProof = errors.New("invalid inclusion proof")

// RootMismatchError occurs when an inclusion proof fails.
type RootMismatchError struct {
	ExpectedRoot   []byte
	CalculatedRoot []byte
}

func (e RootMismatchError) Error() string {
	return fmt.Sprintf("%v: calculated root %x does not match expected root %x", ErrInvalidInclusionProof, e.CalculatedRoot, e.ExpectedRoot)
}

// Unwrap makes RootMismatchError match ErrInvalidInclusionProof.
func (e RootMismatchError) Unwrap() error {
	return ErrInvalidInclusionProof
}

func proofError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInclusionProof, fmt.Sprintf(format, args...))
}

// LogVerifier verifies inclusion proofs for append only logs. It holds no
// state other than the hasher and is safe for concurrent use.
type LogVerifier struct {
	hasher hashers.LogHasher
}

// New returns a new LogVerifier for a tree.
func New(hasher hashers.LogHasher) LogVerifier {
	return LogVerifier{hasher: hasher}
}

// VerifyInclusionProof verifies the correctness of the proof given the passed
// in information about the tree and leaf.
func (v LogVerifier) VerifyInclusionProof(leafIndex, treeSize int64, proof [][]byte, root []byte, leafHash []byte) error {
	if got, want := len(root), v.hasher.Size(); got != want {
		return proofError("root hash is %d bytes, want %d", got, want)
	}
	calcRoot, err := v.RootFromInclusionProof(leafIndex, treeSize, proof, leafHash)
	if err != nil {
		return err
	}
	if !bytes.Equal(calcRoot, root) {
		return RootMismatchError{
			CalculatedRoot: calcRoot,
			ExpectedRoot:   root,
		}
	}
	return nil
}

// RootFromInclusionProof calculates the expected tree root given the proof and leaf.
// leafIndex starts at 0. treeSize is the number of nodes in the tree.
func (v LogVerifier) RootFromInclusionProof(leafIndex, treeSize int64, proof [][]byte, leafHash []byte) ([]byte, error) {
	switch {
	case treeSize <= 0:
		return nil, proofError("treeSize %d <= 0", treeSize)
	case leafIndex < 0:
		return nil, proofError("leafIndex %d < 0", leafIndex)
	case leafIndex >= treeSize:
		return nil, proofError("leafIndex %d out of range for treeSize %d", leafIndex, treeSize)
	}
	if got, want := len(leafHash), v.hasher.Size(); got != want {
		return nil, proofError("leafHash has unexpected size %d, want %d", got, want)
	}

	inner, border := decompInclProof(uint64(leafIndex), uint64(treeSize))
	if got, want := len(proof), inner+border; got != want {
		return nil, proofError("wrong proof size %d, want %d", got, want)
	}
	for i, h := range proof {
		if got, want := len(h), v.hasher.Size(); got != want {
			return nil, proofError("proof[%d] is %d bytes, want %d", i, got, want)
		}
	}

	res := v.chainInner(leafHash, proof[:inner], uint64(leafIndex))
	res = v.chainBorderRight(res, proof[inner:])
	return res, nil
}

// decompInclProof breaks down the inclusion proof for the leaf at the given
// index in a tree of the given size into 2 components. The splitting point
// between them is where the paths to leaves index and size-1 diverge.
// Returns lengths of the bottom and upper proof parts correspondingly. The sum
// of the two determines the correct length of the inclusion proof.
func decompInclProof(index, size uint64) (int, int) {
	inner := innerProofSize(index, size)
	border := bits.OnesCount64(index >> uint(inner))
	return inner, border
}

func innerProofSize(index, size uint64) int {
	return bits.Len64(index ^ (size - 1))
}

// chainInner computes a subtree hash for a node on or below the tree's right
// border. Assumes the proof hashes are ordered from lower levels to upper, and
// seed is the initial subtree/leaf hash on the path located at the specified
// index on its level.
func (v LogVerifier) chainInner(seed []byte, proof [][]byte, index uint64) []byte {
	for i, h := range proof {
		if (index>>uint(i))&1 == 0 {
			seed = v.hasher.HashChildren(seed, h)
		} else {
			seed = v.hasher.HashChildren(h, seed)
		}
	}
	return seed
}

// chainBorderRight chains proof hashes along tree borders. This differs from
// inner chaining because the proof contains only left-side subtree hashes.
func (v LogVerifier) chainBorderRight(seed []byte, proof [][]byte) []byte {
	for _, h := range proof {
		seed = v.hasher.HashChildren(h, seed)
	}
	return seed
}
