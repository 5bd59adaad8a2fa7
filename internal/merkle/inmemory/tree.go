// Copyright 2022 Google LLC. All Rights Reserved.
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

// Package inmemory provides an in-memory append-only Merkle tree used to
// produce log fixtures with real inclusion proofs in tests.
package inmemory

import (
	"fmt"

	"github.com/transparency-dev/merkle"
	"github.com/transparency-dev/merkle/compact"
	"github.com/transparency-dev/merkle/proof"
)

// Tree implements an append-only Merkle tree. For testing.
type Tree struct {
	hasher merkle.LogHasher
	size   uint64
	hashes [][][]byte // Node hashes, indexed by node (level, index).
}

// New returns a new empty Merkle tree.
func New(hasher merkle.LogHasher) *Tree {
	return &Tree{hasher: hasher}
}

// AppendData adds the leaf hashes of the given entries to the end of the
// tree, and returns the index of the first one.
func (t *Tree) AppendData(entries ...[]byte) int64 {
	first := int64(t.size)
	for _, data := range entries {
		t.append(t.hasher.HashLeaf(data))
	}
	return first
}

func (t *Tree) append(hash []byte) {
	level := 0
	for ; (t.size>>level)&1 == 1; level++ {
		row := append(t.hashes[level], hash)
		hash = t.hasher.HashChildren(row[len(row)-2], hash)
		t.hashes[level] = row
	}
	if level == len(t.hashes) {
		t.hashes = append(t.hashes, nil)
	}
	t.hashes[level] = append(t.hashes[level], hash)
	t.size++
}

// Size returns the current number of leaves in the tree.
func (t *Tree) Size() int64 {
	return int64(t.size)
}

// LeafHash returns the leaf hash at the given index.
// Requires 0 <= index < Size(), otherwise panics.
func (t *Tree) LeafHash(index int64) []byte {
	return t.hashes[0][index]
}

// Root returns the current root hash of the tree.
func (t *Tree) Root() []byte {
	return t.RootAt(t.Size())
}

// RootAt returns the root hash at the given size.
// Requires 0 <= size <= Size(), otherwise panics.
func (t *Tree) RootAt(size int64) []byte {
	if size == 0 {
		return t.hasher.EmptyRoot()
	}
	hashes := t.nodes(compact.RangeNodes(0, uint64(size), nil))
	hash := hashes[len(hashes)-1]
	for i := len(hashes) - 2; i >= 0; i-- {
		hash = t.hasher.HashChildren(hashes[i], hash)
	}
	return hash
}

// InclusionProof returns the inclusion proof for the given leaf index in the
// tree of the given size.
func (t *Tree) InclusionProof(index, size int64) ([][]byte, error) {
	if index < 0 || size > t.Size() {
		return nil, fmt.Errorf("index %d / size %d out of range for tree of size %d", index, size, t.size)
	}
	nodes, err := proof.Inclusion(uint64(index), uint64(size))
	if err != nil {
		return nil, err
	}
	return nodes.Rehash(t.nodes(nodes.IDs), t.hasher.HashChildren)
}

func (t *Tree) nodes(ids []compact.NodeID) [][]byte {
	hashes := make([][]byte, len(ids))
	for i, id := range ids {
		hashes[i] = t.hashes[id.Level][id.Index]
	}
	return hashes
}
