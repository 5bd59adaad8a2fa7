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

package registry

import (
	"bytes"
	"testing"

	"github.com/google/tlogverify/merkle/rfc6962"
)

func TestNewLogHasher(t *testing.T) {
	h, err := NewLogHasher(RFC6962SHA256)
	if err != nil {
		t.Fatalf("NewLogHasher(%s): %v", RFC6962SHA256, err)
	}
	if got, want := h.HashLeaf([]byte("L123456")), rfc6962.DefaultHasher.HashLeaf([]byte("L123456")); !bytes.Equal(got, want) {
		t.Errorf("HashLeaf(): %x, want %x", got, want)
	}

	for _, strategy := range []string{"", "rfc6962_sha256", "CONIKS_SHA512_256"} {
		if _, err := NewLogHasher(strategy); err == nil {
			t.Errorf("NewLogHasher(%q): nil error, want unknown hasher", strategy)
		}
	}
}

func TestStrategies(t *testing.T) {
	got := Strategies()
	if len(got) != 1 || got[0] != RFC6962SHA256 {
		t.Errorf("Strategies(): %v, want [%s]", got, RFC6962SHA256)
	}
}
