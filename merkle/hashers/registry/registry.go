// Copyright 2021 Google LLC. All Rights Reserved.
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

// Package registry maps hash strategy names to LogHasher implementations.
package registry

import (
	"fmt"
	"sort"

	"github.com/google/tlogverify/merkle/hashers"
	"github.com/google/tlogverify/merkle/rfc6962"
)

// RFC6962SHA256 names the RFC 6962 hasher over SHA-256.
const RFC6962SHA256 = "RFC6962_SHA256"

var logHashers = map[string]hashers.LogHasher{
	RFC6962SHA256: rfc6962.DefaultHasher,
}

// NewLogHasher returns the LogHasher for the named hash strategy.
func NewLogHasher(strategy string) (hashers.LogHasher, error) {
	if h, ok := logHashers[strategy]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("LogHasher(%s) is an unknown hasher, want one of %v", strategy, Strategies())
}

// Strategies returns the known hash strategy names, sorted.
func Strategies() []string {
	names := make([]string, 0, len(logHashers))
	for name := range logHashers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
