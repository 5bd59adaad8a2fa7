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

package tmock

import (
	"bytes"
	"fmt"

	"github.com/golang/mock/gomock"
	"github.com/google/tlogverify/tlog"
)

type canonicalOf struct {
	want []byte
}

func (m canonicalOf) Matches(x interface{}) bool {
	b, ok := x.([]byte)
	return ok && bytes.Equal(b, m.want)
}

func (m canonicalOf) String() string {
	return fmt.Sprintf("is canonical encoding %s", m.want)
}

// CanonicalOf returns a gomock matcher which expects the canonical encoding
// of e.
func CanonicalOf(e *tlog.LogEntry) gomock.Matcher {
	return canonicalOf{want: e.EncodeCanonical()}
}
