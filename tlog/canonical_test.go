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
	"testing"
)

func TestEncodeCanonical(t *testing.T) {
	e, err := ParseResponse([]byte(`{"fake":` + entryJSON(rekordBody, `{"inclusionProof":`+fakeProofJSON+`}`) + `}`))
	if err != nil {
		t.Fatalf("ParseResponse(): %v", err)
	}
	want := `{"body":"eyJraW5kIjoiaGFzaGVkcmVrb3JkIiwiYXBpVmVyc2lvbiI6IjAuMC4xIn0=","integratedTime":0,"logID":"1234","logIndex":1}`
	if got := string(e.EncodeCanonical()); got != want {
		t.Errorf("EncodeCanonical():\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeCanonicalIgnoresOtherFields(t *testing.T) {
	a := &LogEntry{UUID: "a", Body: "Ym9keQ==", IntegratedTime: 1700000000, LogID: "c0d23d6a", LogIndex: 42, InclusionPromise: "x"}
	b := &LogEntry{UUID: "b", Body: "Ym9keQ==", IntegratedTime: 1700000000, LogID: "c0d23d6a", LogIndex: 42, InclusionProof: &InclusionProof{TreeSize: 9}}
	if got, want := string(a.EncodeCanonical()), string(b.EncodeCanonical()); got != want {
		t.Errorf("EncodeCanonical() depends on uuid or verification: %s != %s", got, want)
	}
	want := `{"body":"Ym9keQ==","integratedTime":1700000000,"logID":"c0d23d6a","logIndex":42}`
	if got := string(a.EncodeCanonical()); got != want {
		t.Errorf("EncodeCanonical(): %s, want %s", got, want)
	}
}

func TestEncoder(t *testing.T) {
	for _, tc := range []struct {
		desc string
		enc  func(e *Encoder) *Encoder
		want string
	}{
		{
			desc: "empty",
			enc:  func(e *Encoder) *Encoder { return e },
			want: `{}`,
		},
		{
			desc: "insertion order",
			enc:  func(e *Encoder) *Encoder { return e.Int("z", 1).Str("a", "b") },
			want: `{"z":1,"a":"b"}`,
		},
		{
			desc: "negative and large integers",
			enc:  func(e *Encoder) *Encoder { return e.Int("n", -7).Int("m", 9007199254740993) },
			want: `{"n":-7,"m":9007199254740993}`,
		},
		{
			desc: "escapes",
			enc:  func(e *Encoder) *Encoder { return e.Str("s", "a\"b\\c\nd\te\x01f\x1f") },
			want: `{"s":"a\"b\\c\nd\te\u0001f\u001f"}`,
		},
		{
			desc: "no html escaping",
			enc:  func(e *Encoder) *Encoder { return e.Str("s", "<a>&'/") },
			want: `{"s":"<a>&'/"}`,
		},
		{
			desc: "utf8 passes through",
			enc:  func(e *Encoder) *Encoder { return e.Str("s", "héllo €") },
			want: `{"s":"héllo €"}`,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			var e Encoder
			if got := string(tc.enc(&e).Bytes()); got != tc.want {
				t.Errorf("Bytes(): %s, want %s", got, tc.want)
			}
		})
	}
}
