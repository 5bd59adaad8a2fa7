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

package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTrustedLogs(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		yaml    string
		want    []TrustedLog
		wantErr string
	}{
		{
			desc: "two logs",
			yaml: `
logs:
- log_id: c0d23d6a
  origin: rekor.sigstore.dev - 2605736670972794746
- log_id: d32f30a3
`,
			want: []TrustedLog{
				{LogID: "c0d23d6a", Origin: "rekor.sigstore.dev - 2605736670972794746"},
				{LogID: "d32f30a3"},
			},
		},
		{desc: "empty", yaml: "", wantErr: "no trusted logs"},
		{desc: "empty list", yaml: "logs: []\n", wantErr: "no trusted logs"},
		{desc: "missing id", yaml: "logs:\n- origin: foo\n", wantErr: "no log_id"},
		{desc: "duplicate", yaml: "logs:\n- log_id: a\n- log_id: a\n", wantErr: "duplicate"},
		{desc: "unknown field", yaml: "logs:\n- log_id: a\n  key: pem\n", wantErr: "failed to parse"},
		{desc: "not yaml", yaml: "logs: [", wantErr: "failed to parse"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := ParseTrustedLogs([]byte(tc.yaml))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("ParseTrustedLogs(): %v, want error containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTrustedLogs(): %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseTrustedLogs() diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadTrustedLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trusted_logs.yaml")
	if err := os.WriteFile(path, []byte("logs:\n- log_id: abcd\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadTrustedLogs(path)
	if err != nil {
		t.Fatalf("LoadTrustedLogs(): %v", err)
	}
	if diff := cmp.Diff([]TrustedLog{{LogID: "abcd"}}, got); diff != "" {
		t.Errorf("LoadTrustedLogs() diff (-want +got):\n%s", diff)
	}

	if _, err := LoadTrustedLogs(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadTrustedLogs(missing file): nil, want error")
	}
}
