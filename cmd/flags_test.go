// Copyright 2017 Google Inc. All Rights Reserved.
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

package cmd

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags(t *testing.T) {
	var a, b string
	flag.StringVar(&a, "a", "", "")
	flag.StringVar(&b, "b", "", "")

	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	flag.CommandLine.SetOutput(io.Discard)

	tests := []struct {
		name        string
		contents    string
		env         map[string]string
		cliArgs     []string
		expectedErr string
		expectedA   string
		expectedB   string
	}{
		{
			name:      "two flags per line",
			contents:  "-a one -b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "one flag per line",
			contents:  "-a one\n-b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "quoted value",
			contents:  "-a 'one two'\n-b \"three four\"",
			expectedA: "one two",
			expectedB: "three four",
		},
		{
			name:      "one flag in file, one flag on command-line",
			contents:  "-a one",
			cliArgs:   []string{"-b", "two"},
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "two flags, one overridden by command-line",
			contents:  "-a one\n-b two",
			cliArgs:   []string{"-b", "three"},
			expectedA: "one",
			expectedB: "three",
		},
		{
			name:      "two flags, one using an environment variable",
			contents:  "-a one\n-b $TLOG_TEST_VAR",
			env:       map[string]string{"TLOG_TEST_VAR": "from env"},
			expectedA: "one",
			expectedB: "from env",
		},
		{
			name:        "three flags, one undefined",
			contents:    "-a one -b two -c three",
			expectedErr: "flag provided but not defined: -c",
		},
		{
			name:        "unbalanced quote",
			contents:    "-a 'one",
			expectedErr: "unbalanced quotes in flag file",
		},
	}

	initialArgs := os.Args[:1]
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b = "", ""
			os.Args = append(append([]string(nil), initialArgs...), tc.cliArgs...)
			defer func() { os.Args = initialArgs }()
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			if err := parseFlags(tc.contents); err != nil {
				if err.Error() != tc.expectedErr {
					t.Errorf("parseFlags() = %q, want %q", err, tc.expectedErr)
				}
				return
			}
			if tc.expectedErr != "" {
				t.Fatalf("parseFlags() = nil, want %q", tc.expectedErr)
			}

			if tc.expectedA != a {
				t.Errorf("flag 'a' not properly set: got %q, want %q", a, tc.expectedA)
			}
			if tc.expectedB != b {
				t.Errorf("flag 'b' not properly set: got %q, want %q", b, tc.expectedB)
			}
		})
	}
}

func TestParseFlagFileMissing(t *testing.T) {
	if err := ParseFlagFile(filepath.Join(t.TempDir(), "missing.cfg")); err == nil {
		t.Error("ParseFlagFile(missing) = nil, want error")
	}
}
