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
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// TrustedLog identifies a transparency log whose entries are accepted.
type TrustedLog struct {
	// LogID is the log identifier carried in entries.
	LogID string `yaml:"log_id"`
	// Origin, if set, must match the first line of the log's checkpoints,
	// and inclusion proofs from the log must carry a checkpoint.
	Origin string `yaml:"origin"`
}

type trustedLogsFile struct {
	Logs []TrustedLog `yaml:"logs"`
}

// ParseTrustedLogs parses a YAML document of the form:
//
//	logs:
//	- log_id: c0d23d6ad406973f9559f3ba2d1ca01f84147d8ffc5b8445c224f98b9591801d
//	  origin: rekor.sigstore.dev - 2605736670972794746
func ParseTrustedLogs(data []byte) ([]TrustedLog, error) {
	var f trustedLogsFile
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse trusted logs: %v", err)
	}
	if len(f.Logs) == 0 {
		return nil, fmt.Errorf("no trusted logs listed")
	}
	seen := make(map[string]bool)
	for i, l := range f.Logs {
		if l.LogID == "" {
			return nil, fmt.Errorf("trusted log %d has no log_id", i)
		}
		if seen[l.LogID] {
			return nil, fmt.Errorf("duplicate trusted log %q", l.LogID)
		}
		seen[l.LogID] = true
	}
	return f.Logs, nil
}

// LoadTrustedLogs reads and parses a trusted logs file.
func LoadTrustedLogs(path string) ([]TrustedLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTrustedLogs(data)
}
