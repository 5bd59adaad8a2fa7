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

// Package flagsaver saves and restores command line flag values around tests
// that change them.
//
// Example:
//
//	func TestFoo(t *testing.T) {
//		defer flagsaver.Save().MustRestore()
//		// Test code that changes flags
//	} // flags are reset to their original values here.
package flagsaver

import (
	"flag"
	"strings"

	"k8s.io/klog/v2"
)

// Stash holds flag values so that they can be restored at the end of a test.
type Stash struct {
	flags map[string]string
}

// Save returns a Stash that captures the current value of all flags except
// those registered by the testing package.
func Save() *Stash {
	s := Stash{flags: make(map[string]string)}
	// log_backtrace_at may hold an empty value that cannot be set back.
	flag.VisitAll(func(f *flag.Flag) {
		if !strings.HasPrefix(f.Name, "test.") && f.Name != "log_backtrace_at" {
			s.flags[f.Name] = f.Value.String()
		}
	})
	return &s
}

// Restore sets all saved flags to the values they had when the Stash was
// created.
func (s *Stash) Restore() error {
	for name, value := range s.flags {
		if err := flag.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// MustRestore calls Restore and exits on failure, since later tests would
// otherwise run with flags in an arbitrary state.
func (s *Stash) MustRestore() {
	if err := s.Restore(); err != nil {
		klog.Fatalf("MustRestore(): failed to restore flags: %v", err)
	}
}
