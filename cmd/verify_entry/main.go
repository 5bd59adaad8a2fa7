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

// Package main contains the implementation and entry point for the
// verify_entry command, which verifies log entries saved from a
// transparency log's entry lookup API.
//
// Example usage:
// $ ./verify_entry --trusted_logs=logs.yaml --require_proof entry1.json entry2.json
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/tlogverify/client"
	"github.com/google/tlogverify/cmd"
	"github.com/google/tlogverify/merkle/hashers/registry"
	tprom "github.com/google/tlogverify/monitoring/prometheus"
	"github.com/google/tlogverify/tlog"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	hashStrategy    = flag.String("hash_strategy", registry.RFC6962SHA256, "Merkle tree hash strategy of the logs")
	trustedLogsFile = flag.String("trusted_logs", "", "YAML file listing the logs whose entries are accepted; if unset, entries from any log are accepted")
	requireProof    = flag.Bool("require_proof", false, "If true, entries without an inclusion proof are rejected")
	printCanonical  = flag.Bool("canonical", false, "If true, print the canonical encoding of every parsed entry")
	metricsFile     = flag.String("metrics_file", "", "If set, write verification metrics to this file in the Prometheus text format")
	concurrency     = flag.Int("concurrency", 8, "Maximum number of response files processed at once")
	configFile      = flag.String("config", "", "Config file containing flags, file contents can be overridden by command line flags")

	// metricsRegistry holds the metrics of every run in this process.
	metricsRegistry = prometheus.NewRegistry()
)

// result is the outcome of verifying one response file.
type result struct {
	path  string
	entry *tlog.LogEntry
	err   error
}

func newVerifier() (*client.EntryVerifier, error) {
	hasher, err := registry.NewLogHasher(*hashStrategy)
	if err != nil {
		return nil, err
	}
	var trusted []client.TrustedLog
	if *trustedLogsFile != "" {
		if trusted, err = client.LoadTrustedLogs(*trustedLogsFile); err != nil {
			return nil, fmt.Errorf("failed to load trusted logs from %s: %w", *trustedLogsFile, err)
		}
		klog.V(1).Infof("Loaded %d trusted logs from %s", len(trusted), *trustedLogsFile)
	}
	return client.NewEntryVerifier(client.EntryVerifierOpts{
		Hasher:                hasher,
		TrustedLogs:           trusted,
		RequireInclusionProof: *requireProof,
		MetricFactory:         tprom.MetricFactory{Prefix: "verify_entry_", Registerer: metricsRegistry},
	}), nil
}

// verifyFiles parses and verifies every file in paths. Results are returned
// in the order of paths. Only failures to read a file abort the run.
func verifyFiles(ctx context.Context, v *client.EntryVerifier, paths []string) ([]result, error) {
	results := make([]result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			r := result{path: path}
			if r.entry, r.err = tlog.ParseResponse(data); r.err == nil {
				r.err = v.Verify(r.entry)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func run(ctx context.Context, paths []string, out io.Writer) error {
	if len(paths) == 0 {
		return errors.New("no response files given")
	}
	if *concurrency < 1 {
		return fmt.Errorf("--concurrency must be positive, got %d", *concurrency)
	}
	v, err := newVerifier()
	if err != nil {
		return err
	}

	results, err := verifyFiles(ctx, v, paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(out, "%s: FAILED: %v\n", r.path, r.err)
		} else {
			fmt.Fprintf(out, "%s: OK %s (log %s, index %d)\n", r.path, r.entry.UUID, r.entry.LogID, r.entry.LogIndex)
		}
		if *printCanonical && r.entry != nil {
			fmt.Fprintf(out, "%s\n", r.entry.EncodeCanonical())
		}
	}

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, metricsRegistry); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d entries failed verification", failed, len(results))
	}
	return nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *configFile != "" {
		if err := cmd.ParseFlagFile(*configFile); err != nil {
			klog.Exitf("Failed to load flags from config file %q: %s", *configFile, err)
		}
	}

	if err := run(context.Background(), flag.Args(), os.Stdout); err != nil {
		klog.Exit(err)
	}
}
