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

package prometheus

import (
	"testing"

	"github.com/google/tlogverify/monitoring/testonly"
	"github.com/prometheus/client_golang/prometheus"
)

func TestCounter(t *testing.T) {
	testonly.TestCounter(t, MetricFactory{Prefix: "TestCounter", Registerer: prometheus.NewRegistry()})
}

func TestGauge(t *testing.T) {
	testonly.TestGauge(t, MetricFactory{Prefix: "TestGauge", Registerer: prometheus.NewRegistry()})
}

func TestHistogram(t *testing.T) {
	testonly.TestHistogram(t, MetricFactory{Prefix: "TestHistogram", Registerer: prometheus.NewRegistry()})
}

func TestHistogramWithBuckets(t *testing.T) {
	reg := prometheus.NewRegistry()
	mf := MetricFactory{Prefix: "tlog_", Registerer: reg}
	h := mf.NewHistogramWithBuckets("proof_length", "Test only", []float64{1, 2, 4}, "log_id")
	h.Observe(3, "1234")
	h.Observe(5, "1234")
	if count, sum := h.Info("1234"); count != 2 || sum != 8 {
		t.Errorf("Info() = %d, %v; want 2, 8", count, sum)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather(): %v", err)
	}
	if len(mfs) != 1 {
		t.Fatalf("Gather(): %d families, want 1", len(mfs))
	}
	if got, want := mfs[0].GetName(), "tlog_proof_length"; got != want {
		t.Errorf("metric name %q, want %q", got, want)
	}
	buckets := mfs[0].GetMetric()[0].GetHistogram().GetBucket()
	if got, want := len(buckets), 3; got != want {
		t.Fatalf("%d buckets, want %d", got, want)
	}
	// Cumulative counts for <=1, <=2, <=4.
	for i, want := range []uint64{0, 0, 1} {
		if got := buckets[i].GetCumulativeCount(); got != want {
			t.Errorf("bucket[%d] count %d, want %d", i, got, want)
		}
	}
}
