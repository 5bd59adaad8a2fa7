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

// Package testonly holds conformance checks that any monitoring.MetricFactory
// implementation should pass.
package testonly

import (
	"testing"

	"github.com/google/tlogverify/monitoring"
)

// labelCases are the label shapes every metric type is exercised with.
var labelCases = []struct {
	suffix     string
	labelNames []string
	labelVals  []string
}{
	{suffix: "0"},
	{suffix: "1", labelNames: []string{"log_id"}, labelVals: []string{"c0d23d6a"}},
	{suffix: "2", labelNames: []string{"log_id", "reason"}, labelVals: []string{"c0d23d6a", "checkpoint"}},
}

// bogus returns labelVals with one label too many.
func bogus(labelVals []string) []string {
	return append(append([]string(nil), labelVals...), "bogus")
}

// TestCounter runs a test on a Counter produced from the provided MetricFactory.
func TestCounter(t *testing.T, factory monitoring.MetricFactory) {
	t.Helper()
	for _, lc := range labelCases {
		name := "test_counter" + lc.suffix
		counter := factory.NewCounter(name, "Test only", lc.labelNames...)
		check := func(step string, want float64) {
			t.Helper()
			if got := counter.Value(lc.labelVals...); got != want {
				t.Errorf("%s%v after %s: Value()=%v, want %v", name, lc.labelVals, step, got, want)
			}
		}
		check("creation", 0)
		counter.Inc(lc.labelVals...)
		check("Inc", 1)
		counter.Add(2.5, lc.labelVals...)
		check("Add", 3.5)

		wrong := bogus(lc.labelVals)
		counter.Add(10.0, wrong...)
		counter.Inc(wrong...)
		if got := counter.Value(wrong...); got != 0 {
			t.Errorf("%s%v: Value()=%v, want 0", name, wrong, got)
		}
		check("updates with bad labels", 3.5)
	}
}

// TestGauge runs a test on a Gauge produced from the provided MetricFactory.
func TestGauge(t *testing.T, factory monitoring.MetricFactory) {
	t.Helper()
	for _, lc := range labelCases {
		name := "test_gauge" + lc.suffix
		gauge := factory.NewGauge(name, "Test only", lc.labelNames...)
		check := func(step string, want float64) {
			t.Helper()
			if got := gauge.Value(lc.labelVals...); got != want {
				t.Errorf("%s%v after %s: Value()=%v, want %v", name, lc.labelVals, step, got, want)
			}
		}
		check("creation", 0)
		gauge.Inc(lc.labelVals...)
		check("Inc", 1)
		gauge.Dec(lc.labelVals...)
		check("Dec", 0)
		gauge.Add(2.5, lc.labelVals...)
		check("Add", 2.5)
		gauge.Set(42.0, lc.labelVals...)
		check("Set", 42)

		wrong := bogus(lc.labelVals)
		gauge.Add(10.0, wrong...)
		gauge.Inc(wrong...)
		gauge.Dec(wrong...)
		gauge.Set(120.0, wrong...)
		if got := gauge.Value(wrong...); got != 0 {
			t.Errorf("%s%v: Value()=%v, want 0", name, wrong, got)
		}
		check("updates with bad labels", 42)
	}
}

// TestHistogram runs a test on a Histogram produced from the provided MetricFactory.
func TestHistogram(t *testing.T, factory monitoring.MetricFactory) {
	t.Helper()
	for _, lc := range labelCases {
		testHistogram(t, "test_histogram"+lc.suffix, factory.NewHistogram("test_histogram"+lc.suffix, "Test only", lc.labelNames...), lc.labelVals)
		name := "test_bucketed_histogram" + lc.suffix
		testHistogram(t, name, factory.NewHistogramWithBuckets(name, "Test only", monitoring.ProofLengthBuckets(), lc.labelNames...), lc.labelVals)
	}
}

func testHistogram(t *testing.T, name string, histogram monitoring.Histogram, labelVals []string) {
	t.Helper()
	check := func(step string, labelVals []string, wantCount uint64, wantSum float64) {
		t.Helper()
		if gotCount, gotSum := histogram.Info(labelVals...); gotCount != wantCount || gotSum != wantSum {
			t.Errorf("%s%v after %s: Info()=%v,%v, want %v,%v", name, labelVals, step, gotCount, gotSum, wantCount, wantSum)
		}
	}
	check("creation", labelVals, 0, 0)
	for _, v := range []float64{1, 2, 3} {
		histogram.Observe(v, labelVals...)
	}
	check("Observe", labelVals, 3, 6)

	wrong := bogus(labelVals)
	histogram.Observe(100.0, wrong...)
	histogram.Observe(200.0, wrong...)
	check("Observe with bad labels", wrong, 0, 0)
	check("Observe with bad labels", labelVals, 3, 6)
}
