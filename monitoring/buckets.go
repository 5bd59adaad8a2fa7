// Copyright 2017 Google LLC. All Rights Reserved.
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

package monitoring

// ExpBuckets returns the specified number of histogram buckets with
// exponentially increasing thresholds. The thresholds vary between base and
// base * mult^(buckets-1).
func ExpBuckets(base, mult float64, buckets uint) []float64 {
	r := make([]float64, buckets)
	for i, exp := uint(0), base; i < buckets; i, exp = i+1, exp*mult {
		r[i] = exp
	}
	return r
}

// ProofLengthBuckets returns one bucket per possible audit path length of a
// tree with up to 2^63 leaves.
func ProofLengthBuckets() []float64 {
	r := make([]float64, 64)
	for i := range r {
		r[i] = float64(i)
	}
	return r
}

// AgeBuckets returns histogram upper limits, in seconds, for the age of log
// entries. They grow exponentially from one second to roughly ten years.
func AgeBuckets() []float64 {
	return ExpBuckets(1, 2, 29)
}
