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

// Package client verifies transparency log entries on behalf of a signing
// verification client: it decides whether an entry fetched from a log can be
// trusted.
package client

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/tlogverify/merkle/hashers"
	"github.com/google/tlogverify/merkle/rfc6962"
	"github.com/google/tlogverify/monitoring"
	"github.com/google/tlogverify/tlog"
	"github.com/google/tlogverify/util/clock"
	"k8s.io/klog/v2"
)

// Errors returned by EntryVerifier.Verify in addition to those of the tlog
// and logverifier packages.
var (
	ErrUntrustedLog           = errors.New("entry is from an untrusted log")
	ErrIntegratedTimeInFuture = errors.New("entry integrated time is in the future")
	ErrMissingInclusionProof  = errors.New("entry has no inclusion proof")
	ErrMissingCheckpoint      = errors.New("inclusion proof has no checkpoint")
	ErrUnverifiable           = errors.New("entry has neither a verifiable inclusion proof nor a verifiable inclusion promise")
)

// Rejection reasons, used as metric labels.
const (
	reasonMalformed      = "malformed"
	reasonUntrustedLog   = "untrusted_log"
	reasonFutureTime     = "future_time"
	reasonMissingProof   = "missing_proof"
	reasonInclusionProof = "inclusion_proof"
	reasonCheckpoint     = "checkpoint"
	reasonPromise        = "promise"
	reasonUnverifiable   = "unverifiable"
)

var (
	once             sync.Once
	metricFactory    monitoring.MetricFactory
	entriesVerified  monitoring.Counter
	entriesRejected  monitoring.Counter
	proofLength      monitoring.Histogram
	entryAge         monitoring.Histogram
	verifiedTreeSize monitoring.Gauge
)

func createMetrics(mf monitoring.MetricFactory) {
	metricFactory = mf
	entriesVerified = mf.NewCounter("entries_verified", "Number of log entries that passed verification", "log_id")
	entriesRejected = mf.NewCounter("entries_rejected", "Number of log entries that failed verification", "reason")
	proofLength = mf.NewHistogramWithBuckets("proof_length", "Number of hashes in verified inclusion proofs", monitoring.ProofLengthBuckets())
	entryAge = mf.NewHistogramWithBuckets("entry_age_seconds", "Age of entries at verification time", monitoring.AgeBuckets())
	verifiedTreeSize = mf.NewGauge("verified_tree_size", "Tree size of the latest verified inclusion proof", "log_id")
}

// PromiseVerifier checks the signature of an inclusion promise over the
// canonical encoding of an entry, using the public key of the named log.
type PromiseVerifier interface {
	VerifyPromise(logID string, canonical []byte, promise string) error
}

// EntryVerifierOpts configures an EntryVerifier.
type EntryVerifierOpts struct {
	// Hasher defaults to the RFC 6962 SHA-256 hasher.
	Hasher hashers.LogHasher
	// TrustedLogs restricts accepted entries to these logs. Empty means any
	// log is accepted.
	TrustedLogs []TrustedLog
	// PromiseVerifier, if set, is used to check inclusion promises.
	PromiseVerifier PromiseVerifier
	// RequireInclusionProof rejects entries that only carry a promise.
	RequireInclusionProof bool
	// TimeSource defaults to the system clock.
	TimeSource clock.TimeSource
	// MetricFactory defaults to inert metrics. Metrics are created once per
	// process, by the first verifier constructed; a different factory passed
	// later is ignored with a warning.
	MetricFactory monitoring.MetricFactory
}

// EntryVerifier applies verification policy to parsed log entries. It is
// safe for concurrent use.
type EntryVerifier struct {
	hasher          hashers.LogHasher
	trusted         map[string]TrustedLog
	promiseVerifier PromiseVerifier
	requireProof    bool
	ts              clock.TimeSource
}

// NewEntryVerifier returns an EntryVerifier configured by opts.
func NewEntryVerifier(opts EntryVerifierOpts) *EntryVerifier {
	mf := opts.MetricFactory
	if mf == nil {
		mf = monitoring.InertMetricFactory{}
	}
	created := false
	once.Do(func() {
		createMetrics(mf)
		created = true
	})
	if !created && opts.MetricFactory != nil && !usesMetricFactory(opts.MetricFactory) {
		klog.Warningf("Ignoring MetricFactory %T: verifier metrics were already created with %T", opts.MetricFactory, metricFactory)
	}

	v := &EntryVerifier{
		hasher:          opts.Hasher,
		trusted:         make(map[string]TrustedLog),
		promiseVerifier: opts.PromiseVerifier,
		requireProof:    opts.RequireInclusionProof,
		ts:              opts.TimeSource,
	}
	if v.hasher == nil {
		v.hasher = rfc6962.DefaultHasher
	}
	if v.ts == nil {
		v.ts = clock.System
	}
	for _, l := range opts.TrustedLogs {
		v.trusted[l.LogID] = l
	}
	return v
}

// Verify checks entry against the verifier's policy. An entry passes if it
// comes from a trusted log, was not integrated in the future, and at least
// one of its inclusion proof or inclusion promise verifies. Any inclusion
// proof or promise present must verify.
func (v *EntryVerifier) Verify(entry *tlog.LogEntry) error {
	reason, err := v.verify(entry)
	if err != nil {
		entriesRejected.Inc(reason)
		if entry != nil {
			klog.Warningf("Rejected entry %s (log %s, index %d): %v", entry.UUID, entry.LogID, entry.LogIndex, err)
		}
		return err
	}
	entriesVerified.Inc(entry.LogID)
	klog.V(1).Infof("Verified entry %s (log %s, index %d)", entry.UUID, entry.LogID, entry.LogIndex)
	return nil
}

func (v *EntryVerifier) verify(e *tlog.LogEntry) (string, error) {
	if e == nil {
		return reasonMalformed, fmt.Errorf("%w: nil entry", tlog.ErrInvalidEntry)
	}
	trusted, ok := v.trustedLog(e.LogID)
	if !ok {
		return reasonUntrustedLog, fmt.Errorf("%w: %q", ErrUntrustedLog, e.LogID)
	}

	integrated := time.Unix(e.IntegratedTime, 0)
	age := clock.SecondsSince(v.ts, integrated)
	if age < 0 {
		return reasonFutureTime, fmt.Errorf("%w: %v is %.0fs ahead of now", ErrIntegratedTimeInFuture, integrated.UTC(), -age)
	}
	entryAge.Observe(age)

	verified := false
	if p := e.InclusionProof; p != nil {
		if err := e.VerifyInclusion(v.hasher); err != nil {
			return reasonInclusionProof, err
		}
		proofLength.Observe(float64(len(p.Hashes)))
		switch {
		case p.Checkpoint != "":
			cp, err := p.VerifyCheckpoint()
			if err != nil {
				return reasonCheckpoint, err
			}
			if trusted.Origin != "" && cp.Origin != trusted.Origin {
				return reasonCheckpoint, fmt.Errorf("checkpoint origin %q, want %q", cp.Origin, trusted.Origin)
			}
		case trusted.Origin != "":
			return reasonCheckpoint, fmt.Errorf("%w: log %q requires a checkpoint with origin %q", ErrMissingCheckpoint, e.LogID, trusted.Origin)
		}
		klog.V(2).Infof("Entry %s included at %d/%d under root %s", e.UUID, p.LogIndex, p.TreeSize, p.RootHash)
		verifiedTreeSize.Set(float64(p.TreeSize), e.LogID)
		verified = true
	} else if v.requireProof {
		return reasonMissingProof, fmt.Errorf("%w: %s", ErrMissingInclusionProof, e.UUID)
	}

	if e.InclusionPromise != "" && v.promiseVerifier != nil {
		if err := v.promiseVerifier.VerifyPromise(e.LogID, e.EncodeCanonical(), e.InclusionPromise); err != nil {
			return reasonPromise, fmt.Errorf("inclusion promise: %w", err)
		}
		verified = true
	}

	if !verified {
		return reasonUnverifiable, fmt.Errorf("%w: %s", ErrUnverifiable, e.UUID)
	}
	return "", nil
}

// usesMetricFactory reports whether the package metrics were created by mf.
func usesMetricFactory(mf monitoring.MetricFactory) bool {
	a, b := reflect.ValueOf(mf), reflect.ValueOf(metricFactory)
	if !a.IsValid() || !b.IsValid() || a.Type() != b.Type() || !a.Comparable() {
		return false
	}
	return a.Equal(b)
}

func (v *EntryVerifier) trustedLog(logID string) (TrustedLog, bool) {
	if len(v.trusted) == 0 {
		return TrustedLog{LogID: logID}, true
	}
	l, ok := v.trusted[logID]
	return l, ok
}
