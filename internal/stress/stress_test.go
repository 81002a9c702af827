// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package stress

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/holomush/ulidkit/internal/observability"
	"github.com/holomush/ulidkit/pkg/errutil"
	"github.com/holomush/ulidkit/pkg/ulid"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
}

func TestRun_TwoWorkersNoDuplicates(t *testing.T) {
	defer goleak.VerifyNone(t)

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	res, err := Run(context.Background(), Options{
		Workers:   2,
		PerWorker: 1000,
		Generator: ulid.NewGenerator(ulid.WithSource(ulid.NewSource(42))),
		Metrics:   metrics,
		Logger:    quietLogger(),
	})
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, 2000, res.Generated)
	assert.Zero(t, res.Duplicates)
	assert.Zero(t, res.RoundTripFailures)
	assert.LessOrEqual(t, res.Smallest.Compare(res.Largest), 0)
	assert.InDelta(t, 2000, testutil.ToFloat64(metrics.GeneratedTotal), 0)
	assert.InDelta(t, float64(res.CASRetries), testutil.ToFloat64(metrics.CASRetriesTotal), 0)
}

func TestRun_FixedClockAndSourceStillUnique(t *testing.T) {
	// With the timestamp pinned, uniqueness rests entirely on the source.
	gen := ulid.NewGenerator(
		ulid.WithClock(func() time.Time { return time.UnixMilli(1_700_000_000_000) }),
		ulid.WithSource(ulid.NewSource(99)),
	)

	res, err := Run(context.Background(), Options{Workers: 8, PerWorker: 2000, Generator: gen, Logger: quietLogger()})
	require.NoError(t, err)
	assert.Zero(t, res.Duplicates)
	assert.Equal(t, uint64(1_700_000_000_000), res.Smallest.Timestamp())
	assert.Equal(t, uint64(1_700_000_000_000), res.Largest.Timestamp())
}

func TestRun_CancelledContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Workers: 4, PerWorker: 100_000, Logger: quietLogger()})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Workers: 0, PerWorker: 10})
	errutil.AssertErrorCode(t, err, "INVALID_OPTIONS")

	_, err = Run(context.Background(), Options{Workers: 1, PerWorker: 0})
	errutil.AssertErrorCode(t, err, "INVALID_OPTIONS")
}
