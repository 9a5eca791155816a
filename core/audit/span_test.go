// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"errors"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want string
	}{
		{in: 0, want: "0"},
		{in: 1023, want: "1023"},
		{in: 1024, want: "1.00K"},
		{in: 1536, want: "1.50K"},
		{in: 3 * bytesInMB, want: "3.00M"},
		{in: 2 * bytesInGB, want: "2.00G"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeSize(tt.in), "humanizeSize(%d)", tt.in)
	}
}

func TestSpanRecordsServerTimingMetric(t *testing.T) {
	t.Parallel()

	var header servertiming.Header

	ctx := servertiming.NewContext(context.Background(), &header)

	span := Span{Method: "GET", URL: "/technologies"}

	_ = span.Begin(ctx)
	span.End()

	require.Len(t, header.Metrics, 1)
	assert.Equal(t, serverTimingMetricName, header.Metrics[0].Name)
	assert.Equal(t, "GET /technologies", header.Metrics[0].Desc)
	assert.Equal(t, span.Duration(), header.Metrics[0].Duration)
	assert.Contains(t, header.Metrics[0].Extra, "start")
}

func TestSpanEndIsIdempotent(t *testing.T) {
	t.Parallel()

	span := Span{Method: "GET", URL: "/"}

	_ = span.Begin(context.Background())
	span.End()

	first := span.Duration()

	span.End()

	assert.Equal(t, first, span.Duration())
}

func TestSpanLogDoesNotPanic(t *testing.T) {
	t.Parallel()

	span := Span{Method: "GET", URL: "/missing", StatusCode: 500, Error: errors.New("boom")}

	_ = span.Begin(context.Background())
	span.End()

	assert.NotPanics(t, span.Log)
}

func TestSpanFromContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FromContext(context.Background()))

	span := Span{RequestID: "abc", Method: "GET", URL: "/"}

	ctx := span.Begin(context.Background())
	defer span.End()

	assert.Same(t, &span, FromContext(ctx))
}
