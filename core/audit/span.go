// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"runtime/trace"
	"strconv"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// serverTimingMetricName is the Server-Timing metric name used for rendering spans.
const serverTimingMetricName = "render"

type spanKey struct{}

// Span represents an HTTP request in flight.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration
	metric   *servertiming.Metric

	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Size       int
	Error      error
}

// Begin starts timing the span. The returned context carries the span and
// its runtime/trace task.
//
// If ctx carries a Server-Timing header (see middleware.WithServerTiming),
// a metric is attached to it and filled in by End.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "http.user")
	if timing := servertiming.FromContext(ctx); timing != nil {
		span.metric = timing.NewMetric(serverTimingMetricName).WithDesc(span.Method + " " + span.URL)
		span.metric.Extra = map[string]string{
			"start": strconv.FormatFloat(float64(span.start.UnixNano())/float64(time.Millisecond), 'f', -1, 64),
		}
	}

	return context.WithValue(ctx, spanKey{}, span)
}

// FromContext returns the span started on ctx, or nil.
func FromContext(ctx context.Context) *Span {
	span, _ := ctx.Value(spanKey{}).(*Span)

	return span
}

// End stops timing the span. Calling End more than once is a no-op.
func (span *Span) End() {
	if span.task == nil {
		return
	}

	span.duration = time.Since(span.start)
	span.task.End()

	if span.metric != nil {
		span.metric.Duration = span.duration
	}

	span.task = nil
}

// Duration reports how long the span ran. It is zero before End.
func (span *Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span as a single debug-level record.
//
// Spans with a server error status are logged at error level instead.
func (span *Span) Log() {
	var event *zerolog.Event
	if span.StatusCode >= 500 {
		event = log.Error()
	} else {
		event = log.Debug()
	}

	event.
		Str("sys", "http").
		Str("method", span.Method).
		Str("url", span.URL).
		Int("status_code", span.StatusCode).
		Str("len", humanizeSize(span.Size)).
		Dur("dur", span.duration).
		Str("request_id", span.RequestID)

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Send()
}
