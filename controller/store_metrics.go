package controller

import (
	"context"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentStore records how long every store call takes and which calls
// fail.
func InstrumentStore(s Store) Store { return &instrumented{next: s} }

var (
	storeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "call_duration_seconds",
			Help:      "Time spent in each frame store method.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 8),
		},
		[]string{"method"},
	)
	storeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Frame store calls that returned an error.",
		},
		[]string{"method", "error"},
	)
)

func init() {
	prometheus.MustRegister(storeDuration, storeErrors)
}

func observe(method string, start time.Time, err error) {
	storeDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		storeErrors.WithLabelValues(method, errorLabel(err)).Inc()
	}
}

// errorLabel keeps the error label to a fixed set of values.
func errorLabel(err error) string {
	switch err {
	case ErrNotFound:
		return "not_found"
	case ErrAlreadyExists:
		return "already_exists"
	case ErrFrameOrder:
		return "frame_order"
	case context.Canceled, context.DeadlineExceeded:
		return "context"
	}
	return "other"
}

type instrumented struct{ next Store }

func (s *instrumented) CreateGame(ctx context.Context, g *Game, frames []*Frame) (err error) {
	defer func(start time.Time) { observe("CreateGame", start, err) }(time.Now())
	return s.next.CreateGame(ctx, g, frames)
}

func (s *instrumented) PushGameFrame(ctx context.Context, id string, f *Frame) (err error) {
	defer func(start time.Time) { observe("PushGameFrame", start, err) }(time.Now())
	return s.next.PushGameFrame(ctx, id, f)
}

func (s *instrumented) ListGameFrames(ctx context.Context, id string, limit, offset int) (frames []*Frame, err error) {
	defer func(start time.Time) { observe("ListGameFrames", start, err) }(time.Now())
	return s.next.ListGameFrames(ctx, id, limit, offset)
}

func (s *instrumented) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) (err error) {
	defer func(start time.Time) { observe("SetGameStatus", start, err) }(time.Now())
	return s.next.SetGameStatus(ctx, id, status)
}

func (s *instrumented) GetGame(ctx context.Context, id string) (g *Game, err error) {
	defer func(start time.Time) { observe("GetGame", start, err) }(time.Now())
	return s.next.GetGame(ctx, id)
}

func (s *instrumented) ListGameIDs(ctx context.Context) (ids []string, err error) {
	defer func(start time.Time) { observe("ListGameIDs", start, err) }(time.Now())
	return s.next.ListGameIDs(ctx)
}
