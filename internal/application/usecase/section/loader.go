package section

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/logger"
)

type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Result is what a section renders. On StateError, Data holds the fallback
// dataset and Err the swallowed cause.
type Result[T any] struct {
	Section string `json:"section"`
	State   State  `json:"state"`
	Live    bool   `json:"live"`
	Data    T      `json:"data"`
	Err     error  `json:"-"`
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Loader fetches one section and degrades to a static dataset on any failure.
type Loader[T any] struct {
	name     string
	fetch    FetchFunc[T]
	fallback func() T
	logger   logger.Logger
}

var tracer = otel.Tracer("section_usecase")

func NewLoader[T any](name string, fetch func(ctx context.Context) (T, error), fallback func() T, log logger.Logger) *Loader[T] {
	return &Loader[T]{
		name:     name,
		fetch:    fetch,
		fallback: fallback,
		logger:   log.With(zap.String("section", name)),
	}
}

func (l *Loader[T]) Name() string {
	return l.name
}

func (l *Loader[T]) Load(ctx context.Context) Result[T] {
	ctx, span := tracer.Start(ctx, "Load")
	defer span.End()
	span.SetAttributes(attribute.String("section", l.name))

	res := Result[T]{Section: l.name, State: StateLoading}

	data, err := l.fetch(ctx)
	if err != nil {
		l.logger.Error("failed to load "+l.name, err)
		span.RecordError(err)
		res.State = StateError
		res.Data = l.fallback()
		res.Err = err
		return res
	}

	res.State = StateSuccess
	res.Live = true
	res.Data = data
	return res
}

// Map derives a loader whose data is transformed identically for live and
// fallback values.
func Map[T, U any](l *Loader[T], fn func(T) U) *Loader[U] {
	return &Loader[U]{
		name: l.name,
		fetch: func(ctx context.Context) (U, error) {
			data, err := l.fetch(ctx)
			if err != nil {
				var zero U
				return zero, err
			}
			return fn(data), nil
		},
		fallback: func() U { return fn(l.fallback()) },
		logger:   l.logger,
	}
}
