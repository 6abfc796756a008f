// Package reaction applies like/dislike reactions optimistically and rolls
// them back when the confirmer rejects them.
package reaction

import (
	"PostFeed/confirm"
	"PostFeed/internal/logger"
	"PostFeed/model"
	"PostFeed/storage"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const TracerName = "PostFeed/reaction"

type Status int

const (
	StatusConfirmed Status = iota
	StatusRolledBack
)

func (s Status) String() string {
	if s == StatusRolledBack {
		return "rolled_back"
	}
	return "confirmed"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Outcome describes how a single reaction settled.
type Outcome struct {
	OperationID string             `json:"operationId"`
	PostID      model.PostID       `json:"postId"`
	Kind        model.ReactionKind `json:"kind"`
	Found       bool               `json:"found"`
	Optimistic  int                `json:"optimistic"` // счетчик сразу после применения
	Final       int                `json:"final"`      // счетчик в момент завершения
	Status      Status             `json:"status"`
	Err         error              `json:"-"`
}

// Operation is a dispatched reaction. Found and Optimistic are known as soon
// as Dispatch returns; Done yields exactly one Outcome.
type Operation struct {
	ID         string
	PostID     model.PostID
	Kind       model.ReactionKind
	Found      bool
	Optimistic int
	Done       <-chan Outcome
}

// pending is a reaction that was applied and awaits confirmation.
type pending struct {
	opID       string
	postID     model.PostID
	kind       model.ReactionKind
	found      bool
	optimistic int
	span       trace.Span
	started    time.Time
}

type Controller struct {
	storage   storage.Storage
	confirmer confirm.Confirmer
	log       *logger.Logger
	metrics   *Metrics
	tracer    trace.Tracer
}

type Option func(*Controller)

func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) { c.tracer = t }
}

func NewController(s storage.Storage, confirmer confirm.Confirmer, opts ...Option) *Controller {
	c := &Controller{
		storage:   s,
		confirmer: confirmer,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Default()
	}
	if c.metrics == nil {
		c.metrics = NewMetrics(prometheus.NewRegistry())
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(TracerName)
	}
	return c
}

// React applies the reaction, waits for confirmation and rolls back on
// failure. It returns once the reaction has settled.
func (c *Controller) React(ctx context.Context, postID model.PostID, kind model.ReactionKind) Outcome {
	ctx, p := c.apply(ctx, postID, kind)
	return c.settle(ctx, p)
}

// Dispatch applies the reaction before returning and settles it in the
// background.
func (c *Controller) Dispatch(ctx context.Context, postID model.PostID, kind model.ReactionKind) Operation {
	ctx, p := c.apply(ctx, postID, kind)

	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		out <- c.settle(ctx, p)
	}()

	return Operation{
		ID:         p.opID,
		PostID:     p.postID,
		Kind:       p.kind,
		Found:      p.found,
		Optimistic: p.optimistic,
		Done:       out,
	}
}

// Оптимистичное применение: c -> c+1 за одну атомарную операцию хранилища
func (c *Controller) apply(ctx context.Context, postID model.PostID, kind model.ReactionKind) (context.Context, *pending) {
	p := &pending{
		opID:    uuid.New().String(),
		postID:  postID,
		kind:    kind,
		started: time.Now(),
	}

	ctx, p.span = c.tracer.Start(ctx, "reaction.react", trace.WithAttributes(
		attribute.String("reaction.operation_id", p.opID),
		attribute.Int64("post.id", int64(postID)),
		attribute.String("reaction.kind", kind.String()),
	))

	c.storage.PatchReactions(postID, func(r model.Reactions) model.Reactions {
		p.found = true
		next := r.Increment(kind)
		p.optimistic = next.Count(kind)
		return next
	})

	if p.found {
		c.metrics.Applied.WithLabelValues(kind.String()).Inc()
	} else {
		c.log.Warnf("reaction %s: post %s not found, nothing applied", p.opID, postID)
	}
	p.span.SetAttributes(attribute.Bool("post.found", p.found))
	return ctx, p
}

// Ожидание подтверждения и откат при отказе
func (c *Controller) settle(ctx context.Context, p *pending) Outcome {
	defer p.span.End()

	c.metrics.InFlight.Inc()
	err := c.confirmer.Confirm(ctx, p.postID, p.kind)
	c.metrics.InFlight.Dec()
	c.metrics.Latency.Observe(time.Since(p.started).Seconds())

	outcome := Outcome{
		OperationID: p.opID,
		PostID:      p.postID,
		Kind:        p.kind,
		Found:       p.found,
		Optimistic:  p.optimistic,
		Status:      StatusConfirmed,
	}

	if err == nil {
		if post, ok := c.storage.GetPost(p.postID); ok {
			outcome.Final = post.Reactions.Count(p.kind)
		}
		if p.found {
			c.metrics.Confirmed.WithLabelValues(p.kind.String()).Inc()
		}
		p.span.SetStatus(codes.Ok, "")
		return outcome
	}

	// База отката читается в момент отката, а не берется из apply
	c.storage.PatchReactions(p.postID, func(r model.Reactions) model.Reactions {
		next := r.Decrement(p.kind)
		outcome.Final = next.Count(p.kind)
		return next
	})

	outcome.Status = StatusRolledBack
	outcome.Err = err
	p.span.RecordError(err)
	p.span.SetStatus(codes.Error, "confirmation failed")

	// Для неизвестного поста применять было нечего
	if p.found {
		c.metrics.RolledBack.WithLabelValues(p.kind.String()).Inc()
		c.log.Warnf("reaction %s: %s on post %s rolled back to %d: %v",
			p.opID, p.kind, p.postID, outcome.Final, err)
	}
	return outcome
}
