// Package confirm provides the remote acknowledgment a reaction waits for
// before it is considered final.
package confirm

import (
	"PostFeed/model"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	DefaultLatency     = 350 * time.Millisecond
	DefaultFailureRate = 0.05
)

// ErrRejected is returned when the simulated remote refuses a reaction.
var ErrRejected = errors.New("simulated network error")

// Confirmer acknowledges a reaction. A nil error means the reaction is final.
type Confirmer interface {
	Confirm(ctx context.Context, postID model.PostID, kind model.ReactionKind) error
}

// Func adapts a plain function to Confirmer.
type Func func(ctx context.Context, postID model.PostID, kind model.ReactionKind) error

func (f Func) Confirm(ctx context.Context, postID model.PostID, kind model.ReactionKind) error {
	return f(ctx, postID, kind)
}

// Simulated waits a fixed latency and then fails with probability
// FailureRate, independently of the post and reaction kind.
type Simulated struct {
	latency     time.Duration
	failureRate float64

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Simulated)

// WithRand replaces the random source, mainly for deterministic tests.
func WithRand(src rand.Source) Option {
	return func(s *Simulated) {
		s.rnd = rand.New(src)
	}
}

func NewSimulated(latency time.Duration, failureRate float64, opts ...Option) *Simulated {
	if latency < 0 {
		latency = 0
	}
	switch {
	case failureRate < 0:
		failureRate = 0
	case failureRate > 1:
		failureRate = 1
	}

	s := &Simulated{
		latency:     latency,
		failureRate: failureRate,
		rnd:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewDefault() *Simulated {
	return NewSimulated(DefaultLatency, DefaultFailureRate)
}

func (s *Simulated) Confirm(ctx context.Context, postID model.PostID, kind model.ReactionKind) error {
	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("confirm %s on post %s: %w", kind, postID, ctx.Err())
	case <-timer.C:
	}

	if s.fail() {
		return fmt.Errorf("confirm %s on post %s: %w", kind, postID, ErrRejected)
	}
	return nil
}

func (s *Simulated) fail() bool {
	if s.failureRate == 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < s.failureRate
}
