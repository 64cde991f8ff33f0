// Package stream provides a single-subscriber, push-based state source.
package stream

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Subscription.Next once the subscription has been
// closed and every queued value has been delivered.
var ErrClosed = errors.New("stream: subscription closed")

// Source holds the latest value of type T and pushes it, and every later
// value, to at most one subscriber at a time.
type Source[T any] struct {
	mu     sync.Mutex
	latest T
	sub    *Subscription[T]
	closed bool
}

// NewSource constructs a Source holding initial as its latest value.
func NewSource[T any](initial T) *Source[T] {
	return &Source[T]{latest: initial}
}

// Value returns the latest published value.
func (s *Source[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Publish records v as the latest value and queues it for the current
// subscriber. Publishing after Close is a no-op.
func (s *Source[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.latest = v
	if s.sub != nil {
		s.sub.push(v)
	}
}

// Subscribe registers a new subscriber, closing the previous one if any.
// The subscriber receives the latest value first.
func (s *Source[T]) Subscribe() *Subscription[T] {
	sub := &Subscription[T]{
		source: s,
		ready:  make(chan struct{}, 1),
	}

	s.mu.Lock()
	prev := s.sub
	if s.closed {
		sub.closed = true
	} else {
		sub.pending = []T{s.latest}
		s.sub = sub
	}
	s.mu.Unlock()

	if prev != nil {
		prev.markClosed()
	}
	return sub
}

// Close detaches the current subscriber and stops accepting values.
func (s *Source[T]) Close() {
	s.mu.Lock()
	sub := s.sub
	s.sub = nil
	s.closed = true
	s.mu.Unlock()

	if sub != nil {
		sub.markClosed()
	}
}

func (s *Source[T]) detach(sub *Subscription[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sub == sub {
		s.sub = nil
	}
}

// Subscription receives values from a Source in publish order.
type Subscription[T any] struct {
	source  *Source[T]
	mu      sync.Mutex
	pending []T
	closed  bool
	ready   chan struct{}
}

// Next blocks until a value is available and returns it. Queued values are
// still delivered after the subscription is closed; ErrClosed follows them.
func (s *Subscription[T]) Next(ctx context.Context) (T, error) {
	var zero T
	for {
		s.mu.Lock()
		if len(s.pending) > 0 {
			v := s.pending[0]
			s.pending[0] = zero
			s.pending = s.pending[1:]
			s.mu.Unlock()
			return v, nil
		}
		closed := s.closed
		s.mu.Unlock()

		if closed {
			return zero, ErrClosed
		}

		select {
		case <-s.ready:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
}

// Close releases the subscription. It is safe to call more than once.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()

	s.markClosed()
	s.source.detach(s)
}

func (s *Subscription[T]) push(v T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending = append(s.pending, v)
	s.mu.Unlock()
	s.signal()
}

func (s *Subscription[T]) markClosed() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.signal()
}

func (s *Subscription[T]) signal() {
	select {
	case s.ready <- struct{}{}:
	default:
	}
}
