package browse

import (
	"context"
	"sync"

	"github.com/amaumene/goflix/internal/models"
)

// Searcher returns search suggestions for a query
type Searcher interface {
	Suggest(ctx context.Context, query string) []models.MediaItem
}

// Suggester serves suggestions for a stream of queries where only the
// latest one matters. Starting a call cancels the previous one, and a call
// that has been overtaken reports current == false so its caller can drop
// the results.
type Suggester struct {
	searcher Searcher

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewSuggester wraps searcher
func NewSuggester(searcher Searcher) *Suggester {
	return &Suggester{searcher: searcher}
}

// Suggest runs the query, superseding any call still in flight
func (s *Suggester) Suggest(ctx context.Context, query string) (items []models.MediaItem, current bool) {
	return s.Begin(ctx).Run(query)
}

// Call is a suggestion request that has claimed its place in line but may
// not have run yet
type Call struct {
	s      *Suggester
	seq    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Begin supersedes the call in flight and reserves the next place. Callers
// that run queries on other goroutines call Begin in arrival order so the
// scheduler cannot reorder which query counts as latest.
func (s *Suggester) Begin(ctx context.Context) *Call {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	s.cancel = cancel
	return &Call{s: s, seq: s.seq, ctx: ctx, cancel: cancel}
}

// Run performs the query. current is false when a later Begin or Stop
// happened before the results came back.
func (c *Call) Run(query string) (items []models.MediaItem, current bool) {
	items = c.s.searcher.Suggest(c.ctx, query)

	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	current = c.seq == c.s.seq
	if current {
		c.s.cancel = nil
	}
	c.cancel()
	return items, current
}

// Stop cancels the call in flight, if any, and marks it superseded
func (s *Suggester) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}
