package allschemas

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Patch describes one asynchronous update of a search record.
type Patch struct {
	Field   string
	Options []Option
}

// SearchSchema is the search projection. It is returned before its data
// sources have answered; each answer replaces componentProps.options of the
// first record with the matching field. Records handed out are snapshots
// and must be treated as read-only.
type SearchSchema struct {
	mu     sync.RWMutex
	items  []Record
	subs   map[int]func(Patch)
	nextID int

	group errgroup.Group
	done  chan struct{}
}

func newSearchSchema() *SearchSchema {
	return &SearchSchema{subs: map[int]func(Patch){}, done: make(chan struct{})}
}

// Items returns the records in projection order.
func (s *SearchSchema) Items() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record(nil), s.items...)
}

// Len returns the number of records.
func (s *SearchSchema) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the first record whose field matches.
func (s *SearchSchema) Get(field string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(field); i >= 0 {
		return s.items[i], true
	}
	return nil, false
}

// Subscribe registers fn to be called after every patch, from the task's
// goroutine. The returned function unregisters it.
func (s *SearchSchema) Subscribe(fn func(Patch)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Done is closed once every enrichment task has settled.
func (s *SearchSchema) Done() <-chan struct{} { return s.done }

// Wait blocks until every enrichment task has settled or ctx ends.
func (s *SearchSchema) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	default:
	}
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SearchSchema) indexOf(field string) int {
	for i, r := range s.items {
		if r.Field() == field {
			return i
		}
	}
	return -1
}

// patch stores opts on the first record named field. Records are replaced,
// never mutated, so earlier snapshots stay stable.
func (s *SearchSchema) patch(field string, opts []Option) bool {
	s.mu.Lock()
	i := s.indexOf(field)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items[i] = withOptions(s.items[i], opts)
	subs := make([]func(Patch), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	p := Patch{Field: field, Options: opts}
	for _, fn := range subs {
		fn(p)
	}
	return true
}

func (s *SearchSchema) start(ctx context.Context, e *Engine, tasks []searchTask) {
	for _, t := range tasks {
		s.group.Go(func() error {
			e.enrich(ctx, s, t)
			return nil
		})
	}
	go func() {
		_ = s.group.Wait()
		close(s.done)
	}()
}
