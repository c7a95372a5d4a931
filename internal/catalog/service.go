package catalog

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Service is the content provider: game metadata plus per-game content
// sets. All reads simulate a small network latency (the data will move
// behind a real API eventually) and honor context cancellation. The
// service is safe for concurrent use; callers receive copies and never
// share mutable state with it.
type Service struct {
	mu  sync.Mutex
	lib *library

	// fast disables the simulated latency (tests, HTTP server).
	fast bool
}

// NewService loads and validates the embedded content library.
func NewService(fast bool) (*Service, error) {
	lib, err := loadLibrary()
	if err != nil {
		return nil, err
	}
	return &Service{lib: lib, fast: fast}, nil
}

// All returns every game in the library.
func (s *Service) All(ctx context.Context) ([]Game, error) {
	if err := s.delay(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Game(nil), s.lib.Games...), nil
}

// ByID returns the game with the given identifier.
func (s *Service) ByID(ctx context.Context, id string) (Game, error) {
	if err := s.delay(ctx, 200*time.Millisecond); err != nil {
		return Game{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.lib.Games {
		if g.ID == id {
			return g, nil
		}
	}
	return Game{}, ErrNotFound
}

// Featured returns games marked as featured, or the first three when
// none are marked.
func (s *Service) Featured(ctx context.Context) ([]Game, error) {
	if err := s.delay(ctx, 250*time.Millisecond); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var featured []Game
	for _, g := range s.lib.Games {
		if g.Featured {
			featured = append(featured, g)
		}
		if len(featured) == 3 {
			break
		}
	}
	if len(featured) > 0 {
		return featured, nil
	}
	n := min(3, len(s.lib.Games))
	return append([]Game(nil), s.lib.Games[:n]...), nil
}

// ByCategory returns games in the given category. The pseudo-category
// "All" returns the whole library.
func (s *Service) ByCategory(ctx context.Context, category string) ([]Game, error) {
	if err := s.delay(ctx, 300*time.Millisecond); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "All" {
		return append([]Game(nil), s.lib.Games...), nil
	}
	var out []Game
	for _, g := range s.lib.Games {
		if string(g.Category) == category {
			out = append(out, g)
		}
	}
	return out, nil
}

// Search returns games whose title, description, category, or
// educational value contains the query, case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]Game, error) {
	if err := s.delay(ctx, 400*time.Millisecond); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []Game
	for _, g := range s.lib.Games {
		if strings.Contains(strings.ToLower(g.Title), q) ||
			strings.Contains(strings.ToLower(g.Description), q) ||
			strings.Contains(strings.ToLower(string(g.Category)), q) ||
			strings.Contains(strings.ToLower(g.EducationalValue), q) {
			out = append(out, g)
		}
	}
	return out, nil
}

// IncrementPlayCount bumps the play counter for a game and returns the
// updated definition. This is the only mutation the service supports;
// callers never touch play counts directly.
func (s *Service) IncrementPlayCount(ctx context.Context, id string) (Game, error) {
	if err := s.delay(ctx, 100*time.Millisecond); err != nil {
		return Game{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lib.Games {
		if s.lib.Games[i].ID == id {
			s.lib.Games[i].PlayCount++
			return s.lib.Games[i], nil
		}
	}
	return Game{}, ErrNotFound
}

// WordContent returns the letter pool and dictionary for a difficulty.
func (s *Service) WordContent(ctx context.Context, difficulty string) (WordContent, error) {
	if err := s.delay(ctx, 150*time.Millisecond); err != nil {
		return WordContent{}, err
	}
	wc, ok := s.lib.Words[difficulty]
	if !ok {
		return WordContent{}, ErrNotFound
	}
	return wc, nil
}

// PairLevels returns the memory-match levels, in play order.
func (s *Service) PairLevels(ctx context.Context) ([]PairSet, error) {
	if err := s.delay(ctx, 150*time.Millisecond); err != nil {
		return nil, err
	}
	return append([]PairSet(nil), s.lib.Pairs...), nil
}

// EventLevels returns the timeline levels for a difficulty.
func (s *Service) EventLevels(ctx context.Context, difficulty string) ([][]Event, error) {
	if err := s.delay(ctx, 150*time.Millisecond); err != nil {
		return nil, err
	}
	set, ok := s.lib.Events[difficulty]
	if !ok {
		return nil, ErrNotFound
	}
	return append([][]Event(nil), set.Levels...), nil
}

// Puzzles returns the logic-grid puzzles, in play order.
func (s *Service) Puzzles(ctx context.Context) ([]Puzzle, error) {
	if err := s.delay(ctx, 150*time.Millisecond); err != nil {
		return nil, err
	}
	return append([]Puzzle(nil), s.lib.Puzzles...), nil
}

// delay simulates network latency around base (±50%), honoring
// cancellation. No-op in fast mode.
func (s *Service) delay(ctx context.Context, base time.Duration) error {
	if s.fast {
		return ctx.Err()
	}
	jitter := time.Duration(rand.Int63n(int64(base))) - base/2
	t := time.NewTimer(base + jitter)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
