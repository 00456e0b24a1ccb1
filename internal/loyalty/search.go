package loyalty

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/poscatcafe/pos-terminal/internal/api"
	"github.com/poscatcafe/pos-terminal/internal/models"
)

const (
	// DefaultDebounce matches the original search-as-you-type delay.
	DefaultDebounce = 300 * time.Millisecond

	// MinQueryLength is the shortest query worth sending to the server.
	MinQueryLength = 2
)

// Searcher debounces customer search input. A single timer is cancelled and
// restarted on every keystroke, so at most one search intent is pending at a
// time; an already-issued request is not aborted, only superseded.
type Searcher struct {
	client   api.LoyaltyAPI
	debounce time.Duration

	onResults func([]models.LoyaltySummary)
	onError   func(error)

	mu      sync.Mutex
	timer   *time.Timer
	results []models.LoyaltySummary
}

func NewSearcher(client api.LoyaltyAPI, onResults func([]models.LoyaltySummary), onError func(error)) *Searcher {
	return &Searcher{
		client:    client,
		debounce:  DefaultDebounce,
		onResults: onResults,
		onError:   onError,
	}
}

// SetDebounce overrides the delay, used by tests.
func (s *Searcher) SetDebounce(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debounce = d
}

// HandleInput is called on every keystroke. Queries shorter than two
// characters clear the result list without hitting the server.
func (s *Searcher) HandleInput(ctx context.Context, query string) {

	query = strings.TrimSpace(query)

	s.mu.Lock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if len([]rune(query)) < MinQueryLength {
		s.results = nil
		s.mu.Unlock()

		if s.onResults != nil {
			s.onResults(nil)
		}

		return
	}

	s.timer = time.AfterFunc(s.debounce, func() {
		s.search(ctx, query)
	})

	s.mu.Unlock()
}

func (s *Searcher) search(ctx context.Context, query string) {

	results, err := s.client.SearchLoyalty(ctx, query)
	if err != nil {
		slog.Error("Customer search failed", slog.String("query", query), slog.String("error", err.Error()))

		if s.onError != nil {
			s.onError(err)
		}

		return
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()

	if s.onResults != nil {
		s.onResults(results)
	}
}

// Result returns the cached result at idx from the current query cycle.
func (s *Searcher) Result(idx int) (models.LoyaltySummary, bool) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.results) {
		return models.LoyaltySummary{}, false
	}

	return s.results[idx], true
}

func (s *Searcher) Results() []models.LoyaltySummary {

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LoyaltySummary, len(s.results))
	copy(out, s.results)

	return out
}

// Clear drops the cached results and any pending search, as happens on
// selection or when the input empties.
func (s *Searcher) Clear() {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	s.results = nil
}
