// Package source loads the question deck from its configured origin
package source

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/pixel-spin/question"
)

// Sentinel errors
var (
	ErrEmptyDeck     = errors.New("question deck is empty")
	ErrUnknownSource = errors.New("unknown question source")
)

// Fetcher provides the question deck
type Fetcher interface {
	Fetch(ctx context.Context) ([]question.Item, error)
}

// FetchFunc adapts a function to Fetcher
type FetchFunc func(ctx context.Context) ([]question.Item, error)

// Fetch calls f
func (f FetchFunc) Fetch(ctx context.Context) ([]question.Item, error) {
	return f(ctx)
}

const sqlitePrefix = "sqlite:"

// New resolves a source locator: "embedded", "sqlite:<path>", or a JSON file path
func New(loc string) (Fetcher, error) {
	loc = strings.TrimSpace(loc)
	switch {
	case loc == "" || loc == "embedded":
		return NewEmbedded(), nil
	case strings.HasPrefix(loc, sqlitePrefix):
		path := strings.TrimPrefix(loc, sqlitePrefix)
		if path == "" {
			return nil, errors.Wrap(ErrUnknownSource, "sqlite source without path")
		}
		return NewSQLite(path), nil
	case strings.HasSuffix(strings.ToLower(loc), ".json"):
		return NewJSONFile(loc), nil
	default:
		return nil, errors.Wrapf(ErrUnknownSource, "%q", loc)
	}
}

// Load fetches through f and hands the result to pool
// On failure the pool is left untouched and keeps serving the placeholder
func Load(ctx context.Context, f Fetcher, pool *question.Pool) error {
	items, err := f.Fetch(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrEmptyDeck
	}
	pool.Load(items)
	return nil
}

// Result is the outcome of an asynchronous fetch
type Result struct {
	Items []question.Item
	Err   error
}

// Async fetches through f on its own goroutine and delivers exactly one Result
// The receiver applies it to the pool, so the pool is only touched by its owner
func Async(ctx context.Context, f Fetcher) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		items, err := f.Fetch(ctx)
		if err == nil && len(items) == 0 {
			err = ErrEmptyDeck
		}
		ch <- Result{Items: items, Err: err}
	}()
	return ch
}
