package source

import (
	"context"
	"embed"
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/lixenwraith/pixel-spin/question"
)

//go:embed data/questions.json
var deckFS embed.FS

const embeddedDeck = "data/questions.json"

// EmbeddedStore serves the deck compiled into the binary
type EmbeddedStore struct {
	once  sync.Once
	items []question.Item
	err   error
}

// NewEmbedded creates a store over the built-in deck
func NewEmbedded() *EmbeddedStore {
	return &EmbeddedStore{}
}

func (s *EmbeddedStore) init() {
	raw, err := deckFS.ReadFile(embeddedDeck)
	if err != nil {
		s.err = errors.Wrap(err, "read embedded deck")
		return
	}
	s.items, s.err = decode(raw)
	if s.err != nil {
		s.err = errors.Wrap(s.err, "parse embedded deck")
	}
}

// Fetch returns a copy of the embedded deck
func (s *EmbeddedStore) Fetch(ctx context.Context) ([]question.Item, error) {
	s.once.Do(s.init)
	if s.err != nil {
		return nil, s.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]question.Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// JSONFile reads the deck from a JSON file on every fetch
type JSONFile struct {
	path string
}

// NewJSONFile creates a source reading path
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Fetch reads and decodes the file
func (j *JSONFile) Fetch(ctx context.Context) ([]question.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(j.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read deck %s", j.path)
	}
	items, err := decode(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse deck %s", j.path)
	}
	return items, nil
}

func decode(raw []byte) ([]question.Item, error) {
	var items []question.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
