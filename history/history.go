// Package history persists finished plays.
package history

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/mpq-cli/mpq/filesystem"
	"github.com/mpq-cli/mpq/key"
	"github.com/mpq-cli/mpq/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Store is a bounded play history kept in a JSON file, oldest entry first.
type Store struct {
	cacher *gache.Cache[[]*Entry]
	max    int
}

// New opens the history at path. A max of zero or less keeps every entry.
func New(path string, max int) *Store {
	return &Store{
		cacher: gache.New[[]*Entry](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		max: max,
	}
}

// Open returns the store configured by history.max_entries at where.History().
func Open() *Store {
	return New(where.History(), viper.GetInt(key.HistoryMaxEntries))
}

func (s *Store) Get() ([]*Entry, error) {
	cached, expired, err := s.cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return []*Entry{}, nil
	}
	return cached, nil
}

// Append adds entry and drops the oldest entries beyond the capacity.
func (s *Store) Append(entry *Entry) error {
	entries, err := s.Get()
	if err != nil {
		return err
	}

	entries = append(entries, entry)
	if s.max > 0 && len(entries) > s.max {
		entries = entries[len(entries)-s.max:]
	}

	return s.cacher.Set(entries)
}

func (s *Store) Clear() error {
	return s.cacher.Set([]*Entry{})
}

// Search ranks entries whose name or URI fuzzily contains query, closest
// match first. Each entry appears at most once.
func (s *Store) Search(query string) ([]*Entry, error) {
	entries, err := s.Get()
	if err != nil {
		return nil, err
	}

	targets := lo.FlatMap(entries, func(e *Entry, _ int) []string {
		return []string{e.Name(), e.URI}
	})

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Sort(ranks)

	found := lo.UniqBy(ranks, func(r fuzzy.Rank) int {
		return r.OriginalIndex / 2
	})

	return lo.Map(found, func(r fuzzy.Rank, _ int) *Entry {
		return entries[r.OriginalIndex/2]
	}), nil
}
