// Package resolver turns a fuzzy indexer result set into exactly one
// torrent per requested episode.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/vmunix/nyaagrab/pkg/nyaa"
)

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

// Searcher queries the indexer for candidate torrents. An empty result
// set is an empty slice, not an error.
type Searcher interface {
	Search(ctx context.Context, keyword string, category nyaa.Category, filter nyaa.Filter) ([]nyaa.Torrent, error)
}

// Chooser picks among candidates none of which matched exactly. The
// returned index refers to the candidate list as presented.
type Chooser interface {
	Choose(query string, candidates []nyaa.Torrent) (int, error)
}

// Request describes one episode to resolve.
type Request struct {
	Title        string
	Episode      int
	Quality      int  // vertical resolution, e.g. 1080
	Untrusted    bool // include results from untrusted uploaders
	AllowClosest bool // enable the closest-match fallback policy
}

// Selection pairs an episode number with the torrent chosen for it.
type Selection struct {
	Episode int
	Torrent nyaa.Torrent
}

// Resolver accumulates one Selection per resolved episode, kept sorted
// ascending by episode number.
type Resolver struct {
	searcher   Searcher
	chooser    Chooser
	log        *slog.Logger
	selections []Selection
}

// New creates a Resolver.
func New(searcher Searcher, chooser Chooser, log *slog.Logger) *Resolver {
	return &Resolver{
		searcher: searcher,
		chooser:  chooser,
		log:      log,
	}
}

// Find resolves one episode to a single torrent. Candidates from both
// query variants are merged, ranked by seeder count, and selected via
// exact match, closest match (when enabled), or the Chooser. A run with
// zero candidates returns *NotFoundError and leaves state untouched.
func (r *Resolver) Find(ctx context.Context, req Request) (Selection, error) {
	query, keywords := Queries(req.Title, req.Episode, req.Quality)

	filter := nyaa.FilterTrustedOnly
	if req.Untrusted {
		filter = nyaa.FilterNone
	}

	var found []nyaa.Torrent
	for _, keyword := range keywords {
		hits, err := r.searcher.Search(ctx, keyword, nyaa.CategoryAnimeEnglish, filter)
		if err != nil {
			return Selection{}, fmt.Errorf("search %q: %w", keyword, err)
		}
		found = append(found, hits...)
	}

	if len(found) == 0 {
		return Selection{}, &NotFoundError{Query: query}
	}

	// Stable, so equal-seeder entries keep their search order.
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Seeders > found[j].Seeders
	})

	match, ok := exactMatch(found, query)
	if !ok && req.AllowClosest {
		match, ok = closestMatch(found, req.Title, EpisodeString(req.Episode))
	}
	if !ok {
		choice, err := r.chooser.Choose(query, found)
		if err != nil {
			return Selection{}, fmt.Errorf("choose for %q: %w", query, err)
		}
		if choice < 0 || choice >= len(found) {
			return Selection{}, fmt.Errorf("%w: %d not in [0,%d)", ErrBadChoice, choice, len(found))
		}
		match = found[choice]
	}

	sel := Selection{Episode: req.Episode, Torrent: match}
	r.selections = append(r.selections, sel)
	sort.Slice(r.selections, func(i, j int) bool {
		return r.selections[i].Episode < r.selections[j].Episode
	})

	r.log.Info("episode resolved", "query", query, "torrent", match.Name, "seeders", match.Seeders)
	return sel, nil
}

// exactMatch returns the first candidate whose name contains the full
// query, case-insensitively.
func exactMatch(candidates []nyaa.Torrent, query string) (nyaa.Torrent, bool) {
	q := strings.ToLower(query)
	for _, t := range candidates {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return t, true
		}
	}
	return nyaa.Torrent{}, false
}

// closestMatch returns the first candidate whose name contains both the
// title and the padded episode number. Names containing a tilde are
// skipped: the tilde conventionally marks a batch/range release, never a
// single episode.
func closestMatch(candidates []nyaa.Torrent, title, episodeStr string) (nyaa.Torrent, bool) {
	lowTitle := strings.ToLower(title)
	lowEpisode := strings.ToLower(episodeStr)
	for _, t := range candidates {
		name := strings.ToLower(t.Name)
		if strings.Contains(name, "~") {
			continue
		}
		if strings.Contains(name, lowTitle) && strings.Contains(name, lowEpisode) {
			return t, true
		}
	}
	return nyaa.Torrent{}, false
}

// Selections returns the accumulated selections in ascending episode
// order.
func (r *Resolver) Selections() []Selection {
	return r.selections
}

// Last returns the most recently numbered selection, if any.
func (r *Resolver) Last() (Selection, bool) {
	if len(r.selections) == 0 {
		return Selection{}, false
	}
	return r.selections[len(r.selections)-1], true
}
