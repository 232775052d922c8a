// Package download fetches torrent metafiles for resolved selections and
// tracks the episodes that could not be fetched.
package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/vmunix/nyaagrab/internal/resolver"
)

// Batch downloads every selection in episode order. One failed item never
// aborts the rest: its episode number lands in the missing ledger instead.
type Batch struct {
	fetcher Fetcher
	dir     string
	out     io.Writer
	log     *slog.Logger
	missing []int
}

// NewBatch creates a Batch writing metafiles into dir and per-item
// progress lines to out.
func NewBatch(fetcher Fetcher, dir string, out io.Writer, log *slog.Logger) *Batch {
	return &Batch{
		fetcher: fetcher,
		dir:     dir,
		out:     out,
		log:     log,
	}
}

// Run downloads all selections. Called with zero selections it returns
// ErrNoWork before any network or filesystem side effect. Fetch failures
// for a single item are recorded in the missing ledger and the batch
// continues; a failed file write is fatal.
func (b *Batch) Run(ctx context.Context, selections []resolver.Selection) error {
	if len(selections) == 0 {
		return ErrNoWork
	}

	for _, sel := range selections {
		fmt.Fprintf(b.out, "Downloading %s... ", sel.Torrent.Name)

		body, err := b.fetcher.Fetch(ctx, sel.Torrent.DownloadURL)
		if err != nil {
			fmt.Fprintln(b.out, "FAILED")
			b.recordMissing(sel.Episode)
			if isTimeout(err) {
				b.log.Warn("download timed out", "episode", sel.Episode, "torrent", sel.Torrent.Name)
			} else {
				b.log.Error("download failed", "episode", sel.Episode, "torrent", sel.Torrent.Name, "error", err)
			}
			continue
		}

		path := filepath.Join(b.dir, SanitizeFilename(sel.Torrent.Name)+".torrent")
		if err := os.WriteFile(path, body, 0o644); err != nil {
			fmt.Fprintln(b.out, "FAILED")
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Fprintln(b.out, "SUCCESS")
		b.log.Debug("metafile written", "episode", sel.Episode, "path", path, "bytes", len(body))
	}

	return nil
}

// Missing returns the episodes whose download failed, ascending.
func (b *Batch) Missing() []int {
	return b.missing
}

func (b *Batch) recordMissing(episode int) {
	b.missing = append(b.missing, episode)
	sort.Ints(b.missing)
}
