package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/nyaagrab/internal/config"
	"github.com/vmunix/nyaagrab/internal/download"
	"github.com/vmunix/nyaagrab/internal/resolver"
	"github.com/vmunix/nyaagrab/pkg/nyaa"
)

func runGrab(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	start, end, err := episodeRange()
	if err != nil {
		return err
	}

	log := newLogger()
	client := nyaa.NewClient(cfg.Indexer.URL, cfg.Indexer.Timeout.Std(), log)
	res := resolver.New(client, &terminalChooser{}, log)

	ctx := cmd.Context()
	req := resolver.Request{
		Title:        title,
		Quality:      cfg.Search.Quality,
		Untrusted:    cfg.Search.Untrusted,
		AllowClosest: cfg.Search.Closest,
	}
	if err := resolveRange(ctx, res, req, start, end, os.Stdout, confirmContinue); err != nil {
		return err
	}

	outDir := cfg.Download.Directory
	if outDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		outDir = filepath.Join(cwd, title)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", outDir, err)
	}

	fetcher := download.NewHTTPFetcher(cfg.Download.Timeout.Std())
	batch := download.NewBatch(fetcher, outDir, os.Stdout, log)
	if err := batch.Run(ctx, res.Selections()); err != nil {
		return err
	}

	if missing := batch.Missing(); len(missing) > 0 {
		fmt.Printf("Missing episodes: %s\n", joinEpisodes(missing))
	}
	return nil
}

// resolveRange drives Find over [start, end] (end zero = open-ended).
// A not-found episode surfaces to the user, who may confirm to keep
// probing later episodes; declining stops the batch.
func resolveRange(ctx context.Context, res *resolver.Resolver, req resolver.Request,
	start, end int, out io.Writer, confirm func() bool) error {

	for ep := start; end == 0 || ep <= end; ep++ {
		req.Episode = ep
		sel, err := res.Find(ctx, req)
		if err != nil {
			var nf *resolver.NotFoundError
			if !errors.As(err, &nf) {
				return err
			}
			fmt.Fprintln(out, err)
			if last, ok := res.Last(); ok {
				fmt.Fprintf(out, "Last episode found: EP%d - %s\n", last.Episode, last.Torrent.Name)
			}
			if !confirm() {
				break
			}
			continue
		}
		fmt.Fprintf(out, "Found %s, seeders: %d\n", sel.Torrent.Name, sel.Torrent.Seeders)
	}
	return nil
}

// loadConfig reads the config file and layers command-line flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flagQuality > 0 {
		cfg.Search.Quality = flagQuality
	}
	if cmd.Flags().Changed("untrusted") {
		cfg.Search.Untrusted = flagUntrusted
	}
	if cmd.Flags().Changed("closest") {
		cfg.Search.Closest = flagClosest
	}
	if flagDirectory != "" {
		cfg.Download.Directory = flagDirectory
	}
	return cfg, nil
}

// episodeRange resolves the -e/-r flags into a [start, end] range. An end
// of zero means open-ended. A specific episode takes precedence.
func episodeRange() (start, end int, err error) {
	if flagEpisode > 0 {
		return flagEpisode, flagEpisode, nil
	}
	return parseEpisodeRange(flagRange)
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func joinEpisodes(episodes []int) string {
	parts := make([]string, len(episodes))
	for i, ep := range episodes {
		parts[i] = strconv.Itoa(ep)
	}
	return strings.Join(parts, ", ")
}
