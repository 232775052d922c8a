package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/vmunix/nyaagrab/pkg/nyaa"
	"github.com/vmunix/nyaagrab/pkg/title"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] <keyword>...",
	Short: "Free-text search against the indexer",
	Long: `Free-text search against the indexer's anime category.

Results are listed with seeder counts and how closely each name
matches the keyword.

Examples:
  nyaagrab search "Frieren 1080p"
  nyaagrab search --untrusted "Frieren - 05"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("untrusted", false, "Include results from untrusted uploaders")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	keyword := strings.Join(args, " ")
	untrusted, _ := cmd.Flags().GetBool("untrusted")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	filter := nyaa.FilterTrustedOnly
	if untrusted || cfg.Search.Untrusted {
		filter = nyaa.FilterNone
	}

	client := nyaa.NewClient(cfg.Indexer.URL, cfg.Indexer.Timeout.Std(), newLogger())
	torrents, err := client.Search(cmd.Context(), keyword, nyaa.CategoryAnimeEnglish, filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(torrents) == 0 {
		fmt.Println("No torrents found")
		return nil
	}

	fmt.Printf("Found %d torrents for %q:\n", len(torrents), keyword)
	fmt.Println(renderSearchResults(keyword, torrents))
	return nil
}

func renderSearchResults(keyword string, torrents []nyaa.Torrent) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "NAME", "SIZE", "SEEDERS", "MATCH"})

	for i, t := range torrents {
		match := fmt.Sprintf("%.0f%%", title.Similarity(keyword, t.Name)*100)
		tw.AppendRow(table.Row{i, t.Name, t.Size, t.Seeders, match})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}
