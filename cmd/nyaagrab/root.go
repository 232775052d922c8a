package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagRange     string
	flagEpisode   int
	flagQuality   int
	flagDirectory string
	flagUntrusted bool
	flagClosest   bool
	flagConfig    string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "nyaagrab [flags] <title>...",
	Short: "Batch-download anime torrent metafiles from a nyaa-style indexer",
	Long: `nyaagrab - batch anime torrent grabber

Resolves a title and episode range against a nyaa-style indexer,
picks one torrent per episode (exact match, closest match, or an
interactive choice), and downloads the .torrent metafiles.

Examples:
  nyaagrab "Frieren"                 # probe episodes from 1 until none found
  nyaagrab -r 1-12 "Frieren"         # episodes 1 through 12
  nyaagrab -e 5 -q 720 "Frieren"     # just episode 5 in 720p`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGrab,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagRange, "range", "r", "", "Episode range n-N, or n- for an open end")
	rootCmd.Flags().IntVarP(&flagEpisode, "episode", "e", 0, "Download a specific episode")
	rootCmd.Flags().IntVarP(&flagQuality, "quality", "q", 0, "Vertical resolution to look for (default 1080)")
	rootCmd.Flags().StringVarP(&flagDirectory, "directory", "d", "", "Download directory (default: current directory + title)")
	rootCmd.Flags().BoolVar(&flagUntrusted, "untrusted", false, "Include results from untrusted uploaders")
	rootCmd.Flags().BoolVar(&flagClosest, "closest", false, "Accept the closest match when nothing matches exactly")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("nyaagrab {{.Version}}\n")
}
