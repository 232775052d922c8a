package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/vmunix/nyaagrab/pkg/nyaa"
)

// renderCandidates renders the interactive disambiguation list.
func renderCandidates(candidates []nyaa.Torrent) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "NAME", "SIZE", "SEEDERS"})

	for i, t := range candidates {
		tw.AppendRow(table.Row{i, t.Name, t.Size, t.Seeders})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return tw.Render()
}
