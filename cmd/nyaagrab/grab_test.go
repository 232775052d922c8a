package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/nyaagrab/internal/resolver"
	"github.com/vmunix/nyaagrab/internal/resolver/mocks"
	"github.com/vmunix/nyaagrab/pkg/nyaa"
	"go.uber.org/mock/gomock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectEpisode wires both query variants for one episode.
func expectEpisode(searcher *mocks.MockSearcher, ep string, hits []nyaa.Torrent) {
	searcher.EXPECT().
		Search(gomock.Any(), "Show - "+ep+" [1080p]", gomock.Any(), gomock.Any()).
		Return(hits, nil)
	searcher.EXPECT().
		Search(gomock.Any(), "Show - "+ep+" (1080p)", gomock.Any(), gomock.Any()).
		Return(nil, nil)
}

func TestResolveRange_StopsWhenDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Episode 2 yields nothing. With the continue prompt declined, episode
	// 3 must never be attempted.
	searcher := mocks.NewMockSearcher(ctrl)
	expectEpisode(searcher, "01", []nyaa.Torrent{{Name: "Show - 01 [1080p]", Seeders: 5}})
	expectEpisode(searcher, "02", nil)

	res := resolver.New(searcher, mocks.NewMockChooser(ctrl), testLogger())

	var out bytes.Buffer
	err := resolveRange(context.Background(), res,
		resolver.Request{Title: "Show", Quality: 1080}, 1, 3, &out,
		func() bool { return false })

	require.NoError(t, err)
	require.Len(t, res.Selections(), 1)
	assert.Equal(t, 1, res.Selections()[0].Episode)
	assert.Contains(t, out.String(), "unable to find Show - 02")
	assert.Contains(t, out.String(), "Last episode found: EP1")
}

func TestResolveRange_ContinuesWhenConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)

	searcher := mocks.NewMockSearcher(ctrl)
	expectEpisode(searcher, "01", []nyaa.Torrent{{Name: "Show - 01 [1080p]", Seeders: 5}})
	expectEpisode(searcher, "02", nil)
	expectEpisode(searcher, "03", []nyaa.Torrent{{Name: "Show - 03 [1080p]", Seeders: 2}})

	res := resolver.New(searcher, mocks.NewMockChooser(ctrl), testLogger())

	err := resolveRange(context.Background(), res,
		resolver.Request{Title: "Show", Quality: 1080}, 1, 3, io.Discard,
		func() bool { return true })

	require.NoError(t, err)
	require.Len(t, res.Selections(), 2)
	assert.Equal(t, 1, res.Selections()[0].Episode)
	assert.Equal(t, 3, res.Selections()[1].Episode)
}
