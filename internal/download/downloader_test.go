package download

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/nyaagrab/internal/resolver"
	"github.com/vmunix/nyaagrab/pkg/nyaa"
)

// fetcherFunc adapts a function to the Fetcher interface.
type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// timeoutError satisfies net.Error with Timeout() == true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func selection(episode int, name, url string) resolver.Selection {
	return resolver.Selection{
		Episode: episode,
		Torrent: nyaa.Torrent{Name: name, DownloadURL: url},
	}
}

func TestBatch_NoWork(t *testing.T) {
	dir := t.TempDir()
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		t.Fatal("fetcher must not be called with zero selections")
		return nil, nil
	})

	b := NewBatch(fetcher, dir, io.Discard, testLogger())
	err := b.Run(context.Background(), nil)

	require.ErrorIs(t, err, ErrNoWork)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "NoWork must leave zero filesystem side effects")
}

func TestBatch_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return []byte("payload for " + url), nil
	})

	var out bytes.Buffer
	b := NewBatch(fetcher, dir, &out, testLogger())
	err := b.Run(context.Background(), []resolver.Selection{
		selection(1, "Show - 01 [1080p]", "http://example.com/1"),
		selection(2, "Show - 02 [1080p]", "http://example.com/2"),
	})

	require.NoError(t, err)
	assert.Empty(t, b.Missing())

	data, err := os.ReadFile(filepath.Join(dir, "Show - 01 [1080p].torrent"))
	require.NoError(t, err)
	assert.Equal(t, "payload for http://example.com/1", string(data))

	assert.Contains(t, out.String(), "SUCCESS")
	assert.NotContains(t, out.String(), "FAILED")
}

func TestBatch_SanitizesFilenames(t *testing.T) {
	dir := t.TempDir()
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return []byte("x"), nil
	})

	b := NewBatch(fetcher, dir, io.Discard, testLogger())
	err := b.Run(context.Background(), []resolver.Selection{
		selection(1, "Show: 01/02 [1080p]", "http://example.com/1"),
	})

	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "Show 01 02 [1080p].torrent"))
	assert.NoError(t, err, "illegal filename characters must be replaced")
}

func TestBatch_TimeoutContinues(t *testing.T) {
	dir := t.TempDir()
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		if url == "http://example.com/2" {
			return nil, timeoutError{}
		}
		return []byte("ok"), nil
	})

	var out bytes.Buffer
	b := NewBatch(fetcher, dir, &out, testLogger())
	err := b.Run(context.Background(), []resolver.Selection{
		selection(1, "Show - 01", "http://example.com/1"),
		selection(2, "Show - 02", "http://example.com/2"),
		selection(3, "Show - 03", "http://example.com/3"),
	})

	require.NoError(t, err, "a single timeout must never abort the batch")
	assert.Equal(t, []int{2}, b.Missing())

	for _, name := range []string{"Show - 01.torrent", "Show - 03.torrent"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "later selections must still be attempted")
	}
	assert.Contains(t, out.String(), "FAILED")
}

func TestBatch_NonTimeoutFailureRecorded(t *testing.T) {
	dir := t.TempDir()
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return nil, errors.New("connection refused")
	})

	b := NewBatch(fetcher, dir, io.Discard, testLogger())
	err := b.Run(context.Background(), []resolver.Selection{
		selection(4, "Show - 04", "http://example.com/4"),
	})

	require.NoError(t, err)
	assert.Equal(t, []int{4}, b.Missing())
}

func TestBatch_MissingSorted(t *testing.T) {
	dir := t.TempDir()
	fetcher := fetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		return nil, timeoutError{}
	})

	b := NewBatch(fetcher, dir, io.Discard, testLogger())

	// Two runs feed the same ledger out of order.
	require.NoError(t, b.Run(context.Background(), []resolver.Selection{
		selection(3, "Show - 03", "http://example.com/3"),
	}))
	require.NoError(t, b.Run(context.Background(), []resolver.Selection{
		selection(1, "Show - 01", "http://example.com/1"),
	}))

	assert.Equal(t, []int{1, 3}, b.Missing())
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Show - 01 [1080p]", "Show - 01 [1080p]"},
		{"separators", "a/b\\c", "a b c"},
		{"illegal", `a<b>c:d"e|f?g*h`, "a b c d e f g h"},
		{"trailing dots", "name... ", "name"},
		{"collapsed spaces", "a    b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
