// Package nyaa implements the RSS search API exposed by nyaa-style
// torrent indexers.
package nyaa

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Category identifies an indexer category/subcategory pair, encoded the
// way the indexer does it in its "c" query parameter.
type Category string

const (
	CategoryAll          Category = "0_0"
	CategoryAnime        Category = "1_0"
	CategoryAnimeAMV     Category = "1_1"
	CategoryAnimeEnglish Category = "1_2"
	CategoryAnimeNonEng  Category = "1_3"
	CategoryAnimeRaw     Category = "1_4"
)

// Filter restricts which uploaders are considered.
type Filter int

const (
	FilterNone        Filter = 0
	FilterNoRemakes   Filter = 1
	FilterTrustedOnly Filter = 2
)

// Torrent is a single search hit.
type Torrent struct {
	Name        string
	GUID        string
	DownloadURL string
	InfoHash    string
	Seeders     int
	Leechers    int
	Downloads   int
	Size        string
	CategoryID  string
	Trusted     bool
	PublishDate time.Time
}

// Client is an RSS search client for a single indexer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a client for the indexer at baseURL. A zero timeout
// means no bound beyond the request context.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	var clientLog *slog.Logger
	if log != nil {
		clientLog = log.With("component", "nyaa")
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: clientLog,
	}
}

// URL returns the indexer base URL.
func (c *Client) URL() string {
	return c.baseURL
}

// RSS response structures. Item attributes live in the indexer's own
// XML namespace.
type rssResponse struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title      string `xml:"title"`
	Link       string `xml:"link"`
	GUID       string `xml:"guid"`
	PubDate    string `xml:"pubDate"`
	Seeders    string `xml:"https://nyaa.si/xmlns/nyaa seeders"`
	Leechers   string `xml:"https://nyaa.si/xmlns/nyaa leechers"`
	Downloads  string `xml:"https://nyaa.si/xmlns/nyaa downloads"`
	InfoHash   string `xml:"https://nyaa.si/xmlns/nyaa infoHash"`
	CategoryID string `xml:"https://nyaa.si/xmlns/nyaa categoryId"`
	Size       string `xml:"https://nyaa.si/xmlns/nyaa size"`
	Trusted    string `xml:"https://nyaa.si/xmlns/nyaa trusted"`
}

// Search queries the indexer RSS feed. An empty result set is returned
// as an empty slice, not an error.
func (c *Client) Search(ctx context.Context, keyword string, category Category, filter Filter) ([]Torrent, error) {
	start := time.Now()

	reqURL, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	params := url.Values{}
	params.Set("page", "rss")
	params.Set("q", keyword)
	params.Set("c", string(category))
	params.Set("f", strconv.Itoa(int(filter)))
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var rss rssResponse
	if err := xml.NewDecoder(resp.Body).Decode(&rss); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	torrents := make([]Torrent, 0, len(rss.Channel.Items))
	for _, item := range rss.Channel.Items {
		t := Torrent{
			Name:        item.Title,
			GUID:        item.GUID,
			DownloadURL: item.Link,
			InfoHash:    item.InfoHash,
			Size:        item.Size,
			CategoryID:  item.CategoryID,
			Trusted:     strings.EqualFold(item.Trusted, "yes"),
		}
		t.Seeders, _ = strconv.Atoi(item.Seeders)
		t.Leechers, _ = strconv.Atoi(item.Leechers)
		t.Downloads, _ = strconv.Atoi(item.Downloads)

		// The feed uses RFC1123-ish dates with a few offset spellings.
		if item.PubDate != "" {
			for _, format := range []string{
				time.RFC1123Z,
				"Mon, 02 Jan 2006 15:04:05 -0000",
				time.RFC1123,
			} {
				if ts, err := time.Parse(format, item.PubDate); err == nil {
					t.PublishDate = ts
					break
				}
			}
		}

		torrents = append(torrents, t)
	}

	if c.log != nil {
		c.log.Debug("search complete", "keyword", keyword, "category", category,
			"filter", int(filter), "results", len(torrents), "duration_ms", time.Since(start).Milliseconds())
	}

	return torrents, nil
}
