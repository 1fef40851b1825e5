// Package reddit fetches new posts and comments from Reddit's public JSON
// listing endpoints.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"reddit_alert/internal/model"
)

const userAgent = "reddit-keyword-alert-bot/2.0"

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Page holds one decoded page of a listing: the items on it and the cursor
// for the next page. An empty After means the listing is exhausted.
type Page struct {
	Items []model.RawItem
	After string
}

// Client downloads and decodes Reddit listings.
type Client struct {
	client   HTTPClient
	baseURL  string
	pageSize int
	maxPages int
	timeout  time.Duration
	log      *slog.Logger
}

// New creates a Client for the given Reddit base URL.
func New(client HTTPClient, baseURL string, log *slog.Logger) *Client {
	return &Client{
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		pageSize: 100,
		maxPages: 10,
		timeout:  10 * time.Second,
		log:      log,
	}
}

// SetMaxPages overrides the default 10-page limit per collection.
func (c *Client) SetMaxPages(n int) {
	c.maxPages = n
}

// listing mirrors the wire shape of a Reddit listing response.
type listing struct {
	Data struct {
		Children []struct {
			Data itemData `json:"data"`
		} `json:"children"`
		After string `json:"after"`
	} `json:"data"`
}

type itemData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	LinkTitle  string  `json:"link_title"`
	Subreddit  string  `json:"subreddit"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

// FetchPage retrieves one page of the listing for a kind. An empty after
// fetches the first page.
func (c *Client) FetchPage(ctx context.Context, kind model.ItemKind, after string) (Page, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.listingURL(kind, after), nil)
	if err != nil {
		return Page{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var l listing
	if err := json.NewDecoder(io.LimitReader(resp.Body, 10*1024*1024)).Decode(&l); err != nil {
		return Page{}, fmt.Errorf("decode listing: %w", err)
	}

	page := Page{After: l.Data.After}
	for _, child := range l.Data.Children {
		d := child.Data
		body := d.Selftext
		if kind == model.KindComment {
			body = d.Body
		}
		page.Items = append(page.Items, model.RawItem{
			ID:         d.ID,
			Title:      d.Title,
			Body:       body,
			Subreddit:  d.Subreddit,
			Permalink:  d.Permalink,
			LinkTitle:  d.LinkTitle,
			CreatedUTC: int64(d.CreatedUTC),
			Kind:       kind,
		})
	}
	return page, nil
}

// Collect fetches up to the configured number of pages for a kind, threading
// the pagination cursor between calls, and returns the items in feed order.
// Collection stops early on an empty page, an absent cursor, or a page
// error; items gathered before a failed page are still returned.
func (c *Client) Collect(ctx context.Context, kind model.ItemKind) []model.RawItem {
	var items []model.RawItem
	after := ""

	for i := 0; i < c.maxPages; i++ {
		page, err := c.FetchPage(ctx, kind, after)
		if err != nil {
			c.log.Warn("fetch page", "kind", kind, "page", i+1, "error", err)
			break
		}
		items = append(items, page.Items...)
		c.log.Debug("fetched page", "kind", kind, "page", i+1, "items", len(page.Items), "after", page.After)

		if len(page.Items) == 0 || page.After == "" {
			break
		}
		after = page.After
	}
	return items
}

func (c *Client) listingURL(kind model.ItemKind, after string) string {
	path := "/r/all/new.json"
	if kind == model.KindComment {
		path = "/r/all/comments.json"
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.pageSize))
	if after != "" {
		q.Set("after", after)
	}
	return c.baseURL + path + "?" + q.Encode()
}
