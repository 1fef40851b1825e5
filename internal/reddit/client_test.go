package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reddit_alert/internal/model"
)

type fakeResponse struct {
	status int
	body   string
	err    error
}

type fakeTransport struct {
	responses []fakeResponse
	requests  []*http.Request
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req)
	if len(f.responses) == 0 {
		return nil, fmt.Errorf("unexpected request #%d", len(f.requests))
	}
	r := f.responses[0]
	f.responses = f.responses[1:]
	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(r.body)),
	}, nil
}

func loadFixture(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test-only fixture loading
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return string(data)
}

// listingBody builds a minimal listing response with one synthetic item per ID.
func listingBody(t *testing.T, after string, ids ...string) string {
	t.Helper()

	children := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		children = append(children, map[string]any{
			"data": map[string]any{
				"id":          id,
				"title":       "Title " + id,
				"selftext":    "",
				"subreddit":   "all",
				"permalink":   "/r/all/comments/" + id + "/",
				"created_utc": 1735689600.0,
			},
		})
	}
	body, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"children": children,
			"after":    after,
		},
	})
	if err != nil {
		t.Fatalf("marshal listing: %v", err)
	}
	return string(body)
}

func newTestClient(transport *fakeTransport) *Client {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(transport, "https://www.reddit.com", log)
}

func TestFetchPageDecodesPosts(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{body: loadFixture(t, "../../testdata/posts_page.json")},
	}}
	c := newTestClient(transport)

	page, err := c.FetchPage(context.Background(), model.KindPost, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Page{
		Items: []model.RawItem{
			{
				ID:         "1abcd1",
				Title:      "We are hiring Go developers",
				Body:       "Remote friendly, series A startup.",
				Subreddit:  "golang",
				Permalink:  "/r/golang/comments/1abcd1/we_are_hiring_go_developers/",
				CreatedUTC: 1735689600,
				Kind:       model.KindPost,
			},
			{
				ID:         "1abcd2",
				Title:      "Show r/all: my side project",
				Body:       "",
				Subreddit:  "SideProject",
				Permalink:  "/r/SideProject/comments/1abcd2/show_rall_my_side_project/",
				CreatedUTC: 1735693200,
				Kind:       model.KindPost,
			},
		},
		After: "t3_1abcd2",
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("page mismatch (-want +got):\n%s", diff)
	}

	req := transport.requests[0]
	if diff := cmp.Diff("/r/all/new.json", req.URL.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("100", req.URL.Query().Get("limit")); diff != "" {
		t.Errorf("limit param mismatch (-want +got):\n%s", diff)
	}
	if got := req.URL.Query().Get("after"); got != "" {
		t.Errorf("first page must not carry an after cursor, got %q", got)
	}
	if diff := cmp.Diff("reddit-keyword-alert-bot/2.0", req.Header.Get("User-Agent")); diff != "" {
		t.Errorf("user agent mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchPageDecodesComments(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{body: loadFixture(t, "../../testdata/comments_page.json")},
	}}
	c := newTestClient(transport)

	page, err := c.FetchPage(context.Background(), model.KindComment, "t1_prev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Page{
		Items: []model.RawItem{
			{
				ID:         "k9abc1",
				Body:       "Congrats on the launch!",
				LinkTitle:  "We launched our startup today",
				Subreddit:  "startups",
				Permalink:  "/r/startups/comments/1zzz/we_launched/k9abc1/",
				CreatedUTC: 1735689660,
				Kind:       model.KindComment,
			},
			{
				ID:         "k9abc2",
				Body:       "no match here, just a very ordinary remark",
				Subreddit:  "AskReddit",
				Permalink:  "/r/AskReddit/comments/1yyy/question/k9abc2/",
				CreatedUTC: 1735689720,
				Kind:       model.KindComment,
			},
		},
		After: "t1_k9abc2",
	}
	if diff := cmp.Diff(want, page); diff != "" {
		t.Errorf("page mismatch (-want +got):\n%s", diff)
	}

	req := transport.requests[0]
	if diff := cmp.Diff("/r/all/comments.json", req.URL.Path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("t1_prev", req.URL.Query().Get("after")); diff != "" {
		t.Errorf("after param mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchPageErrors(t *testing.T) {
	tests := []struct {
		name     string
		response fakeResponse
	}{
		{name: "network error", response: fakeResponse{err: io.ErrUnexpectedEOF}},
		{name: "http error status", response: fakeResponse{status: 429, body: "too many requests"}},
		{name: "malformed json", response: fakeResponse{body: "<html>definitely not json</html>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(&fakeTransport{responses: []fakeResponse{tt.response}})
			_, err := c.FetchPage(context.Background(), model.KindPost, "")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestCollectThreadsCursor(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{body: listingBody(t, "cur1", "a1", "a2")},
		{body: listingBody(t, "cur2", "b1")},
		{body: listingBody(t, "", "c1")},
	}}
	c := newTestClient(transport)

	items := c.Collect(context.Background(), model.KindPost)

	var gotIDs []string
	for _, it := range items {
		gotIDs = append(gotIDs, it.ID)
	}
	if diff := cmp.Diff([]string{"a1", "a2", "b1", "c1"}, gotIDs); diff != "" {
		t.Errorf("item order mismatch (-want +got):\n%s", diff)
	}

	// Third page has no cursor, so collection must stop there.
	if diff := cmp.Diff(3, len(transport.requests)); diff != "" {
		t.Fatalf("request count mismatch (-want +got):\n%s", diff)
	}

	wantAfters := []string{"", "cur1", "cur2"}
	for i, req := range transport.requests {
		if diff := cmp.Diff(wantAfters[i], req.URL.Query().Get("after")); diff != "" {
			t.Errorf("request %d after mismatch (-want +got):\n%s", i+1, diff)
		}
	}
}

func TestCollectStopsOnEmptyPage(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{body: listingBody(t, "cur1", "a1")},
		{body: listingBody(t, "cur2", "b1")},
		{body: listingBody(t, "cur3")}, // empty page, cursor still present
		{body: listingBody(t, "cur4", "d1")},
	}}
	c := newTestClient(transport)

	items := c.Collect(context.Background(), model.KindPost)

	if diff := cmp.Diff(2, len(items)); diff != "" {
		t.Errorf("item count mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(3, len(transport.requests)); diff != "" {
		t.Errorf("request count mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectReturnsPartialResultsOnFailure(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{body: listingBody(t, "cur1", "a1", "a2")},
		{status: 500, body: "boom"},
	}}
	c := newTestClient(transport)

	items := c.Collect(context.Background(), model.KindPost)

	var gotIDs []string
	for _, it := range items {
		gotIDs = append(gotIDs, it.ID)
	}
	if diff := cmp.Diff([]string{"a1", "a2"}, gotIDs); diff != "" {
		t.Errorf("partial result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, len(transport.requests)); diff != "" {
		t.Errorf("request count mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectHonorsMaxPages(t *testing.T) {
	var responses []fakeResponse
	for i := 0; i < 15; i++ {
		responses = append(responses, fakeResponse{body: listingBody(t, fmt.Sprintf("cur%d", i), fmt.Sprintf("id%d", i))})
	}
	transport := &fakeTransport{responses: responses}
	c := newTestClient(transport)
	items := c.Collect(context.Background(), model.KindPost)

	if diff := cmp.Diff(10, len(transport.requests)); diff != "" {
		t.Errorf("request count mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(10, len(items)); diff != "" {
		t.Errorf("item count mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectZeroPages(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{
		{body: listingBody(t, "cur1", "a1")},
	}}
	c := newTestClient(transport)
	c.SetMaxPages(0)

	items := c.Collect(context.Background(), model.KindPost)

	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if diff := cmp.Diff(0, len(transport.requests)); diff != "" {
		t.Errorf("request count mismatch (-want +got):\n%s", diff)
	}
}
