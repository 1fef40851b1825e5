package monitor

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"reddit_alert/internal/model"
)

func TestItemTitle(t *testing.T) {
	tests := []struct {
		name string
		item model.RawItem
		want string
	}{
		{
			name: "post uses its own title",
			item: model.RawItem{Kind: model.KindPost, Title: "We are hiring"},
			want: "We are hiring",
		},
		{
			name: "comment prefers parent post title",
			item: model.RawItem{Kind: model.KindComment, Body: "nice work", LinkTitle: "Show r/all: my project"},
			want: "Show r/all: my project",
		},
		{
			name: "comment without link title falls back to body snippet",
			item: model.RawItem{Kind: model.KindComment, Body: "short remark"},
			want: "Comment: short remark...",
		},
		{
			name: "long comment body is truncated to 50 characters",
			item: model.RawItem{Kind: model.KindComment, Body: strings.Repeat("x", 80)},
			want: "Comment: " + strings.Repeat("x", 50) + "...",
		},
		{
			name: "truncation does not split multi-byte runes",
			item: model.RawItem{Kind: model.KindComment, Body: strings.Repeat("ж", 80)},
			want: "Comment: " + strings.Repeat("ж", 50) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itemTitle(tt.item)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("itemTitle() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMatch(t *testing.T) {
	item := model.RawItem{
		ID:         "1abcd1",
		Title:      "We are hiring Go developers",
		Body:       "Remote friendly.",
		Subreddit:  "golang",
		Permalink:  "/r/golang/comments/1abcd1/we_are_hiring_go_developers/",
		CreatedUTC: 1735689600,
		Kind:       model.KindPost,
	}

	got := buildMatch(item, itemTitle(item), []string{"hiring"})

	want := model.Match{
		Keywords:  []string{"hiring"},
		Title:     "We are hiring Go developers",
		URL:       "https://reddit.com/r/golang/comments/1abcd1/we_are_hiring_go_developers/",
		Subreddit: "golang",
		Created:   "2025-01-01 00:00:00",
		Kind:      model.KindPost,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("buildMatch() mismatch (-want +got):\n%s", diff)
	}
}
