package monitor

import (
	"time"

	"reddit_alert/internal/model"
)

const (
	siteBase      = "https://reddit.com"
	createdLayout = "2006-01-02 15:04:05"
	snippetLen    = 50
)

// itemTitle returns the display title for an item. Comments have no title of
// their own: the parent post title is used when the listing provides it,
// otherwise a snippet of the comment body.
func itemTitle(item model.RawItem) string {
	if item.Kind != model.KindComment {
		return item.Title
	}
	if item.LinkTitle != "" {
		return item.LinkTitle
	}
	snippet := []rune(item.Body)
	if len(snippet) > snippetLen {
		snippet = snippet[:snippetLen]
	}
	return "Comment: " + string(snippet) + "..."
}

// buildMatch normalizes a matched item into a reportable record.
func buildMatch(item model.RawItem, title string, keywords []string) model.Match {
	return model.Match{
		Keywords:  keywords,
		Title:     title,
		URL:       siteBase + item.Permalink,
		Subreddit: item.Subreddit,
		Created:   time.Unix(item.CreatedUTC, 0).UTC().Format(createdLayout),
		Kind:      item.Kind,
	}
}
