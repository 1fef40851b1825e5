// Package model defines the domain types used across the application.
package model

// ItemKind identifies the category of a Reddit item.
type ItemKind string

// Supported item kinds. Each kind has its own listing endpoint and its own
// seen-item set.
const (
	KindPost    ItemKind = "post"
	KindComment ItemKind = "comment"
)

// RawItem is one entry from a Reddit listing, as fetched.
type RawItem struct {
	ID         string
	Title      string
	Body       string
	Subreddit  string
	Permalink  string
	LinkTitle  string
	CreatedUTC int64
	Kind       ItemKind
}

// Match is one item that matched at least one keyword, normalized for
// reporting.
type Match struct {
	Keywords  []string
	Title     string
	URL       string
	Subreddit string
	Created   string
	Kind      ItemKind
}
