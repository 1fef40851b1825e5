// Package monitor runs the poll-dedupe-match-notify cycle.
package monitor

import (
	"context"
	"log/slog"

	"reddit_alert/internal/matcher"
	"reddit_alert/internal/model"
	"reddit_alert/internal/notify"
	"reddit_alert/internal/reddit"
	"reddit_alert/internal/seen"
	"reddit_alert/internal/storage"
)

// Sender is the interface for delivering a notification.
type Sender interface {
	Send(ctx context.Context, msg notify.Message) error
}

// Monitor ties collection, matching, deduplication, and notification
// together into one polling cycle.
type Monitor struct {
	store    storage.Storage
	reddit   *reddit.Client
	keywords matcher.Keywords
	sender   Sender
	log      *slog.Logger
}

// New creates a Monitor.
func New(store storage.Storage, client *reddit.Client, keywords matcher.Keywords, sender Sender, log *slog.Logger) *Monitor {
	return &Monitor{
		store:    store,
		reddit:   client,
		keywords: keywords,
		sender:   sender,
		log:      log,
	}
}

// RunCycle executes one complete check: collect posts and comments, match
// unseen items against the keywords, send a single notification if anything
// matched, and persist the updated seen sets. Failures inside a cycle
// degrade that cycle instead of aborting it; the seen sets are saved even
// when notification delivery fails, so a failed send is never re-alerted.
func (m *Monitor) RunCycle(ctx context.Context) {
	m.log.Info("checking reddit", "keywords", len(m.keywords))

	seenPosts := m.loadSeen(ctx, model.KindPost)
	seenComments := m.loadSeen(ctx, model.KindComment)

	var matches []model.Match

	posts := m.reddit.Collect(ctx, model.KindPost)
	postMatches, newPosts := m.processItems(posts, seenPosts)
	matches = append(matches, postMatches...)
	m.log.Info("checked posts", "fetched", len(posts), "new", newPosts, "matches", len(postMatches))

	comments := m.reddit.Collect(ctx, model.KindComment)
	commentMatches, newComments := m.processItems(comments, seenComments)
	matches = append(matches, commentMatches...)
	m.log.Info("checked comments", "fetched", len(comments), "new", newComments, "matches", len(commentMatches))

	if len(matches) > 0 {
		if err := m.sender.Send(ctx, notify.Build(matches)); err != nil {
			m.log.Error("send notification", "matches", len(matches), "error", err)
		} else {
			m.log.Info("notification sent", "matches", len(matches))
		}
	}

	m.saveSeen(ctx, model.KindPost, seenPosts)
	m.saveSeen(ctx, model.KindComment, seenComments)
}

// processItems matches every item not yet in the seen set and marks all
// processed items as seen, matched or not. It returns the matches and the
// number of items that were new this cycle.
func (m *Monitor) processItems(items []model.RawItem, seenSet *seen.Set) ([]model.Match, int) {
	var matches []model.Match
	checked := 0

	for _, item := range items {
		if seenSet.Contains(item.ID) {
			continue
		}
		checked++

		title := itemTitle(item)
		if matched := m.keywords.Match(title, item.Body); len(matched) > 0 {
			matches = append(matches, buildMatch(item, title, matched))
		}

		seenSet.Add(item.ID)
	}
	return matches, checked
}

func (m *Monitor) loadSeen(ctx context.Context, kind model.ItemKind) *seen.Set {
	set, err := m.store.LoadSeen(ctx, kind)
	if err != nil {
		m.log.Warn("load seen items, starting empty", "kind", kind, "error", err)
		return seen.New()
	}
	return set
}

func (m *Monitor) saveSeen(ctx context.Context, kind model.ItemKind, set *seen.Set) {
	if err := m.store.SaveSeen(ctx, kind, set); err != nil {
		m.log.Error("save seen items", "kind", kind, "error", err)
	}
}
