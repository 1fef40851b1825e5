// Package notify formats and delivers match notifications.
package notify

import (
	"fmt"
	"html"
	"strings"

	"reddit_alert/internal/model"
)

// Message is one rendered notification. HTML is used by the email channel,
// Text by channels without HTML support.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

// Build renders a batch of matches into a single notification message.
// The caller must pass at least one match.
func Build(matches []model.Match) Message {
	return Message{
		Subject: fmt.Sprintf("Reddit Alert: %d new match(es) for your keywords", len(matches)),
		HTML:    buildHTML(matches),
		Text:    buildText(matches),
	}
}

func buildHTML(matches []model.Match) string {
	var b strings.Builder
	b.WriteString("<h2>Reddit Keyword Matches Found</h2>")
	fmt.Fprintf(&b, "<p>Found <strong>%d</strong> new item(s) matching your keywords:</p>", len(matches))
	b.WriteString("<hr>")

	for _, m := range matches {
		b.WriteString(`<div style="margin: 20px 0; padding: 15px; border-left: 3px solid #FF4500; background-color: #f8f9fa;">`)
		fmt.Fprintf(&b, `<p style="margin: 0 0 10px 0;"><strong style="color: #FF4500;">Keywords:</strong> %s</p>`,
			html.EscapeString(strings.Join(m.Keywords, ", ")))
		fmt.Fprintf(&b, `<p style="margin: 0 0 10px 0;"><strong>Type:</strong> %s</p>`, kindLabel(m.Kind))
		fmt.Fprintf(&b, `<p style="margin: 0 0 10px 0;"><strong>Title:</strong> <a href="%s" style="color: #0079D3; text-decoration: none;">%s</a></p>`,
			html.EscapeString(m.URL), html.EscapeString(m.Title))
		fmt.Fprintf(&b, `<p style="margin: 0; font-size: 0.9em; color: #666;">Subreddit: r/%s | Posted: %s</p>`,
			html.EscapeString(m.Subreddit), html.EscapeString(m.Created))
		b.WriteString("</div>")
	}

	b.WriteString("<hr>")
	b.WriteString("<p style='color: #666; font-size: 0.85em; margin-top: 20px;'>This is an automated alert from your Reddit Keyword Monitor.</p>")
	return b.String()
}

func buildText(matches []model.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d new item(s) matching your keywords:\n", len(matches))
	for _, m := range matches {
		fmt.Fprintf(&b, "\n[%s] %s\n", kindLabel(m.Kind), m.Title)
		fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(m.Keywords, ", "))
		fmt.Fprintf(&b, "r/%s | %s\n", m.Subreddit, m.Created)
		b.WriteString(m.URL)
		b.WriteString("\n")
	}
	return b.String()
}

func kindLabel(k model.ItemKind) string {
	if k == model.KindComment {
		return "Comment"
	}
	return "Post"
}
