// Package updates fetches the server's latest announcements from a Discord
// channel, falling back to a JSON document, and formats them for display.
package updates

// Type classifies an update for its icon.
type Type string

const (
	TypeAnnouncement Type = "announcement"
	TypeUpdate       Type = "update"
	TypeEvent        Type = "event"
	TypeFeature      Type = "feature"
	TypeFix          Type = "fix"
	TypeNews         Type = "news"
	TypeDefault      Type = "default"
)

// DefaultAuthor is shown when a message has no author.
const DefaultAuthor = "Server Admin"

// DefaultTitle is used when no title can be extracted.
const DefaultTitle = "Server Update"

// Update is one entry of the feed.
type Update struct {
	Type    Type     `json:"type"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Date    string   `json:"date"` // As received; see FormatDate
	Author  string   `json:"author"`
	Images  []string `json:"images,omitempty"`
}

// Icon returns the display glyph for the update's type.
func (u Update) Icon() string {
	return Icon(u.Type)
}

// document is the fallback file shape.
type document struct {
	Updates []Update `json:"updates"`
}

type discordMessage struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	Author    *struct {
		Username string `json:"username"`
	} `json:"author"`
	Attachments []struct {
		URL string `json:"url"`
	} `json:"attachments"`
}

// discordEnvelope is the webhook proxy shape; the plain channel API returns
// a bare array of messages instead.
type discordEnvelope struct {
	Messages []discordMessage `json:"messages"`
}

// fromDiscord maps a channel message to an Update.
func fromDiscord(m discordMessage) Update {
	u := Update{
		Type:    DetectType(m.Content),
		Title:   ExtractTitle(m.Content),
		Content: m.Content,
		Date:    m.Timestamp,
		Author:  DefaultAuthor,
	}
	if m.Author != nil && m.Author.Username != "" {
		u.Author = m.Author.Username
	}
	for _, a := range m.Attachments {
		u.Images = append(u.Images, a.URL)
	}
	return u
}

// normalize fills fields a hand-written document may leave out.
func normalize(u Update) Update {
	if u.Type == "" {
		u.Type = DetectType(u.Content)
	}
	if u.Title == "" {
		u.Title = ExtractTitle(u.Content)
	}
	return u
}
