package models

// Workplace change fields and item kinds the relay reacts to
const (
	FieldMention = "mention"
	ItemPost     = "post"
	ItemComment  = "comment"
)

// MentionEvent is the body of a Workplace page webhook delivery
type MentionEvent struct {
	Object  string         `json:"object"`
	Entries []MentionEntry `json:"entry"`
}

type MentionEntry struct {
	ID      string          `json:"id"`
	Time    int64           `json:"time"`
	Changes []MentionChange `json:"changes"`
}

type MentionChange struct {
	Field string       `json:"field"`
	Value MentionValue `json:"value"`
}

// MentionValue describes the post or comment the integration was tagged in
type MentionValue struct {
	Item      string `json:"item"`
	PostID    string `json:"post_id"`
	CommentID string `json:"comment_id,omitempty"`
	Message   string `json:"message"`
}

// IsActionable reports whether the change is a mention the relay should file an issue for
func (c MentionChange) IsActionable() bool {
	return c.Field == FieldMention
}

// FetchedContent is a post or comment read back from the Graph API
type FetchedContent struct {
	ID           string  `json:"id"`
	Message      string  `json:"message"`
	PermalinkURL string  `json:"permalink_url"`
	Formatting   string  `json:"formatting,omitempty"`
	From         *Author `json:"from,omitempty"`
}

type Author struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
