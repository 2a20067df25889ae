package models

import "time"

// Server is a registered remote federated instance.
type Server struct {
	// URL is the bare host (e.g. "example.social") and the unique key.
	URL string `gorm:"primaryKey;size:255" json:"url"`
	// Name is the instance's self-reported display name.
	Name string `json:"name"`
	// Software is the backend family tag ("mastodon" or "misskey").
	// Once set it determines which adapter every sync for this host uses.
	Software string `gorm:"size:32" json:"software"`
	// SyncedAt is the time of the last successful reconciliation pass.
	SyncedAt time.Time `json:"syncedAt"`

	Emojis []Emoji `gorm:"foreignKey:ServerURL;references:URL;constraint:OnDelete:CASCADE" json:"-"`
}

// Emoji is one custom emoji of a server, keyed by (host, shortcode).
// URL and Category are remote-sourced and refreshed on sync; the remaining
// attributes are curated by the operator and survive syncs (Misskey-family
// servers additionally supply tags and sensitivity natively).
type Emoji struct {
	ServerURL string  `gorm:"primaryKey;size:255" json:"host"`
	Shortcode string  `gorm:"primaryKey;size:255" json:"shortcode"`
	URL       string  `json:"url"`
	Category  *string `json:"category,omitempty"`

	Tags         []string `gorm:"serializer:json" json:"tags"`
	Sensitive    bool     `json:"sensitive"`
	Copyable     bool     `json:"copyable"`
	Note         string   `json:"note,omitempty"`
	AuthorHandle *string  `gorm:"size:255" json:"authorHandle,omitempty"`
}

// ServerOverview is the listing row for registered servers.
type ServerOverview struct {
	URL        string    `json:"url"`
	Name       string    `json:"name"`
	Software   string    `json:"software"`
	SyncedAt   time.Time `json:"syncedAt"`
	EmojiCount int64     `json:"emojiCount"`
}

// CopyStatus is the public per-emoji copy-permission record served to other
// instances that want to check before copying an emoji.
type CopyStatus struct {
	Shortcode    string  `json:"shortcode"`
	Copyable     bool    `json:"copyable"`
	AuthorHandle *string `json:"authorHandle"`
}
