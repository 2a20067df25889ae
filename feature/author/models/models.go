package models

// Author is a cached federated profile, keyed by handle ("name@host").
// Rows are populated lazily, once per distinct handle, and never refreshed.
type Author struct {
	Handle    string `gorm:"primaryKey;size:255" json:"handle"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}
