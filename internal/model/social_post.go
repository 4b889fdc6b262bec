// internal/model/social_post.go
package model

import "time"

type PostStatus string

const (
	PostStatusDraft  PostStatus = "draft"
	PostStatusPosted PostStatus = "posted"
	PostStatusFailed PostStatus = "failed"
)

// ValidPostStatus reports whether s is one of the known post statuses.
func ValidPostStatus(s string) bool {
	switch PostStatus(s) {
	case PostStatusDraft, PostStatusPosted, PostStatusFailed:
		return true
	}
	return false
}

type GenerationSource string

const (
	SourceManual    GenerationSource = "manual"
	SourceAutomated GenerationSource = "automated"
)

type SocialPost struct {
	ID               string           `db:"id" json:"id"`
	UserID           string           `db:"user_id" json:"user_id"`
	Content          string           `db:"content" json:"content"`
	Status           PostStatus       `db:"status" json:"status"`
	GenerationSource GenerationSource `db:"generation_source" json:"generation_source"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
}
