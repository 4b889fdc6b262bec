package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
)

// PostRepositoryInterface defines the persistence contract for social posts.
type PostRepositoryInterface interface {
	List(userID string) ([]model.SocialPost, error)
	Insert(userID, content string, source model.GenerationSource) (*model.SocialPost, error)
	UpdateStatus(postID string, status model.PostStatus) error
	Delete(postID string) error
}

type PostRepository struct {
	DB *sql.DB
}

// List returns all posts owned by userID, newest-created-first.
func (r *PostRepository) List(userID string) ([]model.SocialPost, error) {
	query := `
        SELECT id, user_id, content, status, generation_source, created_at
        FROM social_posts
        WHERE user_id=$1
        ORDER BY created_at DESC
    `
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []model.SocialPost{}
	for rows.Next() {
		var p model.SocialPost
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.Status, &p.GenerationSource, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Insert creates a new post record. Status is always draft at creation,
// regardless of how the content came to be.
func (r *PostRepository) Insert(userID, content string, source model.GenerationSource) (*model.SocialPost, error) {
	p := &model.SocialPost{
		ID:               uuid.NewString(),
		UserID:           userID,
		Content:          content,
		Status:           model.PostStatusDraft,
		GenerationSource: source,
		CreatedAt:        time.Now(),
	}
	query := `
        INSERT INTO social_posts (id, user_id, content, status, generation_source, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	if _, err := r.DB.Exec(query, p.ID, p.UserID, p.Content, p.Status, p.GenerationSource, p.CreatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStatus sets the post's status unconditionally. The caller is trusted
// to request a sensible transition.
func (r *PostRepository) UpdateStatus(postID string, status model.PostStatus) error {
	query := `UPDATE social_posts SET status=$1 WHERE id=$2`
	res, err := r.DB.Exec(query, status, postID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewPostNotFound(postID)
	}
	return nil
}

// Delete removes the post record.
func (r *PostRepository) Delete(postID string) error {
	res, err := r.DB.Exec(`DELETE FROM social_posts WHERE id=$1`, postID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewPostNotFound(postID)
	}
	return nil
}

var _ PostRepositoryInterface = (*PostRepository)(nil)
