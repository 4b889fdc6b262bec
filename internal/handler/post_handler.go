// internal/handler/post_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/repository"
)

// PostHandler holds the dependencies for post-related HTTP handlers
type PostHandler struct {
	Repo repository.PostRepositoryInterface
}

// ListPostsHandler returns all of the caller's posts, newest first.
func (h *PostHandler) ListPostsHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repo.List(UserID(r))
	if err != nil {
		http.Error(w, "failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data": posts,
	})
}

// CreatePostHandler inserts a manually-entered post as a draft.
func (h *PostHandler) CreatePostHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(payload.Content) == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	post, err := h.Repo.Insert(UserID(r), payload.Content, model.SourceManual)
	if err != nil {
		http.Error(w, "failed to create post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(post)
}

// UpdatePostStatusHandler sets a post's status. The transition is not
// checked; the caller is trusted.
func (h *PostHandler) UpdatePostStatusHandler(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if !model.ValidPostStatus(payload.Status) {
		http.Error(w, "invalid status: "+payload.Status, http.StatusBadRequest)
		return
	}

	if err := h.Repo.UpdateStatus(postID, model.PostStatus(payload.Status)); err != nil {
		var notFound *apperrors.ErrPostNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":     postID,
		"status": payload.Status,
	})
}

// DeletePostHandler removes a post.
func (h *PostHandler) DeletePostHandler(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	if err := h.Repo.Delete(postID); err != nil {
		var notFound *apperrors.ErrPostNotFound
		if errors.As(err, &notFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, "failed to delete post: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"id":     postID,
		"status": "deleted",
	})
}
