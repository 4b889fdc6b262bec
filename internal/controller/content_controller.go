// internal/controller/content_controller.go
package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/ubiqedu/marketing-agent-backend/internal/handler"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/repository"
	"github.com/ubiqedu/marketing-agent-backend/internal/service"
)

type ContentController struct {
	ContentService *service.ContentService
	Settings       repository.SettingsRepositoryInterface
}

// GenerateContent runs the full content pipeline for the caller: topics come
// from the request when present, otherwise from the saved agent settings.
// Every generated line is inserted as a draft post.
func (c *ContentController) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topics    string `json:"topics"`
		PostCount int    `json:"postCount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	userID := handler.UserID(r)
	topics := body.Topics
	if strings.TrimSpace(topics) == "" {
		settings, _, err := c.Settings.Load(userID, model.AgentNameContent)
		if err != nil {
			http.Error(w, "failed to load settings: "+err.Error(), http.StatusInternalServerError)
			return
		}
		topics = settings.Topics
	}

	posts, err := c.ContentService.Generate(r.Context(), userID, topics, body.PostCount)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}
