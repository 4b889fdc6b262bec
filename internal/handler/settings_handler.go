// internal/handler/settings_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/repository"
)

type SettingsHandler struct {
	Repo repository.SettingsRepositoryInterface
}

// GetSettingsHandler returns the caller's Content Agent settings, falling
// back to the defaults when nothing has been saved yet.
func (h *SettingsHandler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	settings, _, err := h.Repo.Load(UserID(r), model.AgentNameContent)
	if err != nil {
		http.Error(w, "failed to load settings: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}

// SaveSettingsHandler upserts the caller's Content Agent settings.
func (h *SettingsHandler) SaveSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var settings model.AgentSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if settings.Frequency == "" {
		settings.Frequency = model.FrequencyWeekly
	}
	if settings.PostingMode == "" {
		settings.PostingMode = model.PostingModeDrafts
	}

	if err := h.Repo.Save(UserID(r), model.AgentNameContent, settings); err != nil {
		http.Error(w, "failed to save settings: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settings)
}
