// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
}

// GenerateCampaign runs the campaign pipeline for a submitted form and
// returns the normalized plan.
func (c *CampaignController) GenerateCampaign(w http.ResponseWriter, r *http.Request) {
	var form model.CampaignForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	plan, err := c.CampaignService.Generate(r.Context(), form)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// PreviewCampaign echoes the in-progress form back as the strategy preview
// text. No network call is made.
func (c *CampaignController) PreviewCampaign(w http.ResponseWriter, r *http.Request) {
	var form model.CampaignForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	form.Normalize()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"preview": service.Describe(form),
	})
}

// writeGenerationError maps pipeline failures onto the API's error statuses:
// 400 for validation, 503 for missing configuration, 502 for everything the
// external endpoints did wrong.
func writeGenerationError(w http.ResponseWriter, err error) {
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	var notConfigured *apperrors.NotConfiguredError
	if errors.As(err, &notConfigured) {
		writeErrorJSON(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeErrorJSON(w, http.StatusBadGateway, "generation failed, please try again")
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
