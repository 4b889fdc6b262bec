// internal/controller/relay_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ubiqedu/marketing-agent-backend/internal/llm"
	"github.com/ubiqedu/marketing-agent-backend/internal/metrics"
	"github.com/ubiqedu/marketing-agent-backend/internal/service"
	"github.com/ubiqedu/marketing-agent-backend/internal/webhook"
)

// RelayController hosts the two server-side function endpoints. The campaign
// relay exists purely so the browser never talks to the workflow webhook
// directly: it forwards the body under controlled headers, unwraps transport
// failures into uniform error JSON, and undoes the double-encoded weeks
// field. Upstream failures always come back as HTTP 500; callers branch on
// the body's error field, not the status code.
type RelayController struct {
	Webhook           *webhook.Client
	LLM               llm.Completer
	DefaultPlannerURL string
	Log               *logrus.Logger
}

// GenerateCampaignRelay handles POST /functions/generate-campaign.
func (c *RelayController) GenerateCampaignRelay(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.writeError(w, map[string]interface{}{
			"error":   "failed to generate campaign",
			"details": err.Error(),
		})
		return
	}

	// A caller-supplied webhookUrl overrides the configured default and is
	// stripped before forwarding.
	url := c.DefaultPlannerURL
	if override, ok := body["webhookUrl"].(string); ok {
		if strings.TrimSpace(override) != "" {
			url = override
		}
		delete(body, "webhookUrl")
	}
	if url == "" {
		c.writeError(w, map[string]interface{}{
			"error": "campaign planner webhook is not configured",
		})
		return
	}

	payload, err := json.Marshal(body)
	if err != nil {
		c.writeError(w, map[string]interface{}{
			"error":   "failed to generate campaign",
			"details": err.Error(),
		})
		return
	}

	c.Log.WithField("webhook_url", url).Info("relaying campaign request")

	raw, err := c.Webhook.Post(r.Context(), url, payload)
	if err != nil {
		metrics.RelayUpstreamErrors.Inc()
		var upstream *webhook.UpstreamError
		if errors.As(err, &upstream) {
			c.Log.WithFields(logrus.Fields{"status": upstream.Status}).Error("webhook returned non-success status")
			c.writeError(w, map[string]interface{}{
				"error":   "webhook request failed",
				"status":  upstream.Status,
				"details": upstream.Details,
			})
			return
		}
		c.Log.WithError(err).Error("webhook request failed")
		c.writeError(w, map[string]interface{}{
			"error":   "webhook request failed",
			"details": err.Error(),
		})
		return
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		c.Log.Error("webhook returned empty response")
		c.writeError(w, map[string]interface{}{
			"error":   "webhook returned empty response",
			"details": "the webhook responded successfully but returned no data",
		})
		return
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		c.Log.WithError(err).Error("webhook returned invalid JSON")
		c.writeError(w, map[string]interface{}{
			"error":       "invalid JSON response from webhook",
			"details":     err.Error(),
			"rawResponse": text,
		})
		return
	}

	// The weeks field usually arrives as a JSON-encoded string; replace it
	// in place with the parsed value.
	if weeksStr, ok := result["weeks"].(string); ok {
		var weeks interface{}
		if err := json.Unmarshal([]byte(weeksStr), &weeks); err != nil {
			c.Log.WithError(err).Error("failed to parse weeks data")
			c.writeError(w, map[string]interface{}{
				"error":    "failed to parse campaign data",
				"details":  err.Error(),
				"rawWeeks": weeksStr,
			})
			return
		}
		result["weeks"] = weeks
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GenerateContentRelay handles POST /functions/generate-content: it calls
// the completion endpoint and returns the split posts without persisting
// anything.
func (c *RelayController) GenerateContentRelay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Topics    string `json:"topics"`
		PostCount int    `json:"postCount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.writeError(w, map[string]interface{}{
			"error":   "failed to generate content",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(body.Topics) == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": "topics are required for content generation",
		})
		return
	}

	if c.LLM == nil {
		c.writeError(w, map[string]interface{}{
			"error": "content generation endpoint is not configured",
		})
		return
	}

	if body.PostCount < 1 {
		body.PostCount = service.DefaultPostCount
	}

	text, err := c.LLM.Complete(r.Context(), service.BuildPrompt(body.Topics, body.PostCount))
	if err != nil {
		c.Log.WithError(err).Error("completion request failed")
		c.writeError(w, map[string]interface{}{
			"error":   "failed to generate content",
			"details": err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"posts": service.SplitPosts(text),
	})
}

func (c *RelayController) writeError(w http.ResponseWriter, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(body)
}
