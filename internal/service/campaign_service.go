// internal/service/campaign_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/metrics"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
	"github.com/ubiqedu/marketing-agent-backend/internal/queue"
	"github.com/ubiqedu/marketing-agent-backend/internal/webhook"
)

// NotificationTopic is the queue topic campaign notification events go to.
const NotificationTopic = "campaign_notifications"

// ErrEmptyResponse means the webhook answered 2xx with no body.
var ErrEmptyResponse = errors.New("webhook returned empty response")

type CampaignService struct {
	Webhook    *webhook.Client
	PlannerURL string
	Queue      queue.Queue
	Log        *logrus.Logger
}

// campaignRequest is the payload sent to the planner webhook: a free-text
// description of the full form state plus the structured field values.
type campaignRequest struct {
	Description    string   `json:"description"`
	Topic          string   `json:"topic"`
	DurationWeeks  int      `json:"duration"`
	Tone           string   `json:"tone"`
	Channels       []string `json:"channels"`
	Mode           string   `json:"mode"`
	StartDate      string   `json:"startDate,omitempty"`
	DailyIteration bool     `json:"dailyIteration"`
	Notifications  []string `json:"notifications"`
	Source         string   `json:"source"`
	Timestamp      string   `json:"timestamp"`
}

// Generate runs the full campaign pipeline: validate, call the planner
// webhook, decode and normalize the plan, then fire notification events.
func (s *CampaignService) Generate(ctx context.Context, form model.CampaignForm) (*model.CampaignPlan, error) {
	metrics.GenerationRequests.WithLabelValues("campaign").Inc()

	form.Normalize()
	if err := form.Validate(time.Now()); err != nil {
		metrics.GenerationFailures.WithLabelValues("campaign", "validation").Inc()
		return nil, err
	}
	if s.PlannerURL == "" {
		metrics.GenerationFailures.WithLabelValues("campaign", "not_configured").Inc()
		return nil, apperrors.NewNotConfigured("campaign planner webhook")
	}

	req := campaignRequest{
		Description:    Describe(form),
		Topic:          form.Topic,
		DurationWeeks:  form.DurationWeeks,
		Tone:           form.Tone,
		Channels:       form.Channels,
		Mode:           form.Mode,
		DailyIteration: form.DailyIteration,
		Notifications:  form.Notifications,
		Source:         "smart-campaign-planner",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	if form.StartDate != nil {
		req.StartDate = form.StartDate.Format("2006-01-02")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal campaign request: %w", err)
	}

	s.Log.WithFields(logrus.Fields{"topic": form.Topic, "weeks": form.DurationWeeks}).Info("calling campaign planner webhook")

	raw, err := s.Webhook.Post(ctx, s.PlannerURL, payload)
	if err != nil {
		metrics.GenerationFailures.WithLabelValues("campaign", "transport").Inc()
		s.Log.WithError(err).Error("campaign planner webhook call failed")
		return nil, fmt.Errorf("campaign generation failed: %w", err)
	}

	plan, err := DecodePlan(raw)
	if err != nil {
		metrics.GenerationFailures.WithLabelValues("campaign", "response_shape").Inc()
		s.Log.WithError(err).WithField("raw_len", len(raw)).Error("failed to decode campaign plan")
		return nil, fmt.Errorf("campaign generation failed: %w", err)
	}

	s.notify(form, plan)
	return plan, nil
}

// notify publishes one event per selected notification method. Best-effort:
// failures are logged and never surfaced to the caller.
func (s *CampaignService) notify(form model.CampaignForm, plan *model.CampaignPlan) {
	if s.Queue == nil {
		return
	}
	for _, method := range form.Notifications {
		if method == "none" {
			continue
		}
		event := map[string]string{
			"method":        method,
			"campaignTitle": plan.Title,
			"topic":         form.Topic,
		}
		if err := s.Queue.Publish(NotificationTopic, event); err != nil {
			s.Log.WithError(err).WithField("method", method).Warn("failed to publish campaign notification")
		}
	}
}

// wirePlan is the webhook's response envelope. weeks is usually a
// JSON-encoded string rather than a nested array.
type wirePlan struct {
	CampaignTitle   string          `json:"campaignTitle"`
	CampaignHashtag string          `json:"campaignHashtag"`
	Weeks           json.RawMessage `json:"weeks"`
}

type wireWeek struct {
	Week         int             `json:"week"`
	Theme        string          `json:"theme"`
	ContentIdeas json.RawMessage `json:"contentIdeas"`
}

// DecodePlan parses the planner webhook response into the canonical plan:
// outer JSON first, then the double-encoded weeks field, then the
// content-ideas shape normalization. Any failure is a hard failure for the
// whole operation.
func DecodePlan(raw []byte) (*model.CampaignPlan, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyResponse
	}

	var outer wirePlan
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil, fmt.Errorf("invalid JSON response from webhook: %w", err)
	}

	weeksRaw, err := unwrapWeeks(outer.Weeks)
	if err != nil {
		return nil, err
	}

	plan := &model.CampaignPlan{
		Title:   outer.CampaignTitle,
		Hashtag: outer.CampaignHashtag,
		Weeks:   []model.WeekPlan{},
	}
	if len(weeksRaw) == 0 {
		return plan, nil
	}

	var weeks []wireWeek
	if err := json.Unmarshal(weeksRaw, &weeks); err != nil {
		return nil, fmt.Errorf("invalid weeks data: %w", err)
	}

	for _, w := range weeks {
		ideas, err := normalizeIdeas(w.ContentIdeas)
		if err != nil {
			return nil, fmt.Errorf("week %d: %w", w.Week, err)
		}
		plan.Weeks = append(plan.Weeks, model.WeekPlan{
			Week:  w.Week,
			Theme: w.Theme,
			Ideas: ideas,
		})
	}
	return plan, nil
}

// unwrapWeeks undoes the webhook's double encoding: weeks may arrive either
// as a JSON array or as a JSON string containing JSON. Isolated here so it
// is trivially removable if the upstream ever fixes its encoding.
func unwrapWeeks(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, fmt.Errorf("invalid weeks string: %w", err)
	}
	if strings.TrimSpace(inner) == "" {
		return nil, nil
	}
	return json.RawMessage(inner), nil
}

// normalizeIdeas folds the three observed contentIdeas shapes into the
// canonical ordered []ChannelIdeas:
//  1. mapping channel -> []idea (keys sorted for a stable order)
//  2. bare []idea (emitted with an empty channel)
//  3. []{channel, ideas} records (kept in arrival order)
func normalizeIdeas(raw json.RawMessage) ([]model.ChannelIdeas, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []model.ChannelIdeas{}, nil
	}

	switch trimmed[0] {
	case '{':
		var byChannel map[string][]string
		if err := json.Unmarshal(trimmed, &byChannel); err != nil {
			return nil, fmt.Errorf("unexpected contentIdeas shape: %w", err)
		}
		channels := make([]string, 0, len(byChannel))
		for ch := range byChannel {
			channels = append(channels, ch)
		}
		sort.Strings(channels)
		ideas := make([]model.ChannelIdeas, 0, len(channels))
		for _, ch := range channels {
			ideas = append(ideas, model.ChannelIdeas{Channel: ch, Ideas: byChannel[ch]})
		}
		return ideas, nil
	case '[':
		var records []model.ChannelIdeas
		if err := json.Unmarshal(trimmed, &records); err == nil && recordsHaveChannels(records) {
			return records, nil
		}
		var flat []string
		if err := json.Unmarshal(trimmed, &flat); err == nil {
			if len(flat) == 0 {
				return []model.ChannelIdeas{}, nil
			}
			return []model.ChannelIdeas{{Channel: "", Ideas: flat}}, nil
		}
		return nil, errors.New("unexpected contentIdeas shape: array is neither idea strings nor channel records")
	default:
		return nil, errors.New("unexpected contentIdeas shape")
	}
}

// recordsHaveChannels guards against a []string decoding "successfully"
// into empty records.
func recordsHaveChannels(records []model.ChannelIdeas) bool {
	for _, r := range records {
		if r.Channel == "" && len(r.Ideas) == 0 {
			return false
		}
	}
	return len(records) > 0
}
