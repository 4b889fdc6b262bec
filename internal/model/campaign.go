// internal/model/campaign.go
package model

import (
	"strings"
	"time"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
)

const (
	ModeManual     = "manual"
	ModeAutonomous = "autonomous"
)

const (
	MinDurationWeeks = 1
	MaxDurationWeeks = 6
)

// Tones the campaign form offers.
var Tones = []string{"friendly", "professional", "excited", "calm", "empathetic"}

// Channels the campaign form offers.
var Channels = []string{"instagram", "facebook", "email", "twitter", "website"}

// NotificationMethods the campaign form offers. "none" suppresses delivery.
var NotificationMethods = []string{"email", "slack", "none"}

// CampaignForm is the transient form state submitted for campaign
// generation. It is never persisted.
type CampaignForm struct {
	Topic          string     `json:"topic"`
	DurationWeeks  int        `json:"duration"`
	Tone           string     `json:"tone"`
	Channels       []string   `json:"channels"`
	Mode           string     `json:"mode"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	DailyIteration bool       `json:"dailyIteration"`
	Notifications  []string   `json:"notifications"`
}

// Normalize applies the form's coupling rules: autonomous mode always runs
// with daily iteration, and an unset mode means manual.
func (f *CampaignForm) Normalize() {
	if f.Mode == "" {
		f.Mode = ModeManual
	}
	if f.Mode == ModeAutonomous {
		f.DailyIteration = true
	}
}

// Validate enforces the pre-submit rules. It must pass before any network
// call is made. now anchors the start-date-in-the-past check.
func (f *CampaignForm) Validate(now time.Time) error {
	if strings.TrimSpace(f.Topic) == "" {
		return apperrors.NewValidation("topic", "topic is required")
	}
	if f.DurationWeeks < MinDurationWeeks || f.DurationWeeks > MaxDurationWeeks {
		return apperrors.NewValidation("duration", "duration must be between 1 and 6 weeks")
	}
	if f.Tone == "" {
		return apperrors.NewValidation("tone", "a tone must be selected")
	}
	if !contains(Tones, f.Tone) {
		return apperrors.NewValidation("tone", "unknown tone: "+f.Tone)
	}
	if len(f.Channels) == 0 {
		return apperrors.NewValidation("channels", "select at least one channel")
	}
	for _, ch := range f.Channels {
		if !contains(Channels, ch) {
			return apperrors.NewValidation("channels", "unknown channel: "+ch)
		}
	}
	if f.Mode != ModeManual && f.Mode != ModeAutonomous {
		return apperrors.NewValidation("mode", "unknown mode: "+f.Mode)
	}
	if f.Mode == ModeAutonomous {
		if f.StartDate == nil {
			return apperrors.NewValidation("startDate", "start date is required for autonomous mode")
		}
		today := now.Truncate(24 * time.Hour)
		if f.StartDate.Before(today) {
			return apperrors.NewValidation("startDate", "start date must not be in the past")
		}
	}
	for _, n := range f.Notifications {
		if !contains(NotificationMethods, n) {
			return apperrors.NewValidation("notifications", "unknown notification method: "+n)
		}
	}
	return nil
}

// CampaignPlan is the normalized result of a campaign generation request.
// Held in view state only, never persisted.
type CampaignPlan struct {
	Title   string     `json:"campaignTitle"`
	Hashtag string     `json:"campaignHashtag,omitempty"`
	Weeks   []WeekPlan `json:"weeks"`
}

type WeekPlan struct {
	Week  int            `json:"week"`
	Theme string         `json:"theme"`
	Ideas []ChannelIdeas `json:"contentIdeas"`
}

// ChannelIdeas is the one canonical shape for per-week content ideas. The
// upstream webhook emits three different shapes; the gateway folds them all
// into this one so the presentation layer never branches. An empty Channel
// means the upstream gave ideas with no channel attribution.
type ChannelIdeas struct {
	Channel string   `json:"channel"`
	Ideas   []string `json:"ideas"`
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
