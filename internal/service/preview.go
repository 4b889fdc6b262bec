// internal/service/preview.go
package service

import (
	"fmt"
	"strings"

	"github.com/ubiqedu/marketing-agent-backend/internal/model"
)

// Describe renders the live textual echo of the campaign form. The UI shows
// it as the strategy preview while no result is present, and the same text
// travels to the planner webhook as the free-text campaign description.
func Describe(form model.CampaignForm) string {
	var b strings.Builder

	topic := form.Topic
	if strings.TrimSpace(topic) == "" {
		topic = "Not specified"
	}
	fmt.Fprintf(&b, "Topic: %s\n", topic)

	unit := "weeks"
	if form.DurationWeeks == 1 {
		unit = "week"
	}
	fmt.Fprintf(&b, "Duration: %d %s\n", form.DurationWeeks, unit)

	tone := form.Tone
	if tone == "" {
		tone = "Not selected"
	}
	fmt.Fprintf(&b, "Tone: %s\n", tone)

	channels := "None selected"
	if len(form.Channels) > 0 {
		channels = strings.Join(form.Channels, ", ")
	}
	fmt.Fprintf(&b, "Channels: %s\n", channels)

	mode := "Manual Approval"
	if form.Mode == model.ModeAutonomous {
		mode = "AI-Autonomous"
	}
	fmt.Fprintf(&b, "Mode: %s\n", mode)

	if form.Mode == model.ModeAutonomous && form.StartDate != nil {
		fmt.Fprintf(&b, "Start date: %s\n", form.StartDate.Format("January 2, 2006"))
	}
	if form.DailyIteration {
		b.WriteString("Daily iteration: enabled\n")
	}
	if len(form.Notifications) > 0 {
		fmt.Fprintf(&b, "Notifications: %s\n", strings.Join(form.Notifications, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}
