// internal/config/config.go
package config

import (
	"github.com/sirupsen/logrus"

	"github.com/ubiqedu/marketing-agent-backend/internal/model"
)

// ContentTypeJSON and ContentTypeText are the two body content types the
// workflow webhook is known to accept. The text/plain variant is a quirk of
// the hosted automation service, not a choice of ours.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain;charset=UTF-8"
)

// Config carries everything the server needs from the environment.
type Config struct {
	ListenAddr string

	// OpenAI-compatible completion endpoint for content generation.
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	// Default webhook endpoints. Callers may override the planner URL per
	// request; these are the server-side fallbacks.
	Webhooks           model.WebhookSettings
	WebhookContentType string

	// Optional RabbitMQ URL for campaign notification events.
	AMQPURL string
}

// Load reads configuration from the environment, loading .env files first.
func Load(logger *logrus.Logger) Config {
	LoadEnv(logger)

	return Config{
		ListenAddr:   GetEnv("LISTEN_ADDR", ":8080"),
		OpenAIAPIKey: GetEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL: GetEnv("OPENAI_API_URL", ""),
		OpenAIModel:  GetEnv("OPENAI_MODEL", "gpt-4o-mini"),
		Webhooks: model.WebhookSettings{
			CampaignPlanner:   GetEnv("WEBHOOK_CAMPAIGN_PLANNER", ""),
			ContentGeneration: GetEnv("WEBHOOK_CONTENT_GENERATION", ""),
			InsightReport:     GetEnv("WEBHOOK_INSIGHT_REPORT", ""),
			EmailOutreach:     GetEnv("WEBHOOK_EMAIL_OUTREACH", ""),
		},
		WebhookContentType: GetEnv("WEBHOOK_CONTENT_TYPE", ContentTypeText),
		AMQPURL:            GetEnv("AMQP_URL", ""),
	}
}
