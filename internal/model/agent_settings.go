// internal/model/agent_settings.go
package model

// AgentNameContent is the only agent profile currently modeled.
const AgentNameContent = "Content Agent"

const (
	FrequencyWeekly   = "weekly"
	FrequencyBiWeekly = "bi-weekly"
	FrequencyMonthly  = "monthly"
)

const (
	PostingModeDrafts   = "drafts"
	PostingModeAutoPost = "auto-post"
)

// AgentSettings is the per-(user, agent) configuration blob. Frequency and
// AutomationEnabled are advisory; no scheduler reads them.
type AgentSettings struct {
	Topics            string `json:"topics"`
	Frequency         string `json:"frequency"`
	AutomationEnabled bool   `json:"automationEnabled"`
	PostingMode       string `json:"postingMode"`
}

// DefaultAgentSettings is the value callers get before a first save.
func DefaultAgentSettings() AgentSettings {
	return AgentSettings{
		Topics:            "",
		Frequency:         FrequencyWeekly,
		AutomationEnabled: false,
		PostingMode:       PostingModeDrafts,
	}
}

// WebhookSettings holds the externally-hosted workflow endpoints. The
// browser keeps its own copy locally; these are the server-side defaults.
type WebhookSettings struct {
	CampaignPlanner   string `json:"campaignPlanner"`
	ContentGeneration string `json:"contentGeneration"`
	InsightReport     string `json:"insightReport"`
	EmailOutreach     string `json:"emailOutreach"`
}
