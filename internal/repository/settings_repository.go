package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ubiqedu/marketing-agent-backend/internal/model"
)

// SettingsRepositoryInterface defines the persistence contract for per-user
// agent settings.
type SettingsRepositoryInterface interface {
	Load(userID, agentName string) (model.AgentSettings, bool, error)
	Save(userID, agentName string, settings model.AgentSettings) error
}

type SettingsRepository struct {
	DB *sql.DB
}

// Load returns the stored settings for (userID, agentName). When no record
// exists it returns the default settings and found=false.
func (r *SettingsRepository) Load(userID, agentName string) (model.AgentSettings, bool, error) {
	query := `
        SELECT settings_json
        FROM agent_settings
        WHERE user_id=$1 AND agent_name=$2
    `
	var raw []byte
	err := r.DB.QueryRow(query, userID, agentName).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.DefaultAgentSettings(), false, nil
		}
		return model.DefaultAgentSettings(), false, err
	}

	var settings model.AgentSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return model.DefaultAgentSettings(), false, fmt.Errorf("corrupt settings record: %w", err)
	}
	return settings, true, nil
}

// Save upserts the settings keyed by (userID, agentName), stamping updated_at.
func (r *SettingsRepository) Save(userID, agentName string, settings model.AgentSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO agent_settings (user_id, agent_name, settings_json, updated_at)
        VALUES ($1, $2, $3, NOW())
        ON CONFLICT (user_id, agent_name)
        DO UPDATE SET settings_json=EXCLUDED.settings_json, updated_at=NOW()
    `
	_, err = r.DB.Exec(query, userID, agentName, raw)
	return err
}

var _ SettingsRepositoryInterface = (*SettingsRepository)(nil)
