package ghl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propflow/leadboard/internal/settings"
	"github.com/propflow/leadboard/models"
)

func TestEnabled(t *testing.T) {
	assert.True(t, Enabled(settings.Document{"enabled": true}))
	assert.False(t, Enabled(settings.Document{"enabled": false}))
	assert.False(t, Enabled(settings.Document{}))
	assert.False(t, Enabled(settings.Document{"enabled": "yes"}))
}

func TestRulesFromConfig_EmptyConfig_UsesDefaults(t *testing.T) {
	rules := RulesFromConfig(settings.Document{})

	assert.Equal(t, 70, rules.MinScoreForOpportunity)
	assert.Equal(t, 85, rules.HotDealThreshold)
}

func TestRulesFromConfig_ReadsDocumentValues(t *testing.T) {
	cfg := settings.Document{
		"automation_rules": map[string]any{
			"min_score_for_opportunity": json.Number("50"),
			"hot_deal_threshold":        json.Number("90"),
		},
	}

	rules := RulesFromConfig(cfg)

	assert.Equal(t, 50, rules.MinScoreForOpportunity)
	assert.Equal(t, 90, rules.HotDealThreshold)
}

func TestRulesFromConfig_PartialDocument_KeepsDefaultForMissing(t *testing.T) {
	cfg := settings.Document{
		"automation_rules": map[string]any{
			"hot_deal_threshold": json.Number("95"),
		},
	}

	rules := RulesFromConfig(cfg)

	assert.Equal(t, 70, rules.MinScoreForOpportunity)
	assert.Equal(t, 95, rules.HotDealThreshold)
}

func TestDecide_Thresholds(t *testing.T) {
	rules := models.AutomationRules{MinScoreForOpportunity: 70, HotDealThreshold: 85}

	tests := []struct {
		name  string
		score int
		want  Action
	}{
		{name: "below both", score: 69, want: ActionNone},
		{name: "at opportunity", score: 70, want: ActionCreateOpportunity},
		{name: "between", score: 84, want: ActionCreateOpportunity},
		{name: "at hot deal", score: 85, want: ActionHotDeal},
		{name: "above", score: 100, want: ActionHotDeal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(rules, tt.score))
		})
	}
}

func TestDecide_OverlappingThresholds_HotDealWins(t *testing.T) {
	rules := models.AutomationRules{MinScoreForOpportunity: 80, HotDealThreshold: 80}

	require.Equal(t, ActionHotDeal, Decide(rules, 80))
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "none", ActionNone.String())
	assert.Equal(t, "create_opportunity", ActionCreateOpportunity.String())
	assert.Equal(t, "hot_deal", ActionHotDeal.String())
}
