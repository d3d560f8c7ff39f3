package ghl

import (
	"encoding/json"

	"github.com/propflow/leadboard/internal/settings"
	"github.com/propflow/leadboard/models"
)

// Action is the automated CRM step taken for an imported lead.
type Action int

const (
	// ActionNone leaves the lead in the dashboard only.
	ActionNone Action = iota
	// ActionCreateOpportunity creates an opportunity in the CRM pipeline.
	ActionCreateOpportunity
	// ActionHotDeal creates an opportunity and flags the lead as a hot deal.
	ActionHotDeal
)

func (a Action) String() string {
	switch a {
	case ActionCreateOpportunity:
		return "create_opportunity"
	case ActionHotDeal:
		return "hot_deal"
	default:
		return "none"
	}
}

// Enabled reports whether the CRM integration is switched on in the
// gohighlevel sub-tree of the settings document. An absent or malformed
// flag means off.
func Enabled(cfg settings.Document) bool {
	enabled, _ := cfg["enabled"].(bool)
	return enabled
}

// RulesFromConfig decodes automation_rules out of the gohighlevel
// sub-tree. Thresholds the document does not carry keep their factory
// defaults, so a partially configured integration still behaves sanely.
func RulesFromConfig(cfg settings.Document) models.AutomationRules {
	rules := models.DefaultConfiguration().GoHighLevel.AutomationRules

	raw, ok := cfg["automation_rules"]
	if !ok {
		return rules
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return rules
	}
	_ = json.Unmarshal(data, &rules)

	return rules
}

// Decide maps a lead score onto the automated CRM action configured by
// rules. The hot-deal threshold wins when the two overlap.
func Decide(rules models.AutomationRules, score int) Action {
	switch {
	case score >= rules.HotDealThreshold:
		return ActionHotDeal
	case score >= rules.MinScoreForOpportunity:
		return ActionCreateOpportunity
	default:
		return ActionNone
	}
}
