package models

// Configuration is the typed shape of the dashboard configuration document
// persisted as JSON on disk. It covers the keys the application knows about;
// the settings store itself works on the raw decoded document so that keys
// added by newer versions (or by hand) survive a load/save round-trip.
type Configuration struct {
	// SearchCriteria drives the external listing search and import
	// processes: where to look, what to look for, and how far back.
	SearchCriteria SearchCriteria `json:"search_criteria"`

	// GoHighLevel holds the CRM integration settings, including the
	// numeric thresholds that gate automated actions.
	GoHighLevel IntegrationSettings `json:"gohighlevel"`
}

// SearchCriteria describes the listing search filters configured through
// the dashboard.
type SearchCriteria struct {
	// TargetLocations is the ordered list of markets to search, e.g.
	// "Austin, TX". Insertion order is preserved; uniqueness is enforced
	// by the store's add operation, not by this type.
	TargetLocations []string `json:"target_locations"`

	// ListingType selects the listing market, e.g. "for_sale".
	ListingType string `json:"listing_type"`

	// DaysBack limits the search to listings published within the last
	// N days. Zero means no recency filter.
	DaysBack int `json:"days_back"`

	// PropertyTypes restricts results to the given property categories,
	// e.g. "single_family". Empty means all types.
	PropertyTypes []string `json:"property_types"`

	// MinBedrooms and MinBathrooms are lower bounds on room counts.
	MinBedrooms  int `json:"min_bedrooms"`
	MinBathrooms int `json:"min_bathrooms"`

	// PriceRange bounds the listing price in whole dollars.
	PriceRange PriceRange `json:"price_range"`
}

// PriceRange is a listing price window in whole dollars.
// Min <= Max is expected but deliberately not enforced anywhere in the
// application; the dashboard is the place to fix a bad range.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// IntegrationSettings describes whether and how the GoHighLevel CRM is
// engaged by the import pipeline.
type IntegrationSettings struct {
	// Enabled gates all CRM traffic. When false the import pipeline never
	// contacts GoHighLevel.
	Enabled bool `json:"enabled"`

	// AutomationRules holds the score thresholds that decide what happens
	// to an imported lead.
	AutomationRules AutomationRules `json:"automation_rules"`
}

// AutomationRules are the lead-score thresholds for automated CRM actions.
type AutomationRules struct {
	// MinScoreForOpportunity is the minimum lead score at which an
	// opportunity is created in the CRM.
	MinScoreForOpportunity int `json:"min_score_for_opportunity"`

	// HotDealThreshold is the lead score at or above which a lead is
	// flagged as a hot deal.
	HotDealThreshold int `json:"hot_deal_threshold"`
}

// DefaultConfiguration returns the factory-reset configuration document.
// It is what the settings store hands out when no file exists on disk yet.
func DefaultConfiguration() Configuration {
	return Configuration{
		SearchCriteria: SearchCriteria{
			TargetLocations: []string{},
			ListingType:     "for_sale",
			DaysBack:        7,
			PropertyTypes:   []string{"single_family", "multi_family"},
			MinBedrooms:     3,
			MinBathrooms:    2,
			PriceRange:      DefaultPriceRange(),
		},
		GoHighLevel: IntegrationSettings{
			Enabled: false,
			AutomationRules: AutomationRules{
				MinScoreForOpportunity: 70,
				HotDealThreshold:       85,
			},
		},
	}
}

// DefaultPriceRange is the price window assumed when the document carries
// no price_range key.
func DefaultPriceRange() PriceRange {
	return PriceRange{Min: 200000, Max: 2000000}
}
