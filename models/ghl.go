package models

// Pipeline is a GoHighLevel sales pipeline as returned by the REST API.
type Pipeline struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Stages []PipelineStage `json:"stages"`
}

// PipelineStage is a single stage within a GoHighLevel pipeline. Stage IDs
// are what automation needs to place an opportunity at the right step.
type PipelineStage struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
