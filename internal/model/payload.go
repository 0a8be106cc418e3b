package model

// SoundsResponse is the body returned by GET /get_sounds/{animal}
type SoundsResponse struct {
	Sounds []string `json:"sounds"`
}

// CallForRequest is the body sent to POST /get_call_for
type CallForRequest struct {
	Animal string `json:"animal"`
	Sound  string `json:"sound"`
}

// CallForResponse is the body returned by POST /get_call_for
type CallForResponse struct {
	CallFor string `json:"call_for,omitempty"`
}

// HealthResponse is the body returned by GET /health
type HealthResponse struct {
	Status       string `json:"status"`
	DataLoaded   bool   `json:"data_loaded"`
	TotalRecords int    `json:"total_records"`
}

// IsHealthy returns true if the backend reports itself healthy with data loaded
func (h HealthResponse) IsHealthy() bool {
	return h.Status == "healthy" && h.DataLoaded
}
