package ai

// Insight captures the structured output from the AI model.
type Insight struct {
	// Summary is a short plain-language explanation of the forecast.
	Summary string `json:"summary"`

	// BestTimeOffset is the minutes to wait for the cheapest fare; 0 means
	// travel now.
	BestTimeOffset int `json:"best_time_offset"`

	Tips []string `json:"tips"`
}
