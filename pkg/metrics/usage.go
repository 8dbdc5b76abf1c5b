package metrics

// TokenUsage captures the provider's token accounting for one summary.
type TokenUsage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens,omitempty"`
	TotalTokens      int `json:"totalTokens"`
}

// NewTokenUsage normalizes provider counts. Negative counts are clamped to
// zero and a missing total is derived from its parts.
func NewTokenUsage(prompt, completion, total int) TokenUsage {
	u := TokenUsage{
		PromptTokens:     max(prompt, 0),
		CompletionTokens: max(completion, 0),
		TotalTokens:      max(total, 0),
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.PromptTokens + u.CompletionTokens
	}
	return u
}

// IsZero reports whether the provider returned no usage block.
func (u TokenUsage) IsZero() bool {
	return u.PromptTokens == 0 && u.CompletionTokens == 0 && u.TotalTokens == 0
}
