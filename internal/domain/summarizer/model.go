package summarizer

import (
	"time"

	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// Shape selects between bulleted and prose summaries.
type Shape string

const (
	ShapeBullet    Shape = "bullet"
	ShapeParagraph Shape = "paragraph"
)

// Length selects the length tier, which drives both wording and budget.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Config configures the summarizer.
type Config struct {
	Model          string
	Temperature    float32
	SystemPrompt   string
	Timeout        time.Duration
	MaxInputTokens int
}

// Request represents the incoming summarization payload.
type Request struct {
	Text        string `json:"text"`
	SummaryType Shape  `json:"summaryType,omitempty"`
	Length      Length `json:"length,omitempty"`
	Model       string `json:"model,omitempty"`
}

// Response is returned on success.
type Response struct {
	Summary string `json:"summary"`
}

// Generation is a single call to the text generation provider.
type Generation struct {
	Model             string
	SystemInstruction string
	Prompt            string
	MaxTokens         int
	Temperature       float32
}

// Completion is the provider's answer to a Generation.
type Completion struct {
	Text  string
	Usage metrics.TokenUsage
}
