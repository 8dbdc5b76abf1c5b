package summarizer

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
)

// Output budgets in tokens per length tier.
const (
	BudgetShort  = 150
	BudgetMedium = 300
	BudgetLong   = 500
)

// Instruction is the prompt prefix and output budget for a shape/length pair.
type Instruction struct {
	Text      string
	MaxTokens int
}

// BuildInstruction maps a shape and length to its instruction. It is pure and
// exhaustive; anything outside the six known cells is rejected.
func BuildInstruction(shape Shape, length Length) (Instruction, error) {
	budget, err := budgetFor(length)
	if err != nil {
		return Instruction{}, err
	}
	switch shape {
	case ShapeBullet:
		switch length {
		case LengthShort:
			return Instruction{Text: "Create 3-4 key bullet points from the following article:", MaxTokens: budget}, nil
		case LengthMedium:
			return Instruction{Text: "Create 5-7 comprehensive bullet points from the following article:", MaxTokens: budget}, nil
		case LengthLong:
			return Instruction{Text: "Create 8-10 detailed bullet points from the following article:", MaxTokens: budget}, nil
		}
	case ShapeParagraph:
		switch length {
		case LengthShort:
			return Instruction{Text: "Write a concise 2-3 sentence summary of the following article:", MaxTokens: budget}, nil
		case LengthMedium:
			return Instruction{Text: "Write a comprehensive paragraph summary of the following article:", MaxTokens: budget}, nil
		case LengthLong:
			return Instruction{Text: "Write a detailed 2-3 paragraph summary of the following article:", MaxTokens: budget}, nil
		}
	}
	return Instruction{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unsupported summaryType %q", shape), nil)
}

// BuildPrompt appends the source text verbatim after the instruction.
func BuildPrompt(instruction Instruction, text string) string {
	var b strings.Builder
	b.Grow(len(instruction.Text) + len(text) + 12)
	b.WriteString(instruction.Text)
	b.WriteString("\n\n")
	b.WriteString(text)
	b.WriteString("\n\nSummary:")
	return b.String()
}

func budgetFor(length Length) (int, error) {
	switch length {
	case LengthShort:
		return BudgetShort, nil
	case LengthMedium:
		return BudgetMedium, nil
	case LengthLong:
		return BudgetLong, nil
	default:
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unsupported length %q", length), nil)
	}
}

// resolveShape applies the bullet default and normalizes case.
func resolveShape(raw Shape) (Shape, error) {
	switch s := Shape(strings.ToLower(strings.TrimSpace(string(raw)))); s {
	case "":
		return ShapeBullet, nil
	case ShapeBullet, ShapeParagraph:
		return s, nil
	default:
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("summaryType must be %q or %q, got %q", ShapeBullet, ShapeParagraph, raw), nil)
	}
}

// resolveLength applies the medium default and normalizes case.
func resolveLength(raw Length) (Length, error) {
	switch l := Length(strings.ToLower(strings.TrimSpace(string(raw)))); l {
	case "":
		return LengthMedium, nil
	case LengthShort, LengthMedium, LengthLong:
		return l, nil
	default:
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("length must be %q, %q or %q, got %q", LengthShort, LengthMedium, LengthLong, raw), nil)
	}
}
