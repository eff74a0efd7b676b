package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"visibility-srv/internal/model"
)

var platformLabels = map[string]string{
	"chatgpt":    "ChatGPT",
	"claude":     "Claude",
	"gemini":     "Gemini",
	"perplexity": "Perplexity",
}

// PlatformLabel returns the display name of a platform id.
func PlatformLabel(platform string) string {
	if l, ok := platformLabels[platform]; ok {
		return l
	}
	return titleCase(platform)
}

var severityLabels = map[model.Severity]string{
	model.SeverityCritical:    "Critical",
	model.SeveritySignificant: "Significant",
	model.SeverityModerate:    "Moderate",
	model.SeverityUnknown:     "Other",
}

var severityOrder = []model.Severity{
	model.SeverityCritical,
	model.SeveritySignificant,
	model.SeverityModerate,
	model.SeverityUnknown,
}

var priorityRank = map[model.Priority]int{
	model.PriorityCritical: 0,
	model.PriorityHigh:     1,
	model.PriorityMedium:   2,
	model.PriorityLow:      3,
	model.PriorityUnknown:  4,
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
