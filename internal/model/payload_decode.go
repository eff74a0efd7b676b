package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RawPayload holds the undecoded analysis columns of a report row.
type RawPayload struct {
	OverallScore       *float64
	PlatformScores     []byte
	ContentGaps        []byte
	CompetitorAnalysis []byte
	Recommendations    []byte
}

// DecodePayload converts every accepted wire shape into the canonical Payload.
// Fields that cannot be parsed are left empty and reported in the joined error;
// the returned Payload is always usable.
func DecodePayload(raw RawPayload) (Payload, error) {
	p := Payload{}
	if raw.OverallScore != nil && IsFinite(*raw.OverallScore) {
		v := *raw.OverallScore
		p.OverallScore = &v
	}
	var errs []error

	if v, err := parseJSON(raw.PlatformScores); err != nil {
		errs = append(errs, fmt.Errorf("platform_scores: %w", err))
	} else {
		p.PlatformScores = decodePlatformScores(v)
	}

	if v, err := parseJSON(raw.ContentGaps); err != nil {
		errs = append(errs, fmt.Errorf("content_gaps: %w", err))
	} else {
		p.ContentGaps = decodeContentGaps(v)
	}

	if v, err := parseJSON(raw.CompetitorAnalysis); err != nil {
		errs = append(errs, fmt.Errorf("competitor_analysis: %w", err))
	} else {
		p.Competitors = decodeCompetitors(v)
	}

	if v, err := parseJSON(raw.Recommendations); err != nil {
		errs = append(errs, fmt.Errorf("recommendations: %w", err))
	} else {
		p.Recommendations = decodeRecommendations(v)
	}

	return p, errors.Join(errs...)
}

// parseJSON decodes b into generic values. Documents stored as a JSON string are unwrapped once.
func parseJSON(b []byte) (any, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
			return parseJSON([]byte(s))
		}
		return nil, nil
	}
	return v, nil
}

// --- platform scores ---

var platformAliases = map[string]string{
	"openai":        "chatgpt",
	"gpt":           "chatgpt",
	"chat_gpt":      "chatgpt",
	"anthropic":     "claude",
	"google":        "gemini",
	"google_gemini": "gemini",
	"bard":          "gemini",
	"perplexity_ai": "perplexity",
}

// platformOrder fixes the display order of the engines the backend queries.
var platformOrder = map[string]int{
	"chatgpt":    0,
	"claude":     1,
	"gemini":     2,
	"perplexity": 3,
}

// NormalizePlatform turns an engine name into its lowercase identifier.
func NormalizePlatform(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_", ".", "_").Replace(key)
	if alias, ok := platformAliases[key]; ok {
		return alias
	}
	return key
}

func decodePlatformScores(v any) []PlatformScore {
	var out []PlatformScore

	switch t := v.(type) {
	case []any:
		for _, item := range t {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			name := firstString(m, "platform", "name", "engine")
			if ps, ok := platformFromObject(name, m); ok {
				out = append(out, ps)
			}
		}
	case map[string]any:
		for _, wrapper := range []string{"platforms", "scores", "platform_scores"} {
			if inner, ok := t[wrapper]; ok {
				return decodePlatformScores(inner)
			}
		}
		for _, k := range sortedKeys(t) {
			switch val := t[k].(type) {
			case map[string]any:
				if ps, ok := platformFromObject(k, val); ok {
					out = append(out, ps)
				}
			default:
				if score, ok := toNumber(val); ok {
					out = append(out, PlatformScore{Platform: NormalizePlatform(k), Score: score})
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return platformLess(out[i].Platform, out[j].Platform)
	})
	return out
}

func platformFromObject(name string, m map[string]any) (PlatformScore, bool) {
	if name == "" {
		name = firstString(m, "platform", "name", "engine")
	}
	if name == "" {
		return PlatformScore{}, false
	}
	score, ok := firstNumber(m, "score", "visibility_score", "visibilityScore", "overall_score")
	if !ok {
		return PlatformScore{}, false
	}

	ps := PlatformScore{
		Platform:       NormalizePlatform(name),
		Score:          score,
		KnowledgeLevel: firstString(m, "knowledgeLevel", "knowledge_level"),
	}
	if n, ok := firstNumber(m, "mentionCount", "mention_count", "mentions"); ok {
		c := int(n)
		ps.MentionCount = &c
	}
	return ps, true
}

func platformLess(a, b string) bool {
	ra, oka := platformOrder[a]
	rb, okb := platformOrder[b]
	switch {
	case oka && okb:
		return ra < rb
	case oka != okb:
		return oka
	default:
		return a < b
	}
}

// --- content gaps ---

func decodeContentGaps(v any) []ContentGap {
	var out []ContentGap

	switch t := v.(type) {
	case []any:
		out = appendGaps(out, t, SeverityUnknown, "")
	case map[string]any:
		for _, k := range sortedKeys(t) {
			key := strings.ToLower(k)
			switch val := t[k].(type) {
			case []any:
				switch {
				case severityFromKey(key) != SeverityUnknown:
					out = appendGaps(out, val, severityFromKey(key), "")
				case key == "gaps" || key == "items" || key == "content_gaps":
					out = appendGaps(out, val, SeverityUnknown, "")
				default:
					out = appendGaps(out, val, SeverityUnknown, k)
				}
			case map[string]any:
				if key == "gaps" || key == "content_gaps" || key == "categories" {
					out = append(out, decodeContentGaps(val)...)
				}
			}
		}
	}
	return out
}

// severityFromKey recognises "critical", "critical_gaps" and "criticalGaps".
func severityFromKey(key string) Severity {
	key = strings.TrimSuffix(strings.TrimSuffix(key, "gaps"), "_")
	switch Severity(key) {
	case SeverityCritical, SeveritySignificant, SeverityModerate:
		return Severity(key)
	}
	return SeverityUnknown
}

func appendGaps(out []ContentGap, items []any, defSeverity Severity, category string) []ContentGap {
	for _, item := range items {
		switch it := item.(type) {
		case string:
			if s := strings.TrimSpace(it); s != "" {
				out = append(out, ContentGap{Title: s, Category: category, Severity: defSeverity})
			}
		case map[string]any:
			gap := ContentGap{
				Title:       firstString(it, "title", "gap", "topic", "name", "issue"),
				Description: firstString(it, "description", "details", "detail", "explanation"),
				Category:    firstString(it, "category", "type", "area"),
				Severity:    ParseSeverity(firstString(it, "severity", "impact", "priority", "level")),
			}
			if gap.Title == "" {
				gap.Title, gap.Description = gap.Description, ""
			}
			if gap.Title == "" {
				continue
			}
			if gap.Category == "" {
				gap.Category = category
			}
			if gap.Severity == SeverityUnknown {
				gap.Severity = defSeverity
			}
			out = append(out, gap)
		}
	}
	return out
}

// --- competitors ---

func decodeCompetitors(v any) []Competitor {
	var out []Competitor

	switch t := v.(type) {
	case []any:
		out = appendCompetitors(out, t)
	case map[string]any:
		for _, wrapper := range []string{"competitors", "ranked_competitors", "ranking", "items"} {
			if arr, ok := t[wrapper].([]any); ok {
				return appendCompetitors(out, arr)
			}
		}
		for _, k := range sortedKeys(t) {
			m, ok := t[k].(map[string]any)
			if !ok {
				continue
			}
			if c, ok := competitorFromObject(m, k); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func appendCompetitors(out []Competitor, items []any) []Competitor {
	for _, item := range items {
		switch it := item.(type) {
		case string:
			if s := strings.TrimSpace(it); s != "" {
				out = append(out, Competitor{Name: s})
			}
		case map[string]any:
			if c, ok := competitorFromObject(it, ""); ok {
				out = append(out, c)
			}
		}
	}
	return out
}

func competitorFromObject(m map[string]any, fallbackName string) (Competitor, bool) {
	c := Competitor{
		Name:    firstString(m, "name", "business_name", "businessName", "competitor", "title"),
		Website: firstString(m, "website", "url", "website_url", "domain"),
	}
	if c.Name == "" {
		c.Name = fallbackName
	}
	if c.Name == "" {
		c.Name = c.Website
	}
	if c.Name == "" {
		return Competitor{}, false
	}
	if score, ok := firstNumber(m, "overall_score", "overallScore", "score", "visibility_score"); ok {
		c.OverallScore = &score
	}
	if rank, ok := firstNumber(m, "rank", "position"); ok && rank > 0 {
		c.Rank = int(rank)
	}
	for _, key := range []string{"platform_scores", "platformScores", "scores"} {
		if inner, ok := m[key]; ok {
			c.PlatformScores = decodePlatformScores(inner)
			break
		}
	}
	return c, true
}

// --- recommendations ---

func decodeRecommendations(v any) []Recommendation {
	var out []Recommendation

	switch t := v.(type) {
	case []any:
		out = appendRecommendations(out, t, PriorityUnknown)
	case map[string]any:
		for _, wrapper := range []string{"recommendations", "items", "actions"} {
			if arr, ok := t[wrapper].([]any); ok {
				return appendRecommendations(out, arr, PriorityUnknown)
			}
		}
		for _, k := range sortedKeys(t) {
			arr, ok := t[k].([]any)
			if !ok {
				continue
			}
			key := strings.TrimSuffix(strings.ToLower(k), "_priority")
			out = appendRecommendations(out, arr, strictPriority(key))
		}
	}
	return out
}

func strictPriority(key string) Priority {
	switch Priority(key) {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return Priority(key)
	}
	return PriorityUnknown
}

func appendRecommendations(out []Recommendation, items []any, defPriority Priority) []Recommendation {
	for _, item := range items {
		switch it := item.(type) {
		case string:
			if s := strings.TrimSpace(it); s != "" {
				out = append(out, Recommendation{Title: s, Priority: defPriority})
			}
		case map[string]any:
			rec := Recommendation{
				Title:       firstString(it, "title", "action", "recommendation", "name"),
				Description: firstString(it, "description", "details", "rationale"),
				Category:    firstString(it, "category", "type", "area"),
				Impact:      firstString(it, "impact", "expected_impact", "expectedImpact"),
				Priority:    ParsePriority(firstString(it, "priority", "urgency", "level")),
			}
			if rec.Title == "" {
				rec.Title, rec.Description = rec.Description, ""
			}
			if rec.Title == "" {
				continue
			}
			if rec.Priority == PriorityUnknown {
				rec.Priority = defPriority
			}
			out = append(out, rec)
		}
	}
	return out
}

// --- helpers ---

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case json.Number:
			return v.String()
		}
	}
	return ""
}

func firstNumber(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if n, ok := toNumber(m[k]); ok {
			return n, true
		}
	}
	return 0, false
}

// toNumber accepts finite numbers only; NaN and infinities cannot be encoded as JSON.
func toNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		s := strings.TrimSuffix(strings.TrimSpace(n), "%")
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	return f, IsFinite(f)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
