package model

import (
	"encoding/json"
	"math"
	"testing"
)

func platformPairs(ps []PlatformScore) map[string]float64 {
	out := make(map[string]float64, len(ps))
	for _, p := range ps {
		out[p.Platform] = p.Score
	}
	return out
}

func TestDecodePlatformScores_ShapesAreEquivalent(t *testing.T) {
	shapes := map[string]string{
		"flat map":      `{"chatgpt": 80}`,
		"map of object": `{"ChatGPT": {"score": 80, "mention_count": 3}}`,
		"array":         `[{"platform": "chatgpt", "score": 80, "mentionCount": 3, "knowledgeLevel": "high"}]`,
		"array alt":     `[{"engine": "OpenAI", "visibility_score": "80"}]`,
		"wrapped":       `{"platforms": [{"name": "chatgpt", "score": 80}]}`,
		"json string":   `"[{\"platform\": \"chatgpt\", \"score\": 80}]"`,
	}
	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			p, err := DecodePayload(RawPayload{PlatformScores: []byte(raw)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := platformPairs(p.PlatformScores)
			if len(got) != 1 || got["chatgpt"] != 80 {
				t.Errorf("mismatch: got %v, want map[chatgpt:80]", got)
			}
		})
	}
}

func TestDecodePlatformScores_Order(t *testing.T) {
	p, _ := DecodePayload(RawPayload{PlatformScores: []byte(`{"perplexity": 40, "zeta": 1, "claude": 70, "chatgpt": 80}`)})
	want := []string{"chatgpt", "claude", "perplexity", "zeta"}
	if len(p.PlatformScores) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(p.PlatformScores), len(want))
	}
	for i, w := range want {
		if p.PlatformScores[i].Platform != w {
			t.Errorf("position %d mismatch: got %s, want %s", i, p.PlatformScores[i].Platform, w)
		}
	}
}

func TestDecodePlatformScores_MentionCount(t *testing.T) {
	p, _ := DecodePayload(RawPayload{PlatformScores: []byte(`[{"platform": "claude", "score": 55, "mention_count": 7, "knowledge_level": "partial"}]`)})
	if len(p.PlatformScores) != 1 {
		t.Fatalf("length mismatch: got %d, want 1", len(p.PlatformScores))
	}
	ps := p.PlatformScores[0]
	if ps.MentionCount == nil || *ps.MentionCount != 7 {
		t.Errorf("mention count mismatch: got %v, want 7", ps.MentionCount)
	}
	if ps.KnowledgeLevel != "partial" {
		t.Errorf("knowledge level mismatch: got %s, want partial", ps.KnowledgeLevel)
	}
}

func TestDecodeContentGaps(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []ContentGap
	}{
		{
			name: "categorized lists",
			raw:  `{"critical_gaps": ["No FAQ page"], "moderate_gaps": [{"title": "Thin blog", "description": "Few posts"}]}`,
			want: []ContentGap{
				{Title: "No FAQ page", Severity: SeverityCritical},
				{Title: "Thin blog", Description: "Few posts", Severity: SeverityModerate},
			},
		},
		{
			name: "gaps array",
			raw:  `{"gaps": [{"gap": "Missing schema", "severity": "significant", "category": "technical"}], "summary": "ok"}`,
			want: []ContentGap{
				{Title: "Missing schema", Category: "technical", Severity: SeveritySignificant},
			},
		},
		{
			name: "category map",
			raw:  `{"reviews": [{"title": "No reviews", "severity": "critical"}]}`,
			want: []ContentGap{
				{Title: "No reviews", Category: "reviews", Severity: SeverityCritical},
			},
		},
		{
			name: "bare array",
			raw:  `[{"description": "No pricing page", "impact": "high"}]`,
			want: []ContentGap{
				{Title: "No pricing page", Severity: SeverityCritical},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodePayload(RawPayload{ContentGaps: []byte(tt.raw)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.ContentGaps) != len(tt.want) {
				t.Fatalf("length mismatch: got %+v, want %+v", p.ContentGaps, tt.want)
			}
			for i := range tt.want {
				if p.ContentGaps[i] != tt.want[i] {
					t.Errorf("gap %d mismatch: got %+v, want %+v", i, p.ContentGaps[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeCompetitors(t *testing.T) {
	shapes := map[string]string{
		"array":   `[{"name": "Rival", "website": "rival.com", "score": 61, "platform_scores": {"chatgpt": 50}}]`,
		"wrapped": `{"competitors": [{"business_name": "Rival", "url": "rival.com", "overall_score": 61, "platformScores": [{"platform": "chatgpt", "score": 50}]}]}`,
	}
	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			p, err := DecodePayload(RawPayload{CompetitorAnalysis: []byte(raw)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Competitors) != 1 {
				t.Fatalf("length mismatch: got %d, want 1", len(p.Competitors))
			}
			c := p.Competitors[0]
			if c.Name != "Rival" || c.Website != "rival.com" {
				t.Errorf("competitor mismatch: got %+v", c)
			}
			if c.OverallScore == nil || *c.OverallScore != 61 {
				t.Errorf("score mismatch: got %v, want 61", c.OverallScore)
			}
			if got := platformPairs(c.PlatformScores); got["chatgpt"] != 50 {
				t.Errorf("platform scores mismatch: got %v", got)
			}
		})
	}
}

func TestDecodeRecommendations(t *testing.T) {
	shapes := map[string]string{
		"array":       `[{"title": "Add FAQ", "priority": "HIGH"}, "Claim listings"]`,
		"wrapped":     `{"recommendations": [{"action": "Add FAQ", "priority": "high"}, {"title": "Claim listings"}]}`,
		"by priority": `{"high_priority": ["Add FAQ"], "zz_other": ["Claim listings"]}`,
	}
	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			p, err := DecodePayload(RawPayload{Recommendations: []byte(raw)})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Recommendations) != 2 {
				t.Fatalf("length mismatch: got %+v", p.Recommendations)
			}
			if p.Recommendations[0].Title != "Add FAQ" || p.Recommendations[0].Priority != PriorityHigh {
				t.Errorf("first mismatch: got %+v", p.Recommendations[0])
			}
			if p.Recommendations[1].Title != "Claim listings" || p.Recommendations[1].Priority != PriorityUnknown {
				t.Errorf("second mismatch: got %+v", p.Recommendations[1])
			}
		})
	}
}

func TestDecodePayload_MalformedColumnIsIsolated(t *testing.T) {
	score := 72.0
	p, err := DecodePayload(RawPayload{
		OverallScore:    &score,
		PlatformScores:  []byte(`{not json`),
		Recommendations: []byte(`["Add FAQ"]`),
	})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if p.PlatformScores != nil {
		t.Errorf("platform scores should be empty, got %+v", p.PlatformScores)
	}
	if len(p.Recommendations) != 1 || p.OverallScore == nil || *p.OverallScore != 72 {
		t.Errorf("other columns should survive: got %+v", p)
	}
}

func TestDecodePayload_Empty(t *testing.T) {
	p, err := DecodePayload(RawPayload{PlatformScores: []byte("null"), ContentGaps: []byte("  ")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PlatformScores != nil || p.ContentGaps != nil {
		t.Errorf("expected empty payload, got %+v", p)
	}
}

func TestDecodePayload_NonFiniteNumbersDropped(t *testing.T) {
	nan := math.NaN()
	p, err := DecodePayload(RawPayload{
		OverallScore:       &nan,
		PlatformScores:     []byte(`{"chatgpt": "NaN", "claude": "Infinity", "gemini": "-Inf", "perplexity": 61}`),
		CompetitorAnalysis: []byte(`[{"name": "Rival", "score": "NaN"}]`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.OverallScore != nil {
		t.Errorf("overall score should be absent, got %v", *p.OverallScore)
	}
	got := platformPairs(p.PlatformScores)
	if len(got) != 1 || got["perplexity"] != 61 {
		t.Errorf("mismatch: got %v, want map[perplexity:61]", got)
	}
	for _, c := range p.Competitors {
		if c.OverallScore != nil && !IsFinite(*c.OverallScore) {
			t.Errorf("competitor %s kept non-finite score", c.Name)
		}
	}
	if _, err := json.Marshal(p); err != nil {
		t.Errorf("payload should encode as JSON: %v", err)
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{in: json.Number("42.5"), want: 42.5, wantOK: true},
		{in: "80%", want: 80, wantOK: true},
		{in: 7, want: 7, wantOK: true},
		{in: "NaN"},
		{in: "Infinity"},
		{in: math.Inf(-1)},
		{in: "abc"},
		{in: nil},
	}
	for _, tt := range tests {
		got, ok := toNumber(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("toNumber(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
