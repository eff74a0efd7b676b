package render

import (
	"strings"
	"testing"

	"visibility-srv/internal/model"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int          { return &v }

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, "A+"}, {95, "A+"}, {94.9, "A"}, {90, "A"}, {85, "A-"},
		{80, "B+"}, {75, "B"}, {70, "B-"}, {65, "C+"}, {60, "C"},
		{55, "C-"}, {50, "D+"}, {40, "D"}, {39.9, "F"}, {0, "F"},
		{-5, "F"}, {150, "A+"},
	}
	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestGrade_Monotonic(t *testing.T) {
	order := map[string]int{}
	for i, b := range gradeTable {
		order[b.grade] = i
	}
	order[gradeFail] = len(gradeTable)

	prev := order[Grade(0)]
	for s := 0.0; s <= 100; s += 0.5 {
		g := Grade(s)
		idx, ok := order[g]
		if !ok {
			t.Fatalf("Grade(%v) = %q, not in table", s, g)
		}
		if idx > prev {
			t.Fatalf("Grade(%v) = %q is worse than a lower score", s, g)
		}
		prev = idx
	}
}

func testReport() *model.Report {
	return &model.Report{
		ID:           "r1",
		Status:       model.StatusCompleted,
		WebsiteURL:   "https://acme.test",
		BusinessName: "Acme",
		Payload: model.Payload{
			OverallScore: fptr(72),
			PlatformScores: []model.PlatformScore{
				{Platform: "chatgpt", Score: 80, MentionCount: iptr(3)},
				{Platform: "you_com", Score: 20},
			},
			ContentGaps: []model.ContentGap{
				{Title: "m1", Severity: model.SeverityModerate},
				{Title: "u1"},
				{Title: "c1", Severity: model.SeverityCritical},
				{Title: "s1", Severity: model.SeveritySignificant},
				{Title: "c2", Severity: model.SeverityCritical},
			},
			Competitors: []model.Competitor{
				{Name: "low", OverallScore: fptr(30)},
				{Name: "high", OverallScore: fptr(90)},
				{Name: "ranked", Rank: 1, OverallScore: fptr(10)},
			},
			Recommendations: []model.Recommendation{
				{Title: "l", Priority: model.PriorityLow},
				{Title: "h1", Priority: model.PriorityHigh},
				{Title: "none"},
				{Title: "c", Priority: model.PriorityCritical},
				{Title: "h2", Priority: model.PriorityHigh},
				{Title: "m", Priority: model.PriorityMedium},
			},
		},
		Metadata: model.Metadata{CostUSD: fptr(0.12), QueryCount: iptr(40)},
	}
}

func TestRender_Ordering(t *testing.T) {
	v := Render(testReport(), Options{})

	if v.Grade != "B-" {
		t.Errorf("Grade = %q, want B-", v.Grade)
	}

	var sev []model.Severity
	for _, g := range v.GapGroups {
		sev = append(sev, g.Severity)
	}
	wantSev := []model.Severity{model.SeverityCritical, model.SeveritySignificant, model.SeverityModerate, model.SeverityUnknown}
	if len(sev) != len(wantSev) {
		t.Fatalf("gap groups = %v, want %v", sev, wantSev)
	}
	for i := range sev {
		if sev[i] != wantSev[i] {
			t.Errorf("gap group %d = %q, want %q", i, sev[i], wantSev[i])
		}
	}
	if got := v.GapGroups[0].Gaps; len(got) != 2 || got[0].Title != "c1" || got[1].Title != "c2" {
		t.Errorf("critical gaps = %+v, want c1, c2", got)
	}

	var recs []string
	for _, r := range v.Recommendations {
		recs = append(recs, r.Title)
	}
	if got, want := strings.Join(recs, ","), "c,h1,h2,m,l,none"; got != want {
		t.Errorf("recommendations = %s, want %s", got, want)
	}

	var comps []string
	for _, c := range v.Competitors {
		comps = append(comps, c.Name)
	}
	if got, want := strings.Join(comps, ","), "ranked,high,low"; got != want {
		t.Errorf("competitors = %s, want %s", got, want)
	}

	if v.Platforms[0].Label != "ChatGPT" || v.Platforms[1].Label != "You Com" {
		t.Errorf("labels = %q, %q", v.Platforms[0].Label, v.Platforms[1].Label)
	}
}

func TestRender_Metadata(t *testing.T) {
	rpt := testReport()

	if v := Render(rpt, Options{ShowMetadata: false}); v.Metadata != nil {
		t.Errorf("Metadata = %+v, want nil when hidden", v.Metadata)
	}
	v := Render(rpt, Options{ShowMetadata: true})
	if v.Metadata == nil || v.Metadata.QueryCount == nil || *v.Metadata.QueryCount != 40 {
		t.Errorf("Metadata = %+v, want query count 40", v.Metadata)
	}

	rpt.Metadata = model.Metadata{}
	if v := Render(rpt, Options{ShowMetadata: true}); v.Metadata != nil {
		t.Errorf("Metadata = %+v, want nil when nothing recorded", v.Metadata)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	rpt := testReport()
	Render(rpt, Options{})
	if rpt.Payload.Recommendations[0].Title != "l" {
		t.Error("Render reordered the input recommendations")
	}
}

func TestMarkdown(t *testing.T) {
	hidden := Markdown(Render(testReport(), Options{}))
	for _, want := range []string{"# AI Visibility Report: Acme", "| ChatGPT | 80 | B+ | 3 |", "### Critical", "[CRITICAL] c"} {
		if !strings.Contains(hidden, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
	if strings.Contains(hidden, "Run details") {
		t.Error("markdown shows metadata when hidden")
	}

	shown := Markdown(Render(testReport(), Options{ShowMetadata: true}))
	if !strings.Contains(shown, "- Queries: 40") {
		t.Error("markdown missing query count")
	}
}

func TestPlatformLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "chatgpt", want: "ChatGPT"},
		{in: "google_ai_overview", want: "Google Ai Overview"},
		{in: "you-com", want: "You Com"},
		{in: "ékla", want: "Ékla"},
		{in: "über_search", want: "Über Search"},
		{in: "ąnswer", want: "Ąnswer"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		if got := PlatformLabel(tt.in); got != tt.want {
			t.Errorf("PlatformLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
