package render

import (
	"sort"

	"visibility-srv/internal/model"
)

// Render projects rpt into a View. It never mutates rpt.
func Render(rpt *model.Report, opts Options) View {
	if rpt == nil {
		return View{}
	}

	v := View{
		ReportID:        rpt.ID,
		WebsiteURL:      rpt.WebsiteURL,
		BusinessName:    rpt.BusinessName,
		BusinessType:    rpt.BusinessType,
		Location:        rpt.Location,
		OverallScore:    rpt.Payload.OverallScore,
		Grade:           gradePtr(rpt.Payload.OverallScore),
		Platforms:       platformViews(rpt.Payload.PlatformScores),
		GapGroups:       groupGaps(rpt.Payload.ContentGaps),
		Competitors:     competitorViews(rpt.Payload.Competitors),
		Recommendations: sortRecommendations(rpt.Payload.Recommendations),
	}

	if opts.ShowMetadata && !rpt.Metadata.IsEmpty() {
		md := rpt.Metadata
		v.Metadata = &md
	}
	return v
}

func platformViews(scores []model.PlatformScore) []PlatformView {
	if len(scores) == 0 {
		return nil
	}
	out := make([]PlatformView, 0, len(scores))
	for _, s := range scores {
		out = append(out, PlatformView{
			Platform:       s.Platform,
			Label:          PlatformLabel(s.Platform),
			Score:          s.Score,
			Grade:          Grade(s.Score),
			MentionCount:   s.MentionCount,
			KnowledgeLevel: s.KnowledgeLevel,
		})
	}
	return out
}

func groupGaps(gaps []model.ContentGap) []GapGroup {
	if len(gaps) == 0 {
		return nil
	}
	bySeverity := make(map[model.Severity][]model.ContentGap)
	for _, g := range gaps {
		sev := g.Severity
		if _, ok := severityLabels[sev]; !ok {
			sev = model.SeverityUnknown
		}
		bySeverity[sev] = append(bySeverity[sev], g)
	}

	var out []GapGroup
	for _, sev := range severityOrder {
		items := bySeverity[sev]
		if len(items) == 0 {
			continue
		}
		out = append(out, GapGroup{Severity: sev, Label: severityLabels[sev], Gaps: items})
	}
	return out
}

func sortRecommendations(recs []model.Recommendation) []model.Recommendation {
	if len(recs) == 0 {
		return nil
	}
	out := make([]model.Recommendation, len(recs))
	copy(out, recs)
	sort.SliceStable(out, func(i, j int) bool {
		return rankOf(out[i].Priority) < rankOf(out[j].Priority)
	})
	return out
}

func rankOf(p model.Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return priorityRank[model.PriorityUnknown]
}

// competitorViews orders by explicit rank first, then by score descending.
func competitorViews(comps []model.Competitor) []CompetitorView {
	if len(comps) == 0 {
		return nil
	}
	out := make([]CompetitorView, 0, len(comps))
	for _, c := range comps {
		out = append(out, CompetitorView{
			Name:         c.Name,
			Website:      c.Website,
			Rank:         c.Rank,
			OverallScore: c.OverallScore,
			Grade:        gradePtr(c.OverallScore),
			Platforms:    platformViews(c.PlatformScores),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Rank > 0) != (b.Rank > 0) {
			return a.Rank > 0
		}
		if a.Rank > 0 && a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return scoreOf(a.OverallScore) > scoreOf(b.OverallScore)
	})
	return out
}

func scoreOf(s *float64) float64 {
	if s == nil {
		return -1
	}
	return *s
}
