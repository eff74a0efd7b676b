package render

import (
	"fmt"
	"strings"
	"time"
)

// Markdown writes v as a standalone markdown document.
func Markdown(v View) string {
	var b strings.Builder

	title := v.BusinessName
	if title == "" {
		title = v.WebsiteURL
	}
	fmt.Fprintf(&b, "# AI Visibility Report: %s\n\n", title)
	fmt.Fprintf(&b, "- Website: %s\n", v.WebsiteURL)
	if v.BusinessType != "" {
		fmt.Fprintf(&b, "- Business type: %s\n", v.BusinessType)
	}
	if v.Location != "" {
		fmt.Fprintf(&b, "- Location: %s\n", v.Location)
	}
	if v.OverallScore != nil {
		fmt.Fprintf(&b, "- Overall score: %s (%s)\n", formatScore(*v.OverallScore), v.Grade)
	}
	b.WriteString("\n")

	if len(v.Platforms) > 0 {
		b.WriteString("## Platform scores\n\n")
		b.WriteString("| Platform | Score | Grade | Mentions |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, p := range v.Platforms {
			mentions := "-"
			if p.MentionCount != nil {
				mentions = fmt.Sprintf("%d", *p.MentionCount)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Label, formatScore(p.Score), p.Grade, mentions)
		}
		b.WriteString("\n")
	}

	if len(v.GapGroups) > 0 {
		b.WriteString("## Content gaps\n\n")
		for _, g := range v.GapGroups {
			fmt.Fprintf(&b, "### %s\n\n", g.Label)
			for _, gap := range g.Gaps {
				writeItem(&b, gap.Title, gap.Description)
			}
			b.WriteString("\n")
		}
	}

	if len(v.Competitors) > 0 {
		b.WriteString("## Competitors\n\n")
		for i, c := range v.Competitors {
			line := fmt.Sprintf("%d. %s", i+1, c.Name)
			if c.Website != "" {
				line += fmt.Sprintf(" (%s)", c.Website)
			}
			if c.OverallScore != nil {
				line += fmt.Sprintf(": %s (%s)", formatScore(*c.OverallScore), c.Grade)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	if len(v.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, r := range v.Recommendations {
			title := r.Title
			if r.Priority != "" {
				title = fmt.Sprintf("[%s] %s", strings.ToUpper(string(r.Priority)), r.Title)
			}
			writeItem(&b, title, r.Description)
		}
		b.WriteString("\n")
	}

	if md := v.Metadata; md != nil {
		b.WriteString("## Run details\n\n")
		if md.ProcessingTimeMs != nil {
			fmt.Fprintf(&b, "- Processing time: %s\n", (time.Duration(*md.ProcessingTimeMs) * time.Millisecond).Round(time.Second))
		}
		if md.CostUSD != nil {
			fmt.Fprintf(&b, "- Cost: $%.4f\n", *md.CostUSD)
		}
		if md.QueryCount != nil {
			fmt.Fprintf(&b, "- Queries: %d\n", *md.QueryCount)
		}
		if md.ViewCount != nil {
			fmt.Fprintf(&b, "- Views: %d\n", *md.ViewCount)
		}
	}

	return b.String()
}

func writeItem(b *strings.Builder, title, desc string) {
	if desc == "" {
		fmt.Fprintf(b, "- **%s**\n", title)
		return
	}
	fmt.Fprintf(b, "- **%s**: %s\n", title, desc)
}

func formatScore(s float64) string {
	if s == float64(int64(s)) {
		return fmt.Sprintf("%d", int64(s))
	}
	return fmt.Sprintf("%.1f", s)
}
