package render

type gradeBucket struct {
	min   float64
	grade string
}

// gradeTable is ordered by descending lower bound.
var gradeTable = []gradeBucket{
	{95, "A+"},
	{90, "A"},
	{85, "A-"},
	{80, "B+"},
	{75, "B"},
	{70, "B-"},
	{65, "C+"},
	{60, "C"},
	{55, "C-"},
	{50, "D+"},
	{40, "D"},
}

const gradeFail = "F"

// Grade maps a 0-100 score to a letter grade. Scores outside the range are clamped.
func Grade(score float64) string {
	score = clampScore(score)
	for _, b := range gradeTable {
		if score >= b.min {
			return b.grade
		}
	}
	return gradeFail
}

func clampScore(score float64) float64 {
	switch {
	case score != score:
		return 0
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

func gradePtr(score *float64) string {
	if score == nil {
		return ""
	}
	return Grade(*score)
}
