// Package progress produces the stage list shown while a report is generated.
// It is driven only by elapsed wall time and says nothing about the real
// backend state.
package progress

import (
	"time"

	"visibility-srv/internal/report/render"
)

type StageState string

const (
	StageWaiting   StageState = "waiting"
	StageAnalyzing StageState = "analyzing"
	StageDone      StageState = "done"

	// StageDuration is how long each platform stage is shown as analyzing.
	StageDuration = 15 * time.Second
	// MaxPercent is never exceeded; only a real completion finishes the bar.
	MaxPercent = 95
)

var platforms = []string{"chatgpt", "claude", "gemini", "perplexity"}

type Stage struct {
	Platform string     `json:"platform"`
	Label    string     `json:"label"`
	State    StageState `json:"state"`
}

type Snapshot struct {
	Decorative bool    `json:"decorative"`
	Percent    int     `json:"percent"`
	Stages     []Stage `json:"stages"`
}

// At returns the snapshot for a report that has been running for elapsed.
func At(elapsed time.Duration) Snapshot {
	if elapsed < 0 {
		elapsed = 0
	}
	current := int(elapsed / StageDuration)

	stages := make([]Stage, len(platforms))
	for i, p := range platforms {
		state := StageWaiting
		switch {
		case i < current:
			state = StageDone
		case i == current:
			state = StageAnalyzing
		}
		// The last stage keeps analyzing until the real result arrives.
		if current >= len(platforms) && i == len(platforms)-1 {
			state = StageAnalyzing
		}
		stages[i] = Stage{Platform: p, Label: "Analyzing " + render.PlatformLabel(p), State: state}
	}

	total := StageDuration * time.Duration(len(platforms))
	percent := int(elapsed * 100 / total)
	if percent > MaxPercent {
		percent = MaxPercent
	}
	return Snapshot{Decorative: true, Percent: percent, Stages: stages}
}
