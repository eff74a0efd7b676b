package progress

import (
	"testing"
	"time"
)

func TestAt(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		states  []StageState
		percent int
	}{
		{"start", 0, []StageState{StageAnalyzing, StageWaiting, StageWaiting, StageWaiting}, 0},
		{"second stage", 20 * time.Second, []StageState{StageDone, StageAnalyzing, StageWaiting, StageWaiting}, 33},
		{"last stage", 50 * time.Second, []StageState{StageDone, StageDone, StageDone, StageAnalyzing}, 83},
		{"overrun", 10 * time.Minute, []StageState{StageDone, StageDone, StageDone, StageAnalyzing}, MaxPercent},
		{"negative", -time.Second, []StageState{StageAnalyzing, StageWaiting, StageWaiting, StageWaiting}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := At(tt.elapsed)
			if !got.Decorative {
				t.Error("Decorative = false, want true")
			}
			if got.Percent != tt.percent {
				t.Errorf("Percent = %d, want %d", got.Percent, tt.percent)
			}
			for i, s := range got.Stages {
				if s.State != tt.states[i] {
					t.Errorf("stage %d (%s) = %s, want %s", i, s.Platform, s.State, tt.states[i])
				}
			}
		})
	}
}

func TestAt_Labels(t *testing.T) {
	got := At(0).Stages
	want := []string{"Analyzing ChatGPT", "Analyzing Claude", "Analyzing Gemini", "Analyzing Perplexity"}
	for i := range want {
		if got[i].Label != want[i] {
			t.Errorf("Label[%d] = %q, want %q", i, got[i].Label, want[i])
		}
	}
}
