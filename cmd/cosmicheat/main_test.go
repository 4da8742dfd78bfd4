package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cosmic-heat/internal/config"
	"github.com/vovakirdan/cosmic-heat/internal/games/cosmic"
	"github.com/vovakirdan/cosmic-heat/internal/platform/audio"
	"github.com/vovakirdan/cosmic-heat/internal/sim"
)

func TestPreset(t *testing.T) {
	flagDifficulty = "normal"
	tests := []struct {
		args    []string
		want    config.DifficultyPreset
		wantErr bool
	}{
		{nil, config.DifficultyNormal, false},
		{[]string{"hard"}, config.DifficultyHard, false},
		{[]string{"insane"}, "", true},
	}
	for _, tt := range tests {
		got, err := preset(tt.args)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("preset(%v) = (%q, %v), expected (%q, error %v)", tt.args, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestSessionGame(t *testing.T) {
	g, err := sessionGame("cosmic/easy", log.New(io.Discard))
	if err != nil {
		t.Fatalf("sessionGame() error = %v", err)
	}
	if g.ID() != "cosmic/easy" {
		t.Errorf("ID() = %q, expected cosmic/easy", g.ID())
	}

	if _, err := sessionGame("pong", log.New(io.Discard)); err == nil {
		t.Error("sessionGame() should reject unknown modes")
	}
}

func TestKeepOpenHidesClose(t *testing.T) {
	var sink sim.AudioSink = keepOpen{audio.NewMute()}
	if _, ok := sink.(io.Closer); ok {
		t.Error("keepOpen should not expose Close")
	}
}

func TestPrintSummary(t *testing.T) {
	cues := audio.NewMute()
	e, err := sim.New(config.DefaultConfig(), sim.WithSeed(5), sim.WithAudio(cues))
	if err != nil {
		t.Fatalf("sim.New() error = %v", err)
	}

	stats := &simStats{events: make(map[sim.EventKind]int)}
	loop := &sim.Loop{Engine: e, Input: cosmic.NewAutopilot(e, 600), OnTick: stats.observe}
	if err := loop.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var buf bytes.Buffer
	printSummary(&buf, e, stats, cues, 5, config.DifficultyNormal, 0)
	out := buf.String()
	for _, want := range []string{"seed 5", "Ticks:            600", "Boss 3:", "Snapshot hash:"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
