package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ponder/internal/adapters/detector"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  detector.OutputMode
	}{
		{name: "terminal", isTTY: true, want: detector.ModeTUI},
		{name: "pipe", isTTY: false, want: detector.ModeLinear},
		{name: "ci true", isTTY: true, ci: "true", want: detector.ModeLinear},
		{name: "ci one", isTTY: true, ci: "1", want: detector.ModeLinear},
		{name: "ci false", isTTY: true, ci: "false", want: detector.ModeTUI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		flag string
		auto detector.OutputMode
		want detector.OutputMode
	}{
		{flag: "", auto: detector.ModeTUI, want: detector.ModeTUI},
		{flag: "auto", auto: detector.ModeLinear, want: detector.ModeLinear},
		{flag: "tui", auto: detector.ModeLinear, want: detector.ModeTUI},
		{flag: "linear", auto: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "ci", auto: detector.ModeTUI, want: detector.ModeLinear},
		{flag: "bogus", auto: detector.ModeTUI, want: detector.ModeTUI},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveMode(tt.auto, tt.flag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
