package core

import "testing"

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := RuntimeConfig{}.Normalize()
	def := DefaultConfig()

	if cfg.ScreenW != def.ScreenW || cfg.ScreenH != def.ScreenH {
		t.Errorf("Expected %dx%d, got %dx%d", def.ScreenW, def.ScreenH, cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.TickRate != def.TickRate {
		t.Errorf("Expected tick rate %d, got %d", def.TickRate, cfg.TickRate)
	}
	if cfg.LoadTimeout != def.LoadTimeout {
		t.Errorf("Expected timeout %v, got %v", def.LoadTimeout, cfg.LoadTimeout)
	}
	if cfg.Seed == 0 {
		t.Error("Expected time based seed")
	}
}

func TestNormalizeKeepsValues(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 120, ScreenH: 40, TickRate: 30, Seed: 7}.Normalize()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 || cfg.TickRate != 30 || cfg.Seed != 7 {
		t.Errorf("Normalize() changed explicit values: %+v", cfg)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionConfirm, "Confirm"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}
