package qclm

import "testing"

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.TargetTemp != 78 {
		t.Errorf("TargetTemp default = %v, want 78", cfg.TargetTemp)
	}
	if cfg.MaxSplitGroupSize != 3 {
		t.Errorf("MaxSplitGroupSize default = %v, want 3", cfg.MaxSplitGroupSize)
	}
}

func TestConfigWithDefaultsPreservesSetFields(t *testing.T) {
	cfg := Config{TargetTemp: 80}.WithDefaults()
	if cfg.TargetTemp != 80 {
		t.Errorf("expected an explicitly set TargetTemp to survive defaulting, got %v", cfg.TargetTemp)
	}
}
