package reversetranslate

import (
	"testing"
	"time"
)

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.FrequencyThreshold != 0.1 {
		t.Errorf("FrequencyThreshold default = %v, want 0.1", cfg.FrequencyThreshold)
	}
	if cfg.MinGCContent != 0.3 {
		t.Errorf("MinGCContent default = %v, want 0.3", cfg.MinGCContent)
	}
	if cfg.MaxGCContent != 0.7 {
		t.Errorf("MaxGCContent default = %v, want 0.7", cfg.MaxGCContent)
	}
	if cfg.Epsilon != 0.05 {
		t.Errorf("Epsilon default = %v, want 0.05", cfg.Epsilon)
	}
	if cfg.N != 600 {
		t.Errorf("N default = %v, want 600", cfg.N)
	}
	if cfg.Budget != 10*time.Minute {
		t.Errorf("Budget default = %v, want 10m", cfg.Budget)
	}
}

func TestConfigWithDefaultsPreservesSetFields(t *testing.T) {
	cfg := Config{N: 10, Budget: time.Second}.WithDefaults()
	if cfg.N != 10 {
		t.Errorf("expected an explicitly set N to survive defaulting, got %v", cfg.N)
	}
	if cfg.Budget != time.Second {
		t.Errorf("expected an explicitly set Budget to survive defaulting, got %v", cfg.Budget)
	}
}
