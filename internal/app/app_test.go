package app

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/formforge/internal/config"
)

func TestCameraConfigConversion(t *testing.T) {
	cfg := config.Default().Camera
	got := cameraConfig(cfg)

	wantFOV := cfg.FOV * math32.Pi / 180
	if math32.Abs(got.FOV-wantFOV) > 1e-5 {
		t.Errorf("FOV = %v rad, want %v", got.FOV, wantFOV)
	}
	if got.MarginFactor != cfg.MarginFactor {
		t.Errorf("margin = %v, want %v", got.MarginFactor, cfg.MarginFactor)
	}
	if got.MinElevation >= 0 || got.MaxElevation <= 0 {
		t.Errorf("elevation limits = [%v, %v], want range around 0", got.MinElevation, got.MaxElevation)
	}
}

func TestCameraConfigZeroFieldsKeepDefaults(t *testing.T) {
	got := cameraConfig(config.CameraConfig{})

	if got.FOV <= 0 {
		t.Error("zero FOV should fall back to the default")
	}
	if got.MinDistance <= 0 {
		t.Error("zero min distance should fall back to the default")
	}
}
