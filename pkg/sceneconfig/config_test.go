package sceneconfig

import "testing"

func TestDefaultTimeoutWithinRecommendedRange(t *testing.T) {
	cfg := Default()
	to := cfg.Timeout()
	if to.Seconds() < 60 || to.Seconds() > 300 {
		t.Fatalf("default timeout %v out of [60s,300s]", to)
	}
}

func TestTimeoutClampsOutOfRangeValues(t *testing.T) {
	cfg := Default()
	cfg.TimeoutSeconds = 10
	if cfg.Timeout().Seconds() != 60 {
		t.Fatalf("expected clamp to 60s, got %v", cfg.Timeout())
	}
	cfg.TimeoutSeconds = 1000
	if cfg.Timeout().Seconds() != 300 {
		t.Fatalf("expected clamp to 300s, got %v", cfg.Timeout())
	}
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error: %v", err)
	}
	if len(cfg.ForbiddenIdentifiers) != len(DefaultForbiddenIdentifiers) {
		t.Fatalf("expected default forbidden identifier list to survive an empty load")
	}
}

func TestLoadOverridesTimeoutOnly(t *testing.T) {
	cfg, err := Load([]byte("timeout_seconds = 90\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TimeoutSeconds != 90 {
		t.Fatalf("TimeoutSeconds = %d, want 90", cfg.TimeoutSeconds)
	}
	if cfg.SceneBounds != DefaultSceneBounds {
		t.Fatalf("SceneBounds should keep its default when not overridden")
	}
}

func TestSceneBoundsCenterMatchesConvention(t *testing.T) {
	x, y, z := DefaultSceneBounds.Center()
	if x != 0 || y != 0 || z != -3 {
		t.Fatalf("scene center = (%v,%v,%v), want (0,0,-3)", x, y, z)
	}
}
