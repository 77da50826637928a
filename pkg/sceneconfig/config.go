// Package sceneconfig loads the engine's tunable limits (timeouts,
// resolution caps, the forbidden-identifier list, default scene bounds)
// from TOML, falling back to hardcoded defaults when no config file is
// supplied.
package sceneconfig

import (
	"time"

	"github.com/pelletier/go-toml/v2"
)

// SceneBounds is the axis-aligned volume conventionally used for
// generation, matching the [-3,3]x[-1.5,1.5]x[-6,-1] convention.
type SceneBounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

func (b SceneBounds) Center() (x, y, z float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2, (b.MinZ + b.MaxZ) / 2
}

// DefaultSceneBounds is the convention documented for generation: ground at
// y=-1.5, scene centered at (0,0,-3).
var DefaultSceneBounds = SceneBounds{
	MinX: -3, MaxX: 3,
	MinY: -1.5, MaxY: 1.5,
	MinZ: -6, MaxZ: -1,
}

// Config is the engine's tunable surface.
type Config struct {
	TimeoutSeconds       int      `toml:"timeout_seconds"`
	MaxMarchResolution   int      `toml:"max_march_resolution"`
	RingBufferSize       int      `toml:"ring_buffer_size"`
	ForbiddenIdentifiers []string `toml:"forbidden_identifiers"`
	SceneBounds          SceneBounds
}

// Timeout returns the configured sandbox timeout, clamped to the [60s,
// 300s] range the spec recommends.
func (c Config) Timeout() time.Duration {
	s := c.TimeoutSeconds
	if s < 60 {
		s = 60
	}
	if s > 300 {
		s = 300
	}
	return time.Duration(s) * time.Second
}

// DefaultForbiddenIdentifiers is the static validator's default deny list.
var DefaultForbiddenIdentifiers = []string{
	"fetch", "XMLHttpRequest", "Worker", "eval", "Function", "import", "require",
	"globalThis", "window", "document", "self", "postMessage", "importScripts",
	"SharedArrayBuffer", "Atomics", "WebSocket", "EventSource", "navigator",
	"location", "localStorage", "sessionStorage", "indexedDB", "crypto",
	"setTimeout", "setInterval", "requestAnimationFrame",
}

// Default returns the hardcoded fallback configuration.
func Default() Config {
	return Config{
		TimeoutSeconds:       120,
		MaxMarchResolution:   256,
		RingBufferSize:       50,
		ForbiddenIdentifiers: append([]string(nil), DefaultForbiddenIdentifiers...),
		SceneBounds:          DefaultSceneBounds,
	}
}

// Load decodes TOML config data on top of Default(), so an omitted field
// keeps its hardcoded default rather than zeroing out.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.ForbiddenIdentifiers) == 0 {
		cfg.ForbiddenIdentifiers = append([]string(nil), DefaultForbiddenIdentifiers...)
	}
	return cfg, nil
}
