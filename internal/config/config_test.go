package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/five82/responsive/internal/scaling"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigHasNoOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Overrides.Equal(scaling.Overrides{}) {
		t.Fatalf("Overrides = %+v, want empty", cfg.Overrides)
	}
}

func TestLoad_ParsesIntegersAndFloats(t *testing.T) {
	path := writeConfig(t, `
base_width = 80
[breakpoints]
medium = 100.5
large = 140
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := scaling.Overrides{
		BaseWidth: scaling.Float(80),
		Breakpoints: &scaling.BreakpointOverrides{
			Medium: scaling.Float(100.5),
			Large:  scaling.Float(140),
		},
	}
	if !cfg.Overrides.Equal(want) {
		t.Fatalf("Overrides = %+v, want %+v", cfg.Overrides, want)
	}
}

func TestLoad_PartialKeepsOtherFieldsNil(t *testing.T) {
	path := writeConfig(t, "[breakpoints]\nlarge = 900\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Overrides.BaseWidth != nil {
		t.Fatalf("BaseWidth = %v, want nil", *cfg.Overrides.BaseWidth)
	}
	if cfg.Overrides.Breakpoints == nil || cfg.Overrides.Breakpoints.Medium != nil {
		t.Fatalf("Breakpoints = %+v, want only large", cfg.Overrides.Breakpoints)
	}

	store := scaling.NewStore()
	store.Configure(cfg.Overrides)
	got := store.Config()
	if got.BaseWidth != scaling.DefaultBaseWidth || got.Breakpoints.Medium != scaling.DefaultMediumBreakpoint || got.Breakpoints.Large != 900 {
		t.Fatalf("merged config = %+v", got)
	}
}

func TestLoad_LogSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
log_file = "  ~/demo.log  "
log_level = " debug "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != filepath.Join(home, "demo.log") {
		t.Fatalf("LogFile = %q, want under HOME", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `base_width = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_NonNumericThresholdFails(t *testing.T) {
	path := writeConfig(t, "[breakpoints]\nmedium = \"wide\"\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "medium must be a number") {
		t.Fatalf("Load error = %v, want medium must be a number", err)
	}
}

func TestSave_RoundTripsThroughStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := scaling.Config{BaseWidth: 80, Breakpoints: scaling.Breakpoints{Medium: 100, Large: 140}}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	store := scaling.NewStore()
	if err := Apply(path, store, nil); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if store.Config() != want {
		t.Fatalf("Config() = %+v, want %+v", store.Config(), want)
	}
}

func TestLoad_YAMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "base_width: 90\nbreakpoints:\n  large: 150.5\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := scaling.Overrides{
		BaseWidth:   scaling.Float(90),
		Breakpoints: &scaling.BreakpointOverrides{Large: scaling.Float(150.5)},
	}
	if !cfg.Overrides.Equal(want) {
		t.Fatalf("Overrides = %+v, want %+v", cfg.Overrides, want)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestSave_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	want := scaling.Config{BaseWidth: 64, Breakpoints: scaling.Breakpoints{Medium: 96, Large: 128}}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "base_width: 64") {
		t.Fatalf("saved file = %q, want YAML", data)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := cfg.Overrides.Merge(scaling.DefaultConfig()); got != want {
		t.Fatalf("Merge = %+v, want %+v", got, want)
	}
}

func TestEncode_TOML(t *testing.T) {
	data, err := Encode(scaling.DefaultConfig(), TOML)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	for _, want := range []string{"base_width = 375", "[breakpoints]", "medium = 768", "large = 1024"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("Encode output %q missing %q", data, want)
		}
	}
}

func TestApply_WarnsOnInvertedThresholds(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path := writeConfig(t, "[breakpoints]\nmedium = 200\nlarge = 100\n")

	store := scaling.NewStore()
	if err := Apply(path, store, zap.New(core)); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if store.Config().Breakpoints.Medium != 200 {
		t.Fatalf("inverted thresholds were rejected, want accepted")
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d warnings, want 1", logs.Len())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	if want := filepath.Join(home, "a/b"); got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "base_width = 80\n")
	store := scaling.NewStore()
	if err := Apply(path, store, nil); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	w, err := NewWatcher(path, store, nil)
	if err != nil {
		t.Fatalf("NewWatcher returned error: %v", err)
	}
	w.debounce = 10 * time.Millisecond

	changed := make(chan scaling.Config, 1)
	store.Watch(func(c scaling.Config) {
		select {
		case changed <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(path, []byte("base_width = 120\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case c := <-changed:
		if c.BaseWidth != 120 {
			t.Fatalf("reloaded BaseWidth = %v, want 120", c.BaseWidth)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("store not reconfigured after file write")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	calls := make(chan int, 10)
	for i := 0; i < 5; i++ {
		n := i
		d.trigger(func() { calls <- n })
	}

	select {
	case n := <-calls:
		if n != 4 {
			t.Fatalf("debounced callback = %d, want last (4)", n)
		}
	case <-time.After(time.Second):
		t.Fatalf("debounced callback never ran")
	}
	select {
	case n := <-calls:
		t.Fatalf("extra callback %d ran", n)
	case <-time.After(50 * time.Millisecond):
	}
}
