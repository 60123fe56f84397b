package ui

import (
	"testing"

	"github.com/five82/responsive/internal/breakpoint"
	"github.com/five82/responsive/internal/styles"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != "Nightfox" || names[1] != "Slate" {
		t.Fatalf("ThemeNames() = %v, want [Nightfox Slate]", names)
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Slate" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Slate", got)
	}
	if got := NextTheme("Slate"); got != "Nightfox" {
		t.Fatalf("NextTheme(Slate) = %q, want Nightfox", got)
	}
	if got := NextTheme("Unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(Unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemeClassColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range breakpoint.Classes {
			if th.ClassColors[c] == "" {
				t.Fatalf("theme %s has no color for %v", name, c)
			}
		}
	}
}

func TestSheet_FlexAndWeightSurviveScaling(t *testing.T) {
	scaled := styles.ScaleSheet(GetTheme("Slate").Sheet(), func(v float64) float64 { return v * 3 })
	panel := scaled["panel"]
	if panel["flex"] != 1 {
		t.Fatalf("panel flex = %v, want 1 unscaled", panel["flex"])
	}
	if panel["paddingHorizontal"] != 6.0 {
		t.Fatalf("panel paddingHorizontal = %v, want 6", panel["paddingHorizontal"])
	}
	if scaled["title"]["fontWeight"] != 700 {
		t.Fatalf("title fontWeight = %v, want 700 unscaled", scaled["title"]["fontWeight"])
	}
}
