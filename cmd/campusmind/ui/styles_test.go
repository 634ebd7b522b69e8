package ui

import "testing"

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("CAMPUSMIND_DARK_MODE", "1")
	if !DetectTheme().IsDark {
		t.Fatal("expected dark theme when CAMPUSMIND_DARK_MODE=1")
	}

	t.Setenv("CAMPUSMIND_DARK_MODE", "")
	if DetectTheme().IsDark {
		t.Fatal("expected light theme when CAMPUSMIND_DARK_MODE is unset")
	}
}

func TestDetectThemeFromColorFgBg(t *testing.T) {
	t.Setenv("CAMPUSMIND_DARK_MODE", "")

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Fatal("background index 0 should detect dark")
	}

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Fatal("background index 15 should detect light")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("dark") != DarkTheme() {
		t.Fatal("dark should force the dark theme")
	}
	if ThemeByName("light") != LightTheme() {
		t.Fatal("light should force the light theme")
	}
	if ThemeByName("LIGHT") != LightTheme() {
		t.Fatal("theme names are case-insensitive")
	}
}

func TestNewStylesCarriesTheme(t *testing.T) {
	styles := NewStyles(DarkTheme())
	if !styles.Theme.IsDark {
		t.Fatal("styles must retain the theme they were built from")
	}
}
