// Package display holds the cosmetic viewer settings: theme and font scale.
package display

import (
	"errors"
	"fmt"
	"strings"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme accepts "light" or "dark" in any case. An empty string is the
// default theme.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light, "":
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: %q (use light or dark)", ErrInvalidTheme, s)
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// GlamourStyle names the glamour standard style for the theme.
func (t Theme) GlamourStyle() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

func (t Theme) String() string {
	if t == "" {
		return string(Light)
	}
	return string(t)
}

const (
	MinFontScale     FontScale = 60
	MaxFontScale     FontScale = 200
	DefaultFontScale FontScale = 100
	fontScaleStep    FontScale = 10
)

// FontScale is a percentage of the default viewer text size.
type FontScale int

func (f FontScale) Increase() FontScale {
	return clamp(f + fontScaleStep)
}

func (f FontScale) Decrease() FontScale {
	return clamp(f - fontScaleStep)
}

func (f FontScale) Reset() FontScale {
	return DefaultFontScale
}

// WrapWidth scales a terminal width by the font scale: larger text means
// fewer columns per line. The result is never below 20.
func (f FontScale) WrapWidth(width int) int {
	if f <= 0 {
		f = DefaultFontScale
	}
	w := width * int(DefaultFontScale) / int(f)
	if w < 20 {
		return 20
	}
	return w
}

func (f FontScale) String() string {
	return fmt.Sprintf("%d%%", int(f))
}

func clamp(f FontScale) FontScale {
	if f < MinFontScale {
		return MinFontScale
	}
	if f > MaxFontScale {
		return MaxFontScale
	}
	return f
}
