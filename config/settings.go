package config

import (
	"strconv"
	"strings"
)

// Keys of the editable settings form.
const (
	SettingResizeMode   = "resizeMode"
	SettingResizeScale  = "resizeScale"
	SettingResizeWidth  = "resizeWidth"
	SettingResizeHeight = "resizeHeight"
	SettingOutlineColor = "outlineColor"
	SettingFrozenColor  = "frozenColor"
	SettingOutlineWidth = "outlineWidth"
)

// WithSettings returns a copy of c with the parseable form values applied.
// Empty or unparseable fields keep their previous value. The result is not
// validated.
func (c Config) WithSettings(values map[string]string) Config {
	if s := strings.ToLower(strings.TrimSpace(values[SettingResizeMode])); s != "" {
		c.ResizeMode = s
	}
	if f, ok := parseFloatField(values[SettingResizeScale]); ok {
		c.ResizeScale = f
	}
	if i, ok := parseIntField(values[SettingResizeWidth]); ok {
		c.ResizeWidth = i
	}
	if i, ok := parseIntField(values[SettingResizeHeight]); ok {
		c.ResizeHeight = i
	}
	if s := strings.TrimSpace(values[SettingOutlineColor]); s != "" {
		c.OutlineColor = s
	}
	if s := strings.TrimSpace(values[SettingFrozenColor]); s != "" {
		c.FrozenColor = s
	}
	if f, ok := parseFloatField(values[SettingOutlineWidth]); ok {
		c.OutlineWidth = f
	}
	return c
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
