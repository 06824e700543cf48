package config

import "testing"

func TestWithSettings_ParsesAndKeepsInvalid(t *testing.T) {
	base := DefaultConfig()
	got := base.WithSettings(map[string]string{
		SettingResizeMode:   "Dimensions",
		SettingResizeScale:  "abc",
		SettingResizeWidth:  "64",
		SettingResizeHeight: " 48 ",
		SettingOutlineColor: "#00ff00",
		SettingOutlineWidth: "3.5",
	})
	if got.ResizeMode != "dimensions" || got.ResizeWidth != 64 || got.ResizeHeight != 48 {
		t.Fatalf("resize fields not applied: %+v", got)
	}
	if got.ResizeScale != base.ResizeScale {
		t.Fatalf("invalid scale should keep previous value, got %v", got.ResizeScale)
	}
	if got.OutlineColor != "#00ff00" || got.OutlineWidth != 3.5 {
		t.Fatalf("outline fields not applied: %+v", got)
	}
	if got.FrozenColor != base.FrozenColor {
		t.Fatalf("empty field should keep previous value")
	}
	if base.ResizeMode != "none" {
		t.Fatalf("receiver modified")
	}
}

func TestWithSettings_ValidateAfterwards(t *testing.T) {
	got := DefaultConfig().WithSettings(map[string]string{SettingResizeMode: "dimensions"})
	_ = got.Validate()
	if got.ResizeMode != "none" {
		t.Fatalf("dimensions without size should be rejected, got %q", got.ResizeMode)
	}
}
