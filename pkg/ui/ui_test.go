package ui

import "testing"

func TestSilentMode(t *testing.T) {
	t.Cleanup(func() { SetSilent(false) })

	SetSilent(true)
	if !IsSilent() {
		t.Error("expected silent mode enabled")
	}
	SetSilent(false)
	if IsSilent() {
		t.Error("expected silent mode disabled")
	}
}

func TestNoColorMode(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false) })

	SetNoColor(true)
	if !IsNoColor() {
		t.Error("expected no-color mode enabled")
	}
}
