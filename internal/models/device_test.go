package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceTypeOf(t *testing.T) {
	assert.Equal(t, DeviceMobile, DeviceTypeOf("Android"))
	assert.Equal(t, DeviceMobile, DeviceTypeOf("iphone"))
	assert.Equal(t, DeviceComputer, DeviceTypeOf("Windows"))
	assert.Equal(t, DeviceComputer, DeviceTypeOf(""))
}

func TestDeviceLog_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		browser  string
		expected string
	}{
		{"BothKnown", "Windows", "Chrome", "Windows Chrome"},
		{"Lowercased", "linux", "firefox", "Linux Firefox"},
		{"MissingPlatform", "", "Safari", "Unknown Safari"},
		{"MissingBrowser", "macOS", "", "MacOS Unknown"},
		{"BothMissing", "", "", "Unknown Unknown"},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				d := &DeviceLog{Platform: tt.platform, Browser: tt.browser}
				assert.Equal(t, tt.expected, d.DisplayName())
			},
		)
	}
}
