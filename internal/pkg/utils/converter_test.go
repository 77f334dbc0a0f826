//go:build unit
// +build unit

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"positive", "42", 42},
		{"negative", "-7", -7},
		{"zero", "0", 0},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"float", "3.14", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertToInt(tt.value))
		})
	}
}

func TestConvertToInt64(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int64
	}{
		{"positive", "9000000000", 9000000000},
		{"empty", "", 0},
		{"garbage", "id-1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertToInt64(tt.value))
		})
	}
}

func TestConvertToBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true", "true", true},
		{"one", "1", true},
		{"false", "false", false},
		{"empty", "", false},
		{"garbage", "yes please", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertToBool(tt.value))
		})
	}
}
