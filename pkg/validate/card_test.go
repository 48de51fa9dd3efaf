package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCreditCard(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "16 digits", input: "1234567890123456", valid: true},
		{name: "Too short", input: "12345", valid: false},
		{name: "Letters mixed in", input: "abcd123456789012", valid: false},
		{name: "17 digits", input: "12345678901234567", valid: false},
		{name: "Empty", input: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCreditCard(tt.input))
		})
	}
}

func TestIsPIN(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "4 digits", input: "1234", valid: true},
		{name: "3 digits", input: "123", valid: false},
		{name: "Non numeric", input: "12a4", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPIN(tt.input))
		})
	}
}

func TestIsCUIT(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "11 digits", input: "20345678901", valid: true},
		{name: "Too short", input: "2034567890", valid: false},
		{name: "With dashes", input: "20-3456789-1", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCUIT(tt.input))
		})
	}
}
