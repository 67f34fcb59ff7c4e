package match

import (
	"slices"
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"text", "text"},
		{"Text", "text"},
		{"toolTip", "tooltip"},
		{"tool_tip", "tooltip"},
		{"tool-tip", "tooltip"},
		{"help.text", "helptext"},
		{"ui:Label", "uilabel"},
		{"HTMLCaption", "htmlcaption"},
		{"TITLE", "title"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"textId", []string{"text", "Id"}},
		{"HTMLCaption", []string{"HTML", "Caption"}},
		{"labelURL", []string{"label", "URL"}},
		{"place-holder", []string{"place", "holder"}},
		{"x:title", []string{"x", "title"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"a", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"textId", []string{"text", "id"}},
		{"iconPath", []string{"icon", "path"}},
		{"Description", []string{"description"}},
		{"short_desc", []string{"short", "desc"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
