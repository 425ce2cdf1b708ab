package checksum

import (
	"testing"
)

func TestSHA256Calculator_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := calc.CalculateRaw([]byte(tt.content))
			if result != tt.expected {
				t.Errorf("CalculateRaw() = %s, want %s", result, tt.expected)
			}
		})
	}
}

func TestSHA256Calculator_CalculateRaw_DetectsWhitespace(t *testing.T) {
	calc := New()
	if calc.CalculateRaw([]byte("a\n")) == calc.CalculateRaw([]byte("a\r\n")) {
		t.Error("raw checksum must distinguish line endings")
	}
}

func TestSHA256Calculator_CalculateNormalized(t *testing.T) {
	calc := New()

	tests := []struct {
		name        string
		content1    string
		content2    string
		shouldMatch bool
	}{
		{"CRLF vs LF", "line1\r\nline2\r\n", "line1\nline2\n", true},
		{"lone CR", "line1\rline2", "line1\nline2", true},
		{"trailing spaces", "line1   \nline2\t\n", "line1\nline2\n", true},
		{"trailing blank lines", "line1\n\n\n", "line1", true},
		{"leading whitespace is significant", "  line1", "line1", false},
		{"inner whitespace is significant", "a b", "a  b", false},
		{"different content", "line1", "line2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum1 := calc.CalculateNormalized([]byte(tt.content1))
			sum2 := calc.CalculateNormalized([]byte(tt.content2))
			if (sum1 == sum2) != tt.shouldMatch {
				t.Errorf("match = %v, want %v (%q vs %q)", sum1 == sum2, tt.shouldMatch, tt.content1, tt.content2)
			}
			if len(sum1) != 64 {
				t.Errorf("CalculateNormalized() returned hash of length %d, expected 64", len(sum1))
			}
		})
	}
}

func TestSHA256Calculator_ImplementsInterface(t *testing.T) {
	var _ Calculator = New()
}
