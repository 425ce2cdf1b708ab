package checksum

import (
	"strings"
	"testing"
)

func BenchmarkCalculateNormalized(b *testing.B) {
	content := []byte(strings.Repeat("some text with trailing space   \r\n", 1000))
	calc := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calc.CalculateNormalized(content)
	}
}
