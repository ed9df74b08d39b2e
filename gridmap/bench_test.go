package gridmap_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/gridmap"
)

// BenchmarkParse measures loading a 141×141 grid, the usual puzzle size.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 141
	var sb strings.Builder
	for y := 0; y < n; y++ {
		row := []byte(strings.Repeat(".", n))
		if y%2 == 1 {
			for x := 0; x < n; x += 3 {
				row[x] = '#'
			}
		}
		if y == 0 {
			row[0] = 'S'
		}
		if y == n-1 {
			row[n-1] = 'E'
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}
	input := sb.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gridmap.ParseString(input); err != nil {
			b.Fatal(err)
		}
	}
}
