package parser

import (
	"testing"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`1 + 10`,
		`4 + x + 1`,
		`-2 * 3`,
		`(a + b) / (a - b)`,
		`--x`,
		`1 - 2 - 3`,
		``,
		`(`,
		`1 + `,
		`x / 0`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		_, _ = Parse(input)
	})
}
