package primitive

import (
	"slices"
	"strings"
)

// categoryNames maps the spellings accepted in configuration and on the
// command line to category bits.
var categoryNames = map[string]CategoryEnum{
	"safe-number":   CategorySafeNumber,
	"unsafe-number": CategoryUnsafeNumber,
	"text-number":   CategoryTextNumber,
	"numeric-bool":  CategoryNumericBool,
	"textual-bool":  CategoryTextualBool,
	"datetime":      CategoryDatetime,
	"timestamp":     CategoryTimestamp,
	"duration":      CategoryDuration,
	"nanoseconds":   CategoryNanoseconds,
	"seconds":       CategorySeconds,
	"all":           CategoryAll,
	"none":          CategoryNone,
}

// CategoryByName resolves one category spelling, case-insensitively.
func CategoryByName(name string) (CategoryEnum, bool) {
	c, ok := categoryNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// CategoryNames returns the accepted category spellings.
func CategoryNames() []string {
	out := make([]string, 0, len(categoryNames))
	for name := range categoryNames {
		out = append(out, name)
	}
	slices.Sort(out)

	return out
}
