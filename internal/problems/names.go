package problems

import (
	"math"
	"strings"
	"unicode"
)

// sourceSuffixes maps each recognized file suffix to its language tag.
var sourceSuffixes = []struct {
	suffix   string
	language string
}{
	{".java", "java"},
	{".cpp", "cpp"},
	{".py", "py"},
	{".js", "js"},
}

// IsSourceFile reports whether name ends in a recognized suffix.
func IsSourceFile(name string) bool {
	_, ok := matchSuffix(name)
	return ok
}

// StripSourceSuffix removes a recognized suffix from name. Names without one
// are returned unchanged.
func StripSourceSuffix(name string) string {
	if suffix, ok := matchSuffix(name); ok {
		return strings.TrimSuffix(name, suffix)
	}
	return name
}

// Language returns the text after the last dot of name, or "" when name has
// no dot.
func Language(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// NumericKey parses the first run of ASCII digits in name. It returns 0 when
// there are no digits and saturates instead of overflowing.
func NumericKey(name string) int {
	start := strings.IndexFunc(name, isASCIIDigit)
	if start < 0 {
		return 0
	}

	n := 0
	for _, r := range name[start:] {
		if !isASCIIDigit(r) {
			break
		}
		d := int(r - '0')
		if n > (math.MaxInt-d)/10 {
			return math.MaxInt
		}
		n = n*10 + d
	}
	return n
}

// ProblemDisplayName cleans a folder name for display: dashes and
// underscores become single spaces and a leading number is dropped, so
// "0001-two-sum" reads "two sum".
func ProblemDisplayName(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || unicode.IsSpace(r)
	})
	cleaned := strings.Join(fields, " ")

	i := strings.IndexFunc(cleaned, func(r rune) bool { return !isASCIIDigit(r) })
	if i < 0 {
		// All digits: keep the name rather than showing nothing.
		return cleaned
	}
	if i > 0 {
		cleaned = strings.TrimLeftFunc(cleaned[i:], unicode.IsSpace)
	}
	return cleaned
}

func matchSuffix(name string) (string, bool) {
	for _, s := range sourceSuffixes {
		if strings.HasSuffix(name, s.suffix) {
			return s.suffix, true
		}
	}
	return "", false
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
