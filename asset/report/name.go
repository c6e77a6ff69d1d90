package report

import "strings"

// DisplayName returns the final path segment of source, or source itself when
// no segment can be extracted.  Trailing separators and "." segments are
// skipped, so "assets/." names "assets".
func DisplayName(source string) string {
	trimmed := strings.TrimRight(source, `/\`)
	for strings.HasSuffix(trimmed, "/.") || strings.HasSuffix(trimmed, `\.`) {
		trimmed = strings.TrimRight(trimmed[:len(trimmed)-1], `/\`)
	}
	if idx := strings.LastIndexAny(trimmed, `/\`); idx != -1 {
		trimmed = trimmed[idx+1:]
	}
	switch trimmed {
	case "", ".", "..":
		return source
	}
	return trimmed
}
