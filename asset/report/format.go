package report

import "fmt"

// Format represents output format
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat returns the format named by value.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatText, FormatJSON, FormatTable:
		return Format(value), nil
	}
	return "", fmt.Errorf("unsupported output format %q, expected one of: text, json, table", value)
}
