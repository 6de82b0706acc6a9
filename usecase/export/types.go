package export

import (
	"fmt"
	"strings"
)

// Format selects the rendering of an export.
type Format string

const (
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatTypeScript Format = "typescript"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTypeScript}

// ParseFormat accepts a format name; "yml" and "ts" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "typescript", "ts":
		return FormatTypeScript, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// UseCase renders the contract registry. It has no repositories.
type UseCase struct{}
