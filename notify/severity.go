package notify

import (
	"fmt"
	"strings"
)

// Severity classifies a toast's visual treatment.
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

// placement is shared by every toast: fixed to the top right corner, above
// page content.
const placement = "fixed top-4 right-4 p-4 rounded-md shadow-lg z-50"

var severityNames = map[Severity]string{
	Info:    "info",
	Success: "success",
	Error:   "error",
}

var severityColors = map[Severity]string{
	Info:    "bg-blue-500 text-white",
	Success: "bg-green-500 text-white",
	Error:   "bg-red-500 text-white",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Severity(%d)", int(s))
}

// Class returns the CSS classes for a toast of this severity. Unknown
// severities get the info treatment.
func (s Severity) Class() string {
	color, ok := severityColors[s]
	if !ok {
		color = severityColors[Info]
	}

	return placement + " " + color
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range severityNames {
		if n == name {
			return s, nil
		}
	}

	return Info, fmt.Errorf("notify: unknown severity %q", name)
}
