package codes

import (
	"fmt"
	"strings"
)

// FormatReport renders a report as plain text.
func FormatReport(r Report) string {
	var b strings.Builder
	b.WriteString("=== BUILDING CODE COMPLIANCE REPORT ===\n\n")
	fmt.Fprintf(&b, "Overall compliance: %d%%\n", r.Compliance.Overall)
	fmt.Fprintf(&b, "Mandatory codes: %d%%\n", r.Compliance.Mandatory)
	fmt.Fprintf(&b, "Recommended codes: %d%%\n\n", r.Compliance.Recommended)

	if len(r.Violations) == 0 {
		b.WriteString("All applicable building codes are satisfied.\n")
		return b.String()
	}
	b.WriteString("CODE VIOLATIONS FOUND:\n\n")
	sections := []struct {
		severity Severity
		title    string
	}{
		{Mandatory, "MANDATORY VIOLATIONS (must fix):"},
		{Recommended, "RECOMMENDED IMPROVEMENTS:"},
		{Optional, "OPTIONAL ENHANCEMENTS:"},
	}
	for _, s := range sections {
		n := 0
		for _, v := range r.Violations {
			if v.Severity != s.severity {
				continue
			}
			if n == 0 {
				b.WriteString(s.title + "\n")
			}
			n++
			fmt.Fprintf(&b, "%d. %s\n   %s\n\n", n, v.Description, v.Recommendation)
		}
	}
	return b.String()
}
