package style

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/amake/pkg/errors"
)

// FormatError renders an error for the terminal: a pterm error prefix, the
// code of coded errors, the message and the stage or variable it concerns
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var amakeErr *errors.AmakeError
	if !stderrors.As(err, &amakeErr) {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Error [%s]: %s",
		pterm.Error.Prefix.Text,
		pterm.Error.MessageStyle.Sprint(string(amakeErr.Code)),
		Render("Error", err.Error()))
	for _, line := range contextLines(err) {
		b.WriteString("\n  ")
		b.WriteString(Render("Muted", line))
	}
	return b.String()
}

// FormatErrorPlain renders an error without styling
func FormatErrorPlain(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())
	for _, line := range contextLines(err) {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	return b.String()
}

// contextLines lists the string and int details found along the error
// chain, outermost first, as "key: value"
func contextLines(err error) []string {
	seen := map[string]bool{}
	var lines []string
	for err != nil {
		var amakeErr *errors.AmakeError
		if !stderrors.As(err, &amakeErr) {
			break
		}
		keys := make([]string, 0, len(amakeErr.Details))
		for k := range amakeErr.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if seen[k] {
				continue
			}
			switch v := amakeErr.Details[k].(type) {
			case string, int:
				seen[k] = true
				lines = append(lines, fmt.Sprintf("%s: %v", k, v))
			}
		}
		err = amakeErr.Wrapped
	}
	return lines
}
