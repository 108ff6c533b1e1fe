package pipeline

import "strings"

// SplitStages splits a pipeline on '|' characters outside single or double
// quotes. Brackets do not protect a '|' at this level. Each stage is trimmed
// and empty stages are dropped. A backslash keeps the next character from
// opening or closing a quote.
func SplitStages(text string) []string {
	var (
		stages  []string
		current strings.Builder
		quote   rune
		escaped bool
	)

	flush := func() {
		if stage := strings.TrimSpace(current.String()); stage != "" {
			stages = append(stages, stage)
		}
		current.Reset()
	}

	for _, c := range text {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"' || c == '\'':
			if quote == 0 {
				quote = c
			} else if quote == c {
				quote = 0
			}
		case c == '|' && quote == 0:
			flush()
			continue
		}
		current.WriteRune(c)
	}
	flush()

	return stages
}
