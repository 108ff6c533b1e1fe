package pipeline

import "strings"

// Tokenize splits one stage into its name and raw argument tokens.
//
// Tokens are separated by ASCII spaces, except inside a quoted region or a
// [...] or (...) group. The first quote character seen opens a region that
// only the same character closes, and quotes are only tracked outside
// groups. Group depth is counted outside quotes. A backslash and the
// character after it are both kept; unescaping is left to literal parsing.
// Unterminated quotes or groups are not errors: the rest of the input joins
// the current token.
func Tokenize(stage string) []string {
	var (
		tokens   []string
		current  strings.Builder
		quote    rune
		brackets int
		parens   int
		escaped  bool
	)

	for _, c := range stage {
		if escaped {
			escaped = false
			current.WriteRune(c)
			continue
		}

		switch {
		case c == '\\':
			escaped = true
		case (c == '"' || c == '\'') && brackets == 0 && parens == 0:
			if quote == 0 {
				quote = c
			} else if quote == c {
				quote = 0
			}
		case quote != 0:
		case c == '[':
			brackets++
		case c == ']' && brackets > 0:
			brackets--
		case c == '(':
			parens++
		case c == ')' && parens > 0:
			parens--
		case c == ' ' && brackets == 0 && parens == 0:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			continue
		}
		current.WriteRune(c)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
