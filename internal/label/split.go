// Package label produces the names printed next to debug values: it splits
// a comma-joined list of expressions and recovers argument text from the
// source of a call site.
package label

import "strings"

// Split breaks names at top-level commas. Parentheses, brackets, braces and
// angle brackets nest; commas inside string, raw string and rune literals
// never split. Each label is trimmed of surrounding space. Split returns nil
// for blank input.
func Split(names string) []string {
	if strings.TrimSpace(names) == "" {
		return nil
	}
	var (
		labels []string
		depth  int
		quote  byte
		start  int
	)
	for i := 0; i < len(names); i++ {
		c := names[i]
		if quote != 0 {
			switch {
			case c == '\\' && quote != '`':
				i++
			case c == quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			depth--
		case ',':
			if depth > 0 {
				continue
			}
			labels = append(labels, strings.TrimSpace(names[start:i]))
			start = i + 1
		}
	}
	return append(labels, strings.TrimSpace(names[start:]))
}

// At returns labels[i], or "?" when there is no usable label at i.
func At(labels []string, i int) string {
	if i < len(labels) && labels[i] != "" {
		return labels[i]
	}
	return "?"
}
