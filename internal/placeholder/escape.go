// Where: cli/internal/placeholder/escape.go
// What: Quoting and escaping for substituted values.
// Why: A raw value must never break out of its string context in the document.
package placeholder

import (
	"fmt"
	"strings"
)

// Quote renders value as a double-quoted scalar safe to embed in the
// resolved document. Backslashes are handled before quotes so inserted
// escapes are never escaped twice. Newlines, tabs, and other control
// characters are encoded so the scalar stays on one line.
func Quote(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 2)
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
