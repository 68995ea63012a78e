// Where: cli/internal/placeholder/scanner.go
// What: Lexical scanner for color placeholder tokens.
// Why: Token discovery must be a single well-tested pattern, not ad hoc matching.
package placeholder

import (
	"regexp"
	"sort"
)

// Family is the placeholder family prefix recognized in templates.
// Tokens have the form __COLOR<n>__ where <n> is a decimal index.
const Family = "COLOR"

// NamePattern matches a bare placeholder name such as COLOR12.
// The boundary layer uses it to pick variables out of the environment.
var NamePattern = regexp.MustCompile(`^` + Family + `[0-9]+$`)

var tokenPattern = regexp.MustCompile(`__(` + Family + `[0-9]+)__`)

// Token is one placeholder occurrence in a template body.
type Token struct {
	Start int    // byte offset of the first underscore
	End   int    // byte offset past the trailing underscore
	Raw   string // full token text, e.g. "__COLOR3__"
	Name  string // extracted name, e.g. "COLOR3"
}

// Scan returns every placeholder occurrence in body, in document order.
// Near-misses (missing delimiters, no digits) are not tokens and are ignored.
func Scan(body string) []Token {
	matches := tokenPattern.FindAllStringSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, Token{
			Start: m[0],
			End:   m[1],
			Raw:   body[m[0]:m[1]],
			Name:  body[m[2]:m[3]],
		})
	}
	return tokens
}

// Names reduces tokens to the sorted set of distinct placeholder names.
func Names(tokens []Token) []string {
	seen := map[string]bool{}
	var names []string
	for _, tok := range tokens {
		if !seen[tok.Name] {
			seen[tok.Name] = true
			names = append(names, tok.Name)
		}
	}
	sort.Strings(names)
	return names
}
