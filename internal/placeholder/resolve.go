// Where: cli/internal/placeholder/resolve.go
// What: Substitution engine and completeness validation.
// Why: Substitute optimistically, then re-scan so the caller gets the full
//      missing-name set instead of just the first offender.
package placeholder

import (
	"fmt"
	"strings"
)

// UnresolvedError reports placeholders that survived substitution.
// Names is sorted and deduplicated.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unresolved placeholders: %s", strings.Join(e.Names, ", "))
}

// Substitute replaces every bound token in body with its quoted value.
// Unresolved tokens are left verbatim; the validator picks them up on
// the re-scan and reports them by name. Substitute itself never fails.
func Substitute(body string, vars map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(body, func(raw string) string {
		name := raw[2 : len(raw)-2]
		value, ok := vars[name]
		if !ok {
			return raw
		}
		return Quote(value)
	})
}

// Resolve substitutes vars into body and validates completeness.
// On success the returned document contains no placeholder tokens that
// were present in body. Tokens introduced by substituted values are not
// reported: the unresolved set only ever holds names the template
// declares and vars leaves unbound, so a value whose text looks like a
// token can never fail a fully bound resolution.
func Resolve(body string, vars map[string]string) (string, error) {
	declared := map[string]bool{}
	for _, tok := range Scan(body) {
		declared[tok.Name] = true
	}

	resolved := Substitute(body, vars)

	var missing []string
	for _, name := range Names(Scan(resolved)) {
		if _, bound := vars[name]; declared[name] && !bound {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return "", &UnresolvedError{Names: missing}
	}
	return resolved, nil
}
