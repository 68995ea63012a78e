// Where: cli/internal/envutil/envutil.go
// What: Helpers for environment variable handling.
// Why: Environment collection stays at the boundary; inner layers take maps.
package envutil

import (
	"regexp"
	"strings"
)

// ToMap converts "KEY=VALUE" entries, as returned by os.Environ, into a
// map. Entries without an equals sign are skipped. Later entries win.
func ToMap(environ []string) map[string]string {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		vars[key] = value
	}
	return vars
}

// Matching returns the subset of environ whose keys match pattern.
func Matching(environ []string, pattern *regexp.Regexp) map[string]string {
	matched := map[string]string{}
	for key, value := range ToMap(environ) {
		if pattern.MatchString(key) {
			matched[key] = value
		}
	}
	return matched
}
