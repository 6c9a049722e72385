package placeholder

import (
	"regexp"
	"sort"
	"strings"
)

// Template is static text containing zero or more "{{ key }}" slots.
type Template string

// Values maps placeholder keys to their replacement text.
type Values map[string]string

var tokenPattern = regexp.MustCompile(`\{\{ ([A-Za-z0-9_.\-]+) \}\}`)

// Token returns the literal slot text for key, e.g. Token("name") → "{{ name }}".
func Token(key string) string {
	return "{{ " + key + " }}"
}

// Render replaces every occurrence of each key's token in t with its value.
// Keys not referenced by t are ignored and tokens without a value are left
// untouched.
func Render(t Template, v Values) string {
	if len(v) == 0 {
		return string(t)
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, Token(k), v[k])
	}
	return strings.NewReplacer(pairs...).Replace(string(t))
}

// Keys returns the distinct keys referenced by t in order of first appearance.
func Keys(t Template) []string {
	matches := tokenPattern.FindAllStringSubmatch(string(t), -1)
	seen := make(map[string]bool, len(matches))
	var keys []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// Merge returns a new map holding base overlaid by each of overrides in turn.
func Merge(base Values, overrides ...Values) Values {
	out := make(Values, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			out[k] = v
		}
	}
	return out
}
