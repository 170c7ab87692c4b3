package theme

import "strings"

// Resolve returns the token settings an editor would apply to scope. A rule
// selector matches when it equals scope or is a dot-separated prefix of it;
// the longest matching selector wins and later rules win ties. Selectors
// with descendant parts (containing spaces) are ignored.
func (t *Theme) Resolve(scope string) (Settings, bool) {
	if t == nil {
		return Settings{}, false
	}

	var (
		best    Settings
		bestLen = -1
	)
	for _, rule := range t.TokenColors {
		for _, selector := range rule.Scope {
			if strings.ContainsRune(selector, ' ') || !matches(selector, scope) {
				continue
			}
			if len(selector) >= bestLen {
				best = rule.Settings
				bestLen = len(selector)
			}
		}
	}
	return best, bestLen >= 0
}

func matches(selector, scope string) bool {
	return scope == selector || strings.HasPrefix(scope, selector+".")
}
