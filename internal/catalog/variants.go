package catalog

import "strings"

// variantRules map a name fragment to the clarifying question asked
// before such an item can be added. Items matching a fragment get the
// NeedsVariant flag at build time; nothing downstream inspects names.
// Checked in order so a name matching two fragments resolves the same
// way on every build.
var variantRules = []struct {
	fragment string
	prompt   string
}{
	{"milk", "I see you want milk. Would you like 1% Low Fat Milk Jug or Reduced Sugar Low Fat Chocolate Milk Jug?"},
	{"coffee", "I see you want coffee. Would you like regular McCafé Premium Roast Coffee or one of our specialty drinks?"},
}

// variantPrompt returns the clarifying question for a name, or "" when
// the item needs no variant choice.
func variantPrompt(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range variantRules {
		if strings.Contains(lower, rule.fragment) {
			return rule.prompt
		}
	}
	return ""
}
