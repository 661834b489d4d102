// Package langmeta provides display metadata for the languages metaloc
// targets. The display name is what translation prompts embed, so every
// tag used as a target must have an entry here.
package langmeta

import "github.com/catalog-tools/metaloc/langdetect"

// Meta describes language display metadata.
type Meta struct {
	Name string
	Flag string
}

// Registry contains metadata for every supported target language.
// Extending the target set means adding an entry here and to
// batch.Targets; the two must stay in sync.
var Registry = map[langdetect.Lang]Meta{
	langdetect.ZhCN: {Name: "Simplified Chinese", Flag: "🇨🇳"},
	langdetect.ZhTW: {Name: "Traditional Chinese", Flag: "🇹🇼"},
	langdetect.En:   {Name: "English", Flag: "🇺🇸"},
}

// Resolve returns display metadata for a language tag. The second return
// is false for unregistered tags (including Auto, which is never a valid
// translation target).
func Resolve(lang langdetect.Lang) (Meta, bool) {
	m, ok := Registry[lang]
	return m, ok
}
