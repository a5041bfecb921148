package entities

import "strings"

// DefaultLocale is used when a requested locale has no entry
const DefaultLocale = "en"

// LocalizedText is a text value tagged with its locale
type LocalizedText struct {
	Locale string `json:"locale"`
	Text   string `json:"text"`
}

// Species is the taxonomy record of an entity
type Species struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Descriptions      []LocalizedText `json:"descriptions,omitempty"`
	Genera            []LocalizedText `json:"genera,omitempty"`
	EvolutionChainURL string          `json:"evolution_chain_url,omitempty"`
	Varieties         []Variety       `json:"varieties,omitempty"`
}

// Variety is one entity that belongs to a species
type Variety struct {
	IsDefault bool          `json:"is_default"`
	Entity    NamedResource `json:"entity"`
}

// HasEvolutionChain reports whether the species references an evolution chain
func (s *Species) HasEvolutionChain() bool {
	return s != nil && s.EvolutionChainURL != ""
}

// Description returns the first description for locale, falling back to the
// default locale. Control whitespace from the source text is collapsed.
func (s *Species) Description(locale string) string {
	return normalizeText(pickLocale(s.Descriptions, locale))
}

// Genus returns the display category for locale, falling back to the default locale
func (s *Species) Genus(locale string) string {
	return pickLocale(s.Genera, locale)
}

func pickLocale(texts []LocalizedText, locale string) string {
	for _, t := range texts {
		if t.Locale == locale {
			return t.Text
		}
	}
	if locale != DefaultLocale {
		return pickLocale(texts, DefaultLocale)
	}
	return ""
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
