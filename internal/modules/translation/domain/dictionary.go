package domain

// Dictionary maps exact source phrases to their rendering per language.
// Lookups never fail: unknown phrases and languages pass through.
type Dictionary struct {
	tables map[Language]map[string]string
}

func NewDictionary() Dictionary {
	return Dictionary{tables: map[Language]map[string]string{}}
}

// Add registers one phrase. Entries for the source language are ignored.
func (d Dictionary) Add(lang Language, source, target string) {
	if lang == Source || source == "" {
		return
	}
	table, ok := d.tables[lang]
	if !ok {
		table = map[string]string{}
		d.tables[lang] = table
	}
	table[source] = target
}

// Merge copies every phrase of other over d.
func (d Dictionary) Merge(other Dictionary) {
	for lang, table := range other.tables {
		for source, target := range table {
			d.Add(lang, source, target)
		}
	}
}

// Lookup returns the mapped phrase and whether an exact mapping existed.
func (d Dictionary) Lookup(text string, target Language) (string, bool) {
	if target == Source {
		return text, true
	}
	if mapped, ok := d.tables[target][text]; ok {
		return mapped, true
	}
	return text, false
}

func (d Dictionary) Translate(text string, target Language) string {
	out, _ := d.Lookup(text, target)
	return out
}

func (d Dictionary) Size(lang Language) int {
	return len(d.tables[lang])
}
