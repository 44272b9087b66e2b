package content

import "strings"

// Common book-name abbreviations accepted in user input.
var bookAbbreviations = map[string]string{
	"gen":   "Genesis",
	"ex":    "Exodus",
	"exo":   "Exodus",
	"lev":   "Leviticus",
	"num":   "Numbers",
	"deut":  "Deuteronomy",
	"josh":  "Joshua",
	"judg":  "Judges",
	"ps":    "Psalm",
	"psa":   "Psalm",
	"prov":  "Proverbs",
	"eccl":  "Ecclesiastes",
	"isa":   "Isaiah",
	"jer":   "Jeremiah",
	"lam":   "Lamentations",
	"ezek":  "Ezekiel",
	"dan":   "Daniel",
	"matt":  "Matthew",
	"mt":    "Matthew",
	"mk":    "Mark",
	"lk":    "Luke",
	"jn":    "John",
	"rom":   "Romans",
	"cor":   "Corinthians",
	"gal":   "Galatians",
	"eph":   "Ephesians",
	"phil":  "Philippians",
	"col":   "Colossians",
	"thess": "Thessalonians",
	"tim":   "Timothy",
	"tit":   "Titus",
	"heb":   "Hebrews",
	"jas":   "James",
	"pet":   "Peter",
	"rev":   "Revelation",
}

// ExpandReference rewrites abbreviated book names in a verse reference,
// e.g. "jer 29:11" → "Jeremiah 29:11". Unknown tokens pass through.
func ExpandReference(reference string) string {
	parts := strings.Fields(reference)
	for i, part := range parts {
		key := strings.ToLower(strings.TrimSuffix(part, "."))
		if full, ok := bookAbbreviations[key]; ok {
			parts[i] = full
		}
	}
	return strings.Join(parts, " ")
}
