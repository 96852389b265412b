package inflect

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/wordcase/wcerrors"
)

// builtinIrregulars maps lowercase singular nouns to their plural.
var builtinIrregulars = map[string]string{
	"person":    "people",
	"man":       "men",
	"woman":     "women",
	"child":     "children",
	"tooth":     "teeth",
	"foot":      "feet",
	"mouse":     "mice",
	"goose":     "geese",
	"ox":        "oxen",
	"cactus":    "cacti",
	"nucleus":   "nuclei",
	"fungus":    "fungi",
	"syllabus":  "syllabi",
	"analysis":  "analyses",
	"diagnosis": "diagnoses",
	"thesis":    "theses",
	"crisis":    "crises",
}

// builtinAcronyms maps uppercase acronyms to their plural spelling.
var builtinAcronyms = map[string]string{
	"API":  "APIs",
	"ID":   "IDs",
	"HTML": "HTMLs",
	"URL":  "URLs",
	"CPU":  "CPUs",
	"GPU":  "GPUs",
	"FAQ":  "FAQs",
	"UI":   "UIs",
	"UX":   "UXs",
	"IP":   "IPs",
	"DBM":  "DBMs",
	"ORM":  "ORMs",
	"SDK":  "SDKs",
	"CLI":  "CLIs",
	"DOM":  "DOMs",
	"JSON": "JSONs",
	"PDF":  "PDFs",
}

// Irregulars returns a copy of the built-in irregular noun table.
func Irregulars() map[string]string {
	return copyTable(builtinIrregulars)
}

// Acronyms returns a copy of the built-in acronym table.
func Acronyms() map[string]string {
	return copyTable(builtinAcronyms)
}

func copyTable(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func invert(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[v] = k
	}
	return dst
}

// checkUniquePlurals rejects tables in which two singulars share a plural,
// since Singularize could not pick one. Comparison ignores case.
func checkUniquePlurals(irregulars map[string]string) error {
	seen := make(map[string]string, len(irregulars))
	for _, singular := range slices.Sorted(maps.Keys(irregulars)) {
		plural := strings.ToLower(irregulars[singular])
		if other, ok := seen[plural]; ok && !strings.EqualFold(other, singular) {
			return &wcerrors.ConfigError{
				Option:  "irregulars",
				Value:   irregulars[singular],
				Message: fmt.Sprintf("plural is shared by %q and %q", other, singular),
			}
		}
		seen[plural] = singular
	}
	return nil
}
