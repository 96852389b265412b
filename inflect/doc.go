// Package inflect pluralizes and singularizes English nouns and formats counts.
//
// Rules are applied in a fixed order. Pluralize consults the irregular noun
// table, then the acronym table (for fully uppercase words), then the suffix
// heuristics:
//
//	Pluralize("child")   // "children"
//	Pluralize("API")     // "APIs"
//	Pluralize("city")    // "cities"
//	Pluralize("box")     // "boxes"
//	Pluralize("DOG")     // "DOGS"
//
// Singularize reverses the irregular table and the suffix rules. The two are not
// mutual inverses for acronyms or ambiguous suffixes.
//
// Irregular results take on the casing pattern of the input word, see
// [DetectPattern] and [ApplyPattern].
//
// # Quantify
//
// [Quantify] formats a count with a unit, pluralizing the unit unless the count
// is exactly one. String counts are printed verbatim:
//
//	Quantify(1, "cat")        // "1 cat"
//	Quantify(0.5, "cat")      // "0.5 cats"
//	Quantify("05.6", "cat")   // "05.6 cats"
//	Quantify(3, "ox", "oxes") // "3 oxes"
//
// # Custom rules
//
// The package-level functions use the built-in tables. [New] builds an
// [Inflector] with extra irregular nouns, acronyms, and uncountable words, either
// from options or from a YAML rules file:
//
//	irregulars:
//	  criterion: criteria
//	acronyms:
//	  SKU: SKUs
//	uncountable:
//	  - sheep
//	  - metadata
package inflect
