package gsea

import "github.com/antzucaro/matchr"

// Chip is a probe/alias-to-canonical-symbol annotation table. spec.md §3
// names "chip" as a field an EnrichmentDb carries but never defines it in
// detail; this is the minimal useful shape: an exact alias table with a
// fuzzy fallback for near-miss identifiers (common when a dataset's probe
// IDs come from a slightly different annotation vintage than a gene set's
// symbols).
type Chip struct {
	// aliases maps every known alias (case-sensitive) to its canonical
	// symbol, including the canonical symbol mapping to itself.
	aliases map[Feature]Feature
	symbols []Feature // canonical symbols, for fuzzy search
}

// NewChip builds a Chip from a canonical-symbol -> aliases map. Each
// symbol's own name is always registered as an alias of itself.
func NewChip(symbolAliases map[Feature][]Feature) *Chip {
	c := &Chip{aliases: map[Feature]Feature{}}
	for symbol, aliases := range symbolAliases {
		c.symbols = append(c.symbols, symbol)
		c.aliases[symbol] = symbol
		for _, a := range aliases {
			c.aliases[a] = symbol
		}
	}
	return c
}

// Resolve maps probe to its canonical symbol. It tries an exact alias match
// first; on a miss, it falls back to the closest known symbol by
// Jaro-Winkler similarity, reporting ok=false if even the best match falls
// below minSimilarity.
func (c *Chip) Resolve(probe Feature, minSimilarity float64) (symbol Feature, ok bool) {
	if s, exact := c.aliases[probe]; exact {
		return s, true
	}
	best := -1.0
	var bestSymbol Feature
	for _, s := range c.symbols {
		sim := matchr.JaroWinkler(string(probe), string(s))
		if sim > best {
			best, bestSymbol = sim, s
		}
	}
	if best < minSimilarity {
		return "", false
	}
	return bestSymbol, true
}
