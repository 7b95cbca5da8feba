package domain

// Reserved symbols shared by every automaton kind.
const (
	// Epsilon labels a transition that consumes no input. As a Pop value it
	// is the wildcard "any top, no pop"; as the single element of a Push
	// list it means "push nothing".
	Epsilon = "ε"

	// Bottom is the marker pushed once onto every fresh stack.
	Bottom = "Z0"

	// Blank fills tape cells that were never written.
	Blank = "_"
)

// epsilonAliases are spellings accepted by loaders and normalised to Epsilon.
var epsilonAliases = map[string]struct{}{
	Epsilon:   {},
	"Epsilon": {},
	"eps":     {},
	"epsilon": {},
}

// NormalizeSymbol maps the accepted spellings of epsilon onto Epsilon and
// returns every other symbol unchanged.
func NormalizeSymbol(s string) string {
	if _, ok := epsilonAliases[s]; ok {
		return Epsilon
	}
	return s
}

// IsEpsilon reports whether s is an epsilon spelling.
func IsEpsilon(s string) bool {
	_, ok := epsilonAliases[s]
	return ok
}
