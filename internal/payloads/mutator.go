package payloads

import "fmt"

// DefaultAliases are the global objects a bare identifier can be indexed through, in
// order of preference
var DefaultAliases = []string{"self", "top", "this", "window", "parent"}

// Mutator renders an identifier as equivalent JavaScript expressions that avoid the
// literal token
type Mutator struct {
	aliases []string
}

// NewMutator creates a mutator over the given alias list. Nil uses DefaultAliases.
func NewMutator(aliases []string) *Mutator {
	if aliases == nil {
		aliases = DefaultAliases
	}
	return &Mutator{aliases: append([]string(nil), aliases...)}
}

// Aliases returns the alias list in use
func (m *Mutator) Aliases() []string {
	return append([]string(nil), m.aliases...)
}

// Mutate returns the ordered candidates for token: the concatenation split first
// ('al'+'ert'), then per alias the bracket form (self['alert']) followed by the split
// bracket form (self['al'+'ert']). Tokens of length 2 or less are never split.
func (m *Mutator) Mutate(token string) []string {
	var mutations []string
	if len(token) > 2 {
		mutations = append(mutations, SplitConcat(token))
	}
	return append(mutations, m.Accessors(token)...)
}

// Accessors returns only the alias-indexed forms of token, in Mutate order
func (m *Mutator) Accessors(token string) []string {
	var accessors []string
	for _, alias := range m.aliases {
		accessors = append(accessors, Bracket(alias, token))
		if len(token) > 2 {
			accessors = append(accessors, SplitBracket(alias, token))
		}
	}
	return accessors
}

// Split cuts token at its midpoint; the second half gets the extra byte
func Split(token string) (string, string) {
	mid := len(token) / 2
	return token[:mid], token[mid:]
}

// SplitConcat renders token as two concatenated string literals: 'al'+'ert'
func SplitConcat(token string) string {
	first, second := Split(token)
	return fmt.Sprintf("'%s'+'%s'", first, second)
}

// Bracket renders alias['token']
func Bracket(alias, token string) string {
	return fmt.Sprintf("%s['%s']", alias, token)
}

// SplitBracket renders alias['to'+'ken']
func SplitBracket(alias, token string) string {
	return alias + "[" + SplitConcat(token) + "]"
}

// PropertyBracket renders a property access without a receiver: ['token']
func PropertyBracket(token string) string {
	return Bracket("", token)
}

// PropertySplitBracket renders ['to'+'ken']
func PropertySplitBracket(token string) string {
	return SplitBracket("", token)
}
