package model

// Visibility is the declared visibility of a contract function.
type Visibility string

const (
	// VisibilityExternal marks functions callable only from outside the contract.
	VisibilityExternal Visibility = "external"
	// VisibilityPublic marks functions callable from anywhere.
	VisibilityPublic Visibility = "public"
	// VisibilityInternal marks functions callable from the contract and its children.
	VisibilityInternal Visibility = "internal"
	// VisibilityPrivate marks functions callable only from the declaring contract.
	VisibilityPrivate Visibility = "private"
)

// Visibilities lists every visibility keyword in declaration order.
var Visibilities = []Visibility{
	VisibilityExternal,
	VisibilityPublic,
	VisibilityInternal,
	VisibilityPrivate,
}

func (v Visibility) String() string {
	return string(v)
}

// ParseVisibility maps a keyword to a Visibility. The boolean is false for
// anything that is not a visibility keyword.
func ParseVisibility(s string) (Visibility, bool) {
	for _, v := range Visibilities {
		if string(v) == s {
			return v, true
		}
	}

	return "", false
}

// SymbolKind tells variables and functions apart.
type SymbolKind string

const (
	// KindVariable is a public state variable.
	KindVariable SymbolKind = "variable"
	// KindFunction is a function definition.
	KindFunction SymbolKind = "function"
)

// Symbol is one extracted declaration.
type Symbol struct {
	Kind SymbolKind
	Name string
	// Type is the declared type keyword; set for variables only.
	Type string
	// Visibility is always public for variables.
	Visibility Visibility
	// Signature is the raw matched text, kept for regeneration only.
	Signature string
}

// SymbolKey identifies a symbol for collision handling.
type SymbolKey struct {
	Name       string
	Visibility Visibility
}

// Key returns the (name, visibility) pair of the symbol.
func (s Symbol) Key() SymbolKey {
	return SymbolKey{Name: s.Name, Visibility: s.Visibility}
}
