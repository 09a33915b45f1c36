// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser.
package token // import "github.com/CognitoIQ/go-xpath/token"

//go:generate stringer -type=Kind

// A Kind identifies the lexical class of a Token.
type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// Classified atoms.
	IDENTIFIER // unqualified or prefixed name
	STRING     // unquoted string literal text
	NUMBER     // literal text of a numeric constant
	NODE_TYPE  // text(), comment(), node(), processing-instruction(), document-node(), etc.
	LOCATION   // axis name, recognised because it is followed by "::"
	FUNCTION   // a name recognised as a host-registered extension function

	// Structural tokens.
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	COMMA    // ,
	COLON    // :
	DCOLON   // ::
	AT       // @
	DOT      // .
	DOTDOT   // ..
	DOLLAR   // $
	QMARK    // ? (occurrence indicator / optional cast marker)

	// Operators.
	PLUS    // +
	MINUS   // -
	STAR    // * (multiplication or wildcard, disambiguated by the parser)
	SLASH   // /
	DSLASH  // //
	PIPE    // |
	EQ      // =
	NE      // !=
	LT      // <
	LE      // <=
	GT      // >
	GE      // >=
	ASSIGN  // := (used by let-bindings)

	// Reserved words. Recognised only when the active version includes
	// them; otherwise the scanner emits IDENTIFIER for the same text.
	AND
	OR
	DIV
	MOD
	IDIV
	TO
	IN
	RETURN
	LET
	FOR
	IF
	THEN
	ELSE
	SOME
	EVERY
	SATISFIES
	INSTANCE
	OF
	CASTABLE
	CAST
	TREAT
	AS
)

// Token is a single lexical token: a classification plus the source text
// it was scanned from. String literals are stored unquoted; numeric
// literals retain their original literal text so the parser (not the
// lexer) decides how to interpret leading zeros, exponents, etc.
type Token struct {
	Kind   Kind
	Lexeme string
	// Pos is the zero-based byte offset of the token's first rune in
	// the source text, used for diagnostics.
	Pos int
}

func (t Token) String() string {
	return t.Lexeme
}

// reservedWords maps a lowercase identifier to its reserved-word Kind.
// LookupKeyword filters this table per the active XPath version when
// the lexer consults it.
var reservedWords = map[string]Kind{
	"and":       AND,
	"or":        OR,
	"div":       DIV,
	"mod":       MOD,
	"idiv":      IDIV,
	"to":        TO,
	"in":        IN,
	"return":    RETURN,
	"let":       LET,
	"for":       FOR,
	"if":        IF,
	"then":      THEN,
	"else":      ELSE,
	"some":      SOME,
	"every":     EVERY,
	"satisfies": SATISFIES,
	"instance":  INSTANCE,
	"of":        OF,
	"castable":  CASTABLE,
	"cast":      CAST,
	"treat":     TREAT,
	"as":        AS,
}

// xpath10Words is the subset of reservedWords recognised in XPath 1.0.
var xpath10Words = map[string]bool{
	"and": true, "or": true, "div": true, "mod": true,
}

// LookupKeyword returns the reserved Kind for word in the given XPath
// version, and true, if word is a reserved word in that version.
// Otherwise it returns (IDENTIFIER, false).
func LookupKeyword(word string, version string) (Kind, bool) {
	kind, ok := reservedWords[word]
	if !ok {
		return IDENTIFIER, false
	}
	if version == "1.0" && !xpath10Words[word] {
		return IDENTIFIER, false
	}
	return kind, true
}

// axisNames is the set of axis identifiers recognised before "::".
var axisNames = map[string]bool{
	"child":              true,
	"descendant":         true,
	"attribute":          true,
	"self":                true,
	"descendant-or-self": true,
	"following-sibling":  true,
	"following":          true,
	"namespace":          true,
	"parent":             true,
	"ancestor":           true,
	"preceding-sibling":  true,
	"preceding":          true,
	"ancestor-or-self":   true,
}

// IsAxisName reports whether word names an axis.
func IsAxisName(word string) bool {
	return axisNames[word]
}

// nodeTypeNames is the set of node-kind-test function names.
var nodeTypeNames = map[string]bool{
	"text":                   true,
	"node":                   true,
	"comment":                true,
	"processing-instruction": true,
	"document-node":          true,
	"element":                true,
	"attribute":              true,
	"schema-element":         true,
	"schema-attribute":       true,
	"item":                   true,
	"empty-sequence":         true,
}

// IsNodeTypeName reports whether word names a kind test / item-type
// constructor when followed by "(".
func IsNodeTypeName(word string) bool {
	return nodeTypeNames[word]
}
