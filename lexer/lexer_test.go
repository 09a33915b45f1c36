package lexer

import (
	"testing"

	"github.com/CognitoIQ/go-xpath/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanBasicArithmetic(t *testing.T) {
	toks, err := Scan("1 + 2 * 3", Options{Version: "2.0"})
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.NUMBER, token.PLUS, token.NUMBER, token.STAR, token.NUMBER, token.EOF}, kinds(toks))
}

func TestScanLocalWildcardFoldsIntoOneIdentifier(t *testing.T) {
	toks, err := Scan("*:local", Options{Version: "2.0"})
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.EOF}, kinds(toks))
	require.Equal(t, "*:local", toks[0].Lexeme)
}

func TestScanBareStarStillMultiplies(t *testing.T) {
	toks, err := Scan("a * b", Options{Version: "2.0"})
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.STAR, token.IDENTIFIER, token.EOF}, kinds(toks))
}

func TestScanStarDoubleColonStaysSeparate(t *testing.T) {
	toks, err := Scan("child::* ", Options{Version: "2.0"})
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.LOCATION, token.DCOLON, token.STAR, token.EOF}, kinds(toks))
}

func TestScanStringLiteralWithEscapedQuote(t *testing.T) {
	toks, err := Scan(`'it''s'`, Options{})
	require.NoError(t, err)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "it's", toks[0].Lexeme)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := Scan(`'abc`, Options{})
	require.Error(t, err)
}

func TestScanNumberForms(t *testing.T) {
	tests := []string{"1", "1.5", ".5", "1e10", "1.5e-3", "1E+2"}
	for _, src := range tests {
		toks, err := Scan(src, Options{})
		require.NoError(t, err, src)
		require.Equal(t, token.NUMBER, toks[0].Kind, src)
		require.Equal(t, src, toks[0].Lexeme, src)
	}
}

func TestScanAxisVsIdentifier(t *testing.T) {
	toks, err := Scan("child::foo", Options{})
	require.NoError(t, err)
	require.Equal(t, token.LOCATION, toks[0].Kind)
	require.Equal(t, token.DCOLON, toks[1].Kind)

	toks, err = Scan("child", Options{})
	require.NoError(t, err)
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)
}

func TestScanHyphenatedFunctionName(t *testing.T) {
	toks, err := Scan("normalize-space()", Options{})
	require.NoError(t, err)
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)
	require.Equal(t, "normalize-space", toks[0].Lexeme)
}

func TestScanMinusIsNotSwallowedByIdentifier(t *testing.T) {
	toks, err := Scan("$x - 1", Options{})
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.DOLLAR, token.IDENTIFIER, token.MINUS, token.NUMBER, token.EOF}, kinds(toks))
}

func TestKeywordsGatedByVersion(t *testing.T) {
	toks, err := Scan("if", Options{Version: "1.0"})
	require.NoError(t, err)
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)

	toks, err = Scan("if", Options{Version: "2.0"})
	require.NoError(t, err)
	require.Equal(t, token.IF, toks[0].Kind)
}

func TestDoubleSlashAndComparisonOperators(t *testing.T) {
	toks, err := Scan("//a[@x<=1 and @y!=2]", Options{})
	require.NoError(t, err)
	require.Contains(t, kinds(toks), token.DSLASH)
	require.Contains(t, kinds(toks), token.LE)
	require.Contains(t, kinds(toks), token.NE)
}

func TestExtensionFunctionRecognition(t *testing.T) {
	toks, err := Scan("my-ext(1)", Options{ExtensionFunctions: map[string]bool{"my-ext": true}})
	require.NoError(t, err)
	require.Equal(t, token.FUNCTION, toks[0].Kind)
}

func TestIllegalCharacter(t *testing.T) {
	_, err := Scan("1 ! 2", Options{})
	require.Error(t, err)
}
