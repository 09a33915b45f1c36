// Package parser implements the version-gated recursive-descent parser:
// tokens in, an ast.Expr tree out. The precedence chain follows the
// grammar low-to-high: Expr (comma-separated list) -> OrExpr -> AndExpr
// -> ComparisonExpr -> RangeExpr -> AdditiveExpr -> MultiplicativeExpr
// -> UnaryExpr -> UnionExpr -> IntersectExceptExpr -> InstanceOfExpr ->
// TreatExpr -> CastableExpr -> CastExpr -> PathExpr -> StepExpr ->
// FilterExpr -> PrimaryExpr, with 2.0+'s if/for/let/some/every spliced
// in as additional primary-level constructs (they bind looser than
// comparison but appear only where a primary expression is expected, so
// they are parsed at the top of parseExprSingle rather than as a
// distinct precedence rung).
package parser // import "github.com/CognitoIQ/go-xpath/parser"

import (
	"strconv"
	"strings"

	"github.com/CognitoIQ/go-xpath/ast"
	"github.com/CognitoIQ/go-xpath/lexer"
	"github.com/CognitoIQ/go-xpath/staticctx"
	"github.com/CognitoIQ/go-xpath/token"
	"github.com/CognitoIQ/go-xpath/xperror"
	"github.com/CognitoIQ/go-xpath/xstype"
)

// Parse scans and parses source against the given static context,
// returning the root expression. It consumes every token or raises
// XPST0003.
func Parse(source string, sc *staticctx.StaticContext) (ast.Expr, error) {
	opts := lexer.Options{Version: string(sc.Version)}
	toks, err := lexer.Scan(source, opts)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, sc: sc}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind != token.EOF {
		return nil, xperror.New(xperror.XPST0003, "unexpected token %q after expression", p.cur().Lexeme)
	}
	return expr, nil
}

type parser struct {
	toks []token.Token
	pos  int
	sc   *staticctx.StaticContext
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

func (p *parser) accept(k token.Kind) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *parser) expect(k token.Kind, what string) (token.Token, error) {
	if t, ok := p.accept(k); ok {
		return t, nil
	}
	return token.Token{}, xperror.New(xperror.XPST0003, "expected %s, got %q", what, p.cur().Lexeme)
}

// version2 reports whether the active grammar includes 2.0+ constructs.
func (p *parser) version2() bool {
	return p.sc.Version.AtLeast(staticctx.Version20)
}

// --- Expr: comma-separated list ---

func (p *parser) parseExpr() (ast.Expr, error) {
	first, err := p.parseExprSingle()
	if err != nil {
		return nil, err
	}
	if !p.at(token.COMMA) {
		return first, nil
	}
	items := []ast.Expr{first}
	for p.at(token.COMMA) {
		p.advance()
		next, err := p.parseExprSingle()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return &ast.SequenceExpr{Items: items}, nil
}

// parseExprSingle dispatches to the 2.0+ primary-level constructs
// (if/for/let/some/every) before falling into the operator-precedence
// chain, since these constructs' bodies are themselves full single
// expressions rather than appearing at a fixed operator precedence.
func (p *parser) parseExprSingle() (ast.Expr, error) {
	if p.version2() {
		switch p.cur().Kind {
		case token.IF:
			return p.parseIf()
		case token.FOR, token.LET:
			return p.parseFLWOR()
		case token.SOME, token.EVERY:
			return p.parseQuantified()
		}
	}
	return p.parseOr()
}

func (p *parser) parseIf() (ast.Expr, error) {
	p.advance() // "if"
	if _, err := p.expect(token.LPAREN, "'(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN, "')' closing 'if' condition"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.THEN, "'then'"); err != nil {
		return nil, err
	}
	thenE, err := p.parseExprSingle()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ELSE, "'else'"); err != nil {
		return nil, err
	}
	elseE, err := p.parseExprSingle()
	if err != nil {
		return nil, err
	}
	return &ast.IfExpr{Cond: cond, Then: thenE, Else: elseE}, nil
}

// parseFLWOR parses a chain of "for $v in E" / "let $v := E" clauses
// followed by "return R".
func (p *parser) parseFLWOR() (ast.Expr, error) {
	var bindings []ast.ForBinding
	for p.at(token.FOR) || p.at(token.LET) {
		isLet := p.at(token.LET)
		p.advance()
		for {
			if _, err := p.expect(token.DOLLAR, "'$'"); err != nil {
				return nil, err
			}
			name, err := p.expectVarName()
			if err != nil {
				return nil, err
			}
			var op token.Kind
			if isLet {
				op = token.ASSIGN
			} else {
				op = token.IN
			}
			if _, err := p.expect(op, tokenLabel(op)); err != nil {
				return nil, err
			}
			e, err := p.parseExprSingle()
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, ast.ForBinding{Var: name, Expr: e, IsLet: isLet})
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RETURN, "'return'"); err != nil {
		return nil, err
	}
	ret, err := p.parseExprSingle()
	if err != nil {
		return nil, err
	}
	return &ast.ForExpr{Bindings: bindings, Return: ret}, nil
}

func (p *parser) parseQuantified() (ast.Expr, error) {
	kind := ast.QuantifiedSome
	if p.at(token.EVERY) {
		kind = ast.QuantifiedEvery
	}
	p.advance()
	var bindings []ast.ForBinding
	for {
		if _, err := p.expect(token.DOLLAR, "'$'"); err != nil {
			return nil, err
		}
		name, err := p.expectVarName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.IN, "'in'"); err != nil {
			return nil, err
		}
		e, err := p.parseExprSingle()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, ast.ForBinding{Var: name, Expr: e})
		if !p.at(token.COMMA) {
			break
		}
		p.advance()
	}
	if _, err := p.expect(token.SATISFIES, "'satisfies'"); err != nil {
		return nil, err
	}
	sat, err := p.parseExprSingle()
	if err != nil {
		return nil, err
	}
	return &ast.QuantifiedExpr{Kind: kind, Bindings: bindings, Satisfies: sat}, nil
}

func (p *parser) expectVarName() (string, error) {
	t, ok := p.accept(token.IDENTIFIER)
	if !ok {
		return "", xperror.New(xperror.XPST0003, "expected variable name, got %q", p.cur().Lexeme)
	}
	_, local := splitQNameRaw(t.Lexeme)
	return local, nil
}

func tokenLabel(k token.Kind) string {
	switch k {
	case token.IN:
		return "'in'"
	case token.ASSIGN:
		return "':='"
	default:
		return "token"
	}
}

// --- OrExpr / AndExpr ---

func (p *parser) parseOr() (ast.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.at(token.OR) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.at(token.AND) {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right}
	}
	return left, nil
}

var generalCompOps = map[token.Kind]ast.BinOp{
	token.EQ: ast.OpGeneralEq, token.NE: ast.OpGeneralNe,
	token.LT: ast.OpGeneralLt, token.LE: ast.OpGeneralLe,
	token.GT: ast.OpGeneralGt, token.GE: ast.OpGeneralGe,
}

var valueCompWords = map[string]ast.BinOp{
	"eq": ast.OpValueEq, "ne": ast.OpValueNe,
	"lt": ast.OpValueLt, "le": ast.OpValueLe,
	"gt": ast.OpValueGt, "ge": ast.OpValueGe,
}

// parseComparison handles both general comparisons (=, !=, <, ...) and,
// in 2.0+, value comparisons (eq, ne, lt, ...), which lex as IDENTIFIER
// since they are ordinary reserved words rather than symbolic operators.
func (p *parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseRange()
	if err != nil {
		return nil, err
	}
	if op, ok := generalCompOps[p.cur().Kind]; ok {
		p.advance()
		right, err := p.parseRange()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
	}
	if p.version2() && p.at(token.IDENTIFIER) {
		if op, ok := valueCompWords[p.cur().Lexeme]; ok {
			p.advance()
			right, err := p.parseRange()
			if err != nil {
				return nil, err
			}
			return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
		}
	}
	return left, nil
}

func (p *parser) parseRange() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.version2() && p.at(token.TO) {
		p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.RangeExpr{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := ast.OpAdd
		if p.at(token.MINUS) {
			op = ast.OpSub
		}
		p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	for p.at(token.STAR) || p.at(token.DIV) || p.at(token.MOD) || p.at(token.IDIV) {
		var op ast.BinOp
		switch p.cur().Kind {
		case token.STAR:
			op = ast.OpMul
		case token.DIV:
			op = ast.OpDiv
		case token.MOD:
			op = ast.OpMod
		case token.IDIV:
			op = ast.OpIDiv
		}
		p.advance()
		right, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary parses a leading run of unary "+"/"-" signs. It sits
// directly above parsePath: unary sign binds tighter than union,
// intersect/except, instance of, treat, castable, and cast, so
// "-1 instance of xs:integer" parses as InstanceOfExpr{UnaryExpr{-,1},
// xs:integer}, not UnaryExpr{-, InstanceOfExpr{1, xs:integer}}.
func (p *parser) parseUnary() (ast.Expr, error) {
	if p.at(token.MINUS) || p.at(token.PLUS) {
		op := ast.UnaryPlus
		if p.at(token.MINUS) {
			op = ast.UnaryMinus
		}
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil
	}
	return p.parsePath()
}

func (p *parser) parseUnion() (ast.Expr, error) {
	left, err := p.parseIntersectExcept()
	if err != nil {
		return nil, err
	}
	for p.at(token.PIPE) || (p.version2() && p.atWord("union")) {
		p.advance()
		right, err := p.parseIntersectExcept()
		if err != nil {
			return nil, err
		}
		left = &ast.UnionExpr{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseIntersectExcept() (ast.Expr, error) {
	left, err := p.parseInstanceOf()
	if err != nil {
		return nil, err
	}
	for p.version2() && (p.atWord("intersect") || p.atWord("except")) {
		op := ast.OpIntersect
		if p.atWord("except") {
			op = ast.OpExcept
		}
		p.advance()
		right, err := p.parseInstanceOf()
		if err != nil {
			return nil, err
		}
		left = &ast.IntersectExceptExpr{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// atWord reports whether the current token is an IDENTIFIER whose
// lexeme equals word; "union"/"intersect"/"except" are non-reserved
// operator names rather than token.Kind entries of their own, matching
// how the grammar treats them as contextual keywords.
func (p *parser) atWord(word string) bool {
	return p.cur().Kind == token.IDENTIFIER && p.cur().Lexeme == word
}

func (p *parser) parseInstanceOf() (ast.Expr, error) {
	left, err := p.parseTreat()
	if err != nil {
		return nil, err
	}
	if p.version2() && p.at(token.INSTANCE) {
		p.advance()
		if _, err := p.expect(token.OF, "'of'"); err != nil {
			return nil, err
		}
		st, err := p.parseSequenceType()
		if err != nil {
			return nil, err
		}
		return &ast.InstanceOfExpr{Operand: left, Type: st}, nil
	}
	return left, nil
}

func (p *parser) parseTreat() (ast.Expr, error) {
	left, err := p.parseCastable()
	if err != nil {
		return nil, err
	}
	if p.version2() && p.at(token.TREAT) {
		p.advance()
		if _, err := p.expect(token.AS, "'as'"); err != nil {
			return nil, err
		}
		st, err := p.parseSequenceType()
		if err != nil {
			return nil, err
		}
		return &ast.TreatExpr{Operand: left, Type: st}, nil
	}
	return left, nil
}

func (p *parser) parseCastable() (ast.Expr, error) {
	left, err := p.parseCast()
	if err != nil {
		return nil, err
	}
	if p.version2() && p.at(token.CASTABLE) {
		p.advance()
		if _, err := p.expect(token.AS, "'as'"); err != nil {
			return nil, err
		}
		at, optional, err := p.parseSingleAtomicType()
		if err != nil {
			return nil, err
		}
		return &ast.CastableExpr{Operand: left, Type: at, Optional: optional}, nil
	}
	return left, nil
}

func (p *parser) parseCast() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.version2() && p.at(token.CAST) {
		p.advance()
		if _, err := p.expect(token.AS, "'as'"); err != nil {
			return nil, err
		}
		at, optional, err := p.parseSingleAtomicType()
		if err != nil {
			return nil, err
		}
		return &ast.CastExpr{Operand: left, Type: at, Optional: optional}, nil
	}
	return left, nil
}

// parseSingleAtomicType parses "QName" or "QName?" for cast/castable.
func (p *parser) parseSingleAtomicType() (*xstype.AtomicType, bool, error) {
	t, ok := p.accept(token.IDENTIFIER)
	if !ok {
		return nil, false, xperror.New(xperror.XPST0003, "expected type name, got %q", p.cur().Lexeme)
	}
	ns, local := p.resolveQName(t.Lexeme, xstype.SchemaNS)
	at, err := xstype.Lookup(ns, local)
	if err != nil {
		return nil, false, xperror.New(xperror.XPST0051, "unknown atomic type %q", t.Lexeme)
	}
	optional := false
	if _, ok := p.accept(token.QMARK); ok {
		optional = true
	}
	return at, optional, nil
}

// --- PathExpr / StepExpr ---

func (p *parser) parsePath() (ast.Expr, error) {
	if p.at(token.SLASH) {
		p.advance()
		if p.startsStep() {
			steps, err := p.parseStepChain()
			if err != nil {
				return nil, err
			}
			return &ast.PathExpr{Root: true, Steps: steps}, nil
		}
		return &ast.PathExpr{Root: true}, nil
	}
	if p.at(token.DSLASH) {
		p.advance()
		steps, err := p.parseStepChain()
		if err != nil {
			return nil, err
		}
		descSelf := ast.Step{Axis: ast.AxisDescendantOrSelf, Test: ast.NodeTest{Kind: &xstype.KindTest{Kind: xstype.AnyNodeKind}}}
		return &ast.PathExpr{Root: true, Steps: append([]ast.Step{descSelf}, steps...)}, nil
	}

	if p.looksLikeAxisStep() {
		steps, err := p.parseStepChain()
		if err != nil {
			return nil, err
		}
		return &ast.PathExpr{Steps: steps}, nil
	}

	primary, err := p.parseFilter()
	if err != nil {
		return nil, err
	}
	if !p.at(token.SLASH) && !p.at(token.DSLASH) {
		return primary, nil
	}
	steps, err := p.parseStepChainAfterPrimary()
	if err != nil {
		return nil, err
	}
	return &ast.PathExpr{Start: primary, Steps: steps}, nil
}

// looksLikeAxisStep reports whether the upcoming tokens form an
// AxisStep (as opposed to a FilterExpr) at the current path position.
// A bare name is only ambiguous against a function call, which the
// lexer never classifies as a name test candidate once it is followed
// by "(": that one case needs one token of lookahead here.
func (p *parser) looksLikeAxisStep() bool {
	switch p.cur().Kind {
	case token.DOT, token.DOTDOT, token.AT, token.LOCATION, token.STAR, token.NODE_TYPE:
		return true
	case token.IDENTIFIER:
		return p.peekKind(1) != token.LPAREN
	default:
		return false
	}
}

// peekKind returns the Kind of the token offset positions ahead of the
// current one, or token.EOF past the end of the stream.
func (p *parser) peekKind(offset int) token.Kind {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return token.EOF
	}
	return p.toks[idx].Kind
}

// parseStepChainAfterPrimary parses the "/step/step..." suffix once a
// non-path primary expression has already been parsed as the path's
// starting point.
func (p *parser) parseStepChainAfterPrimary() ([]ast.Step, error) {
	var steps []ast.Step
	for p.at(token.SLASH) || p.at(token.DSLASH) {
		if p.at(token.DSLASH) {
			p.advance()
			steps = append(steps, ast.Step{Axis: ast.AxisDescendantOrSelf, Test: ast.NodeTest{Kind: &xstype.KindTest{Kind: xstype.AnyNodeKind}}})
		} else {
			p.advance()
		}
		step, err := p.parseStep()
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (p *parser) parseStepChain() ([]ast.Step, error) {
	var steps []ast.Step
	step, err := p.parseStep()
	if err != nil {
		return nil, err
	}
	steps = append(steps, step)
	more, err := p.parseStepChainAfterPrimary()
	if err != nil {
		return nil, err
	}
	return append(steps, more...), nil
}

// startsStep reports whether the upcoming tokens can begin a step,
// distinguishing a bare "/" (document root) from "/X".
func (p *parser) startsStep() bool {
	switch p.cur().Kind {
	case token.EOF, token.RPAREN, token.RBRACKET, token.COMMA:
		return false
	default:
		return true
	}
}

func (p *parser) parseStep() (ast.Step, error) {
	switch {
	case p.at(token.DOT):
		p.advance()
		return p.parsePredicatesOnto(ast.Step{Axis: ast.AxisSelf, Test: ast.NodeTest{Kind: &xstype.KindTest{Kind: xstype.AnyNodeKind}}})
	case p.at(token.DOTDOT):
		p.advance()
		return p.parsePredicatesOnto(ast.Step{Axis: ast.AxisParent, Test: ast.NodeTest{Kind: &xstype.KindTest{Kind: xstype.AnyNodeKind}}})
	case p.at(token.AT):
		p.advance()
		test, err := p.parseNodeTest()
		if err != nil {
			return ast.Step{}, err
		}
		return p.parsePredicatesOnto(ast.Step{Axis: ast.AxisAttribute, Test: test})
	case p.at(token.LOCATION):
		axisName := p.advance().Lexeme
		if _, err := p.expect(token.DCOLON, "'::'"); err != nil {
			return ast.Step{}, err
		}
		axis, err := axisFromName(axisName, p.sc.EnableNamespaceAxis)
		if err != nil {
			return ast.Step{}, err
		}
		test, err := p.parseNodeTest()
		if err != nil {
			return ast.Step{}, err
		}
		return p.parsePredicatesOnto(ast.Step{Axis: axis, Test: test})
	default:
		test, err := p.parseNodeTest()
		if err != nil {
			return ast.Step{}, err
		}
		return p.parsePredicatesOnto(ast.Step{Axis: ast.AxisChild, Test: test})
	}
}

func (p *parser) parsePredicatesOnto(step ast.Step) (ast.Step, error) {
	preds, err := p.parsePredicates()
	if err != nil {
		return ast.Step{}, err
	}
	step.Predicates = preds
	return step, nil
}

func (p *parser) parsePredicates() ([]ast.Expr, error) {
	var preds []ast.Expr
	for p.at(token.LBRACKET) {
		p.advance()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		preds = append(preds, e)
	}
	return preds, nil
}

func axisFromName(name string, namespaceAxisEnabled bool) (ast.Axis, error) {
	switch name {
	case "child":
		return ast.AxisChild, nil
	case "descendant":
		return ast.AxisDescendant, nil
	case "descendant-or-self":
		return ast.AxisDescendantOrSelf, nil
	case "parent":
		return ast.AxisParent, nil
	case "ancestor":
		return ast.AxisAncestor, nil
	case "ancestor-or-self":
		return ast.AxisAncestorOrSelf, nil
	case "following":
		return ast.AxisFollowing, nil
	case "following-sibling":
		return ast.AxisFollowingSibling, nil
	case "preceding":
		return ast.AxisPreceding, nil
	case "preceding-sibling":
		return ast.AxisPrecedingSibling, nil
	case "attribute":
		return ast.AxisAttribute, nil
	case "self":
		return ast.AxisSelf, nil
	case "namespace":
		if !namespaceAxisEnabled {
			return 0, xperror.New(xperror.XPST0010, "namespace:: axis is disabled")
		}
		return ast.AxisNamespace, nil
	default:
		return 0, xperror.New(xperror.XPST0003, "unknown axis %q", name)
	}
}

// parseNodeTest parses a name test or kind test.
func (p *parser) parseNodeTest() (ast.NodeTest, error) {
	if p.at(token.STAR) {
		p.advance()
		return ast.NodeTest{IsNameTest: true, NamePrefix: "*", NameLocal: "*"}, nil
	}
	if p.at(token.NODE_TYPE) {
		return p.parseKindTest()
	}
	t, ok := p.accept(token.IDENTIFIER)
	if !ok {
		return ast.NodeTest{}, xperror.New(xperror.XPST0003, "expected node test, got %q", p.cur().Lexeme)
	}
	prefix, local := splitQNameRaw(t.Lexeme)
	return ast.NodeTest{IsNameTest: true, NamePrefix: prefix, NameLocal: local}, nil
}

// parseKindTest parses "text()", "node()", "comment()",
// "processing-instruction(Target?)", "element(Name?)",
// "attribute(Name?)", "document-node(ElementTest?)",
// "schema-element(Name)", "schema-attribute(Name)", "item()".
func (p *parser) parseKindTest() (ast.NodeTest, error) {
	t := p.advance()
	kind, err := nodeKindFromName(t.Lexeme)
	if err != nil {
		return ast.NodeTest{}, err
	}
	if _, err := p.expect(token.LPAREN, "'(' in kind test"); err != nil {
		return ast.NodeTest{}, err
	}
	kt := xstype.KindTest{Kind: kind}
	if t.Lexeme == "processing-instruction" && p.at(token.STRING) {
		lit := p.advance()
		kt.PITarget = lit.Lexeme
	} else if (t.Lexeme == "element" || t.Lexeme == "attribute" || t.Lexeme == "schema-element" || t.Lexeme == "schema-attribute") && p.at(token.IDENTIFIER) {
		nameTok := p.advance()
		_, kt.Name = splitQNameRaw(nameTok.Lexeme)
		if p.at(token.COMMA) {
			p.advance()
			if _, err := p.expect(token.IDENTIFIER, "type name"); err != nil {
				return ast.NodeTest{}, err
			}
		}
	} else if t.Lexeme == "document-node" && p.at(token.NODE_TYPE) {
		inner, err := p.parseKindTest()
		if err != nil {
			return ast.NodeTest{}, err
		}
		kt.Name = inner.Kind.Name
	}
	if _, err := p.expect(token.RPAREN, "')' closing kind test"); err != nil {
		return ast.NodeTest{}, err
	}
	if t.Lexeme == "item" || t.Lexeme == "empty-sequence" {
		return ast.NodeTest{Kind: &xstype.KindTest{Kind: xstype.AnyNodeKind}}, nil
	}
	return ast.NodeTest{Kind: &kt}, nil
}

func nodeKindFromName(name string) (xstype.NodeKind, error) {
	switch name {
	case "text":
		return xstype.Text, nil
	case "node", "item", "empty-sequence":
		return xstype.AnyNodeKind, nil
	case "comment":
		return xstype.Comment, nil
	case "processing-instruction":
		return xstype.ProcessingInstruction, nil
	case "element":
		return xstype.Element, nil
	case "attribute":
		return xstype.Attribute, nil
	case "document-node":
		return xstype.Document, nil
	case "schema-element":
		return xstype.Element, nil
	case "schema-attribute":
		return xstype.Attribute, nil
	default:
		return 0, xperror.New(xperror.XPST0003, "unknown kind test %q", name)
	}
}

// --- FilterExpr / PrimaryExpr ---

func (p *parser) parseFilter() (ast.Expr, error) {
	primary, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.at(token.LBRACKET) {
		return primary, nil
	}
	preds, err := p.parsePredicates()
	if err != nil {
		return nil, err
	}
	return &ast.FilterExpr{Primary: primary, Predicates: preds}, nil
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	switch p.cur().Kind {
	case token.STRING:
		t := p.advance()
		return &ast.StringLiteral{Value: t.Lexeme}, nil
	case token.NUMBER:
		t := p.advance()
		return p.numberLiteral(t.Lexeme), nil
	case token.DOLLAR:
		p.advance()
		t, ok := p.accept(token.IDENTIFIER)
		if !ok {
			return nil, xperror.New(xperror.XPST0003, "expected variable name after '$'")
		}
		ns, local := p.resolveQName(t.Lexeme, "")
		return &ast.VarRef{Namespace: ns, Local: local}, nil
	case token.LPAREN:
		p.advance()
		if p.at(token.RPAREN) {
			p.advance()
			return &ast.SequenceExpr{}, nil
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	case token.DOT:
		p.advance()
		return &ast.ContextItemExpr{}, nil
	case token.FUNCTION, token.IDENTIFIER:
		return p.parseFunctionCallOrName()
	default:
		return nil, xperror.New(xperror.XPST0003, "unexpected token %q", p.cur().Lexeme)
	}
}

func (p *parser) numberLiteral(lexeme string) ast.Expr {
	isDouble := strings.ContainsAny(lexeme, "eE")
	isInt := !isDouble && !strings.Contains(lexeme, ".")
	n, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		n = 0
	}
	return &ast.NumberLiteral{Value: n, IsInteger: isInt, IsDouble: isDouble}
}

// parseFunctionCallOrName handles a FUNCTION/IDENTIFIER token that
// might be a function call "name(args)", a constructor function
// "xs:T(expr)", or (if not followed by "(") a bare name test that
// belongs to an enclosing step context (handled by the caller in
// parseNodeTest; reaching here with a bare name and no following "("
// is a static error since a primary expression can't be a lone name).
func (p *parser) parseFunctionCallOrName() (ast.Expr, error) {
	t := p.advance()
	if !p.at(token.LPAREN) {
		return nil, xperror.New(xperror.XPST0003, "unexpected name %q in expression context", t.Lexeme)
	}
	ns, local := p.resolveQName(t.Lexeme, p.sc.DefaultFunctionNamespace)
	p.advance() // "("
	var args []ast.Expr
	if !p.at(token.RPAREN) {
		for {
			arg, err := p.parseExprSingle()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RPAREN, "')' closing function call"); err != nil {
		return nil, err
	}
	if ns == xstype.SchemaNS {
		if at, err := xstype.Lookup(ns, local); err == nil && len(args) == 1 {
			return &ast.CastExpr{Operand: args[0], Type: at}, nil
		}
	}
	if sig, ok := p.sc.LookupFunction(ns, local); ok {
		if len(args) < sig.MinArgs || (sig.MaxArgs >= 0 && len(args) > sig.MaxArgs) {
			return nil, xperror.New(xperror.XPST0017, "function %q expects between %d and %d arguments, got %d", local, sig.MinArgs, sig.MaxArgs, len(args))
		}
	}
	return &ast.FunctionCall{Namespace: ns, Local: local, Args: args}, nil
}

// --- Sequence types ---

func (p *parser) parseSequenceType() (xstype.SequenceType, error) {
	if p.at(token.NODE_TYPE) && p.cur().Lexeme == "empty-sequence" {
		p.advance()
		p.advance()
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return xstype.SequenceType{}, err
		}
		return xstype.EmptySequenceType, nil
	}
	item, err := p.parseItemType()
	if err != nil {
		return xstype.SequenceType{}, err
	}
	occ := xstype.ExactlyOne
	switch {
	case p.at(token.STAR):
		p.advance()
		occ = xstype.ZeroOrMore
	case p.at(token.PLUS):
		p.advance()
		occ = xstype.OneOrMore
	case p.at(token.QMARK):
		p.advance()
		occ = xstype.ZeroOrOne
	}
	st, ok := xstype.NewSequenceType(item, occ)
	if !ok {
		return xstype.SequenceType{}, xperror.New(xperror.XPST0003, "invalid sequence type")
	}
	return st, nil
}

func (p *parser) parseItemType() (xstype.ItemType, error) {
	if p.at(token.NODE_TYPE) {
		if p.cur().Lexeme == "item" {
			p.advance()
			if _, err := p.expect(token.LPAREN, "'('"); err != nil {
				return xstype.ItemType{}, err
			}
			if _, err := p.expect(token.RPAREN, "')'"); err != nil {
				return xstype.ItemType{}, err
			}
			return xstype.AnyItem, nil
		}
		nt, err := p.parseKindTest()
		if err != nil {
			return xstype.ItemType{}, err
		}
		return xstype.KindItem(*nt.Kind), nil
	}
	t, ok := p.accept(token.IDENTIFIER)
	if !ok {
		return xstype.ItemType{}, xperror.New(xperror.XPST0003, "expected type name, got %q", p.cur().Lexeme)
	}
	ns, local := p.resolveQName(t.Lexeme, xstype.SchemaNS)
	at, err := xstype.Lookup(ns, local)
	if err != nil {
		return xstype.ItemType{}, xperror.New(xperror.XPST0051, "unknown atomic type %q", t.Lexeme)
	}
	return xstype.AtomicItem(at), nil
}

// --- QName resolution ---

// splitQNameRaw splits a lexer QName lexeme (which may embed a literal
// ":" or trailing "*" from a wildcard form) into prefix and local parts
// without resolving the prefix to a namespace URI.
func splitQNameRaw(lexeme string) (prefix, local string) {
	if i := strings.IndexByte(lexeme, ':'); i >= 0 {
		return lexeme[:i], lexeme[i+1:]
	}
	return "", lexeme
}

// resolveQName splits a lexeme into prefix/local and resolves the
// prefix against the well-known prefix table, defaulting to
// defaultNS for an unprefixed name.
func (p *parser) resolveQName(lexeme, defaultNS string) (namespace, local string) {
	prefix, local := splitQNameRaw(lexeme)
	if prefix == "" {
		return defaultNS, local
	}
	if prefix == "xs" {
		return xstype.SchemaNS, local
	}
	if prefix == "fn" {
		return xstype.FunctionNS, local
	}
	if prefix == "err" {
		return xstype.ErrorFunctionNS, local
	}
	return prefix, local
}
