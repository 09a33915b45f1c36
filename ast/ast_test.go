package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinOpString(t *testing.T) {
	require.Equal(t, "+", OpAdd.String())
	require.Equal(t, "eq", OpValueEq.String())
	require.Equal(t, "idiv", OpIDiv.String())
}

func TestAxisIsReverse(t *testing.T) {
	require.True(t, AxisParent.IsReverse())
	require.True(t, AxisAncestor.IsReverse())
	require.False(t, AxisChild.IsReverse())
	require.False(t, AxisDescendant.IsReverse())
}

func TestAxisString(t *testing.T) {
	require.Equal(t, "descendant-or-self", AxisDescendantOrSelf.String())
	require.Equal(t, "following-sibling", AxisFollowingSibling.String())
}

func TestExprNodeMarkers(t *testing.T) {
	var exprs = []Expr{
		&StringLiteral{Value: "x"},
		&NumberLiteral{Value: 1},
		&VarRef{Local: "x"},
		&UnaryExpr{Op: UnaryMinus},
		&BinaryExpr{Op: OpAdd},
		&SequenceExpr{},
		&UnionExpr{},
		&IntersectExceptExpr{},
		&RangeExpr{},
		&IfExpr{},
		&ForExpr{},
		&QuantifiedExpr{},
		&InstanceOfExpr{},
		&CastableExpr{},
		&CastExpr{},
		&TreatExpr{},
		&PathExpr{},
		&FilterExpr{},
		&FunctionCall{},
		&ContextItemExpr{},
	}
	require.Len(t, exprs, 20)
}
