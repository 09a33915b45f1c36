package main

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenASTDefaultsToFunctionsPackage(t *testing.T) {
	var cfg Config
	file, err := cfg.GenAST()
	require.NoError(t, err)
	require.Equal(t, "functions", file.Name.Name)
}

func TestGenASTEmitsImportAndVarDecl(t *testing.T) {
	var cfg Config
	file, err := cfg.GenAST()
	require.NoError(t, err)
	require.Len(t, file.Decls, 2)

	_, ok := file.Decls[0].(*ast.GenDecl)
	require.True(t, ok, "first decl should be the staticctx import")

	varDecl, ok := file.Decls[1].(*ast.GenDecl)
	require.True(t, ok, "second decl should be the BuiltinSignatures var")
	require.Equal(t, "var", varDecl.Tok.String())
}

func TestGenASTCoversEveryDeclaredSpec(t *testing.T) {
	var cfg Config
	file, err := cfg.GenAST()
	require.NoError(t, err)

	varDecl := file.Decls[1].(*ast.GenDecl)
	valueSpec := varDecl.Specs[0].(*ast.ValueSpec)
	composite := valueSpec.Values[0].(*ast.CompositeLit)

	var wantCount int
	for _, group := range builtinGroups {
		wantCount += len(group.specs)
	}
	require.Len(t, composite.Elts, wantCount)
}

func TestGenASTRespectsCustomGroups(t *testing.T) {
	cfg := Config{groups: []specGroup{{specs: []builtinSpec{{local: "only-one"}}}}}
	file, err := cfg.GenAST()
	require.NoError(t, err)

	varDecl := file.Decls[1].(*ast.GenDecl)
	valueSpec := varDecl.Specs[0].(*ast.ValueSpec)
	composite := valueSpec.Values[0].(*ast.CompositeLit)
	require.Len(t, composite.Elts, 1)
}
