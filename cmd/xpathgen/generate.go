package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"io/ioutil"
	"strings"

	"github.com/CognitoIQ/go-xpath/internal/gen"
)

// Config controls the package name and declaration source xpathgen
// emits; the zero Config generates into package "functions" from
// builtinGroups.
type Config struct {
	pkgName string
	groups  []specGroup
}

// GenAST builds the generated file's AST: a single var declaration
// holding the staticctx.FunctionSignature table, grouped and commented
// the way builtinGroups lays them out.
func (cfg *Config) GenAST() (*ast.File, error) {
	pkgName := cfg.pkgName
	if pkgName == "" {
		pkgName = "functions"
	}
	groups := cfg.groups
	if groups == nil {
		groups = builtinGroups
	}

	var buf bytes.Buffer
	buf.WriteString("// BuiltinSignatures is the static arity table for every built-in\n")
	buf.WriteString("// function this module implements, each namespaced to the standard\n")
	buf.WriteString("// function namespace and marked Reserved so a host cannot silently\n")
	buf.WriteString("// shadow a core function through staticctx.RegisterFunction.\n")
	buf.WriteString("var BuiltinSignatures = []staticctx.FunctionSignature{\n")
	for i, group := range groups {
		if i > 0 {
			buf.WriteString("\n")
		}
		if group.comment != "" {
			for _, line := range strings.Split(group.comment, "\n") {
				fmt.Fprintf(&buf, "// %s\n", line)
			}
		}
		for _, s := range group.specs {
			fmt.Fprintf(&buf, "{Namespace: %q, Local: %q, MinArgs: %d, MaxArgs: %d, Reserved: true},\n",
				s.namespace, s.local, s.minArgs, s.maxArgs)
		}
	}
	buf.WriteString("}\n")

	decls, err := gen.Declarations(
		`import "github.com/CognitoIQ/go-xpath/staticctx"`,
		buf.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse generated declarations: %v", err)
	}

	file := &ast.File{
		Name:  ast.NewIdent(pkgName),
		Decls: decls,
	}
	gen.PackageDoc(file,
		"Code generated by cmd/xpathgen from the builtinGroups declarative\n"+
			"table; DO NOT EDIT.",
	)
	return file, nil
}

// Generate runs the xpathgen command with the given arguments, writing
// the formatted output to the -o file (or functions/builtins_table.go
// by default).
func (cfg *Config) Generate(arguments ...string) error {
	fs := flag.NewFlagSet("xpathgen", flag.ExitOnError)
	output := fs.String("o", "../../functions/builtins_table.go", "name of the output file")
	pkgName := fs.String("pkg", "functions", "name of the generated package")
	fs.Parse(arguments)

	cfg.pkgName = *pkgName

	file, err := cfg.GenAST()
	if err != nil {
		return err
	}
	out, err := gen.FormattedSource(file)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(*output, out, 0666)
}
