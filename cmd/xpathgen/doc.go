/*
xpathgen regenerates the built-in function signature table consumed by
the functions package and registered into every fresh static context.

Usage:

	xpathgen [-o file] [-pkg name]

xpathgen has no input file: the declarative list of built-in
functions lives in this command's own source (see specs.go) rather
than being parsed from an external schema, since the signatures
themselves are fixed by the language rather than by user data. Running
the command regenerates functions/builtins_table.go from that list.

The default package name and output file are "functions" and
"../../functions/builtins_table.go", relative to this command's
directory, and can be overridden with the -pkg and -o flags.

The xpathgen command may be used with go generate:

	//go:generate xpathgen
*/
package main
