// Package gen assembles C declarations, indexed parameter/field/initializer
// fragments, and statement-chaining constructs on top of the rewrite engine.
package gen

import (
	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

// The declaration operations are pure formatting: already-finalized name and
// body fragments arranged into a fixed textual shape. Calling one twice with
// structurally equal inputs yields structurally equal output.
var (
	// Braced rewrites a body fragment to `{ body }`.
	Braced = ops.New("gen.braced", 1, func(args []term.Term) (term.Term, error) {
		body, err := term.Render(args[0])
		if err != nil {
			return nil, err
		}
		return braced(body), nil
	})

	// Typedef rewrites (name, body) to `typedef body name;`.
	Typedef = ops.New("gen.typedef", 2, func(args []term.Term) (term.Term, error) {
		name, body, err := renderPair(args)
		if err != nil {
			return nil, err
		}
		return term.Text("typedef " + body + " " + name + ";"), nil
	})

	// Struct rewrites (name, body) to `struct name { body }`.
	Struct = ops.New("gen.struct", 2, keywordDecl("struct"))

	// AnonStruct rewrites a body to `struct { body }`.
	AnonStruct = ops.New("gen.anonStruct", 1, anonKeywordDecl("struct"))

	// Union rewrites (name, body) to `union name { body }`.
	Union = ops.New("gen.union", 2, keywordDecl("union"))

	// AnonUnion rewrites a body to `union { body }`.
	AnonUnion = ops.New("gen.anonUnion", 1, anonKeywordDecl("union"))

	// Enum rewrites (name, body) to `enum name { body }`.
	Enum = ops.New("gen.enum", 2, keywordDecl("enum"))

	// AnonEnum rewrites a body to `enum { body }`.
	AnonEnum = ops.New("gen.anonEnum", 1, anonKeywordDecl("enum"))
)

func keywordDecl(keyword string) func(args []term.Term) (term.Term, error) {
	return func(args []term.Term) (term.Term, error) {
		name, body, err := renderPair(args)
		if err != nil {
			return nil, err
		}
		return term.Text(keyword + " " + name + " " + string(braced(body))), nil
	}
}

func anonKeywordDecl(keyword string) func(args []term.Term) (term.Term, error) {
	return func(args []term.Term) (term.Term, error) {
		body, err := term.Render(args[0])
		if err != nil {
			return nil, err
		}
		return term.Text(keyword + " " + string(braced(body))), nil
	}
}

func braced(body string) term.Text {
	if body == "" {
		return "{}"
	}
	return term.Text("{ " + body + " }")
}

func renderPair(args []term.Term) (string, string, error) {
	first, err := term.Render(args[0])
	if err != nil {
		return "", "", err
	}
	second, err := term.Render(args[1])
	if err != nil {
		return "", "", err
	}
	return first, second, nil
}
