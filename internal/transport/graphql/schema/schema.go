// Package schema embeds the GraphQL SDL of the record service. The server
// binds SDL to its resolvers; the client adapter validates its operations
// against the parsed form returned by Load.
package schema

import (
	_ "embed"
	"sync"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var SDL string

var (
	loadOnce sync.Once
	loaded   *ast.Schema
	loadErr  error
)

// Load parses and validates the SDL. The result is shared and must not be
// modified.
func Load() (*ast.Schema, error) {
	loadOnce.Do(func() {
		loaded, loadErr = gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: SDL})
	})
	return loaded, loadErr
}

// InputFieldTypes maps input object fields to their named GraphQL type and
// whether they are non-null.
func InputFieldTypes(s *ast.Schema, input string) map[string]FieldType {
	def := s.Types[input]
	if def == nil {
		return nil
	}
	out := make(map[string]FieldType, len(def.Fields))
	for _, f := range def.Fields {
		out[f.Name] = FieldType{Name: f.Type.Name(), NonNull: f.Type.NonNull}
	}
	return out
}

// FieldType is the shape of one SDL input field.
type FieldType struct {
	Name    string
	NonNull bool
}
