package catalog

import (
	"embed"
	"fmt"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

const builtinPath = "builtin/landing.yaml"

// Builtin returns the page content bundled with the binary.
func Builtin() (*Catalog, error) {
	data, err := builtinFS.ReadFile(builtinPath)
	if err != nil {
		return nil, fmt.Errorf("read builtin catalog: %w", err)
	}
	cat, err := Parse(data, ".yaml")
	if err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}
	cat.Source = "builtin"
	return cat, nil
}

// MustBuiltin is Builtin for callers that cannot recover, such as tests and defaults.
func MustBuiltin() *Catalog {
	cat, err := Builtin()
	if err != nil {
		panic(err)
	}
	return cat
}
