package tables

import (
	_ "embed"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultTOML string

var defaultTables = sync.OnceValues(func() (*Tables, error) {
	var f File
	if _, err := toml.Decode(defaultTOML, &f); err != nil {
		return nil, err
	}
	return New(f)
})

// Default returns the built-in tables. It panics if the embedded file is
// invalid, which the package tests rule out.
func Default() *Tables {
	t, err := defaultTables()
	if err != nil {
		panic("tables: invalid embedded defaults: " + err.Error())
	}
	return t
}
