package tables

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/teranos/fiscal/errors"
	"gopkg.in/yaml.v3"
)

// Encode writes f in the given format. The output is accepted by LoadFile.
func Encode(w io.Writer, f File, format Format) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.Indent = ""
		return errors.Wrap(enc.Encode(f), "failed to encode tables as TOML")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return errors.Wrap(err, "failed to encode tables as YAML")
		}
		return enc.Close()
	default:
		return errors.Newf("unsupported tables format %q", format)
	}
}

// Stats counts the entries of each table.
type Stats struct {
	Schema    string `json:"schema" yaml:"schema"`
	Particles int    `json:"particles" yaml:"particles"`
	Fillers   int    `json:"given_name_fillers" yaml:"given_name_fillers"`
	Blocklist int    `json:"blocklist" yaml:"blocklist"`
	Digraphs  int    `json:"digraphs" yaml:"digraphs"`
	States    int    `json:"states" yaml:"states"`
}

// Stats summarizes t.
func (t *Tables) Stats() Stats {
	return Stats{
		Schema:    t.schema,
		Particles: len(t.particles),
		Fillers:   len(t.fillers),
		Blocklist: len(t.blocklist),
		Digraphs:  len(t.digraphs),
		States:    len(t.states),
	}
}
