// Package tables holds the read-only reference data the code rules consult:
// surname particles, head digraphs, given-name fillers, the blocklist of
// objectionable name codes and the state name to state code map.
//
// Tables are built once (from the embedded defaults or a TOML/YAML file) and
// never mutated afterwards, so a *Tables can be shared between goroutines.
package tables

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/internal/util"
)

// File is the on-disk shape of a tables file (TOML or YAML).
type File struct {
	Schema           string            `toml:"schema" yaml:"schema" json:"schema" validate:"required,semver"`
	Particles        []string          `toml:"particles" yaml:"particles" json:"particles" validate:"dive,required"`
	GivenNameFillers []string          `toml:"given_name_fillers" yaml:"given_name_fillers" json:"given_name_fillers" validate:"dive,required"`
	Blocklist        []string          `toml:"blocklist" yaml:"blocklist" json:"blocklist" validate:"dive,len=4,alpha,uppercase"`
	Digraphs         map[string]string `toml:"digraphs" yaml:"digraphs" json:"digraphs" validate:"dive,keys,len=2,alpha,uppercase,endkeys,len=1,alpha,uppercase"`
	States           map[string]string `toml:"states" yaml:"states" json:"states" validate:"dive,keys,required,endkeys,len=2,alpha,uppercase"`
}

// Tables is the validated, lookup-ready form of a File.
type Tables struct {
	schema    string
	particles []string
	fillers   map[string]struct{}
	blocklist []string
	digraphs  map[string]string
	states    map[string]string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// New validates f and builds lookup tables from it. Particles, fillers and
// state names are normalized the same way person names are, so "Nuevo León"
// and "NUEVO LEON" are the same key.
func New(f File) (*Tables, error) {
	if err := validateFile(f); err != nil {
		return nil, err
	}
	if err := checkSchema(f.Schema); err != nil {
		return nil, err
	}

	t := &Tables{
		schema:    f.Schema,
		particles: make([]string, 0, len(f.Particles)),
		fillers:   make(map[string]struct{}, len(f.GivenNameFillers)),
		blocklist: append([]string(nil), f.Blocklist...),
		digraphs:  make(map[string]string, len(f.Digraphs)),
		states:    make(map[string]string, len(f.States)),
	}
	for _, p := range f.Particles {
		t.particles = append(t.particles, util.Normalize(p))
	}
	for _, name := range f.GivenNameFillers {
		t.fillers[util.Normalize(name)] = struct{}{}
	}
	for k, v := range f.Digraphs {
		t.digraphs[k] = v
	}
	for name, code := range f.States {
		t.states[util.Normalize(name)] = code
	}
	return t, nil
}

// validateFile runs the struct tags on f and reports the first failure as a
// ValidationError naming the offending entry.
func validateFile(f File) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate tables")
	}
	fe := fieldErrs[0]
	value, _ := fe.Value().(string)
	return errors.NewValidationError(fe.Field(), value, "fails "+fe.Tag()+" rule")
}

// Schema returns the schema version the tables were declared with.
func (t *Tables) Schema() string {
	return t.schema
}

// Particles returns the surname particles in removal order.
func (t *Tables) Particles() []string {
	return append([]string(nil), t.particles...)
}

// Digraph returns the single-letter replacement for a two-letter head digraph.
func (t *Tables) Digraph(prefix string) (string, bool) {
	r, ok := t.digraphs[prefix]
	return r, ok
}

// IsGivenNameFiller reports whether token is dropped from the front of a
// compound given name.
func (t *Tables) IsGivenNameFiller(token string) bool {
	_, ok := t.fillers[token]
	return ok
}

// IsBlocked reports whether code exactly matches a blocklist entry.
// The comparison is case-sensitive.
func (t *Tables) IsBlocked(code string) bool {
	for _, word := range t.blocklist {
		if word == code {
			return true
		}
	}
	return false
}

// StateCode returns the two-letter code for a state name. The name is
// normalized first; unknown names return "", false.
func (t *Tables) StateCode(name string) (string, bool) {
	code, ok := t.states[util.Normalize(name)]
	return code, ok
}

// File converts the tables back to their file form, with fillers sorted.
func (t *Tables) File() File {
	f := File{
		Schema:    t.schema,
		Particles: t.Particles(),
		Blocklist: append([]string(nil), t.blocklist...),
		Digraphs:  make(map[string]string, len(t.digraphs)),
		States:    make(map[string]string, len(t.states)),
	}
	for name := range t.fillers {
		f.GivenNameFillers = append(f.GivenNameFillers, name)
	}
	sort.Strings(f.GivenNameFillers)
	for k, v := range t.digraphs {
		f.Digraphs[k] = v
	}
	for k, v := range t.states {
		f.States[k] = v
	}
	return f
}
