package tables

import (
	"github.com/Masterminds/semver/v3"
	"github.com/teranos/fiscal/errors"
)

// SchemaVersion is the tables file schema this build writes.
const SchemaVersion = "1.0.0"

// SchemaConstraint is the range of tables file schemas this build can read.
const SchemaConstraint = "^1"

// checkSchema verifies a tables file declares a schema this build understands
func checkSchema(schema string) error {
	v, err := semver.NewVersion(schema)
	if err != nil {
		return errors.Wrapf(err, "invalid tables schema %q", schema)
	}

	constraint, err := semver.NewConstraint(SchemaConstraint)
	if err != nil {
		return errors.Wrapf(err, "invalid schema constraint %s", SchemaConstraint)
	}

	if !constraint.Check(v) {
		return errors.WithHintf(
			errors.Newf("tables schema %s is not supported (requires %s)", schema, SchemaConstraint),
			"regenerate the file with `fiscal tables show > tables.toml` and re-apply your changes",
		)
	}
	return nil
}
