package am

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teranos/fiscal/errors"
)

var validate = newValidator()

// newValidator reports fields by their config keys (tables.particle_match)
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})
	return v
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate config")
	}

	fe := fieldErrs[0]
	key := fe.Namespace()
	if i := strings.IndexByte(key, '.'); i >= 0 {
		key = key[i+1:]
	}
	if fe.Tag() == "min" {
		return errors.Newf("%s must be >= %s, got %v", key, fe.Param(), fe.Value())
	}
	return errors.WithHintf(
		errors.Newf("%s: unsupported value %q", key, fe.Value()),
		"allowed values: %s", strings.ReplaceAll(fe.Param(), " ", ", "),
	)
}
