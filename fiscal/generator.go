package fiscal

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teranos/fiscal/errors"
	"github.com/teranos/fiscal/logger"
	"github.com/teranos/fiscal/tables"
	"go.uber.org/zap"
)

// Tables is the reference data the rules consult. *tables.Tables implements it.
type Tables interface {
	Particles() []string
	Digraph(prefix string) (string, bool)
	IsGivenNameFiller(token string) bool
	IsBlocked(code string) bool
	StateCode(name string) (string, bool)
}

// Generator turns a Person into a Code.
type Generator struct {
	tables   Tables
	clock    Clock
	log      *zap.SugaredLogger
	match    ParticleMatch
	trace    bool
	validate *validator.Validate
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for absent birth dates.
func WithClock(c Clock) Option {
	return func(g *Generator) { g.clock = c }
}

// WithLogger sets the logger that receives the intermediate name code.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(g *Generator) { g.log = l }
}

// WithParticleMatch sets how particles are stripped from the paternal surname.
func WithParticleMatch(m ParticleMatch) Option {
	return func(g *Generator) { g.match = m }
}

// WithTrace logs every normalization step at debug level.
func WithTrace(on bool) Option {
	return func(g *Generator) { g.trace = on }
}

// NewGenerator creates a generator over t. A nil t uses tables.Default().
func NewGenerator(t Tables, opts ...Option) *Generator {
	if tt, ok := t.(*tables.Tables); t == nil || (ok && tt == nil) {
		t = tables.Default()
	}
	g := &Generator{
		tables:   t,
		clock:    SystemClock,
		log:      logger.ComponentLogger("fiscal"),
		match:    MatchSubstring,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// newValidator reports fields by their json names (given_name, paternal_surname)
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Generate runs the full pipeline and returns the ten-character code.
//
// Errors: a ValidationError when the given name or paternal surname is empty
// after normalization, or when particle stripping leaves nothing of the
// paternal surname; a DateFormatError when the birth date string is invalid.
func (g *Generator) Generate(p Person) (Code, error) {
	parsed := g.Parse(p)
	if err := g.validateParsed(parsed); err != nil {
		return Code{}, err
	}

	g.traceStep("normalized names", parsed.GivenName, parsed.PaternalSurname, parsed.MaternalSurname)

	given := ReducePrecision(parsed.GivenName, g.tables)
	paternal := ReducePrecision(parsed.PaternalSurname, g.tables)
	maternal := ReducePrecision(parsed.MaternalSurname, g.tables)
	g.traceStep("reduced digraphs", given, paternal, maternal)

	paternal = StripArticles(paternal, g.tables.Particles(), g.match)
	g.traceStep("stripped particles", given, paternal, maternal)
	if paternal == "" {
		return Code{}, errors.WithHint(
			errors.NewValidationError("paternal_surname", parsed.PaternalSurname,
				"nothing left after removing particles"),
			"a paternal surname made only of particles (DE, LA, ...) cannot be coded",
		)
	}

	rule := SelectRule(paternal)
	composed := Compose(rule, given, paternal, maternal)
	nameCode := FilterWord(composed, g.tables)

	g.log.Debugw("composed name code",
		logger.FieldNameCode, composed,
		logger.FieldRule, string(rule),
		logger.FieldSurname, paternal,
		logger.FieldFiltered, nameCode != composed)

	dateCode, err := EncodeDate(p.BirthDate, g.clock)
	if err != nil {
		return Code{}, err
	}

	return Code{
		nameCode: nameCode,
		dateCode: dateCode,
		rule:     rule,
		filtered: nameCode != composed,
	}, nil
}

func (g *Generator) traceStep(msg, given, paternal, maternal string) {
	if !g.trace {
		return
	}
	g.log.Debugw(msg,
		logger.FieldGivenName, given,
		logger.FieldPaternal, paternal,
		logger.FieldMaternal, maternal)
}

// validateParsed reports the first required field that normalized to nothing
func (g *Generator) validateParsed(parsed Parsed) error {
	err := g.validate.Struct(parsed)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "validate name")
	}
	return errors.NewValidationError(fieldErrs[0].Field(), "", "required after normalization")
}

// Generate builds a code with the default tables and the system clock. Pass
// "" for a missing maternal surname and BirthDate{} for today.
func Generate(given, paternal, maternal string, birth BirthDate) (Code, error) {
	return NewGenerator(nil).Generate(Person{
		GivenName:       given,
		PaternalSurname: paternal,
		MaternalSurname: maternal,
		BirthDate:       birth,
	})
}
