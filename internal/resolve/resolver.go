package resolve

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Stage identifies the step of the chain that produced a result.
type Stage int

const (
	StageNone Stage = iota
	StageFreeForm
	StageFormatTable
	StageTwoDigitYear
	StagePermissive
)

func (s Stage) String() string {
	switch s {
	case StageNone:
		return "none"
	case StageFreeForm:
		return "free_form"
	case StageFormatTable:
		return "format_table"
	case StageTwoDigitYear:
		return "two_digit_year"
	case StagePermissive:
		return "permissive"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Stages lists the resolving stages in the order they run.
var Stages = []Stage{StageFreeForm, StageFormatTable, StageTwoDigitYear, StagePermissive}

// Resolution is a successful result.
type Resolution struct {
	Timestamp Timestamp
	Stage     Stage
	Specifier string // catalog entry name, format-table stage only
}

type options struct {
	catalog    *Catalog
	freeForm   Parser
	permissive Parser
	log        zerolog.Logger
}

// Option configures a Resolver.
type Option func(*options)

// WithCatalog replaces the compiled-in catalog.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithFreeForm replaces the free-form parser.
func WithFreeForm(p Parser) Option {
	return func(o *options) {
		o.freeForm = p
	}
}

// WithPermissive replaces the permissive fallback parser.
func WithPermissive(p Parser) Option {
	return func(o *options) {
		o.permissive = p
	}
}

// WithLogger sets the logger used for debug diagnostics. Default: zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Resolver runs the resolution chain. It holds no mutable state and is safe
// for concurrent use.
type Resolver struct {
	catalog    *Catalog
	freeForm   Parser
	permissive Parser
	log        zerolog.Logger
}

// New creates a Resolver. Unset options fall back to the compiled-in catalog,
// FreeForm, and a Permissive parser over DefaultLanguages.
func New(opts ...Option) *Resolver {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = DefaultCatalog()
	}
	if o.freeForm == nil {
		o.freeForm = FreeForm()
	}
	if o.permissive == nil {
		o.permissive = NewPermissive(DefaultLanguages, nil)
	}
	return &Resolver{
		catalog:    o.catalog,
		freeForm:   o.freeForm,
		permissive: o.permissive,
		log:        o.log,
	}
}

// Catalog returns the resolver's format catalog.
func (r *Resolver) Catalog() *Catalog { return r.catalog }

// Resolve runs the chain on raw. The returned error is the permissive stage's
// *StageError when nothing resolved. With debug set, weekday stripping and
// every fall-through are logged at debug level.
func (r *Resolver) Resolve(raw string, debug bool) (Resolution, error) {
	s, changed := StripWeekdays(raw)
	if changed && debug {
		r.log.Debug().Str("input", raw).Str("cleaned", s).Msg("removed days of week")
	}

	var err error
	for _, stage := range Stages {
		var res Resolution
		res, err = r.run(stage, s)
		if err == nil {
			return res, nil
		}
		if debug {
			r.log.Debug().Err(err).Str("stage", stage.String()).Msg("stage did not resolve")
		}
	}
	return Resolution{}, err
}

func (r *Resolver) run(stage Stage, s string) (Resolution, error) {
	switch stage {
	case StageFreeForm:
		t, err := safeParse(r.freeForm, s)
		if err != nil {
			return Resolution{}, stageError(stage, ErrFreeForm, s, err)
		}
		return Resolution{Timestamp: fromParsed(t, s), Stage: stage}, nil

	case StageFormatTable:
		spec, ts, ok := r.catalog.Match(s)
		if !ok {
			return Resolution{}, stageError(stage, ErrFormatMismatch, s, nil)
		}
		return Resolution{Timestamp: ts, Stage: stage, Specifier: spec.Name}, nil

	case StageTwoDigitYear:
		ts, err := parseTwoDigitYear(s)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Timestamp: ts, Stage: stage}, nil

	case StagePermissive:
		t, err := safeParse(r.permissive, s)
		if err != nil {
			return Resolution{}, stageError(stage, ErrPermissive, s, err)
		}
		return Resolution{Timestamp: fromParsed(t, s), Stage: stage}, nil
	}
	return Resolution{}, fmt.Errorf("unknown stage %s", stage)
}

// ToRFC3339 resolves raw to its canonical string. A nil input yields nil. An
// unresolved input yields nil, or with debug set a message naming the input.
func (r *Resolver) ToRFC3339(raw *string, debug bool) *string {
	if raw == nil {
		return nil
	}
	res, err := r.Resolve(*raw, debug)
	if err != nil {
		if debug {
			msg := UnresolvedMessage(*raw)
			return &msg
		}
		return nil
	}
	out := res.Timestamp.String()
	return &out
}

// UnresolvedMessage is the debug-mode stand-in for an unresolved input.
func UnresolvedMessage(raw string) string {
	return "Could not parse the date: " + raw
}

var defaultResolver = New()

// ToRFC3339 resolves raw with the default Resolver.
func ToRFC3339(raw *string, debug bool) *string {
	return defaultResolver.ToRFC3339(raw, debug)
}
