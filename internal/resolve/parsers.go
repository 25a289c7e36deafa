package resolve

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	dps "github.com/markusmobius/go-dateparser"
)

// Parser is a date capability that needs no format hint.
type Parser interface {
	Parse(s string) (time.Time, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(s string) (time.Time, error)

func (f ParserFunc) Parse(s string) (time.Time, error) { return f(s) }

// FreeForm returns the default free-form capability. It refuses strings whose
// month/day order is ambiguous (01/02/24) so the catalog decides those, and
// anything screen rejects.
func FreeForm() Parser {
	return ParserFunc(func(s string) (time.Time, error) {
		if err := screen(s); err != nil {
			return time.Time{}, err
		}
		return dateparse.ParseStrict(s)
	})
}

var (
	errBareNumber = errors.New("bare number is not a date")
	errGlued      = errors.New("word glued to digits")
)

var letterRun = regexp.MustCompile(`[A-Za-z]+`)

// Suffixes that legitimately touch digits: ordinals and 12-hour markers.
var gluedSuffixes = map[string]bool{
	"st": true, "nd": true, "rd": true, "th": true,
	"am": true, "pm": true,
}

// screen rejects input the library parsers would otherwise bend into a date:
// digit runs that only read as epoch seconds, and words stuck to numbers
// ("2024-01-01garbage"). Compact yyyymmdd and yyyymmddhhmmss pass.
func screen(s string) error {
	t := strings.TrimSpace(s)
	if allDigits(t) && len(t) != 8 && len(t) != 14 {
		return errBareNumber
	}
	for _, loc := range letterRun.FindAllStringIndex(t, -1) {
		word := t[loc[0]:loc[1]]
		if len(word) < 2 || gluedSuffixes[strings.ToLower(word)] {
			continue
		}
		if (loc[0] > 0 && isDigit(t[loc[0]-1])) || (loc[1] < len(t) && isDigit(t[loc[1]])) {
			return fmt.Errorf("%w: %q", errGlued, word)
		}
	}
	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// DefaultLanguages are the locales the permissive parser considers when a
// deployment does not configure its own.
var DefaultLanguages = []string{"en", "ja", "ar"}

var errNoDate = errors.New("no date found")

// Permissive is the last-resort parser: multilingual, tolerant of partial
// dates and relative expressions ("yesterday", "3 days ago").
type Permissive struct {
	languages []string
	now       func() time.Time
	parsers   sync.Pool
}

// NewPermissive builds a permissive parser for the given languages. now
// anchors relative expressions; nil means time.Now.
func NewPermissive(languages []string, now func() time.Time) *Permissive {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	if now == nil {
		now = time.Now
	}
	p := &Permissive{
		languages: append([]string(nil), languages...),
		now:       now,
	}
	p.parsers.New = func() any {
		// Unix timestamps are not dates in this domain.
		return &dps.Parser{ParserTypes: []dps.ParserType{
			dps.RelativeTime,
			dps.CustomFormat,
			dps.AbsoluteTime,
			dps.NoSpacesTime,
		}}
	}
	return p
}

// Parse implements Parser. A dps.Parser locks itself for the whole call, so
// concurrent callers each borrow one from the pool.
func (p *Permissive) Parse(s string) (time.Time, error) {
	if err := screen(s); err != nil {
		return time.Time{}, err
	}
	cfg := &dps.Configuration{
		Languages:       p.languages,
		CurrentTime:     p.now(),
		DefaultTimezone: time.UTC,
	}
	dp := p.parsers.Get().(*dps.Parser)
	defer p.parsers.Put(dp)
	dt, err := dp.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}
	if dt.Time.IsZero() {
		return time.Time{}, errNoDate
	}
	return dt.Time, nil
}

// safeParse calls p and converts a panic into an error; malformed input must
// never take down the caller.
func safeParse(p Parser, s string) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return p.Parse(s)
}
