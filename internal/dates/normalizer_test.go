package dates

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

var fixedNow = func() time.Time {
	return time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
}

func newTestNormalizer(natural interfaces.DateParser, logger interfaces.Logger) *Normalizer {
	return NewNormalizer(NormalizerConfig{
		Natural: natural,
		Now:     fixedNow,
		Logger:  logger,
	})
}

func TestNormalizeIdentityOnISO(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	inputs := []string{"2020-01-01", "1999-12-31", "2012-10-10"}
	for _, input := range inputs {
		if got := n.Normalize(input); got != input {
			t.Fatalf("Normalize(%q) = %q, want identity", input, got)
		}
	}
}

func TestNormalizeEmptyReturnsToday(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	for _, input := range []string{"", "   ", "\t"} {
		if got := n.Normalize(input); got != "2024-03-15" {
			t.Fatalf("Normalize(%q) = %q, want today", input, got)
		}
	}
}

func TestNormalizeStripsQuotes(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	if got := n.Normalize(`"2020-01-01"`); got != "2020-01-01" {
		t.Fatalf("expected quoted ISO date to normalize, got %q", got)
	}
	if got := n.Normalize("'2020-01-01'"); got != "2020-01-01" {
		t.Fatalf("expected single-quoted ISO date to normalize, got %q", got)
	}
}

func TestNormalizeStrictLayouts(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	cases := map[string]string{
		"2012-10-10 06:02:33": "2012-10-10",
		"2012-10-10 06:02 AM": "2012-10-10",
	}
	for input, want := range cases {
		if got := n.Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeHumanFormatsWithTimezoneSuffix(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	cases := map[string]string{
		"Oct 10, 2012 06:02 AM PDT":  "2012-10-10",
		"Oct 10, 2012 06:02 AM":      "2012-10-10",
		"Oct 10, 2012 18:02":         "2012-10-10",
		"Oct 10, 2012":               "2012-10-10",
		"October 10, 2012 06:02 PM":  "2012-10-10",
		"October 10, 2012":           "2012-10-10",
		"Dec 1, 2019 08:15 PM (UTC)": "2019-12-01",
		"Dec 1, 2019 08:15 PM GMT+0200": "2019-12-01",
	}
	for input, want := range cases {
		if got := n.Normalize(input); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeEmbeddedDateFragment(t *testing.T) {
	n := newTestNormalizer(nil, nil)

	if got := n.Normalize("posted on Oct 10, 2012 at breakfast"); got != "2012-10-10" {
		t.Fatalf("expected embedded fragment to parse, got %q", got)
	}
}

func TestNormalizeGarbageWarnsAndReturnsToday(t *testing.T) {
	logger := &captureLogger{}
	n := newTestNormalizer(nil, logger)

	if got := n.Normalize("garbage not a date"); got != "2024-03-15" {
		t.Fatalf("expected today's date for garbage input, got %q", got)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(logger.warnings))
	}
	if !strings.Contains(logger.warnings[0], "unrecognized") {
		t.Fatalf("warning should name the failure, got %q", logger.warnings[0])
	}
	if logger.warnArgs[0][1] != "garbage not a date" {
		t.Fatalf("warning should carry the raw input, got %v", logger.warnArgs[0])
	}
}

func TestNormalizePrefersNaturalParser(t *testing.T) {
	var seen string
	natural := func(value string) (time.Time, error) {
		seen = value
		return time.Date(2001, time.February, 3, 0, 0, 0, 0, time.UTC), nil
	}
	n := newTestNormalizer(natural, nil)

	if got := n.Normalize("third of february, 2001"); got != "2001-02-03" {
		t.Fatalf("expected natural parser result, got %q", got)
	}
	if seen != "third of february, 2001" {
		t.Fatalf("natural parser received %q", seen)
	}
}

func TestNormalizeFallsThroughWhenNaturalParserFails(t *testing.T) {
	natural := func(string) (time.Time, error) {
		return time.Time{}, errors.New("nope")
	}
	n := newTestNormalizer(natural, nil)

	if got := n.Normalize("2020-01-01"); got != "2020-01-01" {
		t.Fatalf("expected strict tier to recover, got %q", got)
	}
}

func TestParseNaturalHandlesCommonFormats(t *testing.T) {
	parsed, err := ParseNatural("May 8, 2009 5:57:51 PM")
	if err != nil {
		t.Fatalf("ParseNatural: %v", err)
	}
	if got := parsed.Format(ISOLayout); got != "2009-05-08" {
		t.Fatalf("expected 2009-05-08, got %q", got)
	}
}

type captureLogger struct {
	warnings []string
	warnArgs [][]any
}

var _ interfaces.Logger = (*captureLogger)(nil)

func (c *captureLogger) Trace(string, ...any) {}
func (c *captureLogger) Debug(string, ...any) {}
func (c *captureLogger) Info(string, ...any)  {}
func (c *captureLogger) Error(string, ...any) {}
func (c *captureLogger) Fatal(string, ...any) {}

func (c *captureLogger) Warn(msg string, args ...any) {
	c.warnings = append(c.warnings, msg)
	c.warnArgs = append(c.warnArgs, args)
}

func (c *captureLogger) WithContext(context.Context) interfaces.Logger { return c }
