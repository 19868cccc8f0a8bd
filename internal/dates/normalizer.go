package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// ISOLayout is the canonical calendar date format every normalization
// produces, regardless of what the source document carried.
const ISOLayout = "2006-01-02"

// strict layouts are attempted before any lossy cleanup. Order matters:
// cheaper and more precise parses run first.
var strictLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 03:04 PM",
}

// human layouts are attempted after timezone suffixes have been stripped.
var humanLayouts = []string{
	"Jan 2, 2006 03:04 PM",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006 03:04 PM",
	"January 2, 2006",
}

var (
	gmtSuffix   = regexp.MustCompile(`(?i)\s+\(?GMT[+-]?\d{1,4}\)?$`)
	utcSuffix   = regexp.MustCompile(`(?i)\s+\(?UTC\)?$`)
	abbrvSuffix = regexp.MustCompile(`\s+\(?[A-Za-z]{1,5}\)?$`)

	// embeddedDate matches fragments like "Oct 10, 2012" anywhere in the
	// raw string, as a last resort before giving up.
	embeddedDate = regexp.MustCompile(`[A-Za-z]{3,}\s+\d{1,2},\s+\d{4}`)
)

// NormalizerConfig captures the collaborators of a Normalizer. Every field
// is optional.
type NormalizerConfig struct {
	// Natural is the free-form date parsing collaborator. Nil skips the
	// natural-language tier entirely.
	Natural interfaces.DateParser
	// Now supplies the fallback clock. Defaults to time.Now.
	Now func() time.Time
	Logger interfaces.Logger
}

// Normalizer turns arbitrary human-entered date strings into canonical
// YYYY-MM-DD dates. Normalize never fails: unparseable input degrades to
// the current date so a bad date can never abort a conversion.
type Normalizer struct {
	natural interfaces.DateParser
	now     func() time.Time
	logger  interfaces.Logger
}

// NewNormalizer constructs a Normalizer from the supplied configuration.
func NewNormalizer(cfg NormalizerConfig) *Normalizer {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Normalizer{
		natural: cfg.Natural,
		now:     now,
		logger:  logger,
	}
}

// ParseNatural adapts dateparse into the DateParser contract. It handles
// free-form formats and embedded timezones, filling the role of an optional
// general-purpose parser in the normalization chain.
func ParseNatural(value string) (time.Time, error) {
	return dateparse.ParseAny(value)
}

// Normalize resolves raw into a YYYY-MM-DD string through an ordered
// fallback chain; the first successful tier wins. Empty input and input no
// tier recognises both resolve to today's date, the latter with a warning.
func (n *Normalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return n.today()
	}
	trimmed = strings.Trim(trimmed, `"'`)

	if n.natural != nil {
		if parsed, err := n.natural(trimmed); err == nil {
			return parsed.Format(ISOLayout)
		}
	}

	for _, layout := range strictLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.Format(ISOLayout)
		}
	}

	cleaned := gmtSuffix.ReplaceAllString(trimmed, "")
	cleaned = utcSuffix.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(abbrvSuffix.ReplaceAllString(cleaned, ""))

	for _, layout := range humanLayouts {
		if parsed, err := time.Parse(layout, cleaned); err == nil {
			return parsed.Format(ISOLayout)
		}
	}

	// The suffix stripping above is lossy, so the embedded search runs
	// against the original string.
	if fragment := embeddedDate.FindString(trimmed); fragment != "" {
		if parsed, err := time.Parse("Jan 2, 2006", fragment); err == nil {
			return parsed.Format(ISOLayout)
		}
	}

	n.logger.Warn("unrecognized date format, using today's date", "raw", raw)
	return n.today()
}

func (n *Normalizer) today() string {
	return n.now().Format(ISOLayout)
}
