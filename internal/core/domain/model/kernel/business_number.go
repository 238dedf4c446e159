package kernel

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"consolidation/internal/pkg/errs"
)

// NumberPrefix identifies the kind of day-scoped business number being issued.
type NumberPrefix string

const (
	// PrefixTracking is used for consolidation master tracking numbers.
	PrefixTracking NumberPrefix = "MTN"
	// PrefixReceipt is used for receipt numbers.
	PrefixReceipt NumberPrefix = "RCP"
	// PrefixRequest is used for intake request numbers.
	PrefixRequest NumberPrefix = "REQ"
)

// sequenceDigits is the minimum width of the zero-padded sequence suffix.
const sequenceDigits = 4

// String returns the string representation of the prefix.
func (p NumberPrefix) String() string {
	return string(p)
}

// Validate checks that the prefix is one of the known business-number kinds.
func (p NumberPrefix) Validate() error {
	switch p {
	case PrefixTracking, PrefixReceipt, PrefixRequest:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("prefix",
			fmt.Errorf("%q is not a known business number prefix", string(p)))
	}
}

// FormatBusinessNumber renders a day-scoped identifier in the canonical
// {PREFIX}-{YYYY}{MM}{DD}-{NNNN} form, e.g. MTN-20240115-0001. Sequence
// numbers above 9999 widen the suffix instead of truncating it.
func FormatBusinessNumber(prefix NumberPrefix, day time.Time, sequence int64) string {
	return fmt.Sprintf("%s-%s-%0*d", prefix, day.Format("20060102"), sequenceDigits, sequence)
}

// SequenceSuffix extracts the trailing numeric sequence of a business number.
// It returns an error when the number is too short or the suffix is not an
// integer, which callers treat as "no usable sequence".
func SequenceSuffix(number string) (int64, error) {
	idx := strings.LastIndex(number, "-")
	if idx < 0 || idx == len(number)-1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%q has no sequence suffix", number))
	}

	seq, err := strconv.ParseInt(number[idx+1:], 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("suffix of %q is not numeric: %w", number, err))
	}

	return seq, nil
}

// DayOf truncates a timestamp to the start of its calendar day in the
// timestamp's own location. Business-number sequences are scoped to the
// half-open interval [DayOf(t), DayOf(t)+24h).
func DayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
