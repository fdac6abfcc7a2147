package trace

import (
	"regexp"
	"sort"
	"strings"
)

type Detailer interface {
	Details() Details
}

var _ Detailer = Details(0)

type Details uint64

func (d Details) Details() Details {
	return d
}

func (d Details) String() string {
	ss := make([]string, 0)
	for bit, name := range detailsMap {
		if d&bit == bit {
			ss = append(ss, name)
		}
	}
	sort.Strings(ss)

	return strings.Join(ss, "|")
}

const (
	DecimalParseEvents Details = 1 << iota // for bitmask: 1, 2, 4, 8, 16, 32, ...
	DecimalOperationEvents
	DecimalRoundingEvents

	BigintParseEvents
	BigintOperationEvents

	DecimalEvents = DecimalParseEvents |
		DecimalOperationEvents |
		DecimalRoundingEvents

	BigintEvents = BigintParseEvents |
		BigintOperationEvents

	DetailsAll = ^Details(0) // All bits enabled
)

var (
	detailsMap = map[Details]string{
		DecimalEvents:          "kbignum.decimal",
		DecimalParseEvents:     "kbignum.decimal.parse",
		DecimalOperationEvents: "kbignum.decimal.operation",
		DecimalRoundingEvents:  "kbignum.decimal.rounding",

		BigintEvents:          "kbignum.bigint",
		BigintParseEvents:     "kbignum.bigint.parse",
		BigintOperationEvents: "kbignum.bigint.operation",
	}
	defaultDetails = DetailsAll
)

type matchDetailsOptionsHolder struct {
	defaultDetails Details
	posixMatch     bool
}

type matchDetailsOption func(h *matchDetailsOptionsHolder)

func WithDefaultDetails(defaultDetails Details) matchDetailsOption {
	return func(h *matchDetailsOptionsHolder) {
		h.defaultDetails = defaultDetails
	}
}

func WithPOSIXMatch() matchDetailsOption {
	return func(h *matchDetailsOptionsHolder) {
		h.posixMatch = true
	}
}

// MatchDetails collects details whose names match pattern.
// Invalid or unmatched pattern yields default details.
func MatchDetails(pattern string, opts ...matchDetailsOption) (d Details) {
	var (
		h = &matchDetailsOptionsHolder{
			defaultDetails: defaultDetails,
		}
		re  *regexp.Regexp
		err error
	)

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	if h.posixMatch {
		re, err = regexp.CompilePOSIX(pattern)
	} else {
		re, err = regexp.Compile(pattern)
	}
	if err != nil {
		return h.defaultDetails
	}
	for k, v := range detailsMap {
		if re.MatchString(v) {
			d |= k
		}
	}
	if d == 0 {
		return h.defaultDetails
	}

	return d
}
