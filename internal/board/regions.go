package board

import (
	"strings"
	"unicode"
)

// stateRegions maps each two-letter state code to its census region. The
// table is static lookup data; the scoring engine treats loads from the
// carrier's region as a middle priority band between same-state and generic
// matches.
var stateRegions = map[string]string{
	"CT": "Northeast", "MA": "Northeast", "ME": "Northeast", "NH": "Northeast",
	"NJ": "Northeast", "NY": "Northeast", "PA": "Northeast", "RI": "Northeast",
	"VT": "Northeast",

	"IA": "Midwest", "IL": "Midwest", "IN": "Midwest", "KS": "Midwest",
	"MI": "Midwest", "MN": "Midwest", "MO": "Midwest", "ND": "Midwest",
	"NE": "Midwest", "OH": "Midwest", "SD": "Midwest", "WI": "Midwest",

	"AL": "South", "AR": "South", "DC": "South", "DE": "South",
	"FL": "South", "GA": "South", "KY": "South", "LA": "South",
	"MD": "South", "MS": "South", "NC": "South", "OK": "South",
	"SC": "South", "TN": "South", "TX": "South", "VA": "South",
	"WV": "South",

	"AK": "West", "AZ": "West", "CA": "West", "CO": "West",
	"HI": "West", "ID": "West", "MT": "West", "NM": "West",
	"NV": "West", "OR": "West", "UT": "West", "WA": "West",
	"WY": "West",
}

// RegionForState returns the census region for a two-letter state code, or
// an empty string when the code is unknown.
func RegionForState(state string) string {
	return stateRegions[strings.ToUpper(strings.TrimSpace(state))]
}

// NormalizeState extracts a two-letter uppercase state code from the input.
// It accepts a bare code ("ca") or a longer location string whose trailing
// token is a state code ("Los Angeles, CA"). Unparsable input yields "".
func NormalizeState(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return ""
	}
	last := strings.Trim(fields[len(fields)-1], ".")
	if len(last) != 2 {
		return ""
	}
	for _, r := range last {
		if !unicode.IsLetter(r) {
			return ""
		}
	}
	return strings.ToUpper(last)
}
