package pricing

import (
	"strconv"
	"strings"
)

// Count is a record count decoded leniently from JSON. Browsers post the
// estimator form with the data size as either a number or a string, and
// malformed values must never fail the request, so anything unparseable
// decodes to zero.
type Count int

// UnmarshalJSON accepts a JSON number, a numeric string, or anything else
// (which coerces to 0). Fractional numbers are truncated.
func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*c = 0
		return nil
	}

	// Quoted string form
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			*c = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(unquoted))
		if err != nil {
			*c = 0
			return nil
		}
		*c = Count(n)
		return nil
	}

	// Bare number form
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*c = Count(int(f))
		return nil
	}

	// Objects, arrays, booleans: coerce rather than reject
	*c = 0
	return nil
}

// Int returns the count as a plain int.
func (c Count) Int() int {
	return int(c)
}
