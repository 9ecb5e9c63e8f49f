// Package ranges parses the textual range grammars used for the $num
// and %y/%m/%d template dimensions. Three forms are shared by every
// parser: "A-B" (inclusive ascending range), "A,B,C" (explicit list),
// and a single bare value.
//
// Year, month and day validate their bounds and fail fast; the generic
// number parser is deliberately lenient and accepts arbitrary tokens.
// That asymmetry is intentional: $num carries arbitrary suffixes while
// the date dimensions must render real dates.
package ranges

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for the fixed grammars. Callers check with errors.Is.
var (
	ErrYearFormat   = errors.New("ranges: invalid year range, use 'YYYY-YYYY' or 'YYYY,YYYY'")
	ErrMonthFormat  = errors.New("ranges: invalid month range, use 'mm-mm' or 'mm,mm' with months in 1-12")
	ErrDayFormat    = errors.New("ranges: invalid day range, use 'dd-dd' or 'dd,dd' with days in 1-31")
	ErrNumberFormat = errors.New("ranges: invalid number range")
)

// Years expands a year range into 4-digit year strings. Every token
// must be exactly four digits. A reversed hyphen range ("2022-2019")
// passes validation and yields an empty list.
func Years(s string) ([]string, error) {
	switch {
	case strings.Contains(s, "-"):
		start, end, err := hyphenBounds(s, ErrYearFormat)
		if err != nil {
			return nil, err
		}
		if !fourDigits(start) || !fourDigits(end) {
			return nil, ErrYearFormat
		}
		var years []string
		for y := start; y <= end; y++ {
			years = append(years, strconv.Itoa(y))
		}
		return years, nil

	case strings.Contains(s, ","):
		tokens := strings.Split(s, ",")
		for _, tok := range tokens {
			if len(tok) != 4 || !digits(tok) {
				return nil, ErrYearFormat
			}
		}
		return tokens, nil

	default:
		if len(s) != 4 || !digits(s) {
			return nil, ErrYearFormat
		}
		return []string{s}, nil
	}
}

// Months expands a month range into zero-padded 2-digit strings.
// Tokens must fall in [1,12]; the bound check runs before expansion, so
// a reversed in-bounds range yields an empty list rather than an error.
func Months(s string) ([]string, error) {
	return boundedRange(s, 1, 12, ErrMonthFormat)
}

// Days expands a day range into zero-padded 2-digit strings. Tokens
// must fall in [1,31]. There is no month-aware day-count validation:
// day 31 is accepted standalone.
func Days(s string) ([]string, error) {
	return boundedRange(s, 1, 31, ErrDayFormat)
}

// Numbers expands a generic number range. No digit-count or bound
// validation is applied and tokens are not zero-padded. A hyphen range
// needs integer endpoints (empty endpoints yield an empty list); a
// comma list or bare value is taken verbatim, digits or not.
func Numbers(s string) ([]string, error) {
	if strings.Contains(s, "-") {
		lhs, rhs, _ := strings.Cut(s, "-")
		if lhs == "" && rhs == "" {
			return nil, nil
		}
		start, err := strconv.Atoi(lhs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
		end, err := strconv.Atoi(rhs)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNumberFormat, s)
		}
		var nums []string
		for n := start; n <= end; n++ {
			nums = append(nums, strconv.Itoa(n))
		}
		return nums, nil
	}
	return strings.Split(s, ","), nil
}

func boundedRange(s string, lo, hi int, grammarErr error) ([]string, error) {
	switch {
	case strings.Contains(s, "-"):
		start, end, err := hyphenBounds(s, grammarErr)
		if err != nil {
			return nil, err
		}
		if start < lo || start > hi || end < lo || end > hi {
			return nil, grammarErr
		}
		var out []string
		for v := start; v <= end; v++ {
			out = append(out, fmt.Sprintf("%02d", v))
		}
		return out, nil

	case strings.Contains(s, ","):
		tokens := strings.Split(s, ",")
		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			v, err := strconv.Atoi(tok)
			if err != nil || v < lo || v > hi {
				return nil, grammarErr
			}
			out = append(out, fmt.Sprintf("%02d", v))
		}
		return out, nil

	default:
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			return nil, grammarErr
		}
		return []string{fmt.Sprintf("%02d", v)}, nil
	}
}

func hyphenBounds(s string, grammarErr error) (int, int, error) {
	lhs, rhs, _ := strings.Cut(s, "-")
	start, err := strconv.Atoi(lhs)
	if err != nil {
		return 0, 0, grammarErr
	}
	end, err := strconv.Atoi(rhs)
	if err != nil {
		return 0, 0, grammarErr
	}
	return start, end, nil
}

func fourDigits(n int) bool {
	return n >= 1000 && n <= 9999
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
