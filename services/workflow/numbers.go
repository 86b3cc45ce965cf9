package workflow

import (
	"strconv"
	"strings"

	"weddingconsole/models"

	"github.com/shopspring/decimal"
)

// NumberParser turns numeric form input into values.
//
// In lenient mode input is read the way the web client's parseInt/parseFloat
// read it: the longest numeric prefix counts ("12abc" is 12) and input with no
// numeric prefix, or a negative value, becomes 0. In strict mode anything that
// is not a plain non-negative number fails with InvalidNumber.
type NumberParser struct {
	Strict bool
}

// Int parses an integer field. Fractional input is truncated in lenient mode.
func (p NumberParser) Int(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		if p.Strict {
			return 0, newError(CodeInvalidNumber, "%s must be a whole number, got %q", field, raw)
		}
		n, err = strconv.Atoi(numericPrefix(raw, false))
		if err != nil {
			return 0, nil
		}
	}
	if n < 0 {
		if p.Strict {
			return 0, newError(CodeInvalidNumber, "%s must not be negative", field)
		}
		return 0, nil
	}
	return n, nil
}

// Decimal parses a monetary field.
func (p NumberParser) Decimal(field, raw string) (models.Money, error) {
	raw = strings.TrimSpace(raw)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		if p.Strict {
			return models.Money{}, newError(CodeInvalidNumber, "%s must be a number, got %q", field, raw)
		}
		d, err = decimal.NewFromString(numericPrefix(raw, true))
		if err != nil {
			return models.NewMoney(decimal.Zero), nil
		}
	}
	if d.IsNegative() {
		if p.Strict {
			return models.Money{}, newError(CodeInvalidNumber, "%s must not be negative", field)
		}
		return models.NewMoney(decimal.Zero), nil
	}
	return models.NewMoney(d), nil
}

// numericPrefix returns the leading base-10 number of s: an optional sign and
// digits, plus a fraction and exponent when decimals is set. Fractions and
// exponents are normalised so decimal.NewFromString accepts them (".5" -> "0.5").
// It returns "" when s has no leading digits.
func numericPrefix(s string, decimals bool) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	sign := s[:i]
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	whole := s[start:i]
	if !decimals {
		if whole == "" {
			return ""
		}
		return sign + whole
	}

	frac := ""
	if i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		frac = s[i:j]
		i = j
	}
	if whole == "" && frac == "" {
		return ""
	}
	if whole == "" {
		whole = "0"
	}

	exp := ""
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			exp = s[i:k]
		}
	}
	return sign + whole + frac + exp
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
