package wldat

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// specialWords are the non-finite spellings accepted wherever a number is.
// Longer words come first so "infinity" is not read as "inf".
var specialWords = []struct {
	word  string
	value float64
}{
	{"infinity", math.Inf(1)},
	{"indeterminate", math.NaN()},
	{"inf", math.Inf(1)},
	{"nan", math.NaN()},
}

// normalizeReal applies the token rewrites shared by real and complex
// literals.
func normalizeReal(token string) string {
	if token == "ComplexInfinity" {
		token = "Infinity"
	}
	token = strings.ReplaceAll(token, " ", "")
	token = strings.ReplaceAll(token, `"`, "")
	return strings.ReplaceAll(token, "*^", "e")
}

func normalizeComplex(token string) string {
	s := normalizeReal(token)
	s = strings.ReplaceAll(s, "j", "i")
	s = strings.ReplaceAll(s, "I", "i")
	return strings.ReplaceAll(s, "*i", "i")
}

// ParseReal parses a real literal. The whole token must be a number after
// normalization; otherwise it returns NaN and false.
func ParseReal(token string) (float64, bool) {
	s := normalizeReal(token)
	v, n, ok := scanFloat(s)
	if !ok || n != len(s) {
		return math.NaN(), false
	}
	return v, true
}

// ParseComplex parses a real or complex literal in C, Wolfram or MATLAB
// notation. On failure it returns NaN+NaNi and false.
func ParseComplex(token string) (complex128, bool) {
	bad := complex(math.NaN(), math.NaN())
	s := normalizeComplex(token)

	if !strings.HasSuffix(s, "i") {
		v, n, ok := scanFloat(s)
		if !ok || n != len(s) {
			return bad, false
		}
		return complex(v, 0), true
	}

	body := s[:len(s)-1]
	switch body {
	case "", "+":
		return complex(0, 1), true
	case "-":
		return complex(0, -1), true
	}

	a, n, ok := scanFloat(body)
	if !ok {
		return bad, false
	}
	if n == len(body) {
		// bi
		return complex(0, a), true
	}

	op := body[n]
	if op != '+' && op != '-' {
		return bad, false
	}
	rest := body[n+1:]
	b := 1.0
	if rest != "" {
		v, m, ok := scanFloat(rest)
		if !ok || m != len(rest) {
			return bad, false
		}
		b = v
	}
	if op == '-' {
		b = -b
	}
	return complex(a, b), true
}

// scanFloat reads the longest real-number prefix of s and reports how many
// bytes it used. An exponent marker without digits is left unread.
func scanFloat(s string) (float64, int, bool) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	for _, w := range specialWords {
		if hasPrefixFold(s[i:], w.word) {
			v := w.value
			if neg {
				v = -v
			}
			return v, i + len(w.word), true
		}
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return math.NaN(), 0, false
	}

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
			i = k
		}
	}

	// Out-of-range values saturate to ±Inf or 0 as strtod does.
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), 0, false
	}
	return v, i, true
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// FormatReal renders v in scientific notation with 16 digits after the
// point. The exponent marker is *^ unless plain is set. Non-finite values
// use the Wolfram words Indeterminate, Infinity and -Infinity.
func FormatReal(v float64, plain bool) string {
	switch {
	case math.IsNaN(v):
		return "Indeterminate"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'e', 16, 64)
	if plain {
		return s
	}
	return strings.Replace(s, "e", "*^", 1)
}

// FormatComplex renders v as "re + im*I" or "re - im*I"; the printed
// imaginary magnitude is never negative.
func FormatComplex(v complex128, plain bool) string {
	re, im := real(v), imag(v)
	sign := " + "
	if im < 0 {
		sign = " - "
	}
	return FormatReal(re, plain) + sign + FormatReal(math.Abs(im), plain) + "*I"
}

// parseScalar and formatScalar pick the real or complex grammar for T.

func parseScalar[T Scalar](token string) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		v, ok := ParseReal(token)
		return any(v).(T), ok
	default:
		v, ok := ParseComplex(token)
		return any(v).(T), ok
	}
}

func formatScalar[T Scalar](v T, plain bool) string {
	switch x := any(v).(type) {
	case float64:
		return FormatReal(x, plain)
	case complex128:
		return FormatComplex(x, plain)
	}
	return ""
}
