package inflect

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Count is any integer, float or string type accepted by Quantify.
type Count interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~string
}

// Quantify formats count followed by unit, pluralizing unit unless count is
// exactly one. The first plural argument, when given, replaces the
// pluralized unit. String counts are printed verbatim and compared by their
// numeric value: blank strings count as zero and unparseable strings are
// never one.
func Quantify[C Count](count C, unit string, plural ...string) string {
	literal, value := countValue(count)
	return defaultInflector.quantify(literal, value, unit, plural)
}

// Quantify formats a count given as text, pluralizing unit with this
// Inflector's rules.
func (in *Inflector) Quantify(count, unit string, plural ...string) string {
	return in.quantify(count, parseCount(count), unit, plural)
}

func (in *Inflector) quantify(literal string, value float64, unit string, plural []string) string {
	label := unit
	if value != 1 {
		if len(plural) > 0 {
			label = plural[0]
		} else {
			label = in.Pluralize(unit)
		}
	}
	return literal + " " + label
}

func countValue[C Count](count C) (string, float64) {
	v := reflect.ValueOf(count)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		return strconv.FormatInt(n, 10), float64(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := v.Uint()
		return strconv.FormatUint(n, 10), float64(n)
	case reflect.Float32:
		f := v.Float()
		return formatFloat(f, 32), f
	case reflect.Float64:
		f := v.Float()
		return formatFloat(f, 64), f
	default:
		s := v.String()
		return s, parseCount(s)
	}
}

func parseCount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// formatFloat prints f in plain decimal notation for ordinary magnitudes and
// in exponent notation for very large or very small ones.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return trimExponent(strconv.FormatFloat(f, 'g', -1, bitSize))
}

// trimExponent drops leading zeros from the exponent: "1e-07" becomes "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}
