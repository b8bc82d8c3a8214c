package validation

import (
	"net/mail"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Violations maps a field name to the rule it broke
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Error renders violations as "field: rule" pairs in field order
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + v[f]
	}
	return strings.Join(parts, "; ")
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MinLength(field, value string, n int, v Violations) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < n {
		v[field] = "min_length=" + strconv.Itoa(n)
	}
}

func Email(field, value string, v Violations) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v[field] = "invalid_email"
	}
}

func PositiveInt(field string, val int64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func OneOf(field, value string, allowed []string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "must_be_one_of=" + strings.Join(allowed, ",")
}
