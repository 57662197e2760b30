// Package redact obfuscates sensitive field values in delimited log records.
// A record is a sequence of key=value segments joined by a separator; the
// values of listed fields are replaced with a placeholder while everything
// else is left byte-for-byte intact.
package redact

import "strings"

// Redact returns message with the value of every listed field replaced by the
// redaction string. A field value is the maximal run of characters after the
// first "=" in a segment, up to the next separator or the end of the message.
//
// Field-name matching is exact and case-sensitive. Segments without "=" and
// fields not present in the message pass through unchanged; redaction never
// fails. An empty field set returns the message as-is. The function is pure
// and safe for concurrent use.
func Redact(message string, fields []string, redaction, separator string) string {
	if len(fields) == 0 || separator == "" {
		return message
	}

	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	segments := strings.Split(message, separator)
	for i, segment := range segments {
		key, _, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		if _, sensitive := set[key]; sensitive {
			segments[i] = key + "=" + redaction
		}
	}

	return strings.Join(segments, separator)
}

// Filter binds a field set, placeholder, and separator at construction so the
// same redaction policy can be applied to many records.
type Filter struct {
	fields    []string
	redaction string
	separator string
}

// NewFilter creates a Filter for the given fields. The caller's slice is
// copied so later mutation cannot change the policy.
func NewFilter(fields []string, redaction, separator string) *Filter {
	owned := make([]string, len(fields))
	copy(owned, fields)

	return &Filter{
		fields:    owned,
		redaction: redaction,
		separator: separator,
	}
}

// Apply redacts the bound fields in message.
func (f *Filter) Apply(message string) string {
	return Redact(message, f.fields, f.redaction, f.separator)
}
