package settings

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Boolean vocabulary accepted by KindBool fields, matched
// case-insensitively.
var boolTokens = map[string]bool{
	"true": true, "1": true, "yes": true, "y": true, "on": true,
	"false": false, "0": false, "no": false, "n": false, "off": false,
}

// BindOption adjusts a single Bind call.
type BindOption func(*bindOptions)

type bindOptions struct {
	logger *zap.Logger
}

// WithLogger makes Bind emit a debug log line for every environment
// variable it assigns or skips. Values of fields whose name contains
// "password" are masked.
func WithLogger(logger *zap.Logger) BindOption {
	return func(o *bindOptions) { o.logger = logger }
}

// Bind populates the declaration's fields from the process environment.
//
// Every environment variable whose name starts with prefix (matched
// case-sensitively) is considered: the prefix is stripped, the remainder
// lowercased, and the result matched against declared field names.
// Matched values are coerced to the field's kind and assigned in place;
// unmatched variables are ignored. An empty prefix matches every
// variable and is allowed but discouraged.
//
// Bind fails fast: it returns the first *CoercionError encountered and
// leaves any fields assigned before that point bound. Absent variables
// are never an error; use Missing afterwards to find required fields
// that remain unset.
func (d *Declaration) Bind(prefix string, opts ...BindOption) error {
	var o bindOptions
	for _, opt := range opts {
		opt(&o)
	}

	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}

		fieldName := strings.ToLower(name[len(prefix):])
		f := d.fields[fieldName]
		if f == nil {
			continue
		}
		if f.noEnviron {
			if o.logger != nil {
				o.logger.Debug("skipping environment variable, field is not settable from environment",
					zap.String("variable", name))
			}
			continue
		}

		if err := f.assign(value); err != nil {
			return err
		}
		if o.logger != nil {
			o.logger.Debug("bound environment variable",
				zap.String("variable", name),
				zap.String("field", fieldName),
				zap.String("value", MaskValue(fieldName, value)))
		}
	}
	return nil
}

// Missing returns the names of required fields that hold no value after
// binding: no default, not marked optional, and no environment variable
// matched. The result is sorted by name. Missing is a pure read and
// never mutates the declaration.
func (d *Declaration) Missing() []string {
	missing := make([]string, 0)
	for _, name := range d.order {
		f := d.fields[name]
		if f.optional || f.IsSet() {
			continue
		}
		missing = append(missing, name)
	}
	sort.Strings(missing)
	return missing
}

// ParseBool maps raw to the boolean vocabulary accepted by KindBool
// fields. ok is false when raw is not a recognized token.
func ParseBool(raw string) (value, ok bool) {
	value, ok = boolTokens[strings.ToLower(raw)]
	return value, ok
}

// MaskValue hides all but the first four characters of value when the
// field name suggests a credential. Other values pass through verbatim.
func MaskValue(field, value string) string {
	if !strings.Contains(field, "password") {
		return value
	}
	head := value
	if len(head) > 4 {
		head = head[:4]
	}
	return "****" + head
}

func (f *Field) assign(raw string) error {
	switch f.kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return &CoercionError{Field: f.name, Value: raw, Kind: f.kind}
		}
		*f.ip = n
	case KindBool:
		b, ok := boolTokens[strings.ToLower(raw)]
		if !ok {
			return &CoercionError{Field: f.name, Value: raw, Kind: f.kind}
		}
		*f.bp = b
	default:
		*f.sp = raw
	}
	f.set = true
	return nil
}
