package settings

import (
	"fmt"
	"strconv"
)

// Kind identifies the primitive type a field's environment value is
// coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
)

// String returns the kind's name as used in error messages and schema
// files.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Declaration is a fixed set of named settings fields. Fields are
// registered before the first Bind call; the set itself never changes
// afterwards, only the bound values do.
type Declaration struct {
	fields map[string]*Field
	order  []string
}

// Field is a single declared setting. The typed pointer returned at
// registration time shares storage with the Field, so values bound from
// the environment are visible to every holder of the pointer.
type Field struct {
	name       string
	kind       Kind
	optional   bool
	noEnviron  bool
	hasDefault bool
	set        bool

	sp *string
	ip *int
	bp *bool
}

// FieldOption adjusts how a field participates in binding and missing
// reporting.
type FieldOption func(*Field)

// Optional marks a field as not required: it is never reported by
// Missing even when it has no default and no environment variable
// matched.
func Optional() FieldOption {
	return func(f *Field) { f.optional = true }
}

// NoEnviron marks a field as not settable from the environment. A
// matching environment variable is skipped during Bind.
func NoEnviron() FieldOption {
	return func(f *Field) { f.noEnviron = true }
}

// New returns an empty Declaration ready for field registration.
func New() *Declaration {
	return &Declaration{fields: make(map[string]*Field)}
}

// String registers a required string field and returns a pointer to its
// value storage. Registering a name twice panics.
func (d *Declaration) String(name string, opts ...FieldOption) *string {
	f := d.register(name, KindString, opts)
	f.sp = new(string)
	return f.sp
}

// StringDefault registers a string field with a default value. The field
// is never reported missing.
func (d *Declaration) StringDefault(name, value string, opts ...FieldOption) *string {
	f := d.register(name, KindString, opts)
	f.hasDefault = true
	f.sp = &value
	return f.sp
}

// Int registers a required integer field.
func (d *Declaration) Int(name string, opts ...FieldOption) *int {
	f := d.register(name, KindInt, opts)
	f.ip = new(int)
	return f.ip
}

// IntDefault registers an integer field with a default value.
func (d *Declaration) IntDefault(name string, value int, opts ...FieldOption) *int {
	f := d.register(name, KindInt, opts)
	f.hasDefault = true
	f.ip = &value
	return f.ip
}

// Bool registers a required boolean field.
func (d *Declaration) Bool(name string, opts ...FieldOption) *bool {
	f := d.register(name, KindBool, opts)
	f.bp = new(bool)
	return f.bp
}

// BoolDefault registers a boolean field with a default value.
func (d *Declaration) BoolDefault(name string, value bool, opts ...FieldOption) *bool {
	f := d.register(name, KindBool, opts)
	f.hasDefault = true
	f.bp = &value
	return f.bp
}

func (d *Declaration) register(name string, kind Kind, opts []FieldOption) *Field {
	if name == "" {
		panic("settings: field name must not be empty")
	}
	if _, exists := d.fields[name]; exists {
		panic(fmt.Sprintf("settings: field %q registered twice", name))
	}
	f := &Field{name: name, kind: kind}
	for _, opt := range opts {
		opt(f)
	}
	d.fields[name] = f
	d.order = append(d.order, name)
	return f
}

// Fields returns the declared fields in registration order.
func (d *Declaration) Fields() []*Field {
	out := make([]*Field, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.fields[name])
	}
	return out
}

// Lookup returns the field registered under name, or nil.
func (d *Declaration) Lookup(name string) *Field {
	return d.fields[name]
}

// Name returns the field's declared name.
func (f *Field) Name() string { return f.name }

// Kind returns the field's declared primitive type.
func (f *Field) Kind() Kind { return f.kind }

// IsSet reports whether the field holds a value, either a registration
// default or one bound from the environment.
func (f *Field) IsSet() bool { return f.set || f.hasDefault }

// Value returns the field's current value formatted as a string, or ""
// when the field is unset.
func (f *Field) Value() string {
	if !f.IsSet() {
		return ""
	}
	switch f.kind {
	case KindInt:
		return strconv.Itoa(*f.ip)
	case KindBool:
		return strconv.FormatBool(*f.bp)
	default:
		return *f.sp
	}
}
