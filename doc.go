// Package settings populates a statically declared set of configuration
// fields from process environment variables.
//
// An application registers its fields on a Declaration once at startup,
// then binds them from the environment using a name prefix:
//
//	decl := settings.New()
//	dsn := decl.String("database_dsn")
//	debug := decl.BoolDefault("debug", false)
//
//	if err := decl.Bind("MYAPP_"); err != nil {
//		log.Fatal(err)
//	}
//	if missing := decl.Missing(); len(missing) > 0 {
//		log.Fatalf("missing required settings: %v", missing)
//	}
//
// With the environment variable MYAPP_DATABASE_DSN set, *dsn holds its
// value after Bind: the prefix is stripped, the remainder lowercased, and
// the result matched against declared field names. Environment variables
// that match no declared field are ignored.
//
// Values are coerced to the declared field type. Integer fields parse
// base-10 signed integers, boolean fields accept a small case-insensitive
// vocabulary (true/1/yes/y/on and false/0/no/n/off), and string fields
// take the value verbatim. A value that cannot be coerced makes Bind
// return a *CoercionError naming the field and the raw value.
//
// The intended usage is to Bind exactly once at process startup, before
// any other goroutine reads the bound values. Binding again is allowed
// and simply re-scans the environment with last-write-wins semantics per
// field, but concurrent calls to Bind are not supported; only concurrent
// reads of already-bound values are safe. The order in which environment
// variables are scanned is whatever the platform's environment
// enumeration yields and must be treated as unspecified.
package settings
