package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	settings "github.com/com-4/poor-richards-settings"
)

const validSchema = `prefix: MYAPP_
fields:
  - name: database_dsn
    type: string
  - name: debug
    type: bool
    default: "false"
  - name: retry_count
    type: int
    optional: true
  - name: node_name
    type: string
    no_environ: true
`

func writeSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	decl, prefix, err := Load(writeSchema(t, validSchema))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if prefix != "MYAPP_" {
		t.Fatalf("expected prefix MYAPP_, got %q", prefix)
	}

	fields := decl.Fields()
	if len(fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(fields))
	}
	if f := decl.Lookup("debug"); f == nil || f.Kind() != settings.KindBool || f.Value() != "false" {
		t.Fatalf("unexpected debug field: %+v", f)
	}
	if decl.Lookup("database_dsn").Kind() != settings.KindString {
		t.Fatalf("expected database_dsn to be a string field")
	}

	missing := decl.Missing()
	if len(missing) != 2 || missing[0] != "database_dsn" || missing[1] != "node_name" {
		t.Fatalf("unexpected missing set before binding: %v", missing)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"no fields":        "prefix: X_\n",
		"missing name":     "fields:\n  - type: string\n",
		"duplicate name":   "fields:\n  - name: a\n  - name: a\n",
		"unknown type":     "fields:\n  - name: a\n    type: float\n",
		"bad int default":  "fields:\n  - name: a\n    type: int\n    default: abc\n",
		"bad bool default": "fields:\n  - name: a\n    type: bool\n    default: maybe\n",
		"malformed yaml":   "fields: [\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := Load(writeSchema(t, content)); err == nil {
				t.Fatalf("expected error for schema: %q", content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
