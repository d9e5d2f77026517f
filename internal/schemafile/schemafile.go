package schemafile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	settings "github.com/com-4/poor-richards-settings"
)

// File represents the YAML schema document.
type File struct {
	Prefix string      `yaml:"prefix"`
	Fields []FieldSpec `yaml:"fields"`
}

// FieldSpec declares a single settings field in the schema file.
// Defaults are given as strings and coerced through the same rules as
// environment values, so a malformed default fails at load time rather
// than at bind time.
type FieldSpec struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type"`
	Default   *string `yaml:"default"`
	Optional  bool    `yaml:"optional"`
	NoEnviron bool    `yaml:"no_environ"`
}

// Load reads a YAML schema file and builds the settings declaration it
// describes, returning the declaration and the schema's environment
// variable prefix.
func Load(path string) (*settings.Declaration, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read schema file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("parse YAML: %w", err)
	}

	decl, err := Build(&file)
	if err != nil {
		return nil, "", err
	}
	return decl, file.Prefix, nil
}

// Build constructs a settings declaration from a parsed schema document.
func Build(file *File) (*settings.Declaration, error) {
	if len(file.Fields) == 0 {
		return nil, fmt.Errorf("schema declares no fields")
	}

	decl := settings.New()
	seen := make(map[string]bool, len(file.Fields))

	for i, spec := range file.Fields {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("field %d: name is required", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("field %q declared twice", name)
		}
		seen[name] = true

		var opts []settings.FieldOption
		if spec.Optional {
			opts = append(opts, settings.Optional())
		}
		if spec.NoEnviron {
			opts = append(opts, settings.NoEnviron())
		}

		if err := registerField(decl, name, spec, opts); err != nil {
			return nil, err
		}
	}
	return decl, nil
}

func registerField(decl *settings.Declaration, name string, spec FieldSpec, opts []settings.FieldOption) error {
	switch strings.ToLower(strings.TrimSpace(spec.Type)) {
	case "", "string":
		if spec.Default != nil {
			decl.StringDefault(name, *spec.Default, opts...)
		} else {
			decl.String(name, opts...)
		}
	case "int", "integer":
		if spec.Default != nil {
			value, err := strconv.Atoi(*spec.Default)
			if err != nil {
				return fmt.Errorf("field %q: default %q is not an integer", name, *spec.Default)
			}
			decl.IntDefault(name, value, opts...)
		} else {
			decl.Int(name, opts...)
		}
	case "bool", "boolean":
		if spec.Default != nil {
			value, ok := settings.ParseBool(*spec.Default)
			if !ok {
				return fmt.Errorf("field %q: default %q is not a boolean", name, *spec.Default)
			}
			decl.BoolDefault(name, value, opts...)
		} else {
			decl.Bool(name, opts...)
		}
	default:
		return fmt.Errorf("field %q: unknown type %q", name, spec.Type)
	}
	return nil
}
