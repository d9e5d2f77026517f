// Package schemafile loads a settings declaration from a YAML schema
// file. It exists for the settingscheck CLI; applications embedding the
// settings package directly declare their fields in code instead.
package schemafile
