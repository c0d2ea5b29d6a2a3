package spawn

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed table.schema.json
var tableSchemaJSON string

var tableSchema = jsonschema.MustCompileString("table.schema.json", tableSchemaJSON)

// LoadJSON loads a table from a JSON reader.
func LoadJSON(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	doc, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	if err = validateSchema(doc); err != nil {
		return nil, err
	}

	var t Table
	if err = json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return finish(&t)
}

// LoadYAML loads a table from a YAML reader.
func LoadYAML(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var raw any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	// round trip through JSON so the validator sees JSON types
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	doc, err := decodeDocument(asJSON)
	if err != nil {
		return nil, err
	}
	if err = validateSchema(doc); err != nil {
		return nil, err
	}

	var t Table
	if err = yaml.NewDecoder(bytes.NewReader(data)).Decode(&t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return finish(&t)
}

// Load picks the decoder by file extension; .yaml and .yml are YAML,
// everything else JSON.
func Load(path string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(r)
	default:
		return LoadJSON(r)
	}
}

// decodeDocument keeps numbers as json.Number for the schema validator.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return doc, nil
}

func validateSchema(doc any) error {
	if err := tableSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return nil
}

func finish(t *Table) (*Table, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t.AssignIDs()
	return t, nil
}
