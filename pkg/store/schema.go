package store

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/fmreloaded/storelint/pkg/logger"
)

var schemaLog = logger.New("store:schema")

//go:embed schemas/store.schema.json
var storeSchemaJSON []byte

// SchemaJSON returns the embedded store manifest schema document.
func SchemaJSON() []byte {
	return storeSchemaJSON
}

// CheckSchema validates raw manifest bytes against the embedded JSON
// Schema. This is a stricter, schema-driven complement to the rule
// checks: it rejects in one pass what the rules report piecemeal, but
// its messages are positional rather than mod-by-mod.
func CheckSchema(raw []byte) error {
	schema, err := compiledStoreSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("JSON syntax error: %v", err)
	}

	schemaLog.Print("Validating manifest against store schema")
	return schema.Validate(inst)
}

func compiledStoreSchema() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(storeSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded store schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()
	if err := compiler.AddResource("store.schema.json", doc); err != nil {
		return nil, fmt.Errorf("registering store schema: %w", err)
	}
	schema, err := compiler.Compile("store.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling store schema: %w", err)
	}
	return schema, nil
}
