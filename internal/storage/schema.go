package storage

import (
	"bytes"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todo-tasks.schema.json"

// taskFileSchema describes the on-disk task file.
const taskFileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["next_id", "tasks"],
  "properties": {
    "next_id": {"type": "integer", "minimum": 1},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "description", "completed"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "description": {"type": "string"},
          "completed": {"type": "boolean"}
        }
      }
    }
  }
}`

var fileSchema = jsonschema.MustCompileString(schemaURL, taskFileSchema)

// validate checks raw file content against the task file schema.
func validate(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parse task file: %w", err)
	}
	if err := fileSchema.Validate(doc); err != nil {
		return fmt.Errorf("validate task file: %w", err)
	}
	return nil
}
