package graphio

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "directed": {"type": "boolean"},
    "loops":    {"type": "boolean"},
    "nodes": {
      "type": "array",
      "items": {"type": "string", "minLength": 1},
      "uniqueItems": true
    },
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["from", "to"],
        "properties": {
          "from":  {"type": "string", "minLength": 1},
          "to":    {"type": "string", "minLength": 1},
          "attrs": {"type": "object", "additionalProperties": {"type": "number"}}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
})

// Validate checks d against the document schema. Violations are joined
// into one ErrInvalidDocument.
func Validate(d *Document) error {
	if d == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("graphio: compile schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(d))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
