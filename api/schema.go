package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

const schemaShip = `{
	"type": "object",
	"required": ["code", "payload"],
	"properties": {
		"code": {"type": "integer"},
		"payload": {
			"type": "object",
			"required": ["ship_id"],
			"properties": {
				"ship_id": {"type": "string", "minLength": 1}
			}
		}
	}
}`

const schemaDrag = `{
	"type": "object",
	"required": ["code", "payload"],
	"properties": {
		"code": {"type": "integer"},
		"payload": {
			"type": "object",
			"required": ["ship_id", "x", "y"],
			"properties": {
				"ship_id": {"type": "string", "minLength": 1},
				"x": {"type": "number"},
				"y": {"type": "number"}
			}
		}
	}
}`

const schemaKeyDown = `{
	"type": "object",
	"required": ["code", "payload"],
	"properties": {
		"code": {"type": "integer"},
		"payload": {
			"type": "object",
			"required": ["ship_id", "key"],
			"properties": {
				"ship_id": {"type": "string", "minLength": 1},
				"key": {"type": "string", "minLength": 1, "maxLength": 1}
			}
		}
	}
}`

var requestSchemas = map[uint8]struct {
	name   string
	schema string
}{
	mc.CodeDragStart: {name: "drag_start", schema: schemaShip},
	mc.CodeDragMove:  {name: "drag_move", schema: schemaDrag},
	mc.CodeDragEnd:   {name: "drag_end", schema: schemaDrag},
	mc.CodeRotate:    {name: "rotate", schema: schemaShip},
	mc.CodeKeyDown:   {name: "key_down", schema: schemaKeyDown},
}

// PayloadValidator checks incoming requests against the schema of
// their code before they are unmarshaled.
type PayloadValidator struct {
	schemas map[uint8]*jsonschema.Schema
}

func NewPayloadValidator() (*PayloadValidator, error) {
	compiler := jsonschema.NewCompiler()
	pv := PayloadValidator{schemas: make(map[uint8]*jsonschema.Schema, len(requestSchemas))}

	for code, def := range requestSchemas {
		url := "mem://schemas/" + def.name + ".json"
		if err := compiler.AddResource(url, strings.NewReader(def.schema)); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %v", def.name, err)
		}
		compiled, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %v", def.name, err)
		}
		pv.schemas[code] = compiled
	}
	return &pv, nil
}

func MustNewPayloadValidator() *PayloadValidator {
	pv, err := NewPayloadValidator()
	if err != nil {
		panic(err)
	}
	return pv
}

func (pv *PayloadValidator) Validate(code uint8, payload []byte) error {
	schema, prs := pv.schemas[code]
	if !prs {
		return cerr.ErrSchemaNotExist(code)
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return err
	}
	return schema.Validate(value)
}
