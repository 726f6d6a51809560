// internal/filter/schema.go
package filter

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"matching-engine/internal/common/errors"
)

const specSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"countries": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"regions": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"cities": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		},
		"maxDistanceKm": {
			"type": "number",
			"exclusiveMinimum": 0
		},
		"centerPoint": {
			"type": "object",
			"additionalProperties": false,
			"required": ["latitude", "longitude"],
			"properties": {
				"latitude": {"type": "number", "minimum": -90, "maximum": 90},
				"longitude": {"type": "number", "minimum": -180, "maximum": 180}
			}
		},
		"timezones": {
			"type": "array",
			"items": {"type": "string", "minLength": 1}
		}
	},
	"dependencies": {
		"maxDistanceKm": ["centerPoint"],
		"centerPoint": ["maxDistanceKm"]
	}
}`

// ParseSpec validates a JSON filter spec against the schema and unmarshals it.
func ParseSpec(data []byte) (*Spec, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(specSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, errors.NewFilterSpecInvalidError(fmt.Sprintf("filter spec is not valid JSON: %v", err))
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		specErr := errors.NewFilterSpecInvalidError("filter spec failed schema validation")
		specErr.Metadata = map[string]interface{}{"violations": details}
		return nil, specErr
	}

	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, errors.NewFilterSpecInvalidError(fmt.Sprintf("filter spec could not be decoded: %v", err))
	}
	return &spec, nil
}
