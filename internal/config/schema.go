// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LoginComponentBackend Contributors

package config

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/invopop/jsonschema"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/samber/oops"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SchemaID is the $id of the generated configuration schema.
const SchemaID = "https://github.com/mkwkamil/LoginComponentBackend/schemas/config.schema.json"

const durationPattern = `^(0|([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+)$`

var (
	durationType  = reflect.TypeOf(time.Duration(0))
	schemaPrinter = message.NewPrinter(language.English)
)

// compiledSchema compiles the generated schema once per process.
var compiledSchema = sync.OnceValues(compileSchema)

// GenerateSchema returns the JSON Schema for configuration files, reflected
// from Config.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == durationType {
				return &jsonschema.Schema{
					AnyOf: []*jsonschema.Schema{
						{Type: "string", Pattern: durationPattern},
						{Type: "integer", Minimum: json.Number("0")},
					},
					Description: "Go duration such as 30s or 1h30m, or nanoseconds",
				}
			}
			return nil
		},
	}
	schema := r.Reflect(&Config{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "authcore configuration"
	schema.Description = "Schema for authcore YAML configuration files"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.Code("SCHEMA_GENERATE_FAILED").Wrap(err)
	}
	return data, nil
}

func compileSchema() (*jschema.Schema, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, oops.Code("SCHEMA_COMPILE_FAILED").Wrap(err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("config.schema.json", doc); err != nil {
		return nil, oops.Code("SCHEMA_COMPILE_FAILED").Wrap(err)
	}
	sch, err := c.Compile("config.schema.json")
	if err != nil {
		return nil, oops.Code("SCHEMA_COMPILE_FAILED").Wrap(err)
	}
	return sch, nil
}

// ValidateDocument checks a decoded YAML document against the configuration
// schema. Unknown keys and values of the wrong type are rejected.
func ValidateDocument(doc map[string]any) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	return sch.Validate(toJSONTypes(doc))
}

// FormatSchemaError renders a validation failure as a single line.
func FormatSchemaError(err error) string {
	if err == nil {
		return ""
	}
	var verr *jschema.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	var causes []string
	collectCauses(verr, &causes)
	if len(causes) == 0 {
		return verr.Error()
	}
	return strings.Join(causes, "; ")
}

func collectCauses(verr *jschema.ValidationError, out *[]string) {
	if len(verr.Causes) == 0 {
		loc := "/" + strings.Join(verr.InstanceLocation, "/")
		*out = append(*out, loc+": "+verr.ErrorKind.LocalizedString(schemaPrinter))
		return
	}
	for _, cause := range verr.Causes {
		collectCauses(cause, out)
	}
}

// toJSONTypes normalizes YAML-decoded values to the types the validator
// accepts.
func toJSONTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			out[k] = toJSONTypes(v)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, v := range val {
			ks, ok := k.(string)
			if !ok {
				b, _ := json.Marshal(k) //nolint:errcheck // non-string keys fail validation regardless
				ks = string(b)
			}
			out[ks] = toJSONTypes(v)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v := range val {
			out[i] = toJSONTypes(v)
		}
		return out
	case string, bool, int, int64, uint64, float64, nil:
		return val
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		if b, err := json.Marshal(val); err == nil {
			var out any
			if err := json.Unmarshal(b, &out); err == nil {
				return out
			}
		}
		return val
	}
}
