// Where: cli/internal/threads/validator.go
// What: Schema validator for threads documents.
// Why: Catch structural mistakes before the renderer sees the document.
package threads

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/threads.schema.json
var schemaSource string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateDocument checks a YAML threads document against the embedded
// schema. Placeholder completeness is not this layer's concern; by the
// time a document reaches the validator it must already be concrete.
func ValidateDocument(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("threads document invalid: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("threads.schema.json", strings.NewReader(schemaSource)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("threads.schema.json")
	})
	return compiledSchema, schemaErr
}
