package provider

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/repoglyph/pkg/descriptor"
)

//go:embed schema.json
var descriptorSchema []byte

// JSONFile loads a repository descriptor from a JSON file, validating it
// against the embedded descriptor schema before unmarshalling.
type JSONFile struct {
	path string
}

// NewJSONFile returns a provider reading the descriptor at path.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Describe reads, validates and unmarshals the descriptor file.
func (p *JSONFile) Describe(_ context.Context) (*descriptor.Repository, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor file: %w", err)
	}

	validateErr := validateDescriptor(data)
	if validateErr != nil {
		return nil, validateErr
	}

	var repo descriptor.Repository

	unmarshalErr := json.Unmarshal(data, &repo)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal descriptor: %w", unmarshalErr)
	}

	if repo.Name == "" {
		return nil, ErrEmptyName
	}

	return &repo, nil
}

// validateDescriptor checks raw descriptor JSON against the embedded schema.
func validateDescriptor(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(descriptorSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validate descriptor: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		details = append(details, violation.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
}
