package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/season-radar/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

// defaultCatalogJSON is the dataset shipped with the binary.
//
//go:embed cities.json
var defaultCatalogJSON []byte

// catalogSchemaJSON is the JSON Schema every catalog document must satisfy
// before it is decoded. It enforces the 12-element month arrays the
// scorers index by calendar month.
//
//go:embed schema.json
var catalogSchemaJSON []byte

// Catalog is the set of cities the engine ranks. It is read-only after
// loading, so concurrent searches need no coordination.
type Catalog struct {
	Cities []types.City
}

// LoadDefault parses the embedded dataset.
func LoadDefault() (*Catalog, error) {
	return Parse(defaultCatalogJSON)
}

// Load reads and parses a catalog document from an external file.
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read catalog file %s", path),
			Cause:   err,
		}
	}
	return Parse(content)
}

// Parse validates a raw catalog document against the dataset schema and
// decodes it. The document must be an object with a top-level "cities"
// array.
func Parse(content []byte) (*Catalog, error) {
	if err := validateSchema(content); err != nil {
		return nil, err
	}

	var doc struct {
		Cities []types.City `json:"cities"`
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal catalog JSON", Cause: err}
	}

	return &Catalog{Cities: doc.Cities}, nil
}

// validateSchema checks the raw document against the embedded JSON Schema.
func validateSchema(content []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(catalogSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(content)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Message: "failed to run catalog schema validation", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Len returns the number of cities in the catalog.
func (c *Catalog) Len() int {
	return len(c.Cities)
}

// Regions returns the distinct regions in the catalog, sorted.
func (c *Catalog) Regions() []string {
	seen := make(map[string]bool)
	regions := make([]string, 0)
	for _, city := range c.Cities {
		if !seen[city.Region] {
			seen[city.Region] = true
			regions = append(regions, city.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// TagVocabulary returns the distinct lowercased tags across all cities,
// sorted.
func (c *Catalog) TagVocabulary() []string {
	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, city := range c.Cities {
		for _, tag := range city.Tags {
			lower := strings.ToLower(tag)
			if !seen[lower] {
				seen[lower] = true
				tags = append(tags, lower)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
