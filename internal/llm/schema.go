package llm

// Type identifies a JSON value type in a tool parameter schema.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// Schema describes one tool parameter, or the object holding them. It is a
// provider-neutral subset of JSON Schema; each client converts it to its
// provider's wire representation.
type Schema struct {
	Type        Type
	Description string
	Enum        []string
	Items       *Schema
	Properties  map[string]*Schema
	Required    []string
}

// Tool declares a function the model may call during a session.
type Tool struct {
	Name        string
	Description string
	Parameters  *Schema
}
