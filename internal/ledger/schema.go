package ledger

// FieldType represents the expected type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
)

// SchemaField describes one field of the document shape, for help output.
type SchemaField struct {
	Name        string
	Type        FieldType
	Required    bool
	Enum        []string
	Description string
	Children    []SchemaField
}

// Schema describes the records document shape.
type Schema struct {
	Description string
	Fields      []SchemaField
}

// DocumentSchema is the printable description of the records document. The
// top level is an object keyed by game name; Fields describes one game body.
var DocumentSchema = Schema{
	Description: "Records document: a JSON object mapping each game name to its game body",
	Fields: []SchemaField{
		{
			Name:        "difficulties",
			Type:        FieldTypeArray,
			Description: "Ordered unique difficulty labels; may be omitted",
		},
		{
			Name:        "record_types",
			Type:        FieldTypeArray,
			Description: "Declared tracking categories, unique by id within the game",
			Children: []SchemaField{
				{Name: "id", Type: FieldTypeString, Required: true, Description: "Identifier referenced by records"},
				{Name: "kind", Type: FieldTypeString, Required: true, Enum: ValidKinds(), Description: "Tracking category"},
				{Name: "display_name", Type: FieldTypeString, Required: true, Description: "Human-readable name"},
				{Name: "description", Type: FieldTypeString, Description: "Optional free-form description"},
			},
		},
		{
			Name:        "records",
			Type:        FieldTypeArray,
			Description: "Concrete achievement entries conforming to the declared record types",
			Children: []SchemaField{
				{Name: "record_type", Type: FieldTypeString, Required: true, Description: "Id of the declaring record type"},
				{Name: "date", Type: FieldTypeString, Required: true, Description: "Calendar date (YYYY-MM-DD)"},
				{Name: "description", Type: FieldTypeString, Description: "Optional free-form description"},
				{Name: "screenshot", Type: FieldTypeString, Description: "Optional path relative to the records file"},
				{Name: "difficulty", Type: FieldTypeString, Description: "Only for completed_at_difficulty kinds"},
				{Name: "duration_seconds", Type: FieldTypeNumber, Description: "Only for fastest_time/longest_time kinds"},
				{Name: "value", Type: FieldTypeNumber, Description: "Only for high_score/low_score kinds"},
			},
		},
	},
}
