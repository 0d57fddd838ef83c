package schema

// str returns a pointer to s, for populating optional fields in literals.
func str(s string) *string { return &s }

// exampleMetadata is the canonical example instance of the schema: a
// fully specified metadata record for a text embedding function.
var exampleMetadata = &EntityMetadata{
	Entity:     "Function",
	Identifier: "embed_text",
	Version:    "1.0.0",
	Purpose:    "Generates a vector embedding for a single text string",
	Context:    "Part of the semantic indexing pipeline; downstream components use the embeddings for similarity search",
	Parameters: []*ParameterDef{
		{
			Name:        "text",
			Type:        "str",
			Optional:    false,
			Default:     nil,
			Description: "The input text to embed",
		},
		{
			Name:        "model",
			Type:        "str",
			Optional:    true,
			Default:     "all-MiniLM-L6-v2",
			Description: "Name of the embedding model to use",
		},
		{
			Name:        "normalize",
			Type:        "bool",
			Optional:    true,
			Default:     true,
			Description: "Whether to L2-normalize the resulting vector",
		},
	},
	Returns: &ReturnDef{
		Type:        "List[float]",
		Description: "The embedding vector for the input text",
	},
	BehavioralNotes: &BehavioralNotes{
		ConcurrencyHandling: str("Safe for concurrent calls; the model handle is read-only after load"),
		ErrorHandling:       str("Raises ValueError on empty input"),
	},
}

// metaSchemaDefinition documents the legal fields of an EntityMetadata
// record. It is itself a metadata record, one level up.
var metaSchemaDefinition = &SchemaDefinition{
	SchemaEntity:     "Metadata Schema",
	SchemaIdentifier: "eidosian_metadata_schema_v1.0",
	SchemaVersion:    "v1.0.0",
	SchemaPurpose:    "Provides a universal, self-documenting metadata framework for code artifacts",
	SchemaContext:    "Operates within system-wide introspection and automated analysis framework",
	SchemaFields: []*FieldDef{
		{
			FieldName:     "entity",
			DataType:      "string",
			Requirement:   RequirementRequired,
			Description:   "The kind of artifact being described",
			AllowedValues: EntityCategories,
			Example:       "Function",
		},
		{
			FieldName:   "identifier",
			DataType:    "string",
			Requirement: RequirementRequired,
			Description: "Unique identifier for the artifact",
			Example:     "embed_text",
		},
		{
			FieldName:   "version",
			DataType:    "string",
			Requirement: RequirementRequired,
			Description: "Semantic version, commit hash, or timestamp",
			Example:     "1.0.0",
		},
		{
			FieldName:   "purpose",
			DataType:    "string",
			Requirement: RequirementRequired,
			Description: "What the artifact does",
		},
		{
			FieldName:   "context",
			DataType:    "string",
			Requirement: RequirementRequired,
			Description: "How the artifact fits into the larger system",
		},
		{
			FieldName:   "parameters",
			DataType:    "list[parameter]",
			Requirement: RequirementRequired,
			Description: "Ordered parameter descriptors; required for functions and scripts",
			Example: &ParameterDef{
				Name:        "text",
				Type:        "str",
				Optional:    false,
				Description: "The input text to embed",
			},
		},
		{
			FieldName:   "returns",
			DataType:    "mapping",
			Requirement: RequirementRequired,
			Description: "Describes the return value",
			Example: &ReturnDef{
				Type:        "List[float]",
				Description: "The embedding vector for the input text",
			},
		},
		{
			FieldName:   "test_verification",
			DataType:    "mapping",
			Requirement: RequirementOptional,
			Description: "Unit and integration test references and edge case coverage",
		},
		{
			FieldName:   "performance_profile",
			DataType:    "mapping",
			Requirement: RequirementOptional,
			Description: "Execution time, memory, CPU, and recursion characteristics",
		},
		{
			FieldName:   "behavioral_notes",
			DataType:    "mapping",
			Requirement: RequirementOptional,
			Description: "Concurrency and error handling conventions and other behavior notes",
		},
		{
			FieldName:   "interactions",
			DataType:    "mapping",
			Requirement: RequirementOptional,
			Description: "Identifiers the artifact calls, is called by, depends on, or modifies",
		},
		{
			FieldName:   "modifiability",
			DataType:    "mapping",
			Requirement: RequirementOptional,
			Description: "Expansion notes and composition partners",
		},
		{
			FieldName:   "programmatic_traceability",
			DataType:    "mapping",
			Requirement: RequirementOptional,
			Description: "Change log, commit hash, tag, and edit recency",
		},
	},
}

// Ordered record views of the two singletons, built once at startup.
var (
	universalTemplate = exampleMetadata.Record()
	metaSchema        = metaSchemaDefinition.Record()
)

// ExampleMetadata returns the canonical example metadata record.
// The returned value is shared and must be treated as read-only.
func ExampleMetadata() *EntityMetadata { return exampleMetadata }

// UniversalTemplate returns the ordered record view of the example
// metadata record. The returned value is shared and must be treated
// as read-only.
func UniversalTemplate() *Record { return universalTemplate }

// MetaSchemaDefinition returns the meta-schema describing the fields of
// EntityMetadata records. The returned value is shared and must be
// treated as read-only.
func MetaSchemaDefinition() *SchemaDefinition { return metaSchemaDefinition }

// MetaSchema returns the ordered record view of the meta-schema.
// The returned value is shared and must be treated as read-only.
func MetaSchema() *Record { return metaSchema }

// NewTemplate returns an empty metadata record with every field present.
// All leaf values are zero or null; callers fill in what applies and
// leave the rest as the explicit absence marker.
func NewTemplate() *EntityMetadata {
	return &EntityMetadata{
		Parameters:         []*ParameterDef{},
		Returns:            &ReturnDef{},
		TestVerification:   &TestVerification{},
		PerformanceProfile: &PerformanceProfile{},
		BehavioralNotes:    &BehavioralNotes{},
		Interactions: &Interactions{
			Calls:     []string{},
			CalledBy:  []string{},
			DependsOn: []string{},
			Modifies:  []string{},
		},
		Modifiability:            &Modifiability{},
		ProgrammaticTraceability: &Traceability{},
	}
}
