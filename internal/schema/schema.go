// Package schema defines the Eidosian metadata schema: the typed records
// that describe a code artifact, the meta-schema record that documents
// those records, and a printer for rendering them.
//
// All optional fields use nil-able types. A nil value is the explicit
// absence marker: it is serialized as null and never dropped, so every
// record keeps its full key set regardless of which fields are populated.
package schema

// Requirement levels for fields of a metadata record.
const (
	RequirementRequired = "Required"
	RequirementOptional = "Optional"
)

// Entity categories recognized by the schema.
// The set is descriptive: nothing in this package enforces membership.
var EntityCategories = []string{
	"Function",
	"Class",
	"Module",
	"Script",
	"Configuration",
	"Test",
	"API Endpoint",
	"Constant",
	"Documentation",
	"Example Code",
}

// ParameterDef describes one parameter of a function or script.
type ParameterDef struct {
	// The parameter name.
	// [required]
	Name string `yaml:"name" json:"name"`
	// The parameter's data type, in the artifact's own type notation.
	// [required]
	Type string `yaml:"type" json:"type"`
	// Whether the parameter may be omitted by callers.
	// [required]
	Optional bool `yaml:"optional" json:"optional"`
	// The default value used when the parameter is omitted.
	// [optional]
	Default any `yaml:"default" json:"default"`
	// A short description of the parameter.
	// [required]
	Description string `yaml:"description" json:"description"`
}

// ReturnDef describes the return value of an artifact.
type ReturnDef struct {
	// The return value's data type, in the artifact's own type notation.
	// [required]
	Type string `yaml:"type" json:"type"`
	// A short description of the return value.
	// [required]
	Description string `yaml:"description" json:"description"`
}

// TestVerification documents how the artifact is tested.
type TestVerification struct {
	// Reference to the unit tests covering the artifact.
	// [optional]
	UnitTests *string `yaml:"unit_tests" json:"unit_tests"`
	// Reference to the integration tests covering the artifact.
	// [optional]
	IntegrationTests *string `yaml:"integration_tests" json:"integration_tests"`
	// Edge cases that the tests cover.
	// [optional]
	EdgeCaseCoverage []string `yaml:"edge_case_coverage" json:"edge_case_coverage"`
}

// PerformanceProfile documents the artifact's runtime characteristics.
type PerformanceProfile struct {
	// Typical execution time, e.g. "O(n)" or "~5ms per call".
	// [optional]
	ExecutionTime *string `yaml:"execution_time" json:"execution_time"`
	// Typical memory usage.
	// [optional]
	MemoryUsage *string `yaml:"memory_usage" json:"memory_usage"`
	// Typical CPU usage.
	// [optional]
	CPUUsage *string `yaml:"cpu_usage" json:"cpu_usage"`
	// Recursion depth or complexity, if the artifact recurses.
	// [optional]
	RecursionComplexity *string `yaml:"recursion_complexity" json:"recursion_complexity"`
}

// BehavioralNotes documents behavior that is not visible in the signature.
type BehavioralNotes struct {
	// How the artifact behaves under concurrent use.
	// [optional]
	ConcurrencyHandling *string `yaml:"concurrency_handling" json:"concurrency_handling"`
	// The artifact's error handling convention.
	// [optional]
	ErrorHandling *string `yaml:"error_handling" json:"error_handling"`
	// Anything else a maintainer should know.
	// [optional]
	AdditionalNotes *string `yaml:"additional_notes" json:"additional_notes"`
}

// Interactions lists the identifiers the artifact interacts with,
// by interaction category.
type Interactions struct {
	// Identifiers the artifact calls.
	// [optional]
	Calls []string `yaml:"calls" json:"calls"`
	// Identifiers that call the artifact.
	// [optional]
	CalledBy []string `yaml:"called_by" json:"called_by"`
	// Identifiers the artifact depends on.
	// [optional]
	DependsOn []string `yaml:"depends_on" json:"depends_on"`
	// Identifiers whose state the artifact modifies.
	// [optional]
	Modifies []string `yaml:"modifies" json:"modifies"`
}

// Modifiability documents how the artifact can be extended or composed.
type Modifiability struct {
	// Notes on how to extend the artifact.
	// [optional]
	ExpansionNotes *string `yaml:"expansion_notes" json:"expansion_notes"`
	// Identifiers the artifact composes well with.
	// [optional]
	ComposableWith []string `yaml:"composable_with" json:"composable_with"`
}

// Traceability links the artifact to its change history.
type Traceability struct {
	// Reference to the change log entry for the artifact.
	// [optional]
	ChangeLog *string `yaml:"change_log" json:"change_log"`
	// The commit hash of the artifact's last change.
	// [optional]
	CommitHash *string `yaml:"commit_hash" json:"commit_hash"`
	// The release tag the artifact last shipped in.
	// [optional]
	Tag *string `yaml:"tag" json:"tag"`
	// Time since the artifact was last edited.
	// [optional]
	TimeSinceLastEdit *string `yaml:"time_since_last_edit" json:"time_since_last_edit"`
}

// EntityMetadata is a complete metadata record for one code artifact.
// Field order matches the schema's declared field order.
type EntityMetadata struct {
	// The kind of artifact being described, e.g. "Function" or "Class".
	// See EntityCategories for the recognized kinds.
	// [required]
	Entity string `yaml:"entity" json:"entity"`
	// Unique identifier of the artifact within its repository.
	// [required]
	Identifier string `yaml:"identifier" json:"identifier"`
	// Semantic version, commit hash, or timestamp of the artifact.
	// [required]
	Version string `yaml:"version" json:"version"`
	// What the artifact does.
	// [required]
	Purpose string `yaml:"purpose" json:"purpose"`
	// How the artifact fits into the larger system.
	// [required]
	Context string `yaml:"context" json:"context"`
	// Ordered parameter descriptors. Required for functions and scripts.
	// [required]
	Parameters []*ParameterDef `yaml:"parameters" json:"parameters"`
	// Describes the return value.
	// [required]
	Returns *ReturnDef `yaml:"returns" json:"returns"`
	// How the artifact is tested.
	// [optional]
	TestVerification *TestVerification `yaml:"test_verification" json:"test_verification"`
	// Runtime characteristics of the artifact.
	// [optional]
	PerformanceProfile *PerformanceProfile `yaml:"performance_profile" json:"performance_profile"`
	// Behavior not visible in the artifact's signature.
	// [optional]
	BehavioralNotes *BehavioralNotes `yaml:"behavioral_notes" json:"behavioral_notes"`
	// Identifiers the artifact interacts with, by category.
	// [optional]
	Interactions *Interactions `yaml:"interactions" json:"interactions"`
	// How the artifact can be extended or composed.
	// [optional]
	Modifiability *Modifiability `yaml:"modifiability" json:"modifiability"`
	// Links to the artifact's change history.
	// [optional]
	ProgrammaticTraceability *Traceability `yaml:"programmatic_traceability" json:"programmatic_traceability"`
}

// FieldDef documents one allowed field of an EntityMetadata record.
// It is descriptive only: this package performs no validation against it.
type FieldDef struct {
	// The field's key in the metadata record.
	// [required]
	FieldName string `yaml:"field_name" json:"field_name"`
	// The field's data type, e.g. "string" or "mapping".
	// [required]
	DataType string `yaml:"data_type" json:"data_type"`
	// One of RequirementRequired or RequirementOptional.
	// [required]
	Requirement string `yaml:"requirement" json:"requirement"`
	// What the field documents.
	// [required]
	Description string `yaml:"description" json:"description"`
	// The allowed values for the field. Nil means unconstrained.
	// [optional]
	AllowedValues []string `yaml:"allowed_values" json:"allowed_values"`
	// An example value for the field.
	// [optional]
	Example any `yaml:"example" json:"example"`
}

// SchemaDefinition is the meta-schema: a metadata record that documents
// the legal fields of EntityMetadata records.
type SchemaDefinition struct {
	// The kind of record, always "Metadata Schema".
	// [required]
	SchemaEntity string `yaml:"schema_entity" json:"schema_entity"`
	// Unique identifier of this schema revision.
	// [required]
	SchemaIdentifier string `yaml:"schema_identifier" json:"schema_identifier"`
	// Version of the schema itself.
	// [required]
	SchemaVersion string `yaml:"schema_version" json:"schema_version"`
	// What the schema provides.
	// [required]
	SchemaPurpose string `yaml:"schema_purpose" json:"schema_purpose"`
	// Where the schema is used.
	// [required]
	SchemaContext string `yaml:"schema_context" json:"schema_context"`
	// One FieldDef per recognized EntityMetadata field, in field order.
	// [required]
	SchemaFields []*FieldDef `yaml:"schema_fields" json:"schema_fields"`
	// How the schema itself may be extended.
	// [optional]
	SchemaModifiability *Record `yaml:"schema_modifiability" json:"schema_modifiability"`
	// Links to the schema's own change history.
	// [optional]
	SchemaTraceability *Record `yaml:"schema_traceability" json:"schema_traceability"`
}
