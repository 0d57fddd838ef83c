package schema

import (
	"fmt"
	"strings"
)

// Record is a mapping from field name to value that preserves insertion
// order. It is the generic view of a metadata record consumed by the
// printer and the order-preserving marshalers.
//
// Values may be strings, bools, numbers, nil (the absence marker), nested
// records, or slices. Keys and values are kept in parallel slices.
type Record struct {
	keys   []string
	values []any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{}
}

// Set adds the key/value pair to the record. If the key already exists,
// its value is replaced and the key keeps its original position.
func (r *Record) Set(key string, value any) {
	for i, k := range r.keys {
		if k == key {
			r.values[i] = value
			return
		}
	}
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
}

// Get returns the value stored under key, and whether the key exists.
func (r *Record) Get(key string) (any, bool) {
	for i, k := range r.keys {
		if k == key {
			return r.values[i], true
		}
	}
	return nil, false
}

// Keys returns the record's keys in insertion order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len returns the number of entries in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// String renders the record as "map[k1:v1 k2:v2 ...]" in insertion order.
// Unlike Go's builtin map formatting, the output is deterministic.
func (r *Record) String() string {
	if r == nil {
		return "null"
	}
	var sb strings.Builder
	sb.WriteString("map[")
	for i, k := range r.keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte(':')
		sb.WriteString(formatValue(r.values[i]))
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatValue renders a record value as a single line of text.
// The absence marker renders as "null"; everything else uses its
// default textual representation.
func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

// optString unwraps an optional string for storage in a Record.
func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// optStrings unwraps an optional string list for storage in a Record.
func optStrings(xs []string) any {
	if xs == nil {
		return nil
	}
	return xs
}

// Record conversions. Each typed record converts to the ordered generic
// view with exactly its declared keys, nil standing in for unpopulated
// optional fields.

func (p *ParameterDef) record() *Record {
	r := NewRecord()
	r.Set("name", p.Name)
	r.Set("type", p.Type)
	r.Set("optional", p.Optional)
	r.Set("default", p.Default)
	r.Set("description", p.Description)
	return r
}

func (p *ParameterDef) String() string { return p.record().String() }

func (d *ReturnDef) record() *Record {
	r := NewRecord()
	r.Set("type", d.Type)
	r.Set("description", d.Description)
	return r
}

func (d *ReturnDef) String() string { return d.record().String() }

func (t *TestVerification) record() *Record {
	r := NewRecord()
	r.Set("unit_tests", optString(t.UnitTests))
	r.Set("integration_tests", optString(t.IntegrationTests))
	r.Set("edge_case_coverage", optStrings(t.EdgeCaseCoverage))
	return r
}

func (t *TestVerification) String() string { return t.record().String() }

func (p *PerformanceProfile) record() *Record {
	r := NewRecord()
	r.Set("execution_time", optString(p.ExecutionTime))
	r.Set("memory_usage", optString(p.MemoryUsage))
	r.Set("cpu_usage", optString(p.CPUUsage))
	r.Set("recursion_complexity", optString(p.RecursionComplexity))
	return r
}

func (p *PerformanceProfile) String() string { return p.record().String() }

func (b *BehavioralNotes) record() *Record {
	r := NewRecord()
	r.Set("concurrency_handling", optString(b.ConcurrencyHandling))
	r.Set("error_handling", optString(b.ErrorHandling))
	r.Set("additional_notes", optString(b.AdditionalNotes))
	return r
}

func (b *BehavioralNotes) String() string { return b.record().String() }

func (x *Interactions) record() *Record {
	r := NewRecord()
	r.Set("calls", optStrings(x.Calls))
	r.Set("called_by", optStrings(x.CalledBy))
	r.Set("depends_on", optStrings(x.DependsOn))
	r.Set("modifies", optStrings(x.Modifies))
	return r
}

func (x *Interactions) String() string { return x.record().String() }

func (m *Modifiability) record() *Record {
	r := NewRecord()
	r.Set("expansion_notes", optString(m.ExpansionNotes))
	r.Set("composable_with", optStrings(m.ComposableWith))
	return r
}

func (m *Modifiability) String() string { return m.record().String() }

func (t *Traceability) record() *Record {
	r := NewRecord()
	r.Set("change_log", optString(t.ChangeLog))
	r.Set("commit_hash", optString(t.CommitHash))
	r.Set("tag", optString(t.Tag))
	r.Set("time_since_last_edit", optString(t.TimeSinceLastEdit))
	return r
}

func (t *Traceability) String() string { return t.record().String() }

func (f *FieldDef) record() *Record {
	r := NewRecord()
	r.Set("field_name", f.FieldName)
	r.Set("data_type", f.DataType)
	r.Set("requirement", f.Requirement)
	r.Set("description", f.Description)
	r.Set("allowed_values", optStrings(f.AllowedValues))
	r.Set("example", f.Example)
	return r
}

func (f *FieldDef) String() string { return f.record().String() }

// Record returns the ordered generic view of the metadata record.
// The key set is exactly the schema's declared field names; optional
// fields that are unpopulated appear with a nil value.
func (m *EntityMetadata) Record() *Record {
	r := NewRecord()
	r.Set("entity", m.Entity)
	r.Set("identifier", m.Identifier)
	r.Set("version", m.Version)
	r.Set("purpose", m.Purpose)
	r.Set("context", m.Context)
	r.Set("parameters", m.Parameters)
	r.Set("returns", optPtr(m.Returns))
	r.Set("test_verification", optPtr(m.TestVerification))
	r.Set("performance_profile", optPtr(m.PerformanceProfile))
	r.Set("behavioral_notes", optPtr(m.BehavioralNotes))
	r.Set("interactions", optPtr(m.Interactions))
	r.Set("modifiability", optPtr(m.Modifiability))
	r.Set("programmatic_traceability", optPtr(m.ProgrammaticTraceability))
	return r
}

// Record returns the ordered generic view of the schema definition.
func (s *SchemaDefinition) Record() *Record {
	r := NewRecord()
	r.Set("schema_entity", s.SchemaEntity)
	r.Set("schema_identifier", s.SchemaIdentifier)
	r.Set("schema_version", s.SchemaVersion)
	r.Set("schema_purpose", s.SchemaPurpose)
	r.Set("schema_context", s.SchemaContext)
	r.Set("schema_fields", s.SchemaFields)
	r.Set("schema_modifiability", optPtr(s.SchemaModifiability))
	r.Set("schema_traceability", optPtr(s.SchemaTraceability))
	return r
}

// optPtr unwraps an optional nested record for storage in a Record.
// Storing typed nil pointers would defeat the nil check in formatValue.
func optPtr[T any](p *T) any {
	if p == nil {
		return nil
	}
	return p
}
