package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func metaSchemaFieldNames() []string {
	var names []string
	for _, f := range MetaSchemaDefinition().SchemaFields {
		names = append(names, f.FieldName)
	}
	return names
}

func TestUniversalTemplateKeysMatchMetaSchema(t *testing.T) {
	want := metaSchemaFieldNames()
	got := UniversalTemplate().Keys()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("example record keys differ from meta-schema field names (-want +got):\n%s", diff)
	}
}

func TestNewTemplateKeysMatchMetaSchema(t *testing.T) {
	want := metaSchemaFieldNames()
	got := NewTemplate().Record().Keys()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("empty template keys differ from meta-schema field names (-want +got):\n%s", diff)
	}
}

func TestUniversalTemplateRequiredFieldsPresent(t *testing.T) {
	rec := UniversalTemplate()
	for _, f := range MetaSchemaDefinition().SchemaFields {
		if f.Requirement != RequirementRequired {
			continue
		}
		if _, ok := rec.Get(f.FieldName); !ok {
			t.Errorf("required field %q missing from example record", f.FieldName)
		}
	}
}

func TestUniversalTemplateOptionalAbsenceMarker(t *testing.T) {
	rec := UniversalTemplate()
	// Optional fields that the example record does not populate.
	unpopulated := []string{
		"test_verification",
		"performance_profile",
		"interactions",
		"modifiability",
		"programmatic_traceability",
	}
	for _, key := range unpopulated {
		v, ok := rec.Get(key)
		if !ok {
			t.Errorf("optional field %q must be present with a null value, got missing key", key)
			continue
		}
		if v != nil {
			t.Errorf("optional field %q = %v, want null", key, v)
		}
	}
}

func TestUniversalTemplateParameters(t *testing.T) {
	params := ExampleMetadata().Parameters
	if len(params) != 3 {
		t.Fatalf("len(parameters) = %d, want 3", len(params))
	}
	want := []string{"text", "model", "normalize"}
	for i, p := range params {
		if p.Name != want[i] {
			t.Errorf("parameters[%d].Name = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestUniversalTemplateReturns(t *testing.T) {
	returns := ExampleMetadata().Returns
	if returns == nil {
		t.Fatal("returns is nil")
	}
	if returns.Type != "List[float]" {
		t.Errorf("returns.Type = %q, want %q", returns.Type, "List[float]")
	}
}

func TestMetaSchemaEntityAllowedValues(t *testing.T) {
	fields := MetaSchemaDefinition().SchemaFields
	if len(fields) == 0 || fields[0].FieldName != "entity" {
		t.Fatal("first meta-schema field is not entity")
	}
	if diff := cmp.Diff(EntityCategories, fields[0].AllowedValues); diff != "" {
		t.Errorf("entity allowed values mismatch (-want +got):\n%s", diff)
	}
	if len(fields[0].AllowedValues) != 10 {
		t.Errorf("len(entity allowed values) = %d, want 10", len(fields[0].AllowedValues))
	}
}

func TestMetaSchemaRequirementValues(t *testing.T) {
	for _, f := range MetaSchemaDefinition().SchemaFields {
		if f.Requirement != RequirementRequired && f.Requirement != RequirementOptional {
			t.Errorf("field %q has invalid requirement %q", f.FieldName, f.Requirement)
		}
	}
}
