package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordInsertionOrder(t *testing.T) {
	rec := NewRecord()
	rec.Set("zulu", 1)
	rec.Set("alpha", 2)
	rec.Set("mike", 3)
	want := []string{"zulu", "alpha", "mike"}
	if diff := cmp.Diff(want, rec.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordSetReplaceKeepsPosition(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", 1)
	rec.Set("b", 2)
	rec.Set("c", 3)
	rec.Set("b", 20)
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, rec.Keys()); diff != "" {
		t.Errorf("keys mismatch after replace (-want +got):\n%s", diff)
	}
	v, ok := rec.Get("b")
	if !ok || v != 20 {
		t.Errorf("Get(b) = %v, %v, want 20, true", v, ok)
	}
	if rec.Len() != 3 {
		t.Errorf("Len() = %d, want 3", rec.Len())
	}
}

func TestRecordGetMissing(t *testing.T) {
	rec := NewRecord()
	rec.Set("a", 1)
	if v, ok := rec.Get("nope"); ok || v != nil {
		t.Errorf("Get(nope) = %v, %v, want nil, false", v, ok)
	}
}

func TestRecordString(t *testing.T) {
	tests := []struct {
		name string
		rec  func() *Record
		want string
	}{
		{
			name: "empty",
			rec:  NewRecord,
			want: "map[]",
		},
		{
			name: "scalars and null",
			rec: func() *Record {
				r := NewRecord()
				r.Set("x", "1")
				r.Set("y", nil)
				r.Set("z", false)
				return r
			},
			want: "map[x:1 y:null z:false]",
		},
		{
			name: "nested record",
			rec: func() *Record {
				inner := NewRecord()
				inner.Set("type", "List[float]")
				r := NewRecord()
				r.Set("returns", inner)
				return r
			},
			want: "map[returns:map[type:List[float]]]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec().String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypedRecordStrings(t *testing.T) {
	ret := &ReturnDef{Type: "List[float]", Description: "vector"}
	want := "map[type:List[float] description:vector]"
	if got := ret.String(); got != want {
		t.Errorf("ReturnDef.String() = %q, want %q", got, want)
	}

	p := &ParameterDef{Name: "text", Type: "str", Description: "input"}
	wantP := "map[name:text type:str optional:false default:null description:input]"
	if got := p.String(); got != wantP {
		t.Errorf("ParameterDef.String() = %q, want %q", got, wantP)
	}
}

func TestEntityMetadataRecordAbsenceMarkers(t *testing.T) {
	m := &EntityMetadata{Entity: "Function", Identifier: "f"}
	rec := m.Record()
	for _, key := range []string{"test_verification", "behavioral_notes", "programmatic_traceability"} {
		v, ok := rec.Get(key)
		if !ok {
			t.Errorf("key %q missing", key)
			continue
		}
		// Must be an untyped nil, not a typed nil pointer.
		if v != nil {
			t.Errorf("unpopulated field %q = %#v, want nil", key, v)
		}
	}
}
