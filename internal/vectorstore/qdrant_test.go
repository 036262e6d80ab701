package vectorstore

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestNewQdrantStore_InvalidURL(t *testing.T) {
	if _, err := NewQdrantStore("://invalid"); err == nil {
		t.Error("NewQdrantStore() expected error for invalid URL")
	}
}

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name string
		in   *qdrant.Value
		want any
	}{
		{
			name: "string",
			in:   &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: "History of Rome"}},
			want: "History of Rome",
		},
		{
			name: "bool",
			in:   &qdrant.Value{Kind: &qdrant.Value_BoolValue{BoolValue: true}},
			want: true,
		},
		{
			name: "integer",
			in:   &qdrant.Value{Kind: &qdrant.Value_IntegerValue{IntegerValue: 42}},
			want: int64(42),
		},
		{
			name: "double",
			in:   &qdrant.Value{Kind: &qdrant.Value_DoubleValue{DoubleValue: 0.5}},
			want: 0.5,
		},
		{
			name: "nil kind",
			in:   &qdrant.Value{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convertValue(tt.in); got != tt.want {
				t.Errorf("convertValue() = %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConvertPayloadToMap(t *testing.T) {
	payload := map[string]*qdrant.Value{
		"title":      {Kind: &qdrant.Value_StringValue{StringValue: "Cell Biology"}},
		ScopeField:   {Kind: &qdrant.Value_StringValue{StringValue: "space-1"}},
		"nil_value":  nil,
		"chunk_rank": {Kind: &qdrant.Value_IntegerValue{IntegerValue: 3}},
	}

	got := convertPayloadToMap(payload)

	if got["title"] != "Cell Biology" {
		t.Errorf("title = %v, want Cell Biology", got["title"])
	}
	if got[ScopeField] != "space-1" {
		t.Errorf("%s = %v, want space-1", ScopeField, got[ScopeField])
	}
	if _, ok := got["nil_value"]; ok {
		t.Error("nil payload values must be skipped")
	}
	if got["chunk_rank"] != int64(3) {
		t.Errorf("chunk_rank = %v, want 3", got["chunk_rank"])
	}
}
