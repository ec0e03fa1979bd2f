package domain

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  Kind
		want  string
	}{
		{"my metric", "1", Counter, "my-metric:1|c"},
		{"a\t\tb", "3.5", Gauge, "a-b:3.5|g"},
		{"x", "10", Timer, "x:10|ms"},
		{" lead  and\ntrail ", "-2", Gauge, "-lead-and-trail-:-2|g"},
		{"api.requests", "not-a-number", Counter, "api.requests:not-a-number|c"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			r := Format(tt.name, tt.value, tt.kind)
			if got := r.Line(); got != tt.want {
				t.Errorf("Format(%q, %q, %v).Line() = %q, want %q", tt.name, tt.value, tt.kind, got, tt.want)
			}
			if got := r.String(); got != tt.want+"\n" {
				t.Errorf("String() = %q, want trailing newline", got)
			}
			if r.Len() != len(tt.want)+1 {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.want)+1)
			}
		})
	}
}

func TestRecord_Empty(t *testing.T) {
	var r Record
	if !r.Empty() {
		t.Error("zero Record should be empty")
	}
	if r.Len() != 0 {
		t.Errorf("zero Record Len() = %d, want 0", r.Len())
	}
	if Format("x", "1", Counter).Empty() {
		t.Error("formatted Record should not be empty")
	}
}

func TestKind_Suffix(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Counter, "c"},
		{Gauge, "g"},
		{Timer, "ms"},
		{Kind(42), ""},
	}

	for _, tt := range tests {
		if got := tt.kind.Suffix(); got != tt.want {
			t.Errorf("Kind(%d).Suffix() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"c", Counter, false},
		{"counter", Counter, false},
		{"G", Gauge, false},
		{" gauge ", Gauge, false},
		{"ms", Timer, false},
		{"Timer", Timer, false},
		{"h", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("ParseKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
