package model

import (
	"reflect"
	"testing"
)

func TestStringArrayValue(t *testing.T) {
	tests := []struct {
		name  string
		input StringArray
		want  interface{}
	}{
		{"nil array", nil, nil},
		{"empty array", StringArray{}, "{}"},
		{"plain values", StringArray{"sad", "healing"}, `{"sad","healing"}`},
		{"value with quote", StringArray{`phim "hay"`}, `{"phim \"hay\""}`},
		{"value with backslash", StringArray{`a\b`}, `{"a\\b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringArrayScan(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  StringArray
	}{
		{"nil source", nil, nil},
		{"empty literal", "{}", StringArray{}},
		{"unquoted values", "{sad,healing}", StringArray{"sad", "healing"}},
		{"quoted value with comma", `{"Hành Động, Phiêu Lưu",cozy}`, StringArray{"Hành Động, Phiêu Lưu", "cozy"}},
		{"escaped quote", `{"phim \"hay\""}`, StringArray{`phim "hay"`}},
		{"bytes source", []byte("{warm}"), StringArray{"warm"}},
		{"null element becomes empty", "{NULL,sad}", StringArray{"", "sad"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringArray
			if err := got.Scan(tt.input); err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestStringArrayScanInvalid(t *testing.T) {
	var a StringArray
	if err := a.Scan("not an array"); err == nil {
		t.Error("Scan() accepted a bad literal")
	}
	if err := a.Scan(42); err == nil {
		t.Error("Scan() accepted an int source")
	}
}

func TestStringArrayRoundTrip(t *testing.T) {
	in := StringArray{"sad", "Hành Động, Phiêu Lưu", `he said "hi"`}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	var out StringArray
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip = %#v, want %#v", out, in)
	}
}
