package coercer

import (
	"testing"

	"tokpee/domain/dataset"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind dataset.Kind
		wantNum  float64
		wantText string
	}{
		{name: "integer", raw: "42", wantKind: dataset.KindNumber, wantNum: 42},
		{name: "fraction", raw: "42.5", wantKind: dataset.KindNumber, wantNum: 42.5},
		{name: "signed with spaces", raw: "  -7.25 ", wantKind: dataset.KindNumber, wantNum: -7.25},
		{name: "leading dot", raw: ".5", wantKind: dataset.KindNumber, wantNum: 0.5},
		{name: "exponent", raw: "1e3", wantKind: dataset.KindNumber, wantNum: 1000},
		{name: "empty stays text", raw: "", wantKind: dataset.KindText, wantText: ""},
		{name: "blank trims to empty text", raw: "   ", wantKind: dataset.KindText, wantText: ""},
		{name: "word", raw: "abc", wantKind: dataset.KindText, wantText: "abc"},
		{name: "grouping comma", raw: "1,234", wantKind: dataset.KindText, wantText: "1,234"},
		{name: "currency", raw: "Rp 85.000", wantKind: dataset.KindText, wantText: "Rp 85.000"},
		{name: "overflow", raw: "1e999", wantKind: dataset.KindText, wantText: "1e999"},
		{name: "infinity word", raw: "Infinity", wantKind: dataset.KindText, wantText: "Infinity"},
		{name: "hex", raw: "0x10", wantKind: dataset.KindText, wantText: "0x10"},
		{name: "trailing text", raw: "12pcs", wantKind: dataset.KindText, wantText: "12pcs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Infer(tt.raw)
			if got.Kind != tt.wantKind {
				t.Fatalf("Infer(%q) kind = %s, want %s", tt.raw, got.Kind, tt.wantKind)
			}
			switch tt.wantKind {
			case dataset.KindNumber:
				if got.Num != tt.wantNum {
					t.Errorf("Infer(%q) = %v, want %v", tt.raw, got.Num, tt.wantNum)
				}
			case dataset.KindText:
				if got.Str != tt.wantText {
					t.Errorf("Infer(%q) = %q, want %q", tt.raw, got.Str, tt.wantText)
				}
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name  string
		value dataset.Value
		want  float64
	}{
		{"number", dataset.Number(3.5), 3.5},
		{"numeric text", dataset.Text(" 12 "), 12},
		{"word", dataset.Text("n/a"), 0},
		{"empty text", dataset.Text(""), 0},
		{"true", dataset.Bool(true), 1},
		{"false", dataset.Bool(false), 0},
		{"missing", dataset.Missing(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNumber(tt.value); got != tt.want {
				t.Errorf("ToNumber(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
