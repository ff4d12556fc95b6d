package chart

import (
	"encoding/json"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValuesJSON(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantLabels []string
		wantNums   []float64
	}{
		{"list", `[30, 16, 4]`, nil, []float64{30, 16, 4}},
		{"mapping keeps order", `{"Zebra": 3, "Ant": 1.5, "Mole": 2}`, []string{"Zebra", "Ant", "Mole"}, []float64{3, 1.5, 2}},
		{"empty list", `[]`, nil, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Values
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if !slices.Equal(v.Labels, tt.wantLabels) {
				t.Errorf("Labels = %v, want %v", v.Labels, tt.wantLabels)
			}
			if !slices.Equal(v.Numbers, tt.wantNums) {
				t.Errorf("Numbers = %v, want %v", v.Numbers, tt.wantNums)
			}
		})
	}
}

func TestValuesJSONRejectsScalars(t *testing.T) {
	var v Values
	if err := json.Unmarshal([]byte(`"30"`), &v); err == nil {
		t.Error("expected error for a string")
	}
	if err := json.Unmarshal([]byte(`["a"]`), &v); err == nil {
		t.Error("expected error for a non-numeric element")
	}
}

func TestValuesMarshalJSONKeepsOrder(t *testing.T) {
	v := Values{Labels: []string{"b", "a"}, Numbers: []float64{2, 1}}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"b":2,"a":1}`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}

	data, _ = json.Marshal(NewValues(1, 2))
	if got, want := string(data), `[1,2]`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestValuesYAML(t *testing.T) {
	var doc struct {
		List    Values `yaml:"list"`
		Mapping Values `yaml:"mapping"`
	}
	src := "list: [1, 2.5]\nmapping:\n  Zebra: 3\n  Ant: 1\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !slices.Equal(doc.List.Numbers, []float64{1, 2.5}) || doc.List.Labeled() {
		t.Errorf("List = %+v", doc.List)
	}
	if !slices.Equal(doc.Mapping.Labels, []string{"Zebra", "Ant"}) {
		t.Errorf("Mapping labels = %v, want file order", doc.Mapping.Labels)
	}
}

func TestValuesReorder(t *testing.T) {
	v := Values{Labels: []string{"a", "b", "c"}, Numbers: []float64{1, 2, 3}}
	v.Reorder([]string{"c", "a"})
	if !slices.Equal(v.Labels, []string{"c", "a", "b"}) {
		t.Errorf("Labels = %v", v.Labels)
	}
	if !slices.Equal(v.Numbers, []float64{3, 1, 2}) {
		t.Errorf("Numbers = %v", v.Numbers)
	}

	plain := NewValues(5, 6)
	plain.Reorder([]string{"x"})
	if !slices.Equal(plain.Numbers, []float64{5, 6}) {
		t.Errorf("unlabeled values changed: %v", plain.Numbers)
	}
}

func TestCharacters(t *testing.T) {
	var one, many Characters
	if err := json.Unmarshal([]byte(`"★"`), &one); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`["a", "b"]`), &many); err != nil {
		t.Fatal(err)
	}

	if one.For(0) != "★" || one.For(7) != "★" {
		t.Errorf("single character should apply to every category: %v", one)
	}
	if many.For(1) != "b" || many.For(2) != "" {
		t.Errorf("For() = %q, %q", many.For(1), many.For(2))
	}
	if (Characters{}).For(0) != "" {
		t.Error("empty characters should draw squares")
	}
}
