package catalog

import "testing"

func feverCatalog() []Product {
	var products []Product
	for _, rec := range Seed() {
		p, _ := Parse(rec)
		products = append(products, p)
	}
	return products
}

func names(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestFindExact(t *testing.T) {
	tests := []struct {
		name    string
		ailment string
		want    []string
	}{
		{name: "case-insensitive exact match", ailment: "fever", want: []string{"Paracetamol", "Dolo"}},
		{name: "whitespace trimmed", ailment: "  Fever  ", want: []string{"Paracetamol", "Dolo"}},
		{name: "substring is not an exact match", ailment: "Fev", want: nil},
		{name: "infection does not match ear infection", ailment: "Infection", want: []string{"Azithromycin", "Amoxicillin"}},
		{name: "unknown ailment", ailment: "Headache", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FindExact(feverCatalog(), tt.ailment))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i, name := range tt.want {
				if got[i] != name {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestFindApproximate(t *testing.T) {
	tests := []struct {
		name    string
		ailment string
		want    []string
	}{
		{name: "substring matches", ailment: "Fev", want: []string{"Paracetamol", "Dolo"}},
		{name: "substring spans two diseases", ailment: "Infection", want: []string{"Azithromycin", "Amoxicillin", "Cetraxal"}},
		{name: "no containment", ailment: "Headache", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(FindApproximate(feverCatalog(), tt.ailment))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i, name := range tt.want {
				if got[i] != name {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}
