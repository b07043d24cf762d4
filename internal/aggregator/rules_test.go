package aggregator

import (
	"testing"

	"github.com/agrosense/hub/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		tipo, descricao string
		want            models.Category
		matched         bool
	}{
		{"Celsius", "whatever", models.CategoryTemperature, true},
		{"celsius", "whatever", models.CategoryTemperature, true},
		{"Percentual", "Sensor 7", models.CategoryHumidity, true},
		{"Litros", "Caixa 2", models.CategoryWater, true},
		{"kW", "Medidor", models.CategoryEnergy, true},
		{"kw", "Medidor", models.CategoryEnergy, true},
		{"Kg", "Silo 1", models.CategoryFeed, true},
		{"kg", "Silo 1", models.CategoryFeed, true},

		// Keyword fallback when the unit tag is unknown.
		{"", "Temperatura Galpao B", models.CategoryTemperature, true},
		{"Unknown", "Umidade do Ar", models.CategoryHumidity, true},
		{"", "Nivel de Agua", models.CategoryWater, true},
		{"", "Consumo de Energia", models.CategoryEnergy, true},
		{"", "Racao Silo 2", models.CategoryFeed, true},
		{"", "Feed Hopper", models.CategoryFeed, true},
		{"", "Peso Balanca 1", models.CategoryWeight, true},
		{"", "Live Weight Scale", models.CategoryWeight, true},
		{"", "BALANCA CORREDOR", models.CategoryWeight, true},

		// Rule order: temperature outranks water for mixed descriptions.
		{"", "Temperatura Agua Caixa", models.CategoryTemperature, true},

		// No rule matches.
		{"Bar", "Pressao Silo", "", false},
		{"", "", "", false},
	}

	for _, tc := range cases {
		got, ok := Classify(tc.tipo, tc.descricao)
		if ok != tc.matched || got != tc.want {
			t.Errorf("Classify(%q, %q) = (%q, %v), want (%q, %v)",
				tc.tipo, tc.descricao, got, ok, tc.want, tc.matched)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first, ok := Classify("", "Temperatura Agua")
	if !ok {
		t.Fatal("expected a match")
	}
	for i := 0; i < 50; i++ {
		got, _ := Classify("", "Temperatura Agua")
		if got != first {
			t.Fatalf("classification changed between runs: %q vs %q", first, got)
		}
	}
}
