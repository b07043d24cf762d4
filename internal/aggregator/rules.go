// FilePath: internal/aggregator/rules.go
package aggregator

import (
	"strings"

	"github.com/agrosense/hub/internal/models"
)

// rule maps a sensor onto one category. A group matches when its type tag
// equals one of the unit tags (case-insensitive), or failing that, when its
// description contains one of the keywords.
type rule struct {
	category models.Category
	units    []string
	keywords []string
}

// classificationRules is evaluated top to bottom; the first matching rule
// wins. Order is part of the contract: a sensor labelled "Temperatura Agua"
// with no recognized unit tag classifies as temperature, not water.
var classificationRules = []rule{
	{
		category: models.CategoryTemperature,
		units:    []string{"celsius"},
		keywords: []string{"temperatura", "temp"},
	},
	{
		category: models.CategoryHumidity,
		units:    []string{"percentual"},
		keywords: []string{"umidade", "humidity"},
	},
	{
		category: models.CategoryWater,
		units:    []string{"litros"},
		keywords: []string{"agua", "water"},
	},
	{
		category: models.CategoryEnergy,
		units:    []string{"kw"},
		keywords: []string{"energia", "energy"},
	},
	{
		category: models.CategoryFeed,
		units:    []string{"kg"},
		keywords: []string{"racao", "feed", "alimento"},
	},
	{
		category: models.CategoryWeight,
		units:    []string{},
		keywords: []string{"peso", "weight", "balanca"},
	},
}

// Classify resolves the category of a sensor from its type tag and
// description. The second return is false when no rule matches.
func Classify(tipo, descricao string) (models.Category, bool) {
	desc := strings.ToLower(descricao)
	for _, r := range classificationRules {
		if matchesUnit(r, tipo) || matchesKeyword(r, desc) {
			return r.category, true
		}
	}
	return "", false
}

func matchesUnit(r rule, tipo string) bool {
	for _, unit := range r.units {
		if strings.EqualFold(tipo, unit) {
			return true
		}
	}
	return false
}

func matchesKeyword(r rule, loweredDesc string) bool {
	for _, kw := range r.keywords {
		if strings.Contains(loweredDesc, kw) {
			return true
		}
	}
	return false
}
