package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"radar/pkg/model"
)

type Rule struct {
	Label    model.SectorLabel `yaml:"label"`
	Keywords []string          `yaml:"keywords"`
}

type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// DefaultRules is checked top to bottom; the first rule with a matching
// keyword wins. Keywords are already lowercase and without diacritics.
// Short stems that hide inside other words ("farm" in "farmacia", "gado" in
// "advogado") are left out.
var DefaultRules = []Rule{
	{
		Label: model.SectorAgro,
		Keywords: []string{
			"fazenda", "farming", "rancho", "sitio", "agro", "rural", "cattle", "bovino",
			"pecuaria", "soja", "soy", "milho", "corn", "cafe", "coffee", "leite", "agricola",
			"cultivo", "plantio", "hortifruti", "avicultura", "semente",
		},
	},
	{
		Label: model.SectorRetail,
		Keywords: []string{
			"loja", "store", "shop", "comercio", "varejo", "varejista", "retail", "mercado",
			"market", "magazine", "boutique", "atacad", "distribuidora", "armarinho",
			"papelaria", "drogaria", "farmacia", "otica", "materiais de construcao",
		},
	},
	{
		Label: model.SectorServices,
		Keywords: []string{
			"servico", "service", "consultoria", "consulting", "manutencao", "repair",
			"oficina", "transporte", "salao", "beleza", "beauty", "barbearia", "advocacia",
			"contabil", "clinica", "escola", "ensino", "academia", "lavanderia", "assessoria",
			"informatica", "limpeza",
		},
	},
	{
		Label: model.SectorIndustry,
		Keywords: []string{
			"industria", "industrial", "industry", "fabrica", "factory", "fabricacao", "manufat",
			"metalurg", "serralheria", "serraria", "confeccao", "grafica", "ceramica",
			"construtora", "olaria", "marcenaria",
		},
	},
	{
		Label: model.SectorFood,
		Keywords: []string{
			"restaurante", "restaurant", "lanchonete", "padaria", "bakery", "pizzaria",
			"food", "alimento", "alimentacao", "acougue", "sorveteria", "doceria", "bebida",
			"churrascaria", "pastelaria",
		},
	},
}

// LoadRules reads an ordered rule table from a YAML file of the form
//
//	rules:
//	  - label: Retail
//	    keywords: [loja, store]
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sector rules: %w", err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) ([]Rule, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sector rules: %w", err)
	}
	if len(f.Rules) == 0 {
		return nil, fmt.Errorf("sector rules file has no rules")
	}

	for i, r := range f.Rules {
		if !r.Label.IsValid() || r.Label == model.SectorOther {
			return nil, fmt.Errorf("rule %d: unknown sector label %q", i, r.Label)
		}
		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s): no keywords", i, r.Label)
		}
	}

	return f.Rules, nil
}
