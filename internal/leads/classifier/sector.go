package classifier

import (
	"strings"

	"radar/pkg/model"
	"radar/pkg/sanitizer"
)

type Classifier struct {
	rules []Rule
}

// New prepares rules for matching. Nil or empty rules fall back to DefaultRules.
func New(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules
	}

	prepared := make([]Rule, 0, len(rules))
	for _, r := range rules {
		keywords := make([]string, 0, len(r.Keywords))
		for _, k := range r.Keywords {
			if k = sanitizer.MatchKey(k); k != "" {
				keywords = append(keywords, k)
			}
		}
		prepared = append(prepared, Rule{Label: r.Label, Keywords: keywords})
	}

	return &Classifier{rules: prepared}
}

func (c *Classifier) Classify(lead model.Lead) model.SectorLabel {
	return c.ClassifyText(lead.Name + " " + lead.ActivityDescription)
}

func (c *Classifier) ClassifyText(text string) model.SectorLabel {
	key := sanitizer.MatchKey(text)
	for _, r := range c.rules {
		for _, k := range r.Keywords {
			if strings.Contains(key, k) {
				return r.Label
			}
		}
	}
	return model.SectorOther
}
