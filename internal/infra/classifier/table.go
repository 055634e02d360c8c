package classifier

import (
	"fmt"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

// Wildcard matches any code at a feature position.
const Wildcard = -1

// TableRule maps a feature pattern to a label index.
type TableRule struct {
	Pattern outfit.FeatureVector
	Label   int
}

// TableModel is an ordered lookup table; the first matching rule wins and
// Default covers everything else.
type TableModel struct {
	rules        []TableRule
	defaultLabel int
}

// NewTableModel validates rule labels against the outfit vocabulary size.
func NewTableModel(rules []TableRule, defaultLabel, labels int) (*TableModel, error) {
	if defaultLabel < 0 || defaultLabel >= labels {
		return nil, fmt.Errorf("table default label %d out of range [0,%d)", defaultLabel, labels)
	}
	for i, rule := range rules {
		if rule.Label < 0 || rule.Label >= labels {
			return nil, fmt.Errorf("table rule %d: label %d out of range [0,%d)", i, rule.Label, labels)
		}
	}
	cp := make([]TableRule, len(rules))
	copy(cp, rules)
	return &TableModel{rules: cp, defaultLabel: defaultLabel}, nil
}

// Predict returns the label of the first matching rule.
func (m *TableModel) Predict(features outfit.FeatureVector) int {
	for _, rule := range m.rules {
		if rule.matches(features) {
			return rule.Label
		}
	}
	return m.defaultLabel
}

func (r TableRule) matches(features outfit.FeatureVector) bool {
	for i, want := range r.Pattern {
		if want != Wildcard && want != features[i] {
			return false
		}
	}
	return true
}

var _ outfit.Classifier = (*TableModel)(nil)
