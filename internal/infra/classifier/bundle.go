package classifier

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

// Model kinds understood by Parse.
const (
	KindTree  = "tree"
	KindTable = "table"
)

type bundleFile struct {
	Encoders encodersFile `yaml:"encoders"`
	Model    modelFile    `yaml:"model"`
}

type encodersFile struct {
	Mood    []string `yaml:"mood"`
	Gender  []string `yaml:"gender"`
	Weather []string `yaml:"weather"`
	Style   []string `yaml:"style"`
	Outfit  []string `yaml:"outfit"`
}

type modelFile struct {
	Kind    string     `yaml:"kind"`
	Nodes   []TreeNode `yaml:"nodes"`
	Rules   []ruleFile `yaml:"rules"`
	Default string     `yaml:"default"`
}

// ruleFile is a human authored table row; omitted features are wildcards.
type ruleFile struct {
	Mood    string `yaml:"mood"`
	Gender  string `yaml:"gender"`
	Weather string `yaml:"weather"`
	Style   string `yaml:"style"`
	Outfit  string `yaml:"outfit"`
}

// Parse decodes a YAML model bundle into validated artifacts.
func Parse(data []byte) (*outfit.Artifacts, error) {
	var file bundleFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse model bundle: %w", err)
	}

	encoders, err := buildEncoders(file.Encoders)
	if err != nil {
		return nil, err
	}

	var model outfit.Classifier
	switch strings.ToLower(strings.TrimSpace(file.Model.Kind)) {
	case KindTree:
		model, err = NewTreeModel(file.Model.Nodes, encoders.Outfit.Len())
	case KindTable:
		model, err = buildTable(file.Model, encoders)
	default:
		return nil, fmt.Errorf("unsupported model kind %q", file.Model.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("build %s model: %w", file.Model.Kind, err)
	}
	return outfit.NewArtifacts(encoders, model)
}

func buildEncoders(file encodersFile) (outfit.Encoders, error) {
	var (
		out outfit.Encoders
		err error
	)
	specs := []struct {
		field   string
		classes []string
		dst     **outfit.Encoder
	}{
		{outfit.FieldMood, file.Mood, &out.Mood},
		{outfit.FieldGender, file.Gender, &out.Gender},
		{outfit.FieldWeather, file.Weather, &out.Weather},
		{outfit.FieldStyle, file.Style, &out.Style},
		{outfit.FieldOutfit, file.Outfit, &out.Outfit},
	}
	for _, spec := range specs {
		if *spec.dst, err = outfit.NewEncoder(spec.field, spec.classes); err != nil {
			return outfit.Encoders{}, err
		}
	}
	for _, category := range []outfit.WeatherCategory{outfit.CategoryCold, outfit.CategoryMild, outfit.CategoryWarm} {
		if _, err := out.Weather.Encode(string(category)); err != nil {
			return outfit.Encoders{}, fmt.Errorf("weather encoder must cover every category: %w", err)
		}
	}
	return out, nil
}

func buildTable(file modelFile, encoders outfit.Encoders) (*TableModel, error) {
	if strings.TrimSpace(file.Default) == "" {
		return nil, errors.New("table model requires a default outfit")
	}
	defaultLabel, err := encoders.Outfit.Encode(file.Default)
	if err != nil {
		return nil, err
	}
	rules := make([]TableRule, 0, len(file.Rules))
	for i, row := range file.Rules {
		rule := TableRule{Pattern: outfit.FeatureVector{Wildcard, Wildcard, Wildcard, Wildcard}}
		cells := []struct {
			enc   *outfit.Encoder
			value string
			slot  int
		}{
			{encoders.Mood, row.Mood, outfit.FeatureMood},
			{encoders.Gender, row.Gender, outfit.FeatureGender},
			{encoders.Weather, row.Weather, outfit.FeatureWeather},
			{encoders.Style, row.Style, outfit.FeatureStyle},
		}
		for _, cell := range cells {
			if cell.value == "" {
				continue
			}
			code, err := cell.enc.Encode(cell.value)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
			rule.Pattern[cell.slot] = code
		}
		if rule.Label, err = encoders.Outfit.Encode(row.Outfit); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		rules = append(rules, rule)
	}
	return NewTableModel(rules, defaultLabel, encoders.Outfit.Len())
}
