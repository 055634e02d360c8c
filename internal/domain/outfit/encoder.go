package outfit

import (
	"errors"
	"fmt"
	"strings"
)

// Feature names, also used as encoder field names.
const (
	FieldMood    = "mood"
	FieldGender  = "gender"
	FieldWeather = "weather"
	FieldStyle   = "style"
	FieldOutfit  = "outfit"
)

// Feature positions inside a FeatureVector. The order is fixed by the trained model.
const (
	FeatureMood = iota
	FeatureGender
	FeatureWeather
	FeatureStyle
	FeatureCount
)

// FeatureVector holds encoded (mood, gender, weather, style) codes.
type FeatureVector [FeatureCount]int

// Encoder is an immutable label <-> index lookup built from an ordered class list.
type Encoder struct {
	field   string
	classes []string
	index   map[string]int
}

// NewEncoder builds an encoder where classes[i] encodes to i.
func NewEncoder(field string, classes []string) (*Encoder, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("%s encoder has no classes", field)
	}
	enc := &Encoder{
		field:   field,
		classes: make([]string, len(classes)),
		index:   make(map[string]int, len(classes)),
	}
	for i, class := range classes {
		if strings.TrimSpace(class) == "" {
			return nil, fmt.Errorf("%s encoder: class %d is empty", field, i)
		}
		if _, dup := enc.index[class]; dup {
			return nil, fmt.Errorf("%s encoder: duplicate class %q", field, class)
		}
		enc.index[class] = i
		enc.classes[i] = class
	}
	return enc, nil
}

// Field returns the feature name the encoder was built for.
func (e *Encoder) Field() string { return e.field }

// Len returns the vocabulary size.
func (e *Encoder) Len() int { return len(e.classes) }

// Encode looks up value. Matching is exact.
func (e *Encoder) Encode(value string) (int, error) {
	idx, ok := e.index[value]
	if !ok {
		return 0, &UnknownCategoryError{Field: e.field, Value: value}
	}
	return idx, nil
}

// Decode maps an index back to its label.
func (e *Encoder) Decode(idx int) (string, error) {
	if idx < 0 || idx >= len(e.classes) {
		return "", fmt.Errorf("%s decoder: index %d out of range [0,%d)", e.field, idx, len(e.classes))
	}
	return e.classes[idx], nil
}

// Classes returns a copy of the vocabulary in index order.
func (e *Encoder) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

// Classifier is a pre-fit model mapping features to an outfit label index.
type Classifier interface {
	Predict(features FeatureVector) int
}

// Encoders groups the five pre-fit vocabularies.
type Encoders struct {
	Mood    *Encoder
	Gender  *Encoder
	Weather *Encoder
	Style   *Encoder
	Outfit  *Encoder
}

// Artifacts bundles everything loaded from the model files. It is read-only after
// construction and safe for concurrent use.
type Artifacts struct {
	encoders   Encoders
	classifier Classifier
}

// NewArtifacts validates and bundles encoders with a classifier.
func NewArtifacts(encoders Encoders, classifier Classifier) (*Artifacts, error) {
	if encoders.Mood == nil || encoders.Gender == nil || encoders.Weather == nil || encoders.Style == nil || encoders.Outfit == nil {
		return nil, errors.New("all five encoders are required")
	}
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	return &Artifacts{encoders: encoders, classifier: classifier}, nil
}

// Encoders exposes the loaded vocabularies, used to populate the form.
func (a *Artifacts) Encoders() Encoders { return a.encoders }

// EncodeFeatures encodes the request in model order. The first unknown value
// (checked mood, gender, style, then weather) fails with *UnknownCategoryError.
func (a *Artifacts) EncodeFeatures(mood, gender, style string, category WeatherCategory) (FeatureVector, error) {
	var fv FeatureVector
	steps := []struct {
		enc   *Encoder
		value string
		slot  int
	}{
		{a.encoders.Mood, mood, FeatureMood},
		{a.encoders.Gender, gender, FeatureGender},
		{a.encoders.Style, style, FeatureStyle},
		{a.encoders.Weather, string(category), FeatureWeather},
	}
	for _, step := range steps {
		code, err := step.enc.Encode(step.value)
		if err != nil {
			return FeatureVector{}, err
		}
		fv[step.slot] = code
	}
	return fv, nil
}

// PredictOutfit runs the classifier and decodes its label.
func (a *Artifacts) PredictOutfit(features FeatureVector) (string, error) {
	return a.encoders.Outfit.Decode(a.classifier.Predict(features))
}
