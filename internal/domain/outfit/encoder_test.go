package outfit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEncoderRejectsBadVocabulary(t *testing.T) {
	_, err := NewEncoder(FieldMood, nil)
	require.Error(t, err)

	_, err = NewEncoder(FieldMood, []string{"Happy", "Happy"})
	require.ErrorContains(t, err, "duplicate")

	_, err = NewEncoder(FieldMood, []string{"Happy", " "})
	require.ErrorContains(t, err, "empty")
}

func TestEncoderRoundTrip(t *testing.T) {
	enc, err := NewEncoder(FieldStyle, []string{"Casual", "Formal", "Party"})
	require.NoError(t, err)

	idx, err := enc.Encode("Formal")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	label, err := enc.Decode(2)
	require.NoError(t, err)
	require.Equal(t, "Party", label)

	_, err = enc.Decode(3)
	require.Error(t, err)
	_, err = enc.Decode(-1)
	require.Error(t, err)
}

func TestEncodeFeaturesOrder(t *testing.T) {
	artifacts := newTestArtifacts(t, func(FeatureVector) int { return 0 })

	fv, err := artifacts.EncodeFeatures("Sad", "Male", "Formal", CategoryWarm)
	require.NoError(t, err)
	require.Equal(t, FeatureVector{1, 1, 2, 1}, fv)
}

func TestEncodeFeaturesUnknownCategory(t *testing.T) {
	artifacts := newTestArtifacts(t, func(FeatureVector) int { return 0 })

	cases := []struct {
		mood, gender, style string
		field, value        string
	}{
		{"Bored", "Female", "Casual", FieldMood, "Bored"},
		{"Happy", "Robot", "Casual", FieldGender, "Robot"},
		{"Happy", "Female", "Goth", FieldStyle, "Goth"},
		{"happy", "Female", "Casual", FieldMood, "happy"},
	}
	for _, tc := range cases {
		_, err := artifacts.EncodeFeatures(tc.mood, tc.gender, tc.style, CategoryMild)
		var unknown *UnknownCategoryError
		require.True(t, errors.As(err, &unknown), "expected UnknownCategoryError for %+v", tc)
		require.Equal(t, tc.field, unknown.Field)
		require.Equal(t, tc.value, unknown.Value)
	}
}

func TestPredictOutfitDecodes(t *testing.T) {
	artifacts := newTestArtifacts(t, func(fv FeatureVector) int { return fv[FeatureWeather] })

	label, err := artifacts.PredictOutfit(FeatureVector{0, 0, 2, 0})
	require.NoError(t, err)
	require.Equal(t, "Linen shirt and shorts", label)

	broken := newTestArtifacts(t, func(FeatureVector) int { return 99 })
	_, err = broken.PredictOutfit(FeatureVector{})
	require.Error(t, err)
}

func TestNewArtifactsRequiresAllParts(t *testing.T) {
	_, err := NewArtifacts(Encoders{}, classifierFunc(func(FeatureVector) int { return 0 }))
	require.Error(t, err)

	encoders := newTestArtifacts(t, func(FeatureVector) int { return 0 }).Encoders()
	_, err = NewArtifacts(encoders, nil)
	require.Error(t, err)
}

type classifierFunc func(FeatureVector) int

func (f classifierFunc) Predict(fv FeatureVector) int { return f(fv) }

func newTestArtifacts(t *testing.T, predict func(FeatureVector) int) *Artifacts {
	t.Helper()
	build := func(field string, classes ...string) *Encoder {
		enc, err := NewEncoder(field, classes)
		require.NoError(t, err)
		return enc
	}
	artifacts, err := NewArtifacts(Encoders{
		Mood:    build(FieldMood, "Happy", "Sad", "Energetic"),
		Gender:  build(FieldGender, "Female", "Male"),
		Weather: build(FieldWeather, "Cold", "Mild", "Warm"),
		Style:   build(FieldStyle, "Casual", "Formal"),
		Outfit:  build(FieldOutfit, "Wool coat and boots", "Denim jacket and jeans", "Linen shirt and shorts"),
	}, classifierFunc(predict))
	require.NoError(t, err)
	return artifacts
}
