package classifier

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

func TestTableModelFirstMatchWins(t *testing.T) {
	model, err := NewTableModel([]TableRule{
		{Pattern: outfit.FeatureVector{Wildcard, Wildcard, 0, 1}, Label: 2},
		{Pattern: outfit.FeatureVector{Wildcard, Wildcard, 0, Wildcard}, Label: 1},
	}, 0, 3)
	require.NoError(t, err)

	require.Equal(t, 2, model.Predict(outfit.FeatureVector{3, 1, 0, 1}))
	require.Equal(t, 1, model.Predict(outfit.FeatureVector{3, 1, 0, 0}))
	require.Equal(t, 0, model.Predict(outfit.FeatureVector{3, 1, 2, 0}))
}

func TestTableModelValidatesLabels(t *testing.T) {
	_, err := NewTableModel(nil, 3, 3)
	require.Error(t, err)
	_, err = NewTableModel([]TableRule{{Label: -2}}, 0, 3)
	require.Error(t, err)
}

func TestTreeModelValidation(t *testing.T) {
	_, err := NewTreeModel(nil, 1)
	require.Error(t, err)

	_, err = NewTreeModel([]TreeNode{{Feature: 4, Left: 1, Right: 1}, {Left: -1, Right: -1}}, 1)
	require.ErrorContains(t, err, "feature")

	_, err = NewTreeModel([]TreeNode{{Feature: 0, Left: 1, Right: 5}, {Left: -1, Right: -1}}, 1)
	require.ErrorContains(t, err, "child")

	_, err = NewTreeModel([]TreeNode{{Left: -1, Right: -1, Label: 7}}, 2)
	require.ErrorContains(t, err, "label")
}

func TestTreeModelPredict(t *testing.T) {
	model, err := NewTreeModel([]TreeNode{
		{Feature: outfit.FeatureStyle, Threshold: 0.5, Left: 1, Right: 2},
		{Left: -1, Right: -1, Label: 0},
		{Feature: outfit.FeatureMood, Threshold: 2.5, Left: 3, Right: 4},
		{Left: -1, Right: -1, Label: 1},
		{Left: -1, Right: -1, Label: 2},
	}, 3)
	require.NoError(t, err)

	require.Equal(t, 0, model.Predict(outfit.FeatureVector{9, 0, 0, 0}))
	require.Equal(t, 1, model.Predict(outfit.FeatureVector{2, 0, 0, 1}))
	require.Equal(t, 2, model.Predict(outfit.FeatureVector{3, 0, 0, 1}))
}
