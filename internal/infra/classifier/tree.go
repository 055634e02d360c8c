package classifier

import (
	"errors"
	"fmt"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

const noChild = -1

// TreeNode is one node of an exported decision tree. Inner nodes send
// x[Feature] <= Threshold left; a node with both children set to -1 is a leaf.
type TreeNode struct {
	Feature   int     `yaml:"feature"`
	Threshold float64 `yaml:"threshold"`
	Left      int     `yaml:"left"`
	Right     int     `yaml:"right"`
	Label     int     `yaml:"label"`
}

func (n TreeNode) isLeaf() bool {
	return n.Left == noChild && n.Right == noChild
}

// TreeModel is a validated, immutable decision tree rooted at node 0.
type TreeModel struct {
	nodes []TreeNode
}

// NewTreeModel validates nodes against the outfit vocabulary size.
func NewTreeModel(nodes []TreeNode, labels int) (*TreeModel, error) {
	if len(nodes) == 0 {
		return nil, errors.New("tree has no nodes")
	}
	for i, node := range nodes {
		if node.isLeaf() {
			if node.Label < 0 || node.Label >= labels {
				return nil, fmt.Errorf("tree node %d: label %d out of range [0,%d)", i, node.Label, labels)
			}
			continue
		}
		if node.Feature < 0 || node.Feature >= outfit.FeatureCount {
			return nil, fmt.Errorf("tree node %d: feature %d out of range", i, node.Feature)
		}
		for _, child := range []int{node.Left, node.Right} {
			if child <= 0 || child >= len(nodes) {
				return nil, fmt.Errorf("tree node %d: child %d out of range", i, child)
			}
		}
	}
	if err := checkAcyclic(nodes); err != nil {
		return nil, err
	}
	cp := make([]TreeNode, len(nodes))
	copy(cp, nodes)
	return &TreeModel{nodes: cp}, nil
}

// Predict walks the tree from the root to a leaf.
func (m *TreeModel) Predict(features outfit.FeatureVector) int {
	node := m.nodes[0]
	for !node.isLeaf() {
		if float64(features[node.Feature]) <= node.Threshold {
			node = m.nodes[node.Left]
		} else {
			node = m.nodes[node.Right]
		}
	}
	return node.Label
}

func checkAcyclic(nodes []TreeNode) error {
	const (
		unseen = iota
		active
		done
	)
	state := make([]int, len(nodes))
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case active:
			return fmt.Errorf("tree contains a cycle through node %d", i)
		case done:
			return nil
		}
		state[i] = active
		if n := nodes[i]; !n.isLeaf() {
			if err := visit(n.Left); err != nil {
				return err
			}
			if err := visit(n.Right); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}
	return visit(0)
}

var _ outfit.Classifier = (*TreeModel)(nil)
