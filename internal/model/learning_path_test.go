package model

import "testing"

func validNode() PathNode {
	return PathNode{
		ID:      "n1",
		Title:   "Arrival",
		Summary: "Meet your guide",
		Content: "Welcome adventurer!",
		Order:   0,
	}
}

func TestPathNodeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PathNode)
		wantErr bool
	}{
		{"valid", func(n *PathNode) {}, false},
		{"valid with difficulty", func(n *PathNode) { n.Difficulty = DifficultyHard }, false},
		{"valid with type", func(n *PathNode) { n.Type = NodeTypeQuiz }, false},
		{"missing id", func(n *PathNode) { n.ID = "" }, true},
		{"missing title", func(n *PathNode) { n.Title = "" }, true},
		{"negative order", func(n *PathNode) { n.Order = -1 }, true},
		{"bad difficulty", func(n *PathNode) { n.Difficulty = "impossible" }, true},
		{"bad type", func(n *PathNode) { n.Type = "podcast" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := validNode()
			tt.mutate(&node)
			err := node.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLearningPathValidate(t *testing.T) {
	path := LearningPath{
		Title:       "Hero's Journey into Coding",
		Description: "An interactive story",
		Theme:       "gaming",
		Nodes:       []PathNode{validNode()},
	}
	if err := path.Validate(); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}

	// 空节点列表合法
	path.Nodes = nil
	if err := path.Validate(); err != nil {
		t.Errorf("empty path rejected: %v", err)
	}
}

func TestLearningPathValidateMissingTitle(t *testing.T) {
	path := LearningPath{Description: "no title"}
	if err := path.Validate(); err == nil {
		t.Error("expected error for missing title")
	}
}

func TestLearningPathValidateDuplicateNodeIDs(t *testing.T) {
	a := validNode()
	b := validNode()
	b.Order = 1
	path := LearningPath{
		Title: "Dup",
		Nodes: []PathNode{a, b},
	}
	if err := path.Validate(); err == nil {
		t.Error("expected error for duplicate node ids")
	}
}

func TestLearningPathValidateBadNode(t *testing.T) {
	node := validNode()
	node.ID = ""
	path := LearningPath{
		Title: "Broken",
		Nodes: []PathNode{node},
	}
	if err := path.Validate(); err == nil {
		t.Error("expected error for invalid node")
	}
}
