package model

import (
	"fmt"
)

const DefaultTheme = "adventure"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	NodeTypeLesson  = "lesson"
	NodeTypeVideo   = "video"
	NodeTypeQuiz    = "quiz"
	NodeTypeProject = "project"
)

// swagger:model PathNode
type PathNode struct {
	ID         string `bson:"id" json:"id"`                                     // 路径内唯一
	Title      string `bson:"title" json:"title"`                               // 地图上显示的短标题
	Summary    string `bson:"summary" json:"summary"`                           // 一句话概要
	Content    string `bson:"content" json:"content"`                           // 故事/课程正文
	Order      int    `bson:"order" json:"order"`                               // 展示顺序，从 0 开始
	Difficulty string `bson:"difficulty,omitempty" json:"difficulty,omitempty"` // easy | medium | hard
	Type       string `bson:"type,omitempty" json:"type,omitempty"`             // lesson | video | quiz | project
}

// swagger:model LearningPath
type LearningPath struct {
	Title       string     `bson:"title" json:"title"` // 客户端以标题引用路径
	Description string     `bson:"description" json:"description"`
	Theme       string     `bson:"theme" json:"theme"`
	Nodes       []PathNode `bson:"nodes" json:"nodes"`
}

func (n *PathNode) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("path node: missing id")
	}
	if n.Title == "" {
		return fmt.Errorf("path node %s: missing title", n.ID)
	}
	if n.Order < 0 {
		return fmt.Errorf("path node %s: negative order %d", n.ID, n.Order)
	}
	switch n.Difficulty {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("path node %s: invalid difficulty %q", n.ID, n.Difficulty)
	}
	switch n.Type {
	case "", NodeTypeLesson, NodeTypeVideo, NodeTypeQuiz, NodeTypeProject:
	default:
		return fmt.Errorf("path node %s: invalid type %q", n.ID, n.Type)
	}
	return nil
}

// Validate 校验路径文档形态。入库前与出库后都要通过，
// 存量文档校验失败按数据错误上报，不做静默丢弃。
func (p *LearningPath) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("learning path: missing title")
	}
	seen := make(map[string]struct{}, len(p.Nodes))
	for i := range p.Nodes {
		if err := p.Nodes[i].Validate(); err != nil {
			return fmt.Errorf("learning path %q: %w", p.Title, err)
		}
		if _, dup := seen[p.Nodes[i].ID]; dup {
			return fmt.Errorf("learning path %q: duplicate node id %s", p.Title, p.Nodes[i].ID)
		}
		seen[p.Nodes[i].ID] = struct{}{}
	}
	return nil
}
