package service

import (
	"context"

	"story_learning_backend/internal/model"
	"story_learning_backend/internal/repository"
	"story_learning_backend/pkg/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{ProgressRepo: progressRepo}
}

// Toggle 翻转节点完成状态：不在集合则加入，已在集合则移除。
// 两次相同调用互为逆操作。首次触达某 (user, path) 时懒创建进度文档。
//
// 读-算-写之间没有并发控制：同一 (user, path) 的并发翻转基于同一旧值
// 计算，后写覆盖先写。
func (s *ProgressService) Toggle(ctx context.Context, userID, pathTitle, nodeID string) ([]string, error) {
	doc, err := s.ProgressRepo.FindByUserAndPath(ctx, userID, pathTitle)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		progress := &model.Progress{
			UserID:           userID,
			PathTitle:        pathTitle,
			CompletedNodeIDs: []string{nodeID},
		}
		if _, err := s.ProgressRepo.CreateProgress(ctx, progress); err != nil {
			return nil, err
		}
		return progress.CompletedNodeIDs, nil
	}

	completed := completedSet(doc)
	if _, ok := completed[nodeID]; ok {
		delete(completed, nodeID)
	} else {
		completed[nodeID] = struct{}{}
	}

	updated := make([]string, 0, len(completed))
	for id := range completed {
		updated = append(updated, id)
	}

	if err := s.ProgressRepo.SetCompleted(ctx, doc["_id"], updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Completed 查询已完成节点。没有进度文档时返回空集合，不报错。
func (s *ProgressService) Completed(ctx context.Context, userID, pathTitle string) ([]string, error) {
	doc, err := s.ProgressRepo.FindByUserAndPath(ctx, userID, pathTitle)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []string{}, nil
	}

	completed := completedSet(doc)
	ids := make([]string, 0, len(completed))
	for id := range completed {
		ids = append(ids, id)
	}
	return ids, nil
}

// completedSet 从存储文档还原集合。字段缺失或元素类型不符时按空处理，
// 重复元素自然去重。
func completedSet(doc store.Document) map[string]struct{} {
	set := make(map[string]struct{})

	var items []interface{}
	switch v := doc["completed_node_ids"].(type) {
	case primitive.A:
		items = v
	case []interface{}:
		items = v
	case []string:
		for _, id := range v {
			set[id] = struct{}{}
		}
		return set
	}

	for _, item := range items {
		if id, ok := item.(string); ok {
			set[id] = struct{}{}
		}
	}
	return set
}
