package repository

import (
	"context"

	"story_learning_backend/internal/model"
	"story_learning_backend/internal/util"
	"story_learning_backend/pkg/store"
)

// ProgressRepository 进度集合的仓储
type ProgressRepository struct {
	Store store.DocumentStore
}

func NewProgressRepository(s store.DocumentStore) *ProgressRepository {
	return &ProgressRepository{Store: s}
}

// FindByUserAndPath 查 (user_id, path_title) 对应的进度文档，带内部 "_id"。
// 不存在时返回 nil, nil——缺失是合法的初始状态，不作为错误。
func (r *ProgressRepository) FindByUserAndPath(ctx context.Context, userID, pathTitle string) (store.Document, error) {
	if r.Store == nil {
		return nil, util.ErrStoreUnavailable
	}

	docs, err := r.Store.Find(ctx, util.CollectionProgress, store.Document{
		"user_id":    userID,
		"path_title": pathTitle,
	}, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (r *ProgressRepository) CreateProgress(ctx context.Context, progress *model.Progress) (string, error) {
	if r.Store == nil {
		return "", util.ErrStoreUnavailable
	}
	return r.Store.InsertOne(ctx, util.CollectionProgress, progress)
}

// SetCompleted 按内部 "_id" 原地覆盖 completed_node_ids，不产生新文档
func (r *ProgressRepository) SetCompleted(ctx context.Context, docID interface{}, completed []string) error {
	if r.Store == nil {
		return util.ErrStoreUnavailable
	}
	return r.Store.UpdateOne(ctx, util.CollectionProgress,
		store.Document{"_id": docID},
		store.Document{"completed_node_ids": completed},
	)
}

func (r *ProgressRepository) DeleteAll(ctx context.Context) (int64, error) {
	if r.Store == nil {
		return 0, util.ErrStoreUnavailable
	}
	return r.Store.DeleteMany(ctx, util.CollectionProgress, nil)
}
