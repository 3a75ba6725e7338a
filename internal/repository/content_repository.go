package repository

import (
	"context"
	"fmt"

	"story_learning_backend/internal/model"
	"story_learning_backend/internal/util"
	"story_learning_backend/pkg/store"

	"go.mongodb.org/mongo-driver/bson"
)

// ContentRepository 学习路径集合的仓储
type ContentRepository struct {
	Store store.DocumentStore
}

func NewContentRepository(s store.DocumentStore) *ContentRepository {
	return &ContentRepository{Store: s}
}

// decode 将存储文档解码为模型。调用前须先剥离内部 "_id"。
func decode(doc store.Document, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func (r *ContentRepository) HasPaths(ctx context.Context) (bool, error) {
	if r.Store == nil {
		return false, util.ErrStoreUnavailable
	}
	docs, err := r.Store.Find(ctx, util.CollectionLearningPath, nil, 1)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (r *ContentRepository) CreatePath(ctx context.Context, path *model.LearningPath) (string, error) {
	if r.Store == nil {
		return "", util.ErrStoreUnavailable
	}
	return r.Store.InsertOne(ctx, util.CollectionLearningPath, path)
}

// ListPaths 返回全部路径，按入库顺序。存量文档形态不符时整个请求报错，
// 不做静默丢弃。
func (r *ContentRepository) ListPaths(ctx context.Context) ([]model.LearningPath, error) {
	if r.Store == nil {
		return nil, util.ErrStoreUnavailable
	}

	docs, err := r.Store.Find(ctx, util.CollectionLearningPath, nil, 0)
	if err != nil {
		return nil, err
	}

	paths := make([]model.LearningPath, 0, len(docs))
	for _, doc := range docs {
		delete(doc, "_id")

		var path model.LearningPath
		if err := decode(doc, &path); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrMalformedDocument, err)
		}
		if path.Theme == "" {
			path.Theme = model.DefaultTheme
		}
		if err := path.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", util.ErrMalformedDocument, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (r *ContentRepository) DeleteAllPaths(ctx context.Context) (int64, error) {
	if r.Store == nil {
		return 0, util.ErrStoreUnavailable
	}
	return r.Store.DeleteMany(ctx, util.CollectionLearningPath, nil)
}
