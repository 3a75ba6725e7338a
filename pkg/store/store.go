package store

import (
	"context"
	"errors"

	"story_learning_backend/internal/config"
)

// Document 文档存储中的一条记录。存储层为每条记录生成内部 "_id"。
type Document = map[string]interface{}

// DocumentStore 文档存储的统一接口。所有实现均按集合名寻址，
// 过滤条件为字段等值匹配。句柄在启动时创建并注入各仓储，不使用包级单例。
type DocumentStore interface {
	Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error)
	InsertOne(ctx context.Context, collection string, doc interface{}) (string, error)
	UpdateOne(ctx context.Context, collection string, filter Document, update Document) error
	DeleteMany(ctx context.Context, collection string, filter Document) (int64, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
	Name() string
}

var ErrUnknownStoreType = errors.New("unknown store type")

// New 根据配置创建存储句柄。mongo 不可达或未配置时返回错误，
// 由调用方决定是否以无存储状态继续运行。
func New(cfg *config.StoreConfig) (DocumentStore, error) {
	switch cfg.Type {
	case "memory":
		return NewMemoryStore(cfg.Database), nil
	case "mongo", "":
		ms, err := NewMongoStore(cfg)
		if err != nil {
			return nil, err
		}
		return ms, nil
	default:
		return nil, ErrUnknownStoreType
	}
}
