package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"story_learning_backend/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotConfigured = errors.New("document store not configured")

// MongoStore 基于 MongoDB 的文档存储实现
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(cfg *config.StoreConfig) (*MongoStore, error) {
	if cfg.URI == "" || cfg.Database == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Println("Document store connection established")

	return &MongoStore{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	if filter == nil {
		filter = Document{}
	}

	opts := options.Find()
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, Document(d))
	}
	return docs, nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter Document, update Document) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx, bson.M(filter), bson.M{"$set": bson.M(update)})
	return err
}

func (s *MongoStore) DeleteMany(ctx context.Context, collection string, filter Document) (int64, error) {
	if filter == nil {
		filter = Document{}
	}
	res, err := s.db.Collection(collection).DeleteMany(ctx, bson.M(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Name() string {
	return s.db.Name()
}

// Close 断开连接。进程内正常运行期间不调用，仅用于优雅退出。
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
