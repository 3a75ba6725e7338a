package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore 进程内文档存储，用于 store.type=memory 与测试。
// 文档经 bson 往返规范化，保证与 MongoDB 实现相同的解码形态
// （数组解码为 primitive.A，数值为 int32/int64 等）。
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]Document
}

func NewMemoryStore(name string) *MemoryStore {
	if name == "" {
		name = "memory"
	}
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]Document),
	}
}

func normalize(doc interface{}) (Document, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return Document(out), nil
}

func matches(doc Document, filter Document) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter Document, limit int64) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Document
	for _, doc := range s.collections[collection] {
		if filter != nil && !matches(doc, filter) {
			continue
		}
		copied, err := normalize(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc interface{}) (string, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	normalized["_id"] = id

	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], normalized)
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter Document, update Document) error {
	normalizedUpdate, err := normalize(update)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			for k, v := range normalizedUpdate {
				doc[k] = v
			}
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) DeleteMany(ctx context.Context, collection string, filter Document) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []Document
	var deleted int64
	for _, doc := range s.collections[collection] {
		if filter == nil || len(filter) == 0 || matches(doc, filter) {
			deleted++
			continue
		}
		kept = append(kept, doc)
	}
	s.collections[collection] = kept
	return deleted, nil
}

func (s *MemoryStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Name() string {
	return s.name
}
