package store

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryStoreInsertAndFind(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	id, err := s.InsertOne(ctx, "things", Document{"name": "sword", "owner": "guest"})
	if err != nil {
		t.Fatalf("InsertOne: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}

	docs, err := s.Find(ctx, "things", nil, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0]["name"] != "sword" {
		t.Errorf("name = %v, want sword", docs[0]["name"])
	}
	if docs[0]["_id"] != id {
		t.Errorf("_id = %v, want %v", docs[0]["_id"], id)
	}
}

func TestMemoryStoreFindFilterAndLimit(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	for _, owner := range []string{"guest", "guest", "admin"} {
		if _, err := s.InsertOne(ctx, "things", Document{"owner": owner}); err != nil {
			t.Fatalf("InsertOne: %v", err)
		}
	}

	docs, err := s.Find(ctx, "things", Document{"owner": "guest"}, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("filtered count = %d, want 2", len(docs))
	}

	docs, err = s.Find(ctx, "things", nil, 1)
	if err != nil {
		t.Fatalf("Find with limit: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("limited count = %d, want 1", len(docs))
	}
}

func TestMemoryStoreUpdateOne(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	id, err := s.InsertOne(ctx, "things", Document{"owner": "guest", "count": 1})
	if err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	if err := s.UpdateOne(ctx, "things", Document{"_id": id}, Document{"count": 2}); err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}

	docs, err := s.Find(ctx, "things", Document{"_id": id}, 1)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if docs[0]["count"] != int32(2) {
		t.Errorf("count = %v (%T), want 2", docs[0]["count"], docs[0]["count"])
	}
	// 未更新字段保留
	if docs[0]["owner"] != "guest" {
		t.Errorf("owner = %v, want guest", docs[0]["owner"])
	}
}

func TestMemoryStoreDeleteMany(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.InsertOne(ctx, "things", Document{"kind": "a"}); err != nil {
			t.Fatalf("InsertOne: %v", err)
		}
	}
	if _, err := s.InsertOne(ctx, "things", Document{"kind": "b"}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	deleted, err := s.DeleteMany(ctx, "things", Document{"kind": "a"})
	if err != nil {
		t.Fatalf("DeleteMany: %v", err)
	}
	if deleted != 3 {
		t.Errorf("deleted = %d, want 3", deleted)
	}

	deleted, err = s.DeleteMany(ctx, "things", nil)
	if err != nil {
		t.Fatalf("DeleteMany all: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}

func TestMemoryStoreListCollectionNames(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	if _, err := s.InsertOne(ctx, "progress", Document{"x": 1}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}
	if _, err := s.InsertOne(ctx, "learningpath", Document{"x": 1}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	names, err := s.ListCollectionNames(ctx)
	if err != nil {
		t.Fatalf("ListCollectionNames: %v", err)
	}
	if len(names) != 2 || names[0] != "learningpath" || names[1] != "progress" {
		t.Errorf("names = %v, want [learningpath progress]", names)
	}
}

func TestMemoryStoreNormalizesStructs(t *testing.T) {
	s := NewMemoryStore("testdb")
	ctx := context.Background()

	type record struct {
		Name string   `bson:"name"`
		Tags []string `bson:"tags"`
	}

	if _, err := s.InsertOne(ctx, "things", record{Name: "shield", Tags: []string{"iron"}}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	docs, err := s.Find(ctx, "things", Document{"name": "shield"}, 1)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	// bson 往返后数组形态与 mongo 驱动一致
	if _, ok := docs[0]["tags"].(primitive.A); !ok {
		t.Errorf("tags = %T, want primitive.A", docs[0]["tags"])
	}
}
