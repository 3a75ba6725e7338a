package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"story_learning_backend/internal/repository"
	"story_learning_backend/internal/util"
	"story_learning_backend/pkg/logger"
	"story_learning_backend/pkg/store"

	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func newContentService(s store.DocumentStore) *ContentService {
	return NewContentService(
		repository.NewContentRepository(s),
		repository.NewProgressRepository(s),
	)
}

func TestBootstrapSeedsDefaultPath(t *testing.T) {
	mem := store.NewMemoryStore("test")
	svc := newContentService(mem)
	ctx := context.Background()

	result, err := svc.Bootstrap(ctx, false)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if result.Status != "ok" {
		t.Errorf("status = %q, want ok", result.Status)
	}
	if result.Count != 28 {
		t.Errorf("count = %d, want 28", result.Count)
	}

	paths, err := svc.ListPaths(ctx)
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("paths = %d, want 1", len(paths))
	}

	path := paths[0]
	if path.Title != "Hero's Journey into Coding" {
		t.Errorf("title = %q", path.Title)
	}
	if path.Theme != "gaming" {
		t.Errorf("theme = %q, want gaming", path.Theme)
	}
	if len(path.Nodes) != 28 {
		t.Fatalf("nodes = %d, want 28", len(path.Nodes))
	}
	for i, node := range path.Nodes {
		if want := fmt.Sprintf("n%d", i+1); node.ID != want {
			t.Errorf("node[%d].ID = %q, want %q", i, node.ID, want)
		}
		if node.Order != i {
			t.Errorf("node[%d].Order = %d, want %d", i, node.Order, i)
		}
	}
}

func TestBootstrapIsNoOpWhenAlreadySeeded(t *testing.T) {
	mem := store.NewMemoryStore("test")
	svc := newContentService(mem)
	ctx := context.Background()

	if _, err := svc.Bootstrap(ctx, false); err != nil {
		t.Fatalf("first Bootstrap: %v", err)
	}
	result, err := svc.Bootstrap(ctx, false)
	if err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}
	if result.Message != "Already bootstrapped" {
		t.Errorf("message = %q, want Already bootstrapped", result.Message)
	}
	if result.Count != 0 {
		t.Errorf("count = %d, want 0", result.Count)
	}

	docs, err := mem.Find(ctx, util.CollectionLearningPath, nil, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("stored paths = %d, want exactly 1", len(docs))
	}
}

func TestForcedReseedWipesAllProgress(t *testing.T) {
	mem := store.NewMemoryStore("test")
	contentSvc := newContentService(mem)
	progressSvc := newProgressService(mem)
	ctx := context.Background()

	if _, err := contentSvc.Bootstrap(ctx, false); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	// 两个用户、两条不同路径的进度，其中一条与被重建的路径无关
	if _, err := progressSvc.Toggle(ctx, "guest", "Hero's Journey into Coding", "n1"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := progressSvc.Toggle(ctx, "alice", "Some Other Path", "n9"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	result, err := contentSvc.Bootstrap(ctx, true)
	if err != nil {
		t.Fatalf("forced Bootstrap: %v", err)
	}
	if result.Count != 28 {
		t.Errorf("count = %d, want 28", result.Count)
	}

	for _, pair := range [][2]string{
		{"guest", "Hero's Journey into Coding"},
		{"alice", "Some Other Path"},
	} {
		completed, err := progressSvc.Completed(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("Completed(%s, %s): %v", pair[0], pair[1], err)
		}
		if len(completed) != 0 {
			t.Errorf("progress for (%s, %s) survived forced reseed: %v", pair[0], pair[1], completed)
		}
	}

	docs, err := mem.Find(ctx, util.CollectionLearningPath, nil, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("stored paths = %d, want 1 after reseed", len(docs))
	}
}

func TestForcedReseedIsRepeatable(t *testing.T) {
	mem := store.NewMemoryStore("test")
	svc := newContentService(mem)
	ctx := context.Background()

	if _, err := svc.Bootstrap(ctx, true); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if _, err := svc.Bootstrap(ctx, true); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	paths, err := svc.ListPaths(ctx)
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 1 || len(paths[0].Nodes) != 28 {
		t.Errorf("reseed content drifted: %d paths", len(paths))
	}
}

func TestListPathsStripsStoreID(t *testing.T) {
	mem := store.NewMemoryStore("test")
	svc := newContentService(mem)
	ctx := context.Background()

	if _, err := svc.Bootstrap(ctx, false); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	// 裸存储文档带 "_id"，经服务出口的结构体不含该字段，
	// 解码本身就验证了剥离逻辑不会遇到未知字段冲突
	docs, err := mem.Find(ctx, util.CollectionLearningPath, nil, 0)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if _, ok := docs[0]["_id"]; !ok {
		t.Fatal("stored document should carry an internal _id")
	}

	if _, err := svc.ListPaths(ctx); err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
}

func TestListPathsRejectsMalformedDocument(t *testing.T) {
	mem := store.NewMemoryStore("test")
	svc := newContentService(mem)
	ctx := context.Background()

	// title 缺失的存量文档必须让整个请求失败，不能静默丢弃
	if _, err := mem.InsertOne(ctx, util.CollectionLearningPath, store.Document{
		"description": "orphan",
		"nodes":       []interface{}{},
	}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	_, err := svc.ListPaths(ctx)
	if !errors.Is(err, util.ErrMalformedDocument) {
		t.Errorf("err = %v, want ErrMalformedDocument", err)
	}
}

func TestListPathsDefaultsTheme(t *testing.T) {
	mem := store.NewMemoryStore("test")
	svc := newContentService(mem)
	ctx := context.Background()

	// 早期数据没有 theme 字段
	if _, err := mem.InsertOne(ctx, util.CollectionLearningPath, store.Document{
		"title":       "Old Path",
		"description": "seeded before themes existed",
		"nodes":       []interface{}{},
	}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	paths, err := svc.ListPaths(ctx)
	if err != nil {
		t.Fatalf("ListPaths: %v", err)
	}
	if len(paths) != 1 || paths[0].Theme != "adventure" {
		t.Errorf("theme = %q, want adventure", paths[0].Theme)
	}
}

func TestBootstrapStoreUnavailable(t *testing.T) {
	svc := newContentService(nil)

	_, err := svc.Bootstrap(context.Background(), false)
	if !errors.Is(err, util.ErrStoreUnavailable) {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}
