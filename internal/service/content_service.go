package service

import (
	"context"

	"story_learning_backend/internal/model"
	"story_learning_backend/internal/repository"
	"story_learning_backend/pkg/logger"

	"go.uber.org/zap"
)

type ContentService struct {
	ContentRepo  *repository.ContentRepository
	ProgressRepo *repository.ProgressRepository
}

func NewContentService(contentRepo *repository.ContentRepository, progressRepo *repository.ProgressRepository) *ContentService {
	return &ContentService{
		ContentRepo:  contentRepo,
		ProgressRepo: progressRepo,
	}
}

// swagger:model BootstrapResult
type BootstrapResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Bootstrap 保证存储中有默认路径。已有内容且未加 force 时不做任何改动。
// force=true 先清空全部路径和全部进度（所有用户，无法撤销），再重新写入
// 固定的种子路径，因此重建后的内容每次都一致。
func (s *ContentService) Bootstrap(ctx context.Context, force bool) (*BootstrapResult, error) {
	has, err := s.ContentRepo.HasPaths(ctx)
	if err != nil {
		return nil, err
	}

	if has && !force {
		return &BootstrapResult{Status: "ok", Message: "Already bootstrapped"}, nil
	}

	if force {
		pathsDeleted, err := s.ContentRepo.DeleteAllPaths(ctx)
		if err != nil {
			return nil, err
		}
		progressDeleted, err := s.ProgressRepo.DeleteAll(ctx)
		if err != nil {
			return nil, err
		}
		logger.Log.Warn("Forced reseed wiped store",
			zap.Int64("paths_deleted", pathsDeleted),
			zap.Int64("progress_deleted", progressDeleted),
		)
	}

	path := defaultLearningPath()
	if _, err := s.ContentRepo.CreatePath(ctx, path); err != nil {
		return nil, err
	}

	logger.Log.Info("Bootstrapped default content",
		zap.String("path", path.Title),
		zap.Int("nodes", len(path.Nodes)),
	)

	return &BootstrapResult{
		Status:  "ok",
		Message: "Bootstrapped default content",
		Count:   len(path.Nodes),
	}, nil
}

// ListPaths 返回存储中的全部路径，已剥离内部 id 并通过形态校验
func (s *ContentService) ListPaths(ctx context.Context) ([]model.LearningPath, error) {
	return s.ContentRepo.ListPaths(ctx)
}
