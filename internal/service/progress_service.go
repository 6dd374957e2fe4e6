package service

import (
	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	RoadmapRepo  *repository.RoadmapRepository
}

func NewProgressService(progressRepo *repository.ProgressRepository, roadmapRepo *repository.RoadmapRepository) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		RoadmapRepo:  roadmapRepo,
	}
}

// SetProgress 更新主题完成状态，返回实际写入的值
// 先校验主题确实属于该路线图，拒绝孤儿进度记录
func (s *ProgressService) SetProgress(roadmapID, topicID string, completed bool) (bool, error) {
	ok, err := s.RoadmapRepo.TopicBelongsTo(roadmapID, topicID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, util.ErrTopicNotFound
	}

	if err := s.ProgressRepo.Upsert(roadmapID, topicID, completed); err != nil {
		return false, err
	}

	return completed, nil
}

// GetProgress 返回路线图的全部进度记录
func (s *ProgressService) GetProgress(roadmapID string) ([]model.TopicProgress, error) {
	records, err := s.ProgressRepo.ListByRoadmap(roadmapID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.TopicProgress{}
	}
	return records, nil
}
