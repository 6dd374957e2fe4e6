package repository

import (
	"ai_tutor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert 写入或更新(roadmap_id, topic_id)的完成状态
// 依赖唯一索引idx_roadmap_topic做原子upsert，并发写为last-write-wins
// 首次插入保留created_at，后续只覆盖completed和updated_at
func (r *ProgressRepository) Upsert(roadmapID, topicID string, completed bool) error {
	record := model.TopicProgress{
		UUIDBase:  model.UUIDBase{ID: model.GenerateUUID()},
		RoadmapID: roadmapID,
		TopicID:   topicID,
		Completed: completed,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "roadmap_id"}, {Name: "topic_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(&record).Error
}

// ListByRoadmap 返回路线图的全部进度记录，顺序不保证
func (r *ProgressRepository) ListByRoadmap(roadmapID string) ([]model.TopicProgress, error) {
	var records []model.TopicProgress
	err := r.DB.Where("roadmap_id = ?", roadmapID).Find(&records).Error
	return records, err
}
