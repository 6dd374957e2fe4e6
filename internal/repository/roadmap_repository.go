package repository

import (
	"errors"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/util"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

// CreateWithTopics 在单个事务中写入路线图及其全部主题
// 部分写入会整体回滚，保证"主题存在当且仅当路线图完整存在"
func (r *RoadmapRepository) CreateWithTopics(roadmap *model.Roadmap, topics []model.Topic) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(roadmap).Error; err != nil {
			return err
		}

		for i := range topics {
			topics[i].RoadmapID = roadmap.ID
		}

		if len(topics) > 0 {
			if err := tx.Create(&topics).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// GetByID 返回路线图及按order_index升序排列的主题
func (r *RoadmapRepository) GetByID(id string) (*model.Roadmap, []model.Topic, error) {
	var roadmap model.Roadmap
	if err := r.DB.First(&roadmap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrRoadmapNotFound
		}
		return nil, nil, err
	}

	var topics []model.Topic
	if err := r.DB.Where("roadmap_id = ?", id).
		Order("order_index ASC").
		Find(&topics).Error; err != nil {
		return nil, nil, err
	}

	return &roadmap, topics, nil
}

// List 按创建时间倒序返回所有路线图（不带主题）
func (r *RoadmapRepository) List() ([]model.Roadmap, error) {
	var roadmaps []model.Roadmap
	err := r.DB.Order("created_at DESC").Find(&roadmaps).Error
	return roadmaps, err
}

// Delete 删除路线图、主题和进度记录
// 主题由外键级联删除；进度记录没有外键约束，在同一事务中手动清理
func (r *RoadmapRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Roadmap{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return util.ErrRoadmapNotFound
		}

		if err := tx.Where("roadmap_id = ?", id).Delete(&model.Topic{}).Error; err != nil {
			return err
		}

		return tx.Where("roadmap_id = ?", id).Delete(&model.TopicProgress{}).Error
	})
}

// TopicBelongsTo 校验主题属于指定路线图
func (r *RoadmapRepository) TopicBelongsTo(roadmapID, topicID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Topic{}).
		Where("id = ? AND roadmap_id = ?", topicID, roadmapID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
