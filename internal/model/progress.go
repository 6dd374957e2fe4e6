package model

// TopicProgress 某个路线图主题的完成状态，(roadmap_id, topic_id) 唯一
// swagger:model TopicProgress
type TopicProgress struct {
	UUIDBase
	RoadmapID string `gorm:"type:varchar(36);uniqueIndex:idx_roadmap_topic,priority:1;not null" json:"roadmapId"`
	TopicID   string `gorm:"type:varchar(36);uniqueIndex:idx_roadmap_topic,priority:2;not null" json:"topicId"`
	Completed bool   `gorm:"default:false" json:"completed"`
}

func (TopicProgress) TableName() string {
	return "topic_progress"
}
