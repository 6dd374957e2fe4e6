package model

import (
	"gorm.io/datatypes"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Roadmap AI生成的学习路线图（生成后不可修改）
// swagger:model Roadmap
type Roadmap struct {
	UUIDBase
	Title       string                      `gorm:"size:255;not null" json:"title"`
	Goal        string                      `gorm:"type:text;not null" json:"goal"`
	TotalDays   int                         `gorm:"not null" json:"totalDays"`
	HoursPerDay float64                     `gorm:"not null" json:"hoursPerDay"`
	SkillLevel  SkillLevel                  `gorm:"size:20;not null" json:"skillLevel"`
	FocusAreas  datatypes.JSONSlice[string] `gorm:"type:json" json:"focusAreas"`
	IsCustom    bool                        `gorm:"default:true" json:"isCustom"`

	Topics []Topic `gorm:"foreignKey:RoadmapID;constraint:OnDelete:CASCADE" json:"topics,omitempty"`
}

func (Roadmap) TableName() string {
	return "user_roadmaps"
}

// PracticeQuestion 练习题推荐（AI生成，随主题一起存储）
type PracticeQuestion struct {
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"` // Easy / Medium / Hard
	Platform   string `json:"platform"`
	URL        string `json:"url"`
}

// Topic 路线图中的一个有序学习主题
// swagger:model Topic
type Topic struct {
	UUIDBase
	RoadmapID          string                                `gorm:"type:varchar(36);index;uniqueIndex:idx_roadmap_order,priority:1;not null" json:"roadmapId"`
	Title              string                                `gorm:"size:255;not null" json:"title"`
	Description        string                                `gorm:"type:text" json:"description"`
	OrderIndex         int                                   `gorm:"uniqueIndex:idx_roadmap_order,priority:2;not null" json:"orderIndex"`
	EstimatedHours     float64                               `gorm:"not null" json:"estimatedHours"`
	LearningObjectives datatypes.JSONSlice[string]           `gorm:"type:json" json:"learningObjectives"`
	VideoSuggestions   datatypes.JSONSlice[string]           `gorm:"type:json" json:"videoSuggestions"`
	PracticeQuestions  datatypes.JSONSlice[PracticeQuestion] `gorm:"type:json" json:"practiceQuestions"`
}

func (Topic) TableName() string {
	return "roadmap_topics"
}
