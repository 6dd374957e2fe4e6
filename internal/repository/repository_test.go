package repository

import (
	"fmt"
	"testing"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=1"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		db.Exec("DELETE FROM topic_progress")
		db.Exec("DELETE FROM roadmap_topics")
		db.Exec("DELETE FROM user_roadmaps")
	})

	return db
}

func sampleRoadmap() *model.Roadmap {
	return &model.Roadmap{
		Title:       "Learn SQL in 14 Days",
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  model.SkillBeginner,
		FocusAreas:  []string{"Database"},
		IsCustom:    true,
	}
}

func sampleTopics(n int) []model.Topic {
	topics := make([]model.Topic, 0, n)
	for i := 1; i <= n; i++ {
		topics = append(topics, model.Topic{
			Title:              fmt.Sprintf("Topic %d", i),
			Description:        fmt.Sprintf("Description %d", i),
			OrderIndex:         i,
			EstimatedHours:     2,
			LearningObjectives: []string{"obj 1", "obj 2", "obj 3"},
			VideoSuggestions:   []string{},
			PracticeQuestions:  []model.PracticeQuestion{},
		})
	}
	return topics
}
