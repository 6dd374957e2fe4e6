package service

import (
	"context"
	"testing"

	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressFixture(t *testing.T) (*ProgressService, *RoadmapService) {
	p := newStubProvider(t, stubRoadmapJSON(t))
	db := newServiceTestDB(t)
	roadmapRepo := repository.NewRoadmapRepository(db)
	progressRepo := repository.NewProgressRepository(db)

	roadmapSvc := NewRoadmapService(roadmapRepo, newStubAI(p), nil)
	return NewProgressService(progressRepo, roadmapRepo), roadmapSvc
}

func TestSetProgressRejectsUnknownPair(t *testing.T) {
	progressSvc, _ := newProgressFixture(t)

	_, err := progressSvc.SetProgress("no-such-roadmap", "no-such-topic", true)
	assert.ErrorIs(t, err, util.ErrTopicNotFound)

	records, err := progressSvc.GetProgress("no-such-roadmap")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSetAndGetProgress(t *testing.T) {
	progressSvc, roadmapSvc := newProgressFixture(t)

	result, err := roadmapSvc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
	})
	require.NoError(t, err)

	detail, err := roadmapSvc.GetRoadmap(context.Background(), result.RoadmapID)
	require.NoError(t, err)

	topicID := detail.Topics[0].ID

	completed, err := progressSvc.SetProgress(result.RoadmapID, topicID, true)
	require.NoError(t, err)
	assert.True(t, completed)

	// 取消完成也总是允许的
	completed, err = progressSvc.SetProgress(result.RoadmapID, topicID, false)
	require.NoError(t, err)
	assert.False(t, completed)

	records, err := progressSvc.GetProgress(result.RoadmapID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].Completed)
	assert.Equal(t, topicID, records[0].TopicID)
}
