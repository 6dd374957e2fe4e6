package repository

import (
	"testing"
	"time"

	"ai_tutor_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertIsIdempotentByValue(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	require.NoError(t, repo.Upsert("r1", "t1", true))

	var first model.TopicProgress
	require.NoError(t, db.First(&first, "roadmap_id = ? AND topic_id = ?", "r1", "t1").Error)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Upsert("r1", "t1", true))

	var records []model.TopicProgress
	require.NoError(t, db.Find(&records, "roadmap_id = ?", "r1").Error)
	require.Len(t, records, 1)

	assert.True(t, records[0].Completed)
	// created_at 只在首次插入时写入
	assert.Equal(t, first.CreatedAt.UnixMilli(), records[0].CreatedAt.UnixMilli())
	assert.Equal(t, first.ID, records[0].ID)
}

func TestUpsertTogglesValue(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	require.NoError(t, repo.Upsert("r1", "t1", true))
	require.NoError(t, repo.Upsert("r1", "t1", false))

	var record model.TopicProgress
	require.NoError(t, db.First(&record, "roadmap_id = ? AND topic_id = ?", "r1", "t1").Error)
	assert.False(t, record.Completed)
}

func TestListByRoadmap(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	require.NoError(t, repo.Upsert("r1", "t1", true))
	require.NoError(t, repo.Upsert("r1", "t2", false))
	require.NoError(t, repo.Upsert("r2", "t1", true))

	records, err := repo.ListByRoadmap("r1")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.ListByRoadmap("r3")
	require.NoError(t, err)
	assert.Empty(t, records)
}
