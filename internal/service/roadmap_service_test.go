package service

import (
	"context"
	"strings"
	"testing"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	plain := `{"title": "x"}`

	cases := map[string]string{
		"bare":           plain,
		"fenced":         "```\n" + plain + "\n```",
		"fenced json":    "```json\n" + plain + "\n```",
		"leading spaces": "  ```json\n" + plain + "\n```  ",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, plain, stripCodeFence(input))
		})
	}

	// 幂等：对已剥离的内容再剥离一次结果不变
	stripped := stripCodeFence("```json\n" + plain + "\n```")
	assert.Equal(t, stripped, stripCodeFence(stripped))
}

func TestParseRoadmapRejectsMalformedOutput(t *testing.T) {
	cases := map[string]string{
		"truncated json": `{"title": "x", "topics": [{"title"`,
		"not json":       "Sure! Here is your roadmap:",
		"empty title":    `{"title": "", "topics": [{"title": "t", "estimated_hours": 2, "order": 1}]}`,
		"no topics":      `{"title": "x", "topics": []}`,
		"topic no title": `{"title": "x", "topics": [{"title": "", "estimated_hours": 2, "order": 1}]}`,
		"zero hours":     `{"title": "x", "topics": [{"title": "t", "estimated_hours": 0, "order": 1}]}`,
		"missing order":  `{"title": "x", "topics": [{"title": "t", "estimated_hours": 2}]}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseRoadmap(content)
			assert.ErrorIs(t, err, util.ErrMalformedAIOutput)
		})
	}
}

func TestParseRoadmapAcceptsFencedOutput(t *testing.T) {
	content := `{"title": "Go Basics", "topics": [{"title": "Syntax", "description": "d", "estimated_hours": 4, "learning_objectives": ["a"], "order": 1}]}`

	bare, err := parseRoadmap(content)
	require.NoError(t, err)

	fenced, err := parseRoadmap("```json\n" + content + "\n```")
	require.NoError(t, err)

	assert.Equal(t, bare, fenced)
}

func TestBuildRoadmapPromptEmbedsTotalHours(t *testing.T) {
	system, user := buildRoadmapPrompt(GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
		FocusAreas:  []string{"Database", "Modeling"},
	})

	assert.Contains(t, system, "ONLY valid JSON")
	assert.Contains(t, user, "Learn SQL")
	assert.Contains(t, user, "14 days at 2 hours per day (Total: 28 hours)")
	assert.Contains(t, user, "Database, Modeling")
	assert.Contains(t, user, "8-15 topics")
	assert.Contains(t, user, "3-5 learning objectives")
	assert.Contains(t, user, "beginner skill level")
}

func TestGenerateRoadmapPersistsPlan(t *testing.T) {
	p := newStubProvider(t, stubRoadmapJSON(t))
	svc, db := newRoadmapService(t, p)

	result, err := svc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
		FocusAreas:  []string{"Database"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RoadmapID)
	assert.Equal(t, "SQL in Two Weeks", result.Title)
	assert.Equal(t, 10, result.TopicsCount)
	assert.EqualValues(t, 1, p.hits.Load())

	// 再取回验证顺序与内容
	detail, err := svc.GetRoadmap(context.Background(), result.RoadmapID)
	require.NoError(t, err)
	assert.Equal(t, "SQL in Two Weeks", detail.Roadmap.Title)
	assert.True(t, detail.Roadmap.IsCustom)
	require.Len(t, detail.Topics, 10)
	for i, topic := range detail.Topics {
		assert.Equal(t, i+1, topic.OrderIndex)
		assert.Equal(t, "Easy", topic.PracticeQuestions[0].Difficulty)
	}

	var count int64
	db.Model(&model.Topic{}).Where("roadmap_id = ?", result.RoadmapID).Count(&count)
	assert.EqualValues(t, 10, count)
}

func TestGenerateRoadmapFenceWrappedOutput(t *testing.T) {
	p := newStubProvider(t, "```json\n"+stubRoadmapJSON(t)+"\n```")
	svc, _ := newRoadmapService(t, p)

	result, err := svc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, result.TopicsCount)
}

func TestGenerateRoadmapMalformedOutputWritesNothing(t *testing.T) {
	p := newStubProvider(t, `{"title": "x", "topics": [{"title"`)
	svc, db := newRoadmapService(t, p)

	_, err := svc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
	})
	assert.ErrorIs(t, err, util.ErrMalformedAIOutput)

	// 不允许留下半个路线图
	var count int64
	db.Model(&model.Roadmap{}).Count(&count)
	assert.Zero(t, count)
}

func TestGenerateRoadmapProviderError(t *testing.T) {
	p := newFailingProvider(t)
	svc, _ := newRoadmapService(t, p)

	_, err := svc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
	})
	assert.ErrorIs(t, err, util.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDeleteRoadmap(t *testing.T) {
	p := newStubProvider(t, stubRoadmapJSON(t))
	svc, _ := newRoadmapService(t, p)

	result, err := svc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
		Goal:        "Learn SQL",
		TotalDays:   14,
		HoursPerDay: 2,
		SkillLevel:  "beginner",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoadmap(context.Background(), result.RoadmapID))

	_, err = svc.GetRoadmap(context.Background(), result.RoadmapID)
	assert.ErrorIs(t, err, util.ErrRoadmapNotFound)

	assert.ErrorIs(t, svc.DeleteRoadmap(context.Background(), result.RoadmapID), util.ErrRoadmapNotFound)
}

func TestListRoadmaps(t *testing.T) {
	p := newStubProvider(t, stubRoadmapJSON(t))
	svc, _ := newRoadmapService(t, p)

	for i := 0; i < 3; i++ {
		_, err := svc.GenerateRoadmap(context.Background(), GenerateRoadmapRequest{
			Goal:        "Learn SQL",
			TotalDays:   14,
			HoursPerDay: 2,
			SkillLevel:  "beginner",
		})
		require.NoError(t, err)
	}

	roadmaps, err := svc.ListRoadmaps()
	require.NoError(t, err)
	assert.Len(t, roadmaps, 3)
	for _, r := range roadmaps {
		assert.False(t, strings.Contains(r.Title, "```"))
	}
}
