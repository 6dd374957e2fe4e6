package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/logger"
	"ai_tutor_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	roadmapCacheKeyPrefix = "roadmap:"
	roadmapCacheTTL       = 10 * time.Minute
)

type RoadmapService struct {
	RoadmapRepo *repository.RoadmapRepository
	AI          *AIService
	Redis       *redis.Client
}

func NewRoadmapService(roadmapRepo *repository.RoadmapRepository, ai *AIService, rdb *redis.Client) *RoadmapService {
	return &RoadmapService{
		RoadmapRepo: roadmapRepo,
		AI:          ai,
		Redis:       rdb,
	}
}

type GenerateRoadmapRequest struct {
	Goal        string   `json:"goal" binding:"required"`
	TotalDays   int      `json:"totalDays" binding:"required"`
	HoursPerDay float64  `json:"hoursPerDay" binding:"required"`
	SkillLevel  string   `json:"skillLevel" binding:"required,oneof=beginner intermediate advanced"`
	FocusAreas  []string `json:"focusAreas"`
}

type GenerateRoadmapResult struct {
	RoadmapID   string `json:"roadmapId"`
	Title       string `json:"title"`
	TopicsCount int    `json:"topicsCount"`
}

// RoadmapDetail 路线图详情响应（也是Redis缓存的存储形态）
type RoadmapDetail struct {
	Roadmap *model.Roadmap `json:"roadmap"`
	Topics  []model.Topic  `json:"topics"`
}

// generatedTopic AI输出中的单个主题，字段名由提示词固定
type generatedTopic struct {
	Title              string                   `json:"title"`
	Description        string                   `json:"description"`
	EstimatedHours     float64                  `json:"estimated_hours"`
	LearningObjectives []string                 `json:"learning_objectives"`
	VideoSuggestions   []string                 `json:"video_suggestions"`
	PracticeQuestions  []model.PracticeQuestion `json:"practice_questions"`
	Order              int                      `json:"order"`
}

type generatedRoadmap struct {
	Title  string           `json:"title"`
	Topics []generatedTopic `json:"topics"`
}

// buildRoadmapPrompt 构造路线图生成的system/user提示词对
// 输出schema以文本形式固定在提示词里，模型只被要求返回纯JSON
func buildRoadmapPrompt(req GenerateRoadmapRequest) (string, string) {
	systemPrompt := "You are an expert learning path designer specializing in technology education. " +
		"Create structured, achievable learning roadmaps with realistic time estimates. " +
		"You must return ONLY valid JSON without any markdown formatting, code blocks, or additional text."

	totalHours := float64(req.TotalDays) * req.HoursPerDay

	userPrompt := fmt.Sprintf(`Create a comprehensive learning roadmap for the following:

Goal: %s
Available time: %d days at %g hours per day (Total: %g hours)
Current skill level: %s
Focus areas: %s

Return ONLY a JSON object with this exact structure (no markdown, no code blocks):
{
  "title": "Brief roadmap title (max 60 chars)",
  "topics": [
    {
      "title": "Topic name",
      "description": "Detailed description of what to learn",
      "estimated_hours": 8,
      "learning_objectives": ["objective 1", "objective 2", "objective 3"],
      "video_suggestions": ["youtube search query 1", "youtube search query 2"],
      "practice_questions": [
        {"title": "Problem name", "difficulty": "Easy", "platform": "LeetCode", "url": "https://..."}
      ],
      "order": 1
    }
  ]
}

IMPORTANT:
- Create 8-15 topics that fit within the available time
- Ensure topics are ordered logically with dependencies
- Each topic should have 3-5 learning objectives
- Difficulty must be one of Easy, Medium, Hard
- Total estimated hours should not exceed %g hours
- Adapt complexity to the %s skill level
- Return ONLY the JSON object, no other text`,
		req.Goal, req.TotalDays, req.HoursPerDay, totalHours,
		req.SkillLevel, strings.Join(req.FocusAreas, ", "),
		totalHours, req.SkillLevel)

	return systemPrompt, userPrompt
}

// stripCodeFence 去掉模型偶尔带上的markdown代码围栏（含可选语言标签）
// 对未围栏的内容是恒等变换
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	// 去掉首行 ``` 或 ```json
	if idx := strings.Index(content, "\n"); idx >= 0 {
		content = content[idx+1:]
	} else {
		content = strings.TrimPrefix(content, "```")
	}

	content = strings.TrimSpace(content)
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// parseRoadmap 解析并逐字段校验模型输出
// 模型是不可信输入源，JSON解析成功不代表形状可用
func parseRoadmap(content string) (*generatedRoadmap, error) {
	var plan generatedRoadmap
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedAIOutput, err)
	}

	if strings.TrimSpace(plan.Title) == "" {
		return nil, fmt.Errorf("%w: missing title", util.ErrMalformedAIOutput)
	}
	if len(plan.Topics) == 0 {
		return nil, fmt.Errorf("%w: no topics", util.ErrMalformedAIOutput)
	}

	for i, t := range plan.Topics {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("%w: topic %d missing title", util.ErrMalformedAIOutput, i+1)
		}
		if t.EstimatedHours <= 0 {
			return nil, fmt.Errorf("%w: topic %q has non-positive estimated_hours", util.ErrMalformedAIOutput, t.Title)
		}
		if t.Order <= 0 {
			return nil, fmt.Errorf("%w: topic %q missing order", util.ErrMalformedAIOutput, t.Title)
		}
	}

	return &plan, nil
}

// GenerateRoadmap 生成并持久化一张路线图
// 流程：构造提示词 → 调用AI → 解析校验 → 单事务写入路线图和主题
func (s *RoadmapService) GenerateRoadmap(ctx context.Context, req GenerateRoadmapRequest) (*GenerateRoadmapResult, error) {
	systemPrompt, userPrompt := buildRoadmapPrompt(req)

	start := time.Now()
	raw, err := s.AI.Generate(ctx, systemPrompt, userPrompt)
	monitoring.ObserveGeneration("roadmap", start, err)
	if err != nil {
		return nil, err
	}

	plan, err := parseRoadmap(raw)
	if err != nil {
		return nil, err
	}

	if req.FocusAreas == nil {
		req.FocusAreas = []string{}
	}

	roadmap := &model.Roadmap{
		Title:       plan.Title,
		Goal:        req.Goal,
		TotalDays:   req.TotalDays,
		HoursPerDay: req.HoursPerDay,
		SkillLevel:  model.SkillLevel(req.SkillLevel),
		FocusAreas:  req.FocusAreas,
		IsCustom:    true,
	}

	topics := make([]model.Topic, 0, len(plan.Topics))
	for _, t := range plan.Topics {
		topic := model.Topic{
			Title:              t.Title,
			Description:        t.Description,
			OrderIndex:         t.Order,
			EstimatedHours:     t.EstimatedHours,
			LearningObjectives: t.LearningObjectives,
			VideoSuggestions:   t.VideoSuggestions,
			PracticeQuestions:  t.PracticeQuestions,
		}
		if topic.LearningObjectives == nil {
			topic.LearningObjectives = []string{}
		}
		if topic.VideoSuggestions == nil {
			topic.VideoSuggestions = []string{}
		}
		if topic.PracticeQuestions == nil {
			topic.PracticeQuestions = []model.PracticeQuestion{}
		}
		topics = append(topics, topic)
	}

	if err := s.RoadmapRepo.CreateWithTopics(roadmap, topics); err != nil {
		return nil, err
	}

	logger.Log.Info("Roadmap generated",
		zap.String("roadmapId", roadmap.ID),
		zap.String("title", roadmap.Title),
		zap.Int("topics", len(topics)))

	return &GenerateRoadmapResult{
		RoadmapID:   roadmap.ID,
		Title:       roadmap.Title,
		TopicsCount: len(topics),
	}, nil
}

// GetRoadmap 按ID获取路线图详情，命中Redis缓存时跳过数据库
func (s *RoadmapService) GetRoadmap(ctx context.Context, id string) (*RoadmapDetail, error) {
	cacheKey := roadmapCacheKeyPrefix + id

	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var detail RoadmapDetail
			if err := json.Unmarshal([]byte(val), &detail); err == nil {
				return &detail, nil
			}
			// 缓存内容损坏时直接回源
		}
	}

	roadmap, topics, err := s.RoadmapRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	detail := &RoadmapDetail{Roadmap: roadmap, Topics: topics}

	if s.Redis != nil {
		// 路线图生成后不可变，短TTL只为限制删除后的陈旧窗口
		if val, err := json.Marshal(detail); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, val, roadmapCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache roadmap", zap.String("roadmapId", id), zap.Error(err))
			}
		}
	}

	return detail, nil
}

// ListRoadmaps 按创建时间倒序返回全部路线图
func (s *RoadmapService) ListRoadmaps() ([]model.Roadmap, error) {
	return s.RoadmapRepo.List()
}

// DeleteRoadmap 删除路线图及其从属数据，并使缓存失效
func (s *RoadmapService) DeleteRoadmap(ctx context.Context, id string) error {
	if err := s.RoadmapRepo.Delete(id); err != nil {
		return err
	}

	if s.Redis != nil {
		if err := s.Redis.Del(ctx, roadmapCacheKeyPrefix+id).Err(); err != nil {
			logger.Log.Warn("Failed to invalidate roadmap cache", zap.String("roadmapId", id), zap.Error(err))
		}
	}

	return nil
}
