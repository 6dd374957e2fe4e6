package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/internal/util"
	"ai_tutor_backend/pkg/monitoring"
)

// VisualizerService 调用AI生成代码的逐步执行可视化
type VisualizerService struct {
	AI *AIService
}

func NewVisualizerService(ai *AIService) *VisualizerService {
	return &VisualizerService{AI: ai}
}

type VisualizeRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language" binding:"required"`
}

func buildVisualizePrompt(req VisualizeRequest) (string, string) {
	systemPrompt := "You are an expert programming tutor who explains code execution step by step. " +
		"You must return ONLY valid JSON without any markdown formatting, code blocks, or additional text."

	userPrompt := fmt.Sprintf(`Trace the execution of the following %s code step by step:

%s

Return ONLY a JSON object with this exact structure (no markdown, no code blocks):
{
  "steps": [
    {
      "step": 1,
      "line": 1,
      "description": "What happens at this step",
      "variables": {"name": "value"},
      "highlight": "the code fragment being executed"
    }
  ],
  "summary": "One paragraph summary of what the program does"
}

IMPORTANT:
- Walk through the code in actual execution order, not source order
- Show variable values as strings after each step
- Keep descriptions beginner-friendly
- Return ONLY the JSON object, no other text`,
		req.Language, req.Code)

	return systemPrompt, userPrompt
}

func parseVisualization(content string) (*model.Visualization, error) {
	var vis model.Visualization
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &vis); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedAIOutput, err)
	}

	if len(vis.Steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", util.ErrMalformedAIOutput)
	}
	if strings.TrimSpace(vis.Summary) == "" {
		return nil, fmt.Errorf("%w: missing summary", util.ErrMalformedAIOutput)
	}

	for i := range vis.Steps {
		if vis.Steps[i].Variables == nil {
			vis.Steps[i].Variables = map[string]any{}
		}
	}

	return &vis, nil
}

// Visualize 生成一段代码的执行可视化
func (s *VisualizerService) Visualize(ctx context.Context, req VisualizeRequest) (*model.Visualization, error) {
	systemPrompt, userPrompt := buildVisualizePrompt(req)

	start := time.Now()
	raw, err := s.AI.Generate(ctx, systemPrompt, userPrompt)
	monitoring.ObserveGeneration("visualization", start, err)
	if err != nil {
		return nil, err
	}

	return parseVisualization(raw)
}
