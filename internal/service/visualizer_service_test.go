package service

import (
	"context"
	"testing"

	"ai_tutor_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubVisualizationJSON = `{
  "steps": [
    {"step": 1, "line": 1, "description": "x is assigned 1", "variables": {"x": "1"}, "highlight": "x = 1"},
    {"step": 2, "line": 2, "description": "x is printed", "variables": {"x": "1"}, "highlight": "print(x)"}
  ],
  "summary": "Assigns a variable and prints it."
}`

func TestVisualizeReturnsSteps(t *testing.T) {
	p := newStubProvider(t, stubVisualizationJSON)
	svc := NewVisualizerService(newStubAI(p))

	vis, err := svc.Visualize(context.Background(), VisualizeRequest{
		Code:     "x = 1\nprint(x)",
		Language: "python",
	})
	require.NoError(t, err)

	require.Len(t, vis.Steps, 2)
	assert.Equal(t, 1, vis.Steps[0].Step)
	assert.Equal(t, "1", vis.Steps[0].Variables["x"])
	assert.NotEmpty(t, vis.Summary)
}

func TestVisualizeAcceptsFencedOutput(t *testing.T) {
	p := newStubProvider(t, "```json\n"+stubVisualizationJSON+"\n```")
	svc := NewVisualizerService(newStubAI(p))

	vis, err := svc.Visualize(context.Background(), VisualizeRequest{Code: "x = 1", Language: "python"})
	require.NoError(t, err)
	assert.Len(t, vis.Steps, 2)
}

func TestParseVisualizationRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"not json":   "here you go",
		"no steps":   `{"steps": [], "summary": "s"}`,
		"no summary": `{"steps": [{"step": 1, "line": 1, "description": "d"}], "summary": ""}`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseVisualization(content)
			assert.ErrorIs(t, err, util.ErrMalformedAIOutput)
		})
	}
}

// 模型常无视提示把变量值输出为数字或布尔值，这类输出不应被拒绝
func TestParseVisualizationAcceptsNonStringVariables(t *testing.T) {
	vis, err := parseVisualization(`{
	  "steps": [
	    {"step": 1, "line": 1, "description": "x is assigned 5", "variables": {"x": 5, "done": false}, "highlight": "x = 5"}
	  ],
	  "summary": "Assigns a number."
	}`)
	require.NoError(t, err)
	assert.Equal(t, float64(5), vis.Steps[0].Variables["x"])
	assert.Equal(t, false, vis.Steps[0].Variables["done"])
}

func TestParseVisualizationDefaultsVariables(t *testing.T) {
	vis, err := parseVisualization(`{"steps": [{"step": 1, "line": 1, "description": "d", "highlight": "h"}], "summary": "s"}`)
	require.NoError(t, err)
	assert.NotNil(t, vis.Steps[0].Variables)
}

func TestVisualizeProviderError(t *testing.T) {
	p := newFailingProvider(t)
	svc := NewVisualizerService(newStubAI(p))

	_, err := svc.Visualize(context.Background(), VisualizeRequest{Code: "x = 1", Language: "python"})
	assert.ErrorIs(t, err, util.ErrGenerationFailed)
}
