package model

// VisualizationStep 代码执行过程中的一个步骤
// Variables的值类型不做限制，模型虽被提示输出字符串但经常返回数字，由前端负责展示
type VisualizationStep struct {
	Step        int            `json:"step"`
	Line        int            `json:"line"`
	Description string         `json:"description"`
	Variables   map[string]any `json:"variables"`
	Highlight   string         `json:"highlight"`
}

// Visualization AI生成的逐步执行可视化结果（不落库，直接返回给前端）
// swagger:model Visualization
type Visualization struct {
	Steps   []VisualizationStep `json:"steps"`
	Summary string              `json:"summary"`
}
