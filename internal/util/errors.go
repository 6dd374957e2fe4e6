package util

import "errors"

var (
	ErrRoadmapNotFound   = errors.New("roadmap not found")
	ErrTopicNotFound     = errors.New("topic not found in roadmap")
	ErrGenerationFailed  = errors.New("ai generation failed")
	ErrMalformedAIOutput = errors.New("malformed ai output")
)
