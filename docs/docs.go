// Package docs 手工维护的swagger文档，保持swag的模板格式，接口变更时同步更新
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/roadmaps": {
            "get": {
                "produces": ["application/json"],
                "tags": ["路线图"],
                "summary": "路线图列表",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/roadmaps/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["路线图"],
                "summary": "生成学习路线图",
                "parameters": [
                    {
                        "description": "生成参数",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.GenerateRoadmapRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/roadmaps/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["路线图"],
                "summary": "获取路线图详情",
                "parameters": [
                    {"type": "string", "description": "路线图ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["路线图"],
                "summary": "删除路线图",
                "parameters": [
                    {"type": "string", "description": "路线图ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/progress": {
            "get": {
                "produces": ["application/json"],
                "tags": ["进度"],
                "summary": "获取路线图进度",
                "parameters": [
                    {"type": "string", "description": "路线图ID", "name": "roadmapId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["进度"],
                "summary": "更新主题完成状态",
                "parameters": [
                    {
                        "description": "进度参数",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controller.SetProgressRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/visualize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["可视化"],
                "summary": "代码执行可视化",
                "parameters": [
                    {
                        "description": "代码和语言",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.VisualizeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "controller.SetProgressRequest": {
            "type": "object",
            "required": ["roadmapId", "topicId"],
            "properties": {
                "completed": {"type": "boolean"},
                "roadmapId": {"type": "string"},
                "topicId": {"type": "string"}
            }
        },
        "service.GenerateRoadmapRequest": {
            "type": "object",
            "required": ["goal", "hoursPerDay", "skillLevel", "totalDays"],
            "properties": {
                "focusAreas": {"type": "array", "items": {"type": "string"}},
                "goal": {"type": "string"},
                "hoursPerDay": {"type": "number"},
                "skillLevel": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
                "totalDays": {"type": "integer"}
            }
        },
        "service.VisualizeRequest": {
            "type": "object",
            "required": ["code", "language"],
            "properties": {
                "code": {"type": "string"},
                "language": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "AI Tutor Roadmap API",
	Description:      "AI生成学习路线图与代码可视化的后端服务器。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
