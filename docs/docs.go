// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

// Package docs registers the OpenAPI document served at /swagger/doc.json.
// The layout follows what swag init emits so the file can be regenerated
// from the handler annotations in internal/api.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Liveness check. Never touches the scoring path.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service health",
                "responses": {
                    "200": {
                        "description": "Service is healthy",
                        "schema": {"$ref": "#/definitions/api.HealthResponse"}
                    }
                }
            }
        },
        "/match": {
            "post": {
                "description": "Scores every mentor in the pool against the learner and returns the top matches ranked by score. Malformed mentors are excluded individually.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Matching"],
                "summary": "Rank mentors for a learner",
                "parameters": [
                    {
                        "description": "Learner profile, candidate pool and optional limit",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/matching.MatchRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Ranked matches",
                        "schema": {"$ref": "#/definitions/matching.MatchResponse"}
                    },
                    "400": {
                        "description": "Malformed body or invalid learner",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    },
                    "413": {
                        "description": "Request body too large",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    },
                    "499": {
                        "description": "Client closed the request before matching finished",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    },
                    "503": {
                        "description": "Matching timed out",
                        "schema": {"$ref": "#/definitions/api.ErrorResponse"}
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Cumulative counters since process start.",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Engine statistics",
                "responses": {
                    "200": {
                        "description": "Statistics snapshot",
                        "schema": {"$ref": "#/definitions/matching.StatsSnapshot"}
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Prometheus exposition format.",
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "Metrics"}
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"},
                "details": {"type": "object"},
                "request_id": {"type": "string"}
            }
        },
        "api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/api.APIError"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "version": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "matching.LearnerProfile": {
            "type": "object",
            "required": ["id", "experience_level"],
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "learning_goals": {"type": "array", "items": {"type": "string"}},
                "location": {"type": "string"},
                "availability": {"type": "integer", "minimum": 0},
                "experience_level": {"type": "string", "enum": ["beginner", "intermediate", "advanced"]},
                "preferred_languages": {"type": "array", "items": {"type": "string"}},
                "preferred_teaching_style": {"type": "string"}
            }
        },
        "matching.MentorProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "expertise": {"type": "array", "items": {"type": "string"}},
                "location": {"type": "string"},
                "availability": {"type": "integer"},
                "experience_years": {"type": "integer"},
                "rating": {"type": "number"},
                "hourly_rate": {"type": "number"},
                "teaching_style": {"type": "string"}
            }
        },
        "matching.MatchRequest": {
            "type": "object",
            "required": ["learner"],
            "properties": {
                "learner": {"$ref": "#/definitions/matching.LearnerProfile"},
                "mentors": {"type": "array", "items": {"$ref": "#/definitions/matching.MentorProfile"}},
                "limit": {"type": "integer", "minimum": 1}
            }
        },
        "matching.CompatibilityFactors": {
            "type": "object",
            "properties": {
                "skill_overlap": {"type": "number"},
                "location_match": {"type": "boolean"},
                "availability_match": {"type": "number"},
                "experience_compatibility": {"type": "number"},
                "teaching_style_match": {"type": "number"}
            }
        },
        "matching.Match": {
            "type": "object",
            "properties": {
                "mentor_id": {"type": "string", "format": "uuid"},
                "score": {"type": "number", "minimum": 0, "maximum": 100},
                "reasoning": {"type": "string"},
                "compatibility_factors": {"$ref": "#/definitions/matching.CompatibilityFactors"}
            }
        },
        "matching.MatchResponse": {
            "type": "object",
            "properties": {
                "matches": {"type": "array", "items": {"$ref": "#/definitions/matching.Match"}},
                "processing_time_ms": {"type": "number"},
                "algorithm_version": {"type": "string"},
                "candidates_excluded": {"type": "integer"}
            }
        },
        "matching.StatsSnapshot": {
            "type": "object",
            "properties": {
                "total_requests": {"type": "integer"},
                "average_processing_time_ms": {"type": "number"},
                "cache_hit_rate": {"type": "number"},
                "uptime_seconds": {"type": "integer"},
                "validation_errors": {"type": "integer"},
                "timeouts": {"type": "integer"},
                "candidates_scored": {"type": "integer"},
                "candidates_excluded": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SkillBridge Matching API",
	Description:      "Ranks mentors for a learner by weighted compatibility.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
