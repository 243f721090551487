// Package docs registers the Swagger description of the board API.
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
        "/api/board": {
            "get": {
                "tags": ["Board"],
                "summary": "Fetch the whole board",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Board"}}}
            }
        },
        "/api/board/columns": {
            "get": {
                "tags": ["Board"],
                "summary": "Columns with resolved issues, filtered by q",
                "parameters": [{"type": "string", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/stats": {
            "get": {
                "tags": ["Board"],
                "summary": "Issue totals and per-assignee counts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/issues": {
            "post": {
                "tags": ["Issues"],
                "summary": "Create an issue at the head of the backlog",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "issue", "in": "body", "required": false, "schema": {"$ref": "#/definitions/model.Issue"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/issues/{id}": {
            "get": {
                "tags": ["Issues"],
                "summary": "Fetch one issue",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Issues"],
                "summary": "Merge fields into an issue",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Issue"}}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Issues"],
                "summary": "Delete an issue",
                "security": [{"BearerAuth": []}],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/move": {
            "post": {
                "tags": ["Issues"],
                "summary": "Move an issue within or between columns",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "move", "in": "body", "required": true, "schema": {"$ref": "#/definitions/move.Intent"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid columns"},
                    "404": {"description": "Issue not found"},
                    "409": {"description": "Stale source index"}
                }
            }
        }
    },
    "definitions": {
        "model.Issue": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "assignee": {"type": "string"},
                "type": {"type": "string", "enum": ["task", "story", "bug"]},
                "priority": {"type": "string", "enum": ["low", "medium", "high"]},
                "description": {"type": "string"}
            }
        },
        "model.Column": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "issueIds": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.Board": {
            "type": "object",
            "properties": {
                "columnOrder": {"type": "array", "items": {"type": "string"}},
                "columns": {"type": "object", "additionalProperties": {"$ref": "#/definitions/model.Column"}},
                "issues": {"type": "object", "additionalProperties": {"$ref": "#/definitions/model.Issue"}}
            }
        },
        "move.Intent": {
            "type": "object",
            "properties": {
                "issueId": {"type": "string"},
                "sourceCol": {"type": "string"},
                "destCol": {"type": "string"},
                "sourceIndex": {"type": "integer"},
                "destIndex": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "NextIn Board API",
	Description:      "Kanban issue board with optimistic move reconciliation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
