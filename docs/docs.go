// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/journal/main.go -o docs
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/analytics": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Analytics snapshot", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}}}},
        "/api/analytics/performance": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Performance breakdowns", "responses": {"200": {"description": "OK"}}}},
        "/api/analytics/risk-metrics": {"get": {"security": [{"BearerAuth": []}], "tags": ["analytics"], "summary": "Risk metrics", "responses": {"200": {"description": "OK"}}}},
        "/api/trades": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "List trades", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Create trade", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/trades/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Get trade", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Update trade", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Delete trade", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/trades/bulk-delete": {"post": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Delete several trades", "responses": {"200": {"description": "OK"}}}},
        "/api/trades/bulk-tag": {"post": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Tag several trades", "responses": {"200": {"description": "OK"}}}},
        "/api/tags": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["tags"], "summary": "List tags", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["tags"], "summary": "Create tag", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/tags/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["tags"], "summary": "Delete tag", "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/api/screenshots/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["screenshots"], "summary": "Delete screenshot", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Trade Journal API",
	Description:      "Trade journal CRUD and performance analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
