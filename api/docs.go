// Package api holds the OpenAPI documentation served at /docs.
//
// The template is generated from the handler annotations with
// swag init --parseDependency --output ./api
package api

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
        "/": {
            "get": {"tags": ["General"], "summary": "API root", "responses": {"200": {"description": "OK"}}},
            "options": {"tags": ["General"], "summary": "Allowed HTTP verbs", "responses": {"204": {"description": "No Content"}}}
        },
        "/healthz": {
            "get": {"tags": ["General"], "summary": "Get health", "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}}
        },
        "/version": {
            "get": {"tags": ["General"], "summary": "API version", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/materials": {
            "get": {"tags": ["Materials"], "summary": "Get materials", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Materials"], "summary": "Create materials", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/v1/materials/critical": {
            "get": {"tags": ["Materials"], "summary": "Get critical materials", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/materials/categories": {
            "get": {"tags": ["Materials"], "summary": "Get material categories", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/materials/{id}": {
            "get": {"tags": ["Materials"], "summary": "Get material", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "patch": {"tags": ["Materials"], "summary": "Update material", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "delete": {"tags": ["Materials"], "summary": "Delete material", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/families": {
            "get": {"tags": ["Families"], "summary": "Get families", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Families"], "summary": "Create families", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/families/{id}": {
            "get": {"tags": ["Families"], "summary": "Get family", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Families"], "summary": "Update family", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Families"], "summary": "Delete family", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/families/{id}/distributions": {
            "get": {"tags": ["Families"], "summary": "Get distributions of a family", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/donations": {
            "get": {"tags": ["Donations"], "summary": "Get donations", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Donations"], "summary": "Record donations", "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}}
        },
        "/v1/donations/{id}": {
            "get": {"tags": ["Donations"], "summary": "Get donation", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Donations"], "summary": "Edit donation", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Donations"], "summary": "Delete donation", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/distribution/suggest": {
            "post": {"tags": ["Distribution"], "summary": "Suggest a distribution", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/distribution/execute": {
            "post": {"tags": ["Distribution"], "summary": "Execute a distribution", "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}}}
        },
        "/v1/notifications": {
            "get": {"tags": ["Notifications"], "summary": "Get notifications", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/notifications/stream": {
            "get": {"tags": ["Notifications"], "summary": "Stream notifications", "produces": ["text/event-stream"], "responses": {"200": {"description": "OK"}}}
        },
        "/v1/notifications/{id}/read": {
            "post": {"tags": ["Notifications"], "summary": "Mark notification as read", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/users": {
            "get": {"tags": ["Users"], "summary": "Get users", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["Users"], "summary": "Create users", "responses": {"201": {"description": "Created"}}}
        },
        "/v1/users/{id}": {
            "get": {"tags": ["Users"], "summary": "Get user", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Users"], "summary": "Update user", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["Users"], "summary": "Delete user", "responses": {"204": {"description": "No Content"}}}
        },
        "/v1/settings": {
            "get": {"tags": ["Settings"], "summary": "Get settings", "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["Settings"], "summary": "Update settings", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/dashboard/summary": {
            "get": {"tags": ["Dashboard"], "summary": "Get dashboard summary", "responses": {"200": {"description": "OK"}}}
        },
        "/v1/reports/summary": {
            "get": {"tags": ["Reports"], "summary": "Get report summary", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
