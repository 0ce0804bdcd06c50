// Package docs registers the OpenAPI spec served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and JWT token."
        }
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a new user",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Authenticate with email and password",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/goals": {
            "post": {
                "tags": ["Goals"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a main goal",
                "responses": {"201": {"description": "Created"}}
            },
            "get": {
                "tags": ["Goals"],
                "security": [{"BearerAuth": []}],
                "summary": "List the caller's main goals",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/goals/{id}/steps": {
            "post": {
                "tags": ["Goals"],
                "security": [{"BearerAuth": []}],
                "summary": "Add a step under a main goal",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            },
            "get": {
                "tags": ["Goals"],
                "security": [{"BearerAuth": []}],
                "summary": "List a goal's steps",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/goals/{id}/share": {
            "post": {
                "tags": ["Sharing"],
                "security": [{"BearerAuth": []}],
                "summary": "Share a main goal with an accepted contact",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "409": {"description": "Conflict"}}
            }
        },
        "/goals/{id}/comments": {
            "post": {
                "tags": ["Comments"],
                "security": [{"BearerAuth": []}],
                "summary": "Comment on a goal the caller can read",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/contacts/invite": {
            "post": {
                "tags": ["Contacts"],
                "security": [{"BearerAuth": []}],
                "summary": "Send a contact request",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "FocusTrack API",
	Description:      "API for tracking hierarchical goals, contacts and goal sharing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
