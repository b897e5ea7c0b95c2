// Package docs holds the OpenAPI description served under /swagger/.
// Regenerate with: swag init -g cmd/eventreg/main.go -o docs
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
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "description": "Returns every event ordered by id.",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventListSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "description": "Creates an event. The id is server-generated; timestamps are stored as given.",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "data contains the new event id", "schema": {"$ref": "#/definitions/controllers.CreateEventSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/event/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Delete an event",
                "description": "Deletes the event. Attendances that reference it are kept.",
                "parameters": [
                    {"type": "string", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/users/{email}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List the events a user is registered for",
                "description": "Unknown users get an empty list.",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventListSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/users/{email}/count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Count a user's registrations",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AttendanceCountSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/register/{email}/{eventID}": {
            "post": {
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "Register a user for an event",
                "description": "Creates the user if needed and registers them. Idempotent: returns 201 when a new registration is created, 200 when already registered. The operator notice and the calendar invite are sent on every call.",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true},
                    {"type": "string", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Already registered", "schema": {"$ref": "#/definitions/controllers.RegisterSuccessResponse"}},
                    "201": {"description": "New registration created", "schema": {"$ref": "#/definitions/controllers.RegisterSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: notification_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["registrations"],
                "summary": "Unregister a user from an event",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "email", "in": "path", "required": true},
                    {"type": "string", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "502": {"description": "error.code: notification_failed", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/admin/{token}/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List the attendees of an event",
                "description": "Requires the admin token as the first path segment after /admin.",
                "parameters": [
                    {"type": "string", "description": "Admin token", "name": "token", "in": "path", "required": true},
                    {"type": "string", "description": "Event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AttendeeListSuccessResponse"}},
                    "401": {"description": "error.code: unauthorized", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "description": "Reports liveness and database reachability.",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "503": {"description": "error.code: service_unavailable", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AttendanceCountResponse": {
            "type": "object",
            "properties": {"count": {"type": "integer"}, "email": {"type": "string"}}
        },
        "controllers.AttendanceCountSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.AttendanceCountResponse"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.AttendeeListSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/controllers.UserResponse"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.CreateEventRequest": {
            "type": "object",
            "required": ["end_timestamp", "location", "name", "start_timestamp"],
            "properties": {
                "end_timestamp": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "start_timestamp": {"type": "string"}
            }
        },
        "controllers.CreateEventResponse": {
            "type": "object",
            "properties": {"event_id": {"type": "string"}}
        },
        "controllers.CreateEventSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.CreateEventResponse"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.EventListSuccessResponse": {
            "type": "object",
            "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/controllers.EventResponse"}}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.EventResponse": {
            "type": "object",
            "properties": {
                "end_timestamp": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "start_timestamp": {"type": "string"}
            }
        },
        "controllers.EventSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.EventResponse"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.RegisterSuccessResponse": {
            "type": "object",
            "properties": {"data": {"$ref": "#/definitions/controllers.RegistrationResponse"}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        },
        "controllers.RegistrationResponse": {
            "type": "object",
            "properties": {"created": {"type": "boolean"}, "email": {"type": "string"}, "event_id": {"type": "string"}}
        },
        "controllers.UserResponse": {
            "type": "object",
            "properties": {"email": {"type": "string"}}
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {"data": {}, "error": {"$ref": "#/definitions/helpers.APIError"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Event Registration API",
	Description:      "Events, registrations and attendee listings with email notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
