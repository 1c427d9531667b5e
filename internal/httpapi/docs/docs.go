// Package docs registers the OpenAPI description of the HTTP API with swag.
// It is imported by the swagger build of package httpapi.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/objects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "List objects",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ObjectsResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Place a free point, line or conic",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateObjectRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.Object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/objects/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Get an object",
                "parameters": [{"type": "string", "description": "Object name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Destroy an object",
                "description": "Destroys the object and every construction depending on it.",
                "parameters": [{"type": "string", "description": "Object name", "name": "name", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DestroyResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/objects/{name}/move": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Move a free object",
                "parameters": [
                    {"type": "string", "description": "Object name", "name": "name", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.MoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Object"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/objects/{name}/transform": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Apply a projective transformation to a free object",
                "parameters": [
                    {"type": "string", "description": "Object name", "name": "name", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.TransformRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Object"}}}
            }
        },
        "/objects/{name}/rename": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["objects"],
                "summary": "Rename an object",
                "parameters": [
                    {"type": "string", "description": "Object name", "name": "name", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.RenameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Object"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/objects/{name}/redefine": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["constructions"],
                "summary": "Point a construction at new inputs",
                "parameters": [
                    {"type": "string", "description": "Construction name", "name": "name", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.RedefineRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.Object"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/constructions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["constructions"],
                "summary": "Create a construction",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.CreateConstructionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.Object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/nearby": {
            "get": {
                "produces": ["application/json"],
                "tags": ["selection"],
                "summary": "Objects near a point",
                "parameters": [
                    {"type": "number", "name": "x", "in": "query", "required": true},
                    {"type": "number", "name": "y", "in": "query", "required": true},
                    {"type": "number", "name": "radius", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.NearbyResponse"}}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Journaled events",
                "parameters": [
                    {"type": "integer", "name": "since", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EventsResponse"}}}
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["status"],
                "summary": "Scene status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}
            }
        }
    },
    "definitions": {
        "types.Complex": {"type": "object", "properties": {"re": {"type": "number"}, "im": {"type": "number"}}},
        "types.Position": {"type": "object", "properties": {"x": {"type": "number"}, "y": {"type": "number"}}},
        "types.Object": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "kind": {"type": "string"},
                "state": {"type": "string"},
                "value": {"type": "array", "items": {"$ref": "#/definitions/types.Complex"}},
                "position": {"$ref": "#/definitions/types.Position"},
                "construction": {"type": "string"},
                "inputs": {"type": "array", "items": {"type": "string"}},
                "reason": {"type": "string"},
                "observers": {"type": "integer"}
            }
        },
        "types.ObjectsResponse": {"type": "object", "properties": {"objects": {"type": "array", "items": {"$ref": "#/definitions/types.Object"}}}},
        "types.CreateObjectRequest": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "name": {"type": "string"},
                "value": {"type": "array", "items": {"$ref": "#/definitions/types.Complex"}}
            }
        },
        "types.CreateConstructionRequest": {
            "type": "object",
            "properties": {
                "construction": {"type": "string"},
                "name": {"type": "string"},
                "inputs": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.MoveRequest": {"type": "object", "properties": {"value": {"type": "array", "items": {"$ref": "#/definitions/types.Complex"}}}},
        "types.TransformRequest": {"type": "object", "properties": {"matrix": {"type": "array", "items": {"type": "array", "items": {"$ref": "#/definitions/types.Complex"}}}}},
        "types.RenameRequest": {"type": "object", "properties": {"name": {"type": "string"}}},
        "types.RedefineRequest": {"type": "object", "properties": {"inputs": {"type": "array", "items": {"type": "string"}}}},
        "types.DestroyResponse": {"type": "object", "properties": {"destroyed": {"type": "array", "items": {"type": "string"}}}},
        "types.NearbyHit": {"type": "object", "properties": {"object": {"$ref": "#/definitions/types.Object"}, "distance": {"type": "number"}}},
        "types.NearbyResponse": {"type": "object", "properties": {"hits": {"type": "array", "items": {"$ref": "#/definitions/types.NearbyHit"}}}},
        "types.EventRecord": {
            "type": "object",
            "properties": {
                "seq": {"type": "integer"},
                "type": {"type": "string"},
                "object_id": {"type": "string"},
                "name": {"type": "string"},
                "old_name": {"type": "string"},
                "new_name": {"type": "string"},
                "state": {"type": "string"},
                "time_unix_ms": {"type": "integer"}
            }
        },
        "types.EventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/types.EventRecord"}},
                "next": {"type": "integer"},
                "truncated": {"type": "boolean"}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "objects": {"type": "integer"},
                "constructions": {"type": "integer"},
                "degenerate": {"type": "integer"},
                "events_total": {"type": "integer"},
                "formulas": {"type": "array", "items": {"type": "string"}},
                "epsilon": {"type": "number"},
                "uptime_seconds": {"type": "integer"},
                "server_time_unix": {"type": "integer"}
            }
        },
        "types.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "homogebra API",
	Description:      "HTTP API for a dynamic-geometry scene of points, lines and conics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
