package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HCM Regional III API",
        "description": "Employee mutation workflow and performance rating service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Authentication"},
        {"name": "Employees", "description": "Employee directory"},
        {"name": "Mutations", "description": "Internal transfer requests"},
        {"name": "Ratings", "description": "Monthly performance ratings"},
        {"name": "Dashboard", "description": "Aggregated headline numbers"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and obtain an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/change-password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Change the caller's password",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/employees": {
            "get": {
                "tags": ["Employees"],
                "summary": "List employees visible to the caller",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "unit", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/employees/{perner}": {
            "get": {
                "tags": ["Employees"],
                "summary": "Get a single employee",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/mutations": {
            "get": {
                "tags": ["Mutations"],
                "summary": "List transfer requests",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Mutations"],
                "summary": "Submit a transfer request",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMutationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed"},
                    "404": {"description": "Employee not found"},
                    "409": {"description": "Duplicate request"}
                }
            }
        },
        "/mutations/{perner}": {
            "get": {
                "tags": ["Mutations"],
                "summary": "Get transfer request detail",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Mutations"],
                "summary": "Update a pending transfer request",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateMutationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Not pending or invalid target"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Mutations"],
                "summary": "Delete a transfer request",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/mutations/{perner}/approve": {
            "post": {
                "tags": ["Mutations"],
                "summary": "Approve a transfer request",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Approved"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/mutations/{perner}/reject": {
            "post": {
                "tags": ["Mutations"],
                "summary": "Reject a transfer request",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RejectMutationRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rejected"},
                    "400": {"description": "Reason missing"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/ratings": {
            "get": {
                "tags": ["Ratings"],
                "summary": "List the rating recap",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "month", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/ratings/export": {
            "get": {
                "tags": ["Ratings"],
                "summary": "Export the rating recap as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "month", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/ratings/{perner}": {
            "post": {
                "tags": ["Ratings"],
                "summary": "Submit a performance rating",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "perner", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRatingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed or ineligible"},
                    "404": {"description": "Employee not found"},
                    "409": {"description": "Rating already exists for period"}
                }
            }
        },
        "/dashboard/summary": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard summary",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "ChangePasswordRequest": {
            "type": "object",
            "required": ["old_password", "new_password"],
            "properties": {
                "old_password": {"type": "string"},
                "new_password": {"type": "string", "minLength": 6}
            }
        },
        "CreateMutationRequest": {
            "type": "object",
            "required": ["perner", "newUnit", "newSubUnit", "newPosition"],
            "properties": {
                "perner": {"type": "string"},
                "newUnit": {"type": "string"},
                "newSubUnit": {"type": "string"},
                "newPosition": {"type": "string"}
            }
        },
        "UpdateMutationRequest": {
            "type": "object",
            "properties": {
                "newUnit": {"type": "string"},
                "newSubUnit": {"type": "string"},
                "newPosition": {"type": "string"}
            }
        },
        "RejectMutationRequest": {
            "type": "object",
            "required": ["reason"],
            "properties": {
                "reason": {"type": "string"}
            }
        },
        "CreateRatingRequest": {
            "type": "object",
            "required": ["serviceOrientation", "achievementOrientation", "teamwork", "productKnowledge", "organizationalCommitment", "performance", "initiative", "month", "year"],
            "properties": {
                "serviceOrientation": {"type": "integer", "minimum": 1, "maximum": 5},
                "achievementOrientation": {"type": "integer", "minimum": 1, "maximum": 5},
                "teamwork": {"type": "integer", "minimum": 1, "maximum": 5},
                "productKnowledge": {"type": "integer", "minimum": 1, "maximum": 5},
                "organizationalCommitment": {"type": "integer", "minimum": 1, "maximum": 5},
                "performance": {"type": "integer", "minimum": 1, "maximum": 5},
                "initiative": {"type": "integer", "minimum": 1, "maximum": 5},
                "month": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
