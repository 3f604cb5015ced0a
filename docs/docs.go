// Package docs registers the Swagger document served at /swagger/index.html.
// Regenerate with `go generate ./cmd/api` after changing handler annotations.
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
        "/api/users": {
            "post": {
                "tags": ["users"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}}
                }
            }
        },
        "/api/auth": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["auth"],
                "summary": "Get the authenticated user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            },
            "post": {
                "tags": ["auth"],
                "summary": "Authenticate user and get token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}}
                }
            }
        },
        "/api/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "List all profiles",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Profile"}}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Create or update the current user's profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.profileRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Delete the current user, their profile and posts",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/profile/me": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Get the current user's profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/profile/user/{user_id}": {
            "get": {
                "tags": ["profile"],
                "summary": "Get a profile by user ID",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "user_id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/profile/experience": {
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Add an experience entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.experienceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}}
                }
            }
        },
        "/api/profile/experience/{exp_id}": {
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Remove an experience entry",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "exp_id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/profile/education": {
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Add an education entry",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.educationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}}
                }
            }
        },
        "/api/profile/education/{edu_id}": {
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["profile"],
                "summary": "Remove an education entry",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "edu_id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/profile/github/{username}": {
            "get": {
                "tags": ["profile"],
                "summary": "List a GitHub user's repositories",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "username", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Repo"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/posts": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "List posts, newest first",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Post"}}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Create a post",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "header", "name": "Idempotency-Key", "description": "Retries with the same key return the first post"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.postRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Post"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}},
                    "409": {"description": "Idempotency-Key still in progress", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/posts/{id}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Get a post",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Post"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Delete a post",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/posts/like/{id}": {
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Like a post",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Like"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/posts/unlike/{id}": {
            "put": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Remove a like from a post",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Like"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/api/posts/comment/{id}": {
            "post": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Comment on a post",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.commentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorsResponse"}}
                }
            }
        },
        "/api/posts/comment/{id}/{comment_id}": {
            "delete": {
                "security": [{"TokenAuth": []}],
                "tags": ["posts"],
                "summary": "Delete a comment",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"type": "string", "in": "path", "name": "comment_id", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.msgResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.msgResponse"}}
                }
            }
        },
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/health/ready": {
            "get": {"tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "domain.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "avatar": {"type": "string"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "domain.UserRef": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"}
            }
        },
        "domain.Social": {
            "type": "object",
            "properties": {
                "youtube": {"type": "string"},
                "twitter": {"type": "string"},
                "facebook": {"type": "string"},
                "linkedin": {"type": "string"},
                "instagram": {"type": "string"}
            }
        },
        "domain.Experience": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "company": {"type": "string"},
                "location": {"type": "string"},
                "from": {"type": "string", "format": "date-time"},
                "to": {"type": "string", "format": "date-time"},
                "current": {"type": "boolean"},
                "description": {"type": "string"}
            }
        },
        "domain.Education": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "school": {"type": "string"},
                "degree": {"type": "string"},
                "fieldofstudy": {"type": "string"},
                "from": {"type": "string", "format": "date-time"},
                "to": {"type": "string", "format": "date-time"},
                "current": {"type": "boolean"},
                "description": {"type": "string"}
            }
        },
        "domain.Profile": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.UserRef"},
                "company": {"type": "string"},
                "website": {"type": "string"},
                "location": {"type": "string"},
                "bio": {"type": "string"},
                "status": {"type": "string"},
                "githubusername": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "social": {"$ref": "#/definitions/domain.Social"},
                "experience": {"type": "array", "items": {"$ref": "#/definitions/domain.Experience"}},
                "education": {"type": "array", "items": {"$ref": "#/definitions/domain.Education"}},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "domain.Like": {
            "type": "object",
            "properties": {
                "user": {"type": "string"}
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "user": {"type": "string"},
                "text": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "domain.Post": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "user": {"type": "string"},
                "text": {"type": "string"},
                "name": {"type": "string"},
                "avatar": {"type": "string"},
                "likes": {"type": "array", "items": {"$ref": "#/definitions/domain.Like"}},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/domain.Comment"}},
                "date": {"type": "string", "format": "date-time"}
            }
        },
        "domain.Repo": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "full_name": {"type": "string"},
                "html_url": {"type": "string"},
                "description": {"type": "string"},
                "language": {"type": "string"},
                "stargazers_count": {"type": "integer"},
                "watchers_count": {"type": "integer"},
                "forks_count": {"type": "integer"},
                "created_at": {"type": "string", "format": "date-time"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["name", "email", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.profileRequest": {
            "type": "object",
            "required": ["status", "skills"],
            "properties": {
                "company": {"type": "string"},
                "website": {"type": "string"},
                "location": {"type": "string"},
                "bio": {"type": "string"},
                "status": {"type": "string"},
                "githubusername": {"type": "string"},
                "skills": {"type": "string", "description": "comma-separated"},
                "youtube": {"type": "string"},
                "twitter": {"type": "string"},
                "facebook": {"type": "string"},
                "linkedin": {"type": "string"},
                "instagram": {"type": "string"}
            }
        },
        "handler.experienceRequest": {
            "type": "object",
            "required": ["title", "company", "from"],
            "properties": {
                "title": {"type": "string"},
                "company": {"type": "string"},
                "location": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "current": {"type": "boolean"},
                "description": {"type": "string"}
            }
        },
        "handler.educationRequest": {
            "type": "object",
            "required": ["school", "degree", "fieldofstudy", "from"],
            "properties": {
                "school": {"type": "string"},
                "degree": {"type": "string"},
                "fieldofstudy": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "current": {"type": "boolean"},
                "description": {"type": "string"}
            }
        },
        "handler.postRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"}
            }
        },
        "handler.commentRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"}
            }
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "handler.msgResponse": {
            "type": "object",
            "properties": {
                "msg": {"type": "string"}
            }
        },
        "handler.errorsResponse": {
            "type": "object",
            "properties": {
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "msg": {"type": "string"},
                            "param": {"type": "string"}
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "type": "apiKey",
            "name": "x-auth-token",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DevConnector API",
	Description:      "Developer profiles, posts, likes and comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
