// Package docs holds the generated swagger specification.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/auth/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user account and email a confirmation code",
                "parameters": [
                    {
                        "description": "Username and email",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SignupRequestBody"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/v1/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange a confirmation code for an access token",
                "parameters": [
                    {
                        "description": "Username and confirmation code",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateAccessTokenRequestBody"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "422": {"description": "Unprocessable Entity"}
                }
            }
        },
        "/v1/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List user accounts",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user account",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/users/{username}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Show a user account",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update a user account",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete a user account",
                "parameters": [
                    {"type": "string", "name": "username", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "List categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Create a category",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/categories/{slug}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Delete a category",
                "parameters": [
                    {"type": "string", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "List genres",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Create a genre",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/genres/{slug}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Delete a genre",
                "parameters": [
                    {"type": "string", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/titles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "List titles",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Create a title",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/v1/titles/{titleId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Show a title",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Update a title",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["catalogue"],
                "summary": "Delete a title",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/titles/{titleId}/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List the reviews of a title",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Review a title",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/v1/titles/{titleId}/reviews/{reviewId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Show a review",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Update a review",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Delete a review",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/titles/{titleId}/reviews/{reviewId}/comments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "List the comments on a review",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Comment on a review",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/titles/{titleId}/reviews/{reviewId}/comments/{commentId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Show a comment",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true},
                    {"type": "integer", "name": "commentId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Update a comment",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true},
                    {"type": "integer", "name": "commentId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [
                    {"type": "integer", "name": "titleId", "in": "path", "required": true},
                    {"type": "integer", "name": "reviewId", "in": "path", "required": true},
                    {"type": "integer", "name": "commentId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/healthcheck": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Show application health and version information",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "dto.SignupRequestBody": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.CreateAccessTokenRequestBody": {
            "type": "object",
            "properties": {
                "confirmation_code": {"type": "string"},
                "username": {"type": "string"}
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
	Title:            "Mediatheca API",
	Description:      "This is an API service for reviewing books, films and music.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
