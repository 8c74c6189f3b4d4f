package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "CRUD API for course metadata and their PDF attachments",
        "title": "Cartable API",
        "version": "1.0"
    },
    "host": "localhost:8000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if the server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["courses"],
                "summary": "List all courses",
                "description": "Retrieves every course in storage order",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Courses retrieved successfully",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/Course"}
                        }
                    }
                }
            },
            "post": {
                "tags": ["courses"],
                "summary": "Create a new course",
                "description": "Creates a course record and stores the attached PDF",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "formData", "name": "name", "type": "string", "required": true, "description": "Course name"},
                    {"in": "formData", "name": "description", "type": "string", "required": true, "description": "Course description"},
                    {"in": "formData", "name": "level", "type": "string", "required": true, "description": "Course level (e.g. 5ème, 6ème, Bac)"},
                    {"in": "formData", "name": "file", "type": "file", "required": true, "description": "Course PDF"}
                ],
                "responses": {
                    "201": {
                        "description": "Course created successfully",
                        "schema": {"$ref": "#/definitions/Course"}
                    },
                    "400": {
                        "description": "Invalid form data or non-PDF file",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/courses/{name}": {
            "get": {
                "tags": ["courses"],
                "summary": "Get course by name",
                "description": "Retrieves the first course whose name matches exactly",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true, "description": "Course name"}
                ],
                "responses": {
                    "200": {
                        "description": "Course retrieved successfully",
                        "schema": {"$ref": "#/definitions/Course"}
                    },
                    "404": {
                        "description": "Course not found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            },
            "put": {
                "tags": ["courses"],
                "summary": "Update a course",
                "description": "Overwrites description, pdf_path and level; created_at is preserved",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true, "description": "Course name"},
                    {
                        "in": "body",
                        "name": "course",
                        "required": true,
                        "description": "New course data",
                        "schema": {"$ref": "#/definitions/UpdateCourseRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Course updated successfully",
                        "schema": {"$ref": "#/definitions/Course"}
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "404": {
                        "description": "Course not found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            },
            "delete": {
                "tags": ["courses"],
                "summary": "Delete a course",
                "description": "Removes the first course matching name; the PDF stays on disk",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true, "description": "Course name"}
                ],
                "responses": {
                    "200": {
                        "description": "Deleted course",
                        "schema": {"$ref": "#/definitions/Course"}
                    },
                    "404": {
                        "description": "Course not found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/courses/{name}/download": {
            "get": {
                "tags": ["courses"],
                "summary": "Download the course PDF",
                "description": "Streams the stored PDF as an attachment with its original filename",
                "produces": ["application/pdf"],
                "parameters": [
                    {"in": "path", "name": "name", "type": "string", "required": true, "description": "Course name"}
                ],
                "responses": {
                    "200": {
                        "description": "PDF content",
                        "schema": {"type": "file"}
                    },
                    "404": {
                        "description": "Course or file not found",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Algebra"},
                "description": {"type": "string", "example": "Linear equations and factoring"},
                "pdf_path": {"type": "string", "example": "pdf_files/algebra.pdf"},
                "level": {"type": "string", "example": "6ème"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "UpdateCourseRequest": {
            "type": "object",
            "required": ["description", "pdf_path", "level"],
            "properties": {
                "name": {"type": "string", "example": "Algebra"},
                "description": {"type": "string", "example": "Linear equations and factoring"},
                "pdf_path": {"type": "string", "example": "pdf_files/algebra.pdf"},
                "level": {"type": "string", "example": "Bac"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string", "example": "RES_001"},
                        "message": {"type": "string", "example": "Course not found"},
                        "field": {"type": "string"},
                        "severity": {"type": "string", "example": "ERROR"}
                    }
                },
                "timestamp": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Cartable API",
	Description:      "CRUD API for course metadata and their PDF attachments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
