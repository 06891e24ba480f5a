// Package swagger registers the API document served at /swagger.
package swagger

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
        "/files": {
            "get": {
                "description": "Lists every stored file below the configured prefix, optionally narrowed to a sub folder.",
                "produces": ["application/json"],
                "tags": ["files"],
                "summary": "List Files",
                "parameters": [
                    {"type": "string", "description": "Sub folder below the configured prefix", "name": "folder", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Stored Files",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/uploader.StoredObject"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "post": {
                "description": "Uploads a file. The stored name is the sanitized filename prefixed with the upload time.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["files"],
                "summary": "Upload File",
                "parameters": [
                    {"type": "file", "description": "File to upload", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Sub folder below the configured prefix", "name": "folder", "in": "formData"}
                ],
                "responses": {
                    "201": {
                        "description": "Upload Result",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            },
            "delete": {
                "description": "Deletes a stored file. The key is the full object key returned by upload or list.",
                "produces": ["application/json"],
                "tags": ["files"],
                "summary": "Delete File",
                "parameters": [
                    {"type": "string", "description": "Full object key", "name": "key", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Deleted",
                        "schema": {"type": "object", "additionalProperties": {"type": "boolean"}}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "uploader.StoredObject": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "last_modified": {"type": "string"},
                "name": {"type": "string"},
                "size": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "S3 Uploader API",
	Description:      "API for uploading, listing and deleting files in an S3 bucket.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
