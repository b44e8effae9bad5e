// Package docs registers the VoiceMap OpenAPI document with swag.
// It follows the layout `swag init` emits from the handler annotations.
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
        "/transcribe": {
            "post": {
                "description": "Transcribes an uploaded English or Hindi recording",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Speech"],
                "summary": "Transcribe audio",
                "parameters": [
                    {"type": "file", "description": "Audio file (wav, mp3, ogg, webm, m4a, flac)", "name": "audio", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TranscribeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/sign-language": {
            "post": {
                "description": "Transcribes a recording and maps it to gloss tokens and sign videos",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Speech"],
                "summary": "Translate audio to sign language",
                "parameters": [
                    {"type": "file", "description": "Audio file (wav, mp3, ogg, webm, m4a, flac)", "name": "audio", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SignLanguageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/signs/{filename}": {
            "get": {
                "produces": ["video/mp4"],
                "tags": ["Signs"],
                "summary": "Fetch a sign video",
                "parameters": [
                    {"type": "string", "description": "Video file name", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Service health",
                "parameters": [
                    {"type": "boolean", "description": "Also check every transcription provider", "name": "deep", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/": {
            "get": {
                "produces": ["text/html"],
                "tags": ["Frontend"],
                "summary": "Recording and playback page",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "dto.TranscribeResponse": {
            "type": "object",
            "properties": {
                "transcription": {"type": "string"}
            }
        },
        "dto.SignLanguageResponse": {
            "type": "object",
            "properties": {
                "transcription": {"type": "string"},
                "gloss": {"type": "array", "items": {"type": "string"}},
                "videos": {"type": "array", "items": {"$ref": "#/definitions/gloss.VideoRef"}}
            }
        },
        "gloss.VideoRef": {
            "type": "object",
            "properties": {
                "gloss": {"type": "string"},
                "url": {"type": "string"},
                "missing": {"type": "boolean"}
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "provider": {"type": "string"},
                "supported_languages": {"type": "array", "items": {"type": "string"}},
                "sign_store": {"type": "string"},
                "providers": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "errors.APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "VoiceMap API",
	Description:      "Speech to text and sign language gloss for English and Hindi recordings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
