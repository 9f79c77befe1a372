// Package docs registra el documento OpenAPI que sirve /swagger/doc.json.
// Se mantiene a mano junto con las anotaciones @Router de los handlers.
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
        "/personas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["personas"],
                "summary": "Listar mis mascotas",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/personas.personaResponse"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Crea la persona de una mascota para la cuenta autenticada. name y species son obligatorios.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["personas"],
                "summary": "Registrar mascota",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/personas.createPersonaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/personas.personaResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/personas/{personaID}": {
            "get": {
                "description": "Solo el owner. 404 si no existe, 403 si es de otra cuenta.",
                "produces": ["application/json"],
                "tags": ["personas"],
                "summary": "Ver mascota",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/personas.personaResponse"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}}
                }
            }
        },
        "/personas/{personaID}/chat": {
            "get": {
                "description": "Turnos más viejos primero. limit por defecto 50, máximo 200.",
                "produces": ["application/json"],
                "tags": ["interactions"],
                "summary": "Historial de chat",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true},
                    {"type": "integer", "description": "Cantidad máxima de turnos", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/interactions.turnResponse"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Genera la respuesta en la voz de la mascota y guarda el turno. Solo el owner.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interactions"],
                "summary": "Hablar con la mascota",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true},
                    {"description": "Mensaje del owner", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/interactions.chatRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/interactions.turnResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}},
                    "502": {"description": "generation failed", "schema": {"type": "string"}},
                    "503": {"description": "generation not configured", "schema": {"type": "string"}}
                }
            }
        },
        "/personas/{personaID}/diary": {
            "get": {
                "description": "Entradas más nuevas primero. limit por defecto 50, máximo 200.",
                "produces": ["application/json"],
                "tags": ["interactions"],
                "summary": "Ver el diario",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true},
                    {"type": "integer", "description": "Cantidad máxima de entradas", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/interactions.entryResponse"}}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "La mascota escribe su diario a partir del resumen del día. weather vacío => sunny, visibility vacío => private.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interactions"],
                "summary": "Escribir el diario del día",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true},
                    {"description": "Resumen del día", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/interactions.diaryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/interactions.entryResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}},
                    "502": {"description": "generation failed", "schema": {"type": "string"}},
                    "503": {"description": "generation not configured", "schema": {"type": "string"}}
                }
            }
        },
        "/personas/{personaID}/health-records": {
            "get": {
                "description": "Más recientes primero. Filtros opcionales por tipo y rango de record_date.",
                "produces": ["application/json"],
                "tags": ["health-records"],
                "summary": "Libreta sanitaria",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true},
                    {"type": "string", "description": "Lista CSV de tipos (ej: allergy,vaccine)", "name": "types", "in": "query"},
                    {"type": "string", "description": "record_date mínima (YYYY-MM-DD)", "name": "from", "in": "query"},
                    {"type": "string", "description": "record_date máxima (YYYY-MM-DD)", "name": "to", "in": "query"},
                    {"type": "integer", "description": "Máximo a devolver (1-200). Por defecto 50", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/healthrecords.recordResponse"}}},
                    "400": {"description": "Parámetros de filtro inválidos", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "description": "Alergias, enfermedades, cirugías, vacunas, etc. Solo el owner. record_date en formato YYYY-MM-DD.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health-records"],
                "summary": "Registrar dato de salud",
                "parameters": [
                    {"type": "string", "description": "Solo en modo dev", "name": "X-Debug-User-ID", "in": "header"},
                    {"type": "integer", "description": "ID de la mascota", "name": "personaID", "in": "path", "required": true},
                    {"description": "Dato de salud", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/healthrecords.createRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/healthrecords.recordResponse"}},
                    "400": {"description": "invalid json / invalid input", "schema": {"type": "string"}},
                    "401": {"description": "unauthorized", "schema": {"type": "string"}},
                    "403": {"description": "forbidden", "schema": {"type": "string"}},
                    "404": {"description": "persona not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "healthrecords.createRecordRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "record_date": {"description": "YYYY-MM-DD", "type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["allergy", "illness", "surgery", "vaccine", "medication", "checkup"]}
            }
        },
        "healthrecords.recordResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "persona_id": {"type": "integer"},
                "record_date": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "interactions.chatRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "interactions.diaryRequest": {
            "type": "object",
            "properties": {
                "day_summary": {"type": "string"},
                "title": {"type": "string"},
                "visibility": {"description": "\"public\" | \"private\"", "type": "string"},
                "weather": {"type": "string"}
            }
        },
        "interactions.entryResponse": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "like_count": {"type": "integer"},
                "persona_id": {"type": "integer"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"},
                "visibility": {"type": "string"},
                "weather": {"type": "string"}
            }
        },
        "interactions.turnResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "persona_id": {"type": "integer"},
                "reply": {"type": "string"},
                "user_message": {"type": "string"}
            }
        },
        "personas.createPersonaRequest": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "characteristics": {"type": "string"},
                "dislikes": {"type": "string"},
                "family_info": {"type": "string"},
                "gender": {"type": "string"},
                "habits": {"type": "string"},
                "likes": {"type": "string"},
                "name": {"type": "string"},
                "neutered": {"type": "boolean"},
                "other_info": {"type": "string"},
                "personality": {"type": "string"},
                "speaking_style": {"type": "string"},
                "species": {"type": "string"},
                "user_nickname": {"type": "string"}
            }
        },
        "personas.personaResponse": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "characteristics": {"type": "string"},
                "created_at": {"type": "string"},
                "dislikes": {"type": "string"},
                "family_info": {"type": "string"},
                "gender": {"type": "string"},
                "habits": {"type": "string"},
                "id": {"type": "integer"},
                "likes": {"type": "string"},
                "name": {"type": "string"},
                "neutered": {"type": "boolean"},
                "other_info": {"type": "string"},
                "owner_account_id": {"type": "string"},
                "personality": {"type": "string"},
                "speaking_style": {"type": "string"},
                "species": {"type": "string"},
                "updated_at": {"type": "string"},
                "user_nickname": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo se puede ajustar en runtime (Host, BasePath).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MyPets Voice API",
	Description:      "Personas de mascotas que conversan, escriben su diario y llevan su libreta sanitaria.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
