// Package docs Midpoint Service API.
//
// Сервис вычисления точки встречи для 2 или 3 городов: прямое геокодирование,
// середина (или центроид) на сфере, обратное геокодирование центра и граф-звезда
// расстояний.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/midpoint": {
            "post": {
                "description": "Геокодирует 2 или 3 города, вычисляет середину (или центроид), выполняет обратное геокодирование центра и строит граф-звезду. Ответ без обёртки data/meta.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Midpoint"],
                "summary": "Точка встречи (совместимый формат)",
                "parameters": [
                    {
                        "description": "Названия городов",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.MidpointRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MidpointResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/midpoint": {
            "post": {
                "description": "То же вычисление, что и /api/midpoint, в стандартной обёртке. meta.id можно запросить через /api/v1/history/{id}.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Midpoint"],
                "summary": "Точка встречи",
                "parameters": [
                    {
                        "description": "Названия городов",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.MidpointRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.MidpointResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/midpoint/geojson": {
            "post": {
                "description": "Возвращает FeatureCollection: точки входных городов, центр и рёбра звезды (LineString) с расстоянием в км.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Midpoint"],
                "summary": "Точка встречи в GeoJSON",
                "parameters": [
                    {
                        "description": "Названия городов",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.MidpointRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "GeoJSON FeatureCollection", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/history": {
            "get": {
                "description": "Возвращает последние результаты, новые первыми",
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "История вычислений",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 50,
                        "description": "Максимальное количество результатов",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.HistoryResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/history/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["History"],
                "summary": "Результат по ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID результата (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/utils.SuccessResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.HistoryEntry"}}}
                            ]
                        }
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.MidpointRequest": {
            "type": "object",
            "required": ["cityA", "cityB"],
            "properties": {
                "cityA": {"type": "string", "maxLength": 200, "example": "Roma"},
                "cityB": {"type": "string", "maxLength": 200, "example": "Milano"},
                "cityC": {"type": "string", "maxLength": 200, "example": "Napoli"}
            }
        },
        "dto.InputView": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "raw": {"type": "object", "additionalProperties": true}
            }
        },
        "dto.MidpointView": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lon": {"type": "number"},
                "reverse": {"type": "object", "additionalProperties": true}
            }
        },
        "dto.GraphView": {
            "type": "object",
            "properties": {
                "shortest_path": {"type": "array", "items": {"type": "string"}},
                "total_distance_km": {"type": "number"},
                "paths": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "path_distances_km": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "dto.MidpointResponse": {
            "type": "object",
            "properties": {
                "cityA": {"$ref": "#/definitions/dto.InputView"},
                "cityB": {"$ref": "#/definitions/dto.InputView"},
                "cityC": {"$ref": "#/definitions/dto.InputView"},
                "midpoint": {"$ref": "#/definitions/dto.MidpointView"},
                "distances_km": {"type": "object", "additionalProperties": {"type": "number"}},
                "graph": {"$ref": "#/definitions/dto.GraphView"}
            }
        },
        "dto.HistoryEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "created_at": {"type": "string"},
                "cityA": {"$ref": "#/definitions/dto.InputView"},
                "cityB": {"$ref": "#/definitions/dto.InputView"},
                "cityC": {"$ref": "#/definitions/dto.InputView"},
                "midpoint": {"$ref": "#/definitions/dto.MidpointView"},
                "distances_km": {"type": "object", "additionalProperties": {"type": "number"}},
                "graph": {"$ref": "#/definitions/dto.GraphView"}
            }
        },
        "dto.HistoryResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoryEntry"}},
                "total": {"type": "integer"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/errors.AppError"}
            }
        },
        "utils.Meta": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "time_ms": {"type": "number"}
            }
        },
        "utils.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "meta": {"$ref": "#/definitions/utils.Meta"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Midpoint Service API",
	Description:      "Точка встречи для 2 или 3 городов: геокодирование, середина на сфере, обратное геокодирование и граф расстояний.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
