// Package docs holds the Swagger document served by gin-swagger. It follows the
// layout swag init produces but is kept in sync with the handler annotations by hand.
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
        "/health": {
            "get": {
                "description": "Liveness probe. Reports the port the server listens on.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    }
                }
            }
        },
        "/user": {
            "get": {
                "description": "Generates a random person and enriches it with country metadata, exchange rates against USD and KZT, and recent news about the person's country. Missing API keys or failing upstreams degrade to static data.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "user"
                ],
                "summary": "Get a random user profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.UserProfileResponse"
                        }
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Random user could not be fetched",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.CountryInfo": {
            "type": "object",
            "required": [
                "currencyCode"
            ],
            "properties": {
                "capital": {
                    "type": "string"
                },
                "currencyCode": {
                    "type": "string"
                },
                "currencyName": {
                    "type": "string"
                },
                "flag": {
                    "type": "string"
                },
                "languages": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.ExchangeQuote": {
            "type": "object",
            "properties": {
                "baseCurrency": {
                    "type": "string"
                },
                "toKZT": {
                    "type": "string"
                },
                "toUSD": {
                    "type": "string"
                }
            }
        },
        "domain.NewsItem": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "image": {
                    "type": "string"
                },
                "publishedAt": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "failed to fetch random user"
                },
                "success": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "port": {
                    "type": "integer",
                    "example": 3000
                },
                "status": {
                    "type": "string",
                    "example": "OK"
                }
            }
        },
        "dto.UserProfileResponse": {
            "type": "object",
            "properties": {
                "country": {
                    "$ref": "#/definitions/domain.CountryInfo"
                },
                "exchange": {
                    "$ref": "#/definitions/domain.ExchangeQuote"
                },
                "news": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.NewsItem"
                    }
                },
                "success": {
                    "type": "boolean"
                },
                "user": {
                    "$ref": "#/definitions/dto.UserResponse"
                }
            }
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "city": {
                    "type": "string"
                },
                "country": {
                    "type": "string"
                },
                "dob": {
                    "type": "string",
                    "example": "06/15/2000"
                },
                "email": {
                    "type": "string"
                },
                "firstName": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "nationality": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "picture": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "User Profile Aggregator API",
	Description:      "Serves random user profiles enriched with country data, exchange rates and news.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
