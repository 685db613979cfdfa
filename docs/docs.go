// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Регистрация игрока",
                "parameters": [
                    {"description": "Данные игрока", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.AuthResult"}},
                    "400": {"description": "Ошибка валидации", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Email уже занят", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Вход по email и паролю",
                "parameters": [
                    {"description": "Учётные данные", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.AuthResult"}},
                    "401": {"description": "Неверный email или пароль", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Завершить сессию",
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Неавторизован"}}
            }
        },
        "/tournaments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Ближайшие турниры",
                "parameters": [{"type": "integer", "description": "Сколько турниров вернуть", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/tournaments/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Правила и распределение призов",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/tournaments/{tournamentID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Турнир по ID",
                "parameters": [{"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}, "404": {"description": "Турнир не найден"}}
            }
        },
        "/tournaments/{tournamentID}/matches": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Матчи турнира",
                "parameters": [{"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}, "404": {"description": "Турнир не найден"}}
            }
        },
        "/matches/{matchID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["matches"],
                "summary": "Матч по ID",
                "parameters": [{"type": "string", "description": "Match ID", "name": "matchID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}, "404": {"description": "Матч не найден"}}
            }
        },
        "/tournaments/{tournamentID}/join": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tournaments"],
                "summary": "Записаться на турнир",
                "parameters": [{"type": "string", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Регистрация создана"},
                    "401": {"description": "Неавторизован"},
                    "403": {"description": "Регистрация закрыта"},
                    "404": {"description": "Турнир не найден"},
                    "409": {"description": "Уже зарегистрирован / Турнир полон"}
                }
            }
        },
        "/winners": {
            "get": {
                "produces": ["application/json"],
                "tags": ["winners"],
                "summary": "Победители прошлых турниров и зал славы",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/leaderboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["winners"],
                "summary": "Общий рейтинг по победам",
                "parameters": [{"type": "integer", "description": "Сколько позиций вернуть", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Дашборд текущего игрока",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}, "401": {"description": "Неавторизован"}}
            }
        },
        "/dashboard/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Состояние загрузки дашборда",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/notifications": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Уведомления текущего игрока",
                "parameters": [{"type": "string", "description": "time - сортировать по близости к текущему моменту", "name": "sort", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/players/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Профиль текущего игрока",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}, "401": {"description": "Неавторизован"}}
            }
        },
        "/players/me/avatar": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Загрузить аватар",
                "parameters": [{"type": "file", "description": "Изображение (jpeg, png, gif, webp)", "name": "avatar", "in": "formData", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Неверный файл"}, "503": {"description": "Хранилище не настроено"}}
            }
        },
        "/admin/players": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Список игроков (для администраторов)",
                "parameters": [
                    {"type": "integer", "description": "Страница", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Размер страницы", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Нет прав"}}
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Проверка живости сервиса и БД",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "services.RegisterInput": {
            "type": "object",
            "properties": {
                "player_name": {"type": "string"},
                "email": {"type": "string"},
                "gamertag": {"type": "string"},
                "password": {"type": "string"},
                "skill_level": {"type": "string", "enum": ["beginner", "intermediate", "advanced", "expert"]}
            }
        },
        "services.LoginInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "services.AuthResult": {
            "type": "object",
            "properties": {
                "player": {"type": "object"},
                "token": {"type": "string"},
                "session": {"type": "object"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Micro Tournaments API",
	Description:      "Backend of the Micro Tournaments gaming community: tournaments, dashboards, winners and notifications.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
