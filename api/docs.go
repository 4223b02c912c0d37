// Package api contains the OpenAPI document served at /docs.
//
// The document is kept in sync with the swag annotations on the handlers,
// regenerate it with "swag init" after changing them.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0-or-later"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/root.Response"}}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Get health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/version.Response"}}}
            }
        },
        "/transactions": {
            "get": {
                "description": "Returns all transactions, newest first",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "List transactions",
                "parameters": [
                    {"type": "string", "description": "Filter by type", "name": "type", "in": "query"},
                    {"type": "string", "description": "Filter by category", "name": "category", "in": "query"},
                    {"type": "string", "description": "Filter by month, YYYY-MM", "name": "month", "in": "query"},
                    {"type": "string", "description": "Glob pattern for the name", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controllers.Transaction"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "post": {
                "description": "Creates a new transaction",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "parameters": [
                    {"description": "Transaction", "name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TransactionEditable"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "put": {
                "description": "Updates an existing transaction. Only values to be updated need to be specified.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Update transaction",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "query", "required": true},
                    {"description": "Transaction", "name": "transaction", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TransactionEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Transaction"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "delete": {
                "description": "Deletes a transaction",
                "produces": ["application/json"],
                "tags": ["Transactions"],
                "summary": "Delete transaction",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.httpMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/budgets": {
            "get": {
                "description": "Returns all budgets, ordered by category",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "List budgets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controllers.Budget"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "post": {
                "description": "Sets the budget for a category. Creates the budget if there is none for the category yet.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Set budget",
                "parameters": [
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.Budget"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Budget"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "delete": {
                "description": "Deletes the budget for a category",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Delete budget",
                "parameters": [
                    {"type": "string", "description": "Value of the category", "name": "category", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.httpMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Returns all categories, ordered by type and label",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/controllers.Category"}}}
                }
            },
            "post": {
                "description": "Creates a new expense category together with a budget of 0 for it",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Create category",
                "parameters": [
                    {"description": "Category", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CategoryCreate"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CategoryCreateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/categories/{value}": {
            "get": {
                "description": "Returns a specific category",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get category",
                "parameters": [
                    {"type": "string", "description": "Value of the category", "name": "value", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.Category"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            },
            "delete": {
                "description": "Deletes a category and its budget. Default categories cannot be deleted. Transactions in the category are kept.",
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Delete category",
                "parameters": [
                    {"type": "string", "description": "Value of the category", "name": "value", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.httpMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        },
        "/recommendations": {
            "post": {
                "description": "Generates budget recommendations for the income, expenses and financial goals",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Get recommendations",
                "parameters": [
                    {"description": "Financial situation", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/advisor.Request"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/advisor.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.httpError"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.httpError"}}
                }
            }
        }
    },
    "definitions": {
        "advisor.Recommendation": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "food"},
                "impact": {"type": "string", "example": "Saves about 120 per month for your goal"},
                "recommendation": {"type": "string", "example": "Cook at home twice a week"}
            }
        },
        "advisor.Request": {
            "type": "object",
            "properties": {
                "expenses": {"type": "object", "additionalProperties": {"type": "number"}},
                "financialGoals": {"type": "string", "example": "Save for a house in three years"},
                "income": {"type": "number", "example": 4200}
            }
        },
        "advisor.Response": {
            "type": "object",
            "properties": {
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/advisor.Recommendation"}}
            }
        },
        "controllers.Budget": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "minimum": 0, "example": 500},
                "category": {"type": "string", "example": "groceries"}
            }
        },
        "controllers.Category": {
            "type": "object",
            "properties": {
                "icon": {"type": "string", "example": "ShoppingCart"},
                "isDefault": {"type": "boolean", "example": true},
                "label": {"type": "string", "example": "Groceries"},
                "type": {"type": "string", "example": "expense"},
                "value": {"type": "string", "example": "groceries"}
            }
        },
        "controllers.CategoryCreate": {
            "type": "object",
            "properties": {
                "icon": {"type": "string", "example": "Package"},
                "label": {"type": "string", "example": "Pets"},
                "value": {"type": "string", "example": "pets"}
            }
        },
        "controllers.CategoryCreateResponse": {
            "type": "object",
            "properties": {
                "newBudget": {"$ref": "#/definitions/controllers.Budget"},
                "newCategory": {"$ref": "#/definitions/controllers.Category"}
            }
        },
        "controllers.Transaction": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "minimum": 0, "example": 14.03},
                "category": {"type": "string", "example": "food"},
                "date": {"type": "string", "example": "2024-01-15"},
                "description": {"type": "string", "example": "Burrito at the food truck"},
                "id": {"type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "name": {"type": "string", "example": "Lunch"},
                "type": {"type": "string", "example": "expense"}
            }
        },
        "controllers.TransactionEditable": {
            "type": "object",
            "properties": {
                "amount": {"type": "number", "minimum": 0, "example": 14.03},
                "category": {"type": "string", "example": "food"},
                "date": {"type": "string", "example": "2024-01-15"},
                "description": {"type": "string", "example": "Burrito at the food truck"},
                "name": {"type": "string", "example": "Lunch"},
                "type": {"type": "string", "example": "expense"}
            }
        },
        "controllers.httpError": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "the id query parameter must be set"}
            }
        },
        "controllers.httpMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Transaction deleted successfully"}
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "goVersion": {"type": "string", "example": "go1.25.5"},
                        "version": {"type": "string", "example": "1.1.0"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
