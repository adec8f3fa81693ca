package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the todo server.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>todo — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "todo", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Item": { "type": "object", "properties": { "itemFromJS": { "type": "string" } } },
      "Error": { "type": "object", "properties": { "error": { "type": "string" } } }
    }
  },
  "paths": {
    "/": {
      "get": { "summary": "HTML list of todos with the incomplete count", "responses": { "200": { "description": "rendered page" }, "500": { "description": "store failure" } } }
    },
    "/addTodo": {
      "post": {
        "summary": "Add a todo",
        "requestBody": { "content": {
          "application/x-www-form-urlencoded": { "schema": {"type":"object","properties":{"todoItem":{"type":"string"}}} },
          "application/json": { "schema": {"type":"object","properties":{"todoItem":{"type":"string"}}} }
        }},
        "responses": { "302": { "description": "redirect to /" }, "500": { "description": "store failure" } }
      }
    },
    "/markComplete": {
      "put": { "summary": "Mark the newest todo with this text complete", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Item"}}}}, "responses": { "200": { "description": "\"Marked Complete\"" }, "500": { "description": "store failure" } } }
    },
    "/markUnComplete": {
      "put": { "summary": "Mark the newest todo with this text incomplete", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Item"}}}}, "responses": { "200": { "description": "\"Marked Complete\"" }, "500": { "description": "store failure" } } }
    },
    "/deleteItem": {
      "delete": { "summary": "Delete one todo with this text", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Item"}}}}, "responses": { "200": { "description": "\"Todo Deleted\"" }, "500": { "description": "store failure" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
