package mcpserver

// enrollmentOAS is a small OpenAPI 3.0 document with one allOf request body.
const enrollmentOAS = `{
  "openapi": "3.0.3",
  "info": {"title": "Enrollment API", "version": "1.0.0"},
  "paths": {
    "/persons": {
      "post": {
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "allOf": [
                  {"$ref": "#/components/schemas/Base"},
                  {"type": "object", "properties": {"name": {"type": "string"}}}
                ]
              }
            }
          }
        },
        "responses": {
          "201": {
            "description": "Created",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Base"}}}
          },
          "400": {
            "description": "Bad request",
            "content": {"application/json": {}}
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Base": {
        "type": "object",
        "required": ["id"],
        "properties": {"id": {"type": "string", "format": "uuid"}}
      },
      "Opaque": {"type": "object"}
    }
  }
}`

const baseExample = `{"id": "123e4567-e89b-12d3-a456-426614174000"}`
