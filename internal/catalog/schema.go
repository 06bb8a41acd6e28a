package catalog

// packSchema validates question pack files at import time, before any
// question reaches the catalog or the usage tracker. Points are
// restricted to the board row values.
const packSchema = `{
  "type": "object",
  "required": ["name", "categories"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "version": {"type": "integer", "minimum": 1},
    "categories": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "questions": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["text", "answer"],
              "properties": {
                "id": {"type": "string"},
                "text": {"type": "string", "minLength": 1},
                "answer": {"type": "string", "minLength": 1},
                "points": {"type": "integer", "enum": [100, 200, 300, 400, 500]}
              }
            }
          },
          "questionIds": {
            "type": "array",
            "items": {"type": "string", "minLength": 1}
          }
        }
      }
    }
  }
}`
