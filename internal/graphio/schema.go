package graphio

const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["skills"],
  "properties": {
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "difficulty": {"type": "number", "minimum": 0, "maximum": 10},
          "bloom_level": {"type": "integer", "minimum": 1, "maximum": 6},
          "estimated_mins": {"type": "integer", "minimum": 0},
          "threshold_concept": {"type": "boolean"},
          "cognitive_load": {"type": "number", "minimum": 0, "maximum": 1},
          "element_interactivity": {"type": "number", "minimum": 0, "maximum": 1},
          "irt": {
            "type": "object",
            "required": ["difficulty", "discrimination"],
            "properties": {
              "difficulty": {"type": "number"},
              "discrimination": {"type": "number", "minimum": 0},
              "guessing": {"type": "number", "minimum": 0, "maximum": 1}
            }
          }
        }
      }
    },
    "prerequisites": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["from_id", "to_id", "strength"],
        "properties": {
          "from_id": {"type": "string", "minLength": 1},
          "to_id": {"type": "string", "minLength": 1},
          "strength": {"enum": ["required", "recommended", "helpful"]},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`
