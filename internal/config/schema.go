package config

// schemaJSON validates the raw configuration document before it is
// decoded into Config.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "spriterig configuration",
  "type": "object",
  "required": ["version"],
  "additionalProperties": false,
  "properties": {
    "version": { "type": "string" },
    "builder": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "kind": { "type": "string", "enum": ["spritedump", "exec"] },
        "command": {
          "type": "array",
          "items": { "type": "string", "minLength": 1 },
          "minItems": 1
        },
        "params": { "type": "object" }
      }
    },
    "viewer": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "command": {
          "type": "array",
          "items": { "type": "string", "minLength": 1 },
          "minItems": 1
        },
        "disabled": { "type": "boolean" }
      }
    },
    "output": { "type": "string", "minLength": 1 },
    "watch": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "debounce": { "type": "string" }
      }
    },
    "log": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "to_file": { "type": "boolean" },
        "file": { "type": "string" }
      }
    }
  }
}`
