package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionsSchema constrains the question payload shape before it is
// decoded. Both the batch form (categories of question lists) and the
// sequential form (a flat questions list) are accepted. correctAnswer
// is required only for objective types: writing-prompt and
// text-analysis questions are graded locally and carry no fixed answer.
const questionsSchema = `{
	"type": "object",
	"properties": {
		"categories": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"questions": {
						"type": "array",
						"items": {
							"type": "object",
							"properties": {
								"text": {"type": "string"},
								"type": {"type": "string"},
								"correctAnswer": {"type": "string"},
								"wrongAnswers": {
									"type": "array",
									"items": {"type": "string"}
								},
								"explanation": {"type": "string"}
							},
							"required": ["text", "type"],
							"if": {
								"properties": {
									"type": {"enum": ["writing-prompt", "text-analysis"]}
								}
							},
							"else": {"required": ["correctAnswer"]}
						}
					}
				},
				"required": ["questions"]
			}
		},
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"text": {"type": "string"},
					"question": {"type": "string"},
					"answer": {"type": "string"},
					"distractors": {
						"type": "array",
						"items": {"type": "string"}
					},
					"explanation": {"type": "string"}
				},
				"required": ["answer"]
			}
		}
	}
}`

var (
	compileQuestions sync.Once
	compiledSchema   *jsonschema.Schema
	compileErr       error
)

// validateQuestionsPayload checks raw question JSON against the schema
// before any decoding happens. The compiled schema is built once and
// reused across fetches.
func validateQuestionsPayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid question payload: %w", err)
	}

	compileQuestions.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionsSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://questions.json", def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://questions.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile questions schema: %w", compileErr)
	}

	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("question payload failed validation: %w", err)
	}
	return nil
}
