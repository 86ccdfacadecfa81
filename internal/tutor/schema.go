package tutor

import "github.com/abhisek/odootrail/internal/llm"

// ValidationSchema defines the JSON schema for code validation results.
var ValidationSchema = &llm.Schema{
	Name:        "code-validation",
	Description: "Verdict of a simulated run of the student's code against the exercise task",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"valid": map[string]any{
				"type":        "boolean",
				"description": "true si el código cumple la tarea, false si falla",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Consejo breve o felicitación en español",
			},
			"consoleOutput": map[string]any{
				"type":        "string",
				"description": "Texto crudo de la terminal simulada, incluyendo logs o errores",
			},
		},
		"required":             []any{"valid", "feedback", "consoleOutput"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for generated quiz questions.
var QuizSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A technical multiple-choice question derived from lesson content",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "La pregunta, en español",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    2,
				"description": "Opciones de respuesta ordenadas",
			},
			"correctIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "Índice (base 0) de la opción correcta",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Explicación breve de la respuesta correcta",
			},
		},
		"required":             []any{"question", "options", "correctIndex", "explanation"},
		"additionalProperties": false,
	},
}
