package tutor

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const chatSystemPromptTemplate = `Eres un instructor experto en Odoo (ERP). Tu nombre es "OdooBot".
Ayudas a estudiantes a aprender Desarrollo en Odoo.

IMPORTANTE:
1. Céntrate exclusivamente en Odoo v16 y v17.
2. Si te preguntan sobre frontend, habla siempre de OWL (Odoo Web Library), no de widgets antiguos de jQuery.
3. Tus explicaciones deben ser técnicas pero accesibles.
4. Sigue el plan de estudios: Junior (Fundamentos, Modelos), Middle (Herencia, Seguridad), Senior (Automatización, OWL).

Contexto actual de la lección:
%s

Reglas:
1. Sé conciso y didáctico.
2. Si te piden código, usa bloques de código.
3. Responde siempre en Español.
4. Si el usuario pregunta algo no relacionado con Odoo, redirígelo amablemente.`

func buildChatSystemPrompt(lessonContext string) string {
	return fmt.Sprintf(chatSystemPromptTemplate, lessonContext)
}

const validateSystemPrompt = `Actúa como un compilador e intérprete flexible para un curso de Odoo.`

func buildValidateUserMessage(task, code string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Tarea del Ejercicio: %s\n\n", task))
	b.WriteString("Código enviado por el usuario:\n")
	b.WriteString("```\n")
	b.WriteString(code)
	b.WriteString("\n```\n")

	b.WriteString(`
Acciones:
1. Analiza si el código resuelve la tarea correctamente.
2. IMPORTANTE: Si la tarea es simple (ej. "Definir una clase Python básica" sin importar odoo), valídala como Python puro. No exijas imports de Odoo si no son necesarios para la tarea.
3. Simula la ejecución del código.
   - Si es código Odoo, simula logs del servidor realistas (ej. "INFO: odoo.modules.loading: loading 1 modules...").
   - Si es Python puro, muestra el stdout.
   - Si hay errores de sintaxis, muestra un Traceback breve.

Devuelve un JSON con:
- valid: boolean (true si cumple la tarea, false si falla)
- feedback: string (Un consejo breve o felicitación EN ESPAÑOL. Explica por qué falló o por qué está bien).
- consoleOutput: string (texto crudo que iría en la terminal, incluyendo logs o errores).`)

	return b.String()
}

// quizContextLimit bounds how much lesson content goes into the quiz prompt.
const quizContextLimit = 1000

func buildQuizUserMessage(lessonContent string) string {
	excerpt := lessonContent
	if len(excerpt) > quizContextLimit {
		cut := quizContextLimit
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut]
	}

	var b strings.Builder
	b.WriteString("Basado en este contenido de lección de Odoo:\n")
	b.WriteString(fmt.Sprintf("%q...\n\n", excerpt))
	b.WriteString("Genera una pregunta de opción múltiple técnica en ESPAÑOL.\n")
	b.WriteString("Devuelve JSON.")
	return b.String()
}
