package catalog

import (
	"embed"
	"fmt"
	"strings"
)

// Lesson bodies live as markdown next to the package so authors edit prose,
// not string literals. Missing files surface at init, never at lesson time.
//
//go:embed content/*.md
var contentFS embed.FS

// body loads an embedded lesson body by lesson id. Panics on missing content:
// the curriculum is authored data, and a dangling reference is an authoring
// bug that must fail loudly in tests, not at runtime in front of a learner.
func body(lessonID string) string {
	raw, err := contentFS.ReadFile("content/" + lessonID + ".md")
	if err != nil {
		panic(fmt.Sprintf("catalog: missing content for lesson %s: %v", lessonID, err))
	}
	return strings.TrimRight(string(raw), "\n")
}

// Curriculum returns the full static catalog. The returned value is shared;
// callers must treat it as read-only.
func Curriculum() *Catalog {
	return curriculum
}

var curriculum = &Catalog{
	Tracks:     tracks,
	Challenges: challenges,
}

var tracks = []Track{
	{
		ID:          "track-jr",
		Title:       "Nivel Junior: Fundamentos",
		Level:       LevelJunior,
		Description: "Desde la configuración del entorno hasta tu primer módulo \"Hola Mundo\".",
		Icon:        "🧭",
		Modules: []Module{
			{
				ID:          "mod-f0",
				Title:       "Fase 0: Los Cimientos",
				Description: "Python Avanzado, PostgreSQL y Entorno Docker.",
				Difficulty:  DifficultyBeginner,
				Lessons: []Lesson{
					lesson("les-0-1", "Python para Odoo", TypeCode, 20),
					lesson("les-0-2", "Entorno Docker (Odoo 17)", TypeTheory, 20),
				},
			},
			{
				ID:          "mod-f1",
				Title:       "Fase 1: Estructura del Módulo",
				Description: "Creación del Manifiesto, Modelos y Vistas.",
				Difficulty:  DifficultyBeginner,
				Lessons: []Lesson{
					lesson("les-1-1", "El Manifiesto (__manifest__.py)", TypeTheory, 30),
					lesson("les-1-2", "Tu Primer Modelo (ORM)", TypeCode, 50),
					deck("les-1-3", "Repaso: Estructura del Módulo", 30, []Card{
						{Question: "¿Qué archivo declara las dependencias y datos de un módulo?", Answer: "__manifest__.py"},
						{Question: "¿Qué clase base usan los modelos persistentes?", Answer: "models.Model"},
						{Question: "¿Qué atributo define el nombre técnico de un modelo?", Answer: "_name"},
						{Question: "¿Qué campo es obligatorio marcar con required=True para un título?", Answer: "fields.Char(string='Título', required=True)"},
						{Question: "¿Dónde se declaran los permisos CRUD básicos?", Answer: "security/ir.model.access.csv"},
					}),
				},
			},
		},
	},
	{
		ID:          "track-mid",
		Title:       "Nivel Middle: Lógica de Negocio",
		Level:       LevelMiddle,
		Description: "Relaciones, Herencia, Vistas Avanzadas, Seguridad y Wizards.",
		Icon:        "🗄️",
		Modules: []Module{
			{
				ID:          "mod-f2",
				Title:       "Fase 2: Relaciones y Computados",
				Description: "Many2one, One2many y campos @api.depends.",
				Difficulty:  DifficultyIntermediate,
				Lessons: []Lesson{
					lesson("les-2-1", "Campos Relacionales", TypeTheory, 40),
					lesson("les-2-2", "Campos Computados", TypeCode, 60),
				},
			},
			{
				ID:          "mod-f3",
				Title:       "Fase 3: Herencia y Seguridad",
				Description: "Modificar módulos existentes (Mixins) y Reglas de Acceso.",
				Difficulty:  DifficultyIntermediate,
				Lessons: []Lesson{
					lesson("les-3-1", "Herencia de Modelos (_inherit)", TypeCode, 70),
					lesson("les-3-2", "Seguridad (CSV y Rules)", TypeTheory, 50),
					lesson("les-3-3", "Examen: Herencia y Seguridad", TypeQuiz, 50),
				},
			},
			{
				ID:          "mod-f3-5",
				Title:       "Fase 3.5: Herramientas Low-Code",
				Description: "Uso de Odoo Studio para personalización rápida.",
				Difficulty:  DifficultyIntermediate,
				Lessons: []Lesson{
					lesson("les-studio-1", "Introducción a Odoo Studio", TypeTheory, 40),
				},
			},
			{
				ID:          "mod-f4-mid",
				Title:       "Fase 4: Wizards y Reportes",
				Description: "Creación de asistentes interactivos y reportes PDF.",
				Difficulty:  DifficultyIntermediate,
				Lessons: []Lesson{
					lesson("les-4-1-mid", "Introducción a Wizards (TransientModel)", TypeTheory, 40),
					lesson("les-4-2-mid", "Creando tu primer Wizard", TypeCode, 60),
					lesson("les-4-3-mid", "Reportes PDF con QWeb", TypeCode, 80),
				},
			},
		},
	},
	{
		ID:          "track-sr",
		Title:       "Nivel Senior: Fullstack",
		Level:       LevelSenior,
		Description: "Automatización avanzada, Cron Jobs y Frontend OWL.",
		Icon:        "🧱",
		Modules: []Module{
			{
				ID:          "mod-f5-sr",
				Title:       "Fase 5: Automatización Avanzada",
				Description: "Server Actions y Cron Jobs (Acciones Planificadas).",
				Difficulty:  DifficultyAdvanced,
				Lessons: []Lesson{
					lesson("les-5-1-sr", "Acciones de Servidor", TypeTheory, 60),
					lesson("les-5-2-sr", "Cron Jobs (Scheduled Actions)", TypeCode, 80),
				},
			},
			{
				ID:          "mod-f6-sr",
				Title:       "Fase 6: Frontend OWL",
				Description: "Odoo Web Library: Componentes Reactivos en Odoo 16/17.",
				Difficulty:  DifficultyAdvanced,
				Lessons: []Lesson{
					lesson("les-6-1", "Introducción a OWL", TypeTheory, 100),
					lesson("les-6-2", "Componente OWL Básico", TypeCode, 120),
				},
			},
		},
	},
}

func lesson(id, title string, typ LessonType, xp int) Lesson {
	return Lesson{
		ID:     id,
		Title:  title,
		Type:   typ,
		XP:     xp,
		Origin: OriginCatalog,
		Body:   body(id),
	}
}

func deck(id, title string, xp int, cards []Card) Lesson {
	return Lesson{
		ID:     id,
		Title:  title,
		Type:   TypeFlashcard,
		XP:     xp,
		Origin: OriginCatalog,
		Cards:  cards,
	}
}
