package catalog

// Practice-mode challenges. The "chal-" id prefix is kept for continuity with
// stored completion records, but logic routes on Lesson.Origin, never the id.
var challenges = []Challenge{
	{
		ID:          "chal-singleton",
		Title:       "Debug: Singleton Error",
		Description: "Corrige el error común de acceder a múltiples registros como si fuera uno solo.",
		Difficulty:  DifficultyBeginner,
		XP:          50,
		Task:        "El método `action_confirm` falla cuando se seleccionan varios registros. Usa un bucle `for` para iterar sobre `self` y corregirlo.",
		InitialCode: `class SaleOrder(models.Model):
    _inherit = 'sale.order'

    def action_confirm(self):
        # ERROR: Esto fallará si self tiene más de 1 registro
        if self.amount_total < 0:
            raise ValidationError("El total no puede ser negativo")
        return super().action_confirm()`,
	},
	{
		ID:          "chal-sql-injection",
		Title:       "Seguridad: Inyección SQL",
		Description: "Refactoriza esta consulta SQL insegura para usar parámetros.",
		Difficulty:  DifficultyIntermediate,
		XP:          75,
		Task:        "Reemplaza la interpolación de cadenas f-string con parámetros seguros en `self.env.cr.execute`.",
		InitialCode: `def find_partners_by_email(self, email):
    # PELIGRO: Vulnerable a inyección SQL
    query = f"SELECT id FROM res_partner WHERE email = '{email}'"
    self.env.cr.execute(query)
    return self.env.cr.fetchall()`,
	},
	{
		ID:          "chal-create-invoice",
		Title:       "ORM: Crear Factura",
		Description: "Automatiza la creación de una factura desde código.",
		Difficulty:  DifficultyAdvanced,
		XP:          100,
		Task:        "Completa el método para crear una factura (account.move) con una línea de factura (account.move.line) usando el ORM.",
		InitialCode: `def create_simple_invoice(self, partner_id, amount):
    # TODO: Usa self.env['account.move'].create()
    pass`,
	},
}

// Snippets is the cheatsheet available from the code editor.
var Snippets = []Snippet{
	{Label: "Char Field", Category: SnippetFields, Code: "name = fields.Char(string='Name', required=True)"},
	{Label: "Integer Field", Category: SnippetFields, Code: "age = fields.Integer(string='Age')"},
	{Label: "Many2one", Category: SnippetFields, Code: "partner_id = fields.Many2one('res.partner', string='Partner')"},
	{Label: "One2many", Category: SnippetFields, Code: "line_ids = fields.One2many('my.model.line', 'parent_id', string='Lines')"},
	{Label: "Selection", Category: SnippetFields, Code: "state = fields.Selection([('draft', 'Draft'), ('done', 'Done')], default='draft')"},

	{Label: "Create", Category: SnippetORM, Code: "record = self.env['my.model'].create({'name': 'New Record'})"},
	{Label: "Search", Category: SnippetORM, Code: "records = self.env['my.model'].search([('state', '=', 'draft')])"},
	{Label: "Write", Category: SnippetORM, Code: "record.write({'state': 'done'})"},
	{Label: "Unlink", Category: SnippetORM, Code: "record.unlink()"},

	{Label: "Compute Decorator", Category: SnippetMethods, Code: "@api.depends('field_name')\ndef _compute_field_name(self):\n    for record in self:\n        record.field_name = 'Value'"},
	{Label: "Onchange Decorator", Category: SnippetMethods, Code: "@api.onchange('field_name')\ndef _onchange_field_name(self):\n    if self.field_name:\n        self.other_field = 'Value'"},

	{Label: "Form View", Category: SnippetXML, Code: "<record id='view_id' model='ir.ui.view'>\n    <field name='name'>my.model.form</field>\n    <field name='model'>my.model</field>\n    <field name='arch' type='xml'>\n        <form>\n            <sheet>\n                <group>\n                    <field name='name'/>\n                </group>\n            </sheet>\n        </form>\n    </field>\n</record>"},
}

// Tips rotate on the practice panel, one per lesson open.
var Tips = []string{
	"Usa `scaffold` para crear la estructura de tu módulo: `odoo-bin scaffold my_module`.",
	"Siempre define `_description` en tus modelos para evitar warnings en los logs.",
	"Usa `fields.Monetary` para precios; maneja automáticamente la divisa.",
	"En XML, usa `position='after'` o `position='inside'` para heredar vistas sin romperlas.",
	"Recuerda añadir tus archivos CSV de seguridad en el `__manifest__.py`.",
	"Usa `sudo()` con cuidado: salta las reglas de registro y permisos.",
	"Para depurar JS en OWL, usa la extensión de Odoo Debug en Chrome.",
}
