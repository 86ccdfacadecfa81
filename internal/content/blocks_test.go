package content

import (
	"reflect"
	"testing"
)

func TestSegmentHeadingsAndParagraph(t *testing.T) {
	body := "# Título\n\n### Sección\n\nPrimera línea\nsegunda línea."
	got := Segment(body)
	want := []Block{
		{Kind: KindHeading, Text: "Título"},
		{Kind: KindSection, Text: "Sección"},
		{Kind: KindParagraph, Text: "Primera línea segunda línea."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %+v, want %+v", got, want)
	}
}

func TestSegmentCodeFence(t *testing.T) {
	body := "Intro.\n\n```python\nx = 1\n\ny = 2\n```\n\nOutro."
	got := Segment(body)
	want := []Block{
		{Kind: KindParagraph, Text: "Intro."},
		{Kind: KindCode, Text: "x = 1\n\ny = 2", Language: "python"},
		{Kind: KindParagraph, Text: "Outro."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %+v, want %+v", got, want)
	}
}

func TestSegmentFenceLanguage(t *testing.T) {
	cases := []struct {
		info string
		want string
	}{
		{"python", "python"},
		{"xml", "xml"},
		{"", "text"},
		{"python copy me", "text"},
		{"  ", "text"},
	}
	for _, c := range cases {
		if got := fenceLanguage(c.info); got != c.want {
			t.Errorf("fenceLanguage(%q) = %q, want %q", c.info, got, c.want)
		}
	}
}

func TestSegmentUnterminatedFence(t *testing.T) {
	got := Segment("```python\nx = 1")
	want := []Block{{Kind: KindCode, Text: "x = 1", Language: "python"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %+v, want %+v", got, want)
	}
}

func TestSegmentCallouts(t *testing.T) {
	body := "**Nota:** Recuerda reiniciar el servidor.\n\n**Tip:** Usa --dev=all."
	got := Segment(body)
	want := []Block{
		{Kind: KindCallout, Label: "Nota", Text: "Recuerda reiniciar el servidor."},
		{Kind: KindCallout, Label: "Tip", Text: "Usa --dev=all."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %+v, want %+v", got, want)
	}
}

func TestSegmentList(t *testing.T) {
	body := "Campos clave:\n- name\n- depends\n- data"
	got := Segment(body)
	want := []Block{
		{Kind: KindParagraph, Text: "Campos clave:"},
		{Kind: KindList, Text: "name\ndepends\ndata"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Segment() = %+v, want %+v", got, want)
	}
}

func TestSegmentRealLessonBodies(t *testing.T) {
	// Every authored lesson body must segment into at least one block and
	// never produce an empty-text prose block.
	bodies := []string{
		"# El Manifiesto\n\nEl archivo `__manifest__.py` es la tarjeta de identidad.\n\n```python\n{\n    'name': 'Mi Módulo',\n}\n```\n\n**Nota:** Sin este archivo, Odoo ignora el directorio.",
	}
	for _, body := range bodies {
		for _, b := range Segment(body) {
			if b.Kind != KindCode && b.Text == "" {
				t.Errorf("empty %s block from body %q", b.Kind, body)
			}
		}
	}
}
