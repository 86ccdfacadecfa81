// Package content segments lesson markdown into typed blocks so the TUI can
// render prose, code, and callouts with distinct styles without a full
// markdown parser.
package content

import "strings"

// Kind classifies a rendered block.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindSection   Kind = "section"
	KindParagraph Kind = "paragraph"
	KindList      Kind = "list"
	KindCallout   Kind = "callout"
	KindCode      Kind = "code"
)

// Block is one renderable unit of a lesson body.
type Block struct {
	Kind Kind

	// Text holds the block content with markers stripped: heading text
	// without "#", list items joined by newlines without "- ", callout text
	// without the bold label.
	Text string

	// Language is set for code blocks. Unknown or absent fences default to
	// "text".
	Language string

	// Label is set for callouts: "Nota" or "Tip".
	Label string
}

// Segment splits a lesson body into blocks. Fenced code is kept verbatim;
// everything else is grouped on blank lines and classified by its first line.
func Segment(body string) []Block {
	var blocks []Block
	lines := strings.Split(body, "\n")

	i := 0
	for i < len(lines) {
		line := lines[i]

		if strings.HasPrefix(line, "```") {
			lang, code, next := readFence(lines, i)
			blocks = append(blocks, Block{Kind: KindCode, Text: code, Language: lang})
			i = next
			continue
		}

		if strings.TrimSpace(line) == "" {
			i++
			continue
		}

		// Gather a run of non-blank, non-fence lines.
		start := i
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !strings.HasPrefix(lines[i], "```") {
			i++
		}
		blocks = append(blocks, classify(lines[start:i])...)
	}
	return blocks
}

// readFence consumes a fenced code block starting at lines[open]. It returns
// the language tag, the raw code, and the index after the closing fence. An
// unterminated fence runs to the end of the body.
func readFence(lines []string, open int) (lang, code string, next int) {
	lang = fenceLanguage(strings.TrimPrefix(lines[open], "```"))
	i := open + 1
	var body []string
	for i < len(lines) && !strings.HasPrefix(lines[i], "```") {
		body = append(body, lines[i])
		i++
	}
	if i < len(lines) {
		i++ // closing fence
	}
	return lang, strings.Join(body, "\n"), i
}

// fenceLanguage accepts the fence info string. Only a bare single token
// counts as a language; anything with spaces is treated as untagged.
func fenceLanguage(info string) string {
	info = strings.TrimSpace(info)
	if info == "" || strings.ContainsAny(info, " \t") {
		return "text"
	}
	return info
}

// classify turns one blank-line-delimited run of prose lines into blocks.
// Headings and callouts only count on the first line of a run; a run may
// still mix a lead line with trailing list items, so it is split greedily.
func classify(run []string) []Block {
	var blocks []Block

	for len(run) > 0 {
		first := run[0]
		switch {
		case strings.HasPrefix(first, "# "):
			blocks = append(blocks, Block{Kind: KindHeading, Text: strings.TrimPrefix(first, "# ")})
			run = run[1:]

		case strings.HasPrefix(first, "### "):
			blocks = append(blocks, Block{Kind: KindSection, Text: strings.TrimPrefix(first, "### ")})
			run = run[1:]

		case strings.HasPrefix(first, "**Nota:**"), strings.HasPrefix(first, "**Tip:**"):
			label := "Nota"
			rest := strings.TrimPrefix(first, "**Nota:**")
			if strings.HasPrefix(first, "**Tip:**") {
				label = "Tip"
				rest = strings.TrimPrefix(first, "**Tip:**")
			}
			blocks = append(blocks, Block{Kind: KindCallout, Label: label, Text: strings.TrimSpace(rest)})
			run = run[1:]

		case strings.HasPrefix(first, "- "):
			var items []string
			for len(run) > 0 && strings.HasPrefix(run[0], "- ") {
				items = append(items, strings.TrimPrefix(run[0], "- "))
				run = run[1:]
			}
			blocks = append(blocks, Block{Kind: KindList, Text: strings.Join(items, "\n")})

		default:
			var para []string
			for len(run) > 0 && !breaksParagraph(run[0]) {
				para = append(para, run[0])
				run = run[1:]
			}
			blocks = append(blocks, Block{Kind: KindParagraph, Text: strings.Join(para, " ")})
		}
	}
	return blocks
}

func breaksParagraph(line string) bool {
	return strings.HasPrefix(line, "# ") ||
		strings.HasPrefix(line, "### ") ||
		strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "**Nota:**") ||
		strings.HasPrefix(line, "**Tip:**")
}
