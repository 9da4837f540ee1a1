// Package markdown renders the restricted markdown dialect returned by the
// itinerary model (headings, emphasis, inline code, fenced blocks, bullet and
// numbered lists, paragraphs) into HTML.
//
// All source text is escaped before any markup is produced, so model output
// can never inject tags into the page.
package markdown

import (
	"regexp"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

// Element names a block or inline tag the renderer emits.
type Element string

const (
	H1            Element = "h1"
	H2            Element = "h2"
	H3            Element = "h3"
	Paragraph     Element = "p"
	UnorderedList Element = "ul"
	OrderedList   Element = "ol"
	ListItem      Element = "li"
	Strong        Element = "strong"
	Em            Element = "em"
	Code          Element = "code"
	Pre           Element = "pre"
)

var defaultClasses = map[Element]string{
	H1:            "text-3xl font-bold text-orange-600 mt-8 mb-4",
	H2:            "text-2xl font-bold text-orange-600 mt-8 mb-4",
	H3:            "text-xl font-bold text-orange-600 mt-6 mb-3",
	Paragraph:     "text-gray-700 leading-relaxed my-3",
	UnorderedList: "list-disc list-inside space-y-2 ml-4 my-3",
	OrderedList:   "list-decimal list-inside space-y-2 ml-4 my-3",
	ListItem:      "text-gray-700",
	Strong:        "font-semibold text-gray-900",
	Em:            "italic",
	Code:          "px-2 py-1 bg-gray-100 border border-gray-200 rounded text-sm font-mono",
	Pre:           "bg-gray-900 text-gray-100 border border-gray-700 p-4 rounded-lg overflow-x-auto my-4",
}

// Options customizes the rendered markup. Classes are merged over the
// defaults, so "text-red-600" on H1 replaces only the text colour.
type Options struct {
	Classes map[Element]string
}

type Renderer struct {
	classes map[Element]string
}

func New(opts Options) *Renderer {
	classes := make(map[Element]string, len(defaultClasses))
	for el, cls := range defaultClasses {
		classes[el] = cls
	}
	for el, cls := range opts.Classes {
		classes[el] = twmerge.Merge(classes[el], cls)
	}
	return &Renderer{classes: classes}
}

var defaultRenderer = New(Options{})

// Render converts text with the default classes.
func Render(text string) string {
	return defaultRenderer.Render(text)
}

// RenderInline converts emphasis and code spans only, keeping line breaks.
func RenderInline(text string) string {
	return defaultRenderer.RenderInline(text)
}

var (
	orderedItemRe = regexp.MustCompile(`^\d+\.\s+`)
	boldItalicRe  = regexp.MustCompile(`\*\*\*(.+?)\*\*\*`)
	boldRe        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe      = regexp.MustCompile(`\*([^*]+)\*`)
	fenceInfoRe   = regexp.MustCompile(`^[A-Za-z0-9_+#.-]+$`)
)

// codeMark brackets the index of a code span while emphasis runs.
const codeMark = "\x00"

const fence = "```"

type listKind Element

const noList listKind = ""

func (r *Renderer) Render(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var b strings.Builder
	open := noList
	closeList := func() {
		if open != noList {
			b.WriteString("</" + string(open) + ">")
			open = noList
		}
	}
	openList := func(kind listKind) {
		if open == kind {
			return
		}
		closeList()
		r.openTag(&b, Element(kind))
		open = kind
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(line, fence) {
			closeList()
			i = r.writeFence(&b, lines, i)
			continue
		}

		if line == "" {
			closeList()
			continue
		}

		if el, rest, ok := heading(line); ok {
			closeList()
			r.writeBlock(&b, el, r.inline(rest))
			continue
		}

		if item, ok := unorderedItem(line); ok {
			openList(listKind(UnorderedList))
			r.writeBlock(&b, ListItem, r.inline(item))
			continue
		}

		if loc := orderedItemRe.FindStringIndex(line); loc != nil {
			openList(listKind(OrderedList))
			r.writeBlock(&b, ListItem, r.inline(line[loc[1]:]))
			continue
		}

		closeList()
		r.writeBlock(&b, Paragraph, r.inline(line))
	}
	closeList()

	return b.String()
}

func (r *Renderer) RenderInline(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, r.inline(line))
	}
	return strings.Join(out, "<br>")
}

// writeFence emits the fenced block starting at lines[start] and returns the
// index of its closing fence. An unclosed fence runs to the end of input.
func (r *Renderer) writeFence(b *strings.Builder, lines []string, start int) int {
	opening := strings.TrimPrefix(strings.TrimSpace(lines[start]), fence)

	// ```single line``` followed by any trailing text
	if idx := strings.Index(opening, fence); idx >= 0 {
		r.writePre(b, "", []string{opening[:idx]})
		if rest := strings.TrimSpace(opening[idx+len(fence):]); rest != "" {
			r.writeBlock(b, Paragraph, r.inline(rest))
		}
		return start
	}

	var body []string
	lang := strings.TrimSpace(opening)
	if lang != "" && !fenceInfoRe.MatchString(lang) {
		body = append(body, lang)
		lang = ""
	}

	end := start + 1
	for ; end < len(lines); end++ {
		if strings.HasPrefix(strings.TrimSpace(lines[end]), fence) {
			break
		}
		body = append(body, lines[end])
	}
	r.writePre(b, lang, body)
	return end
}

func (r *Renderer) writePre(b *strings.Builder, lang string, body []string) {
	r.openTag(b, Pre)
	if lang != "" {
		b.WriteString(`<code class="language-` + templ.EscapeString(lang) + `">`)
	} else {
		b.WriteString("<code>")
	}
	b.WriteString(templ.EscapeString(strings.Join(body, "\n")))
	b.WriteString("</code></pre>")
}

func (r *Renderer) openTag(b *strings.Builder, el Element) {
	b.WriteString("<" + string(el))
	if cls := r.classes[el]; cls != "" {
		b.WriteString(` class="` + templ.EscapeString(cls) + `"`)
	}
	b.WriteString(">")
}

func (r *Renderer) writeBlock(b *strings.Builder, el Element, inner string) {
	r.openTag(b, el)
	b.WriteString(inner)
	b.WriteString("</" + string(el) + ">")
}

func heading(line string) (Element, string, bool) {
	switch {
	case strings.HasPrefix(line, "### "):
		return H3, strings.TrimSpace(line[4:]), true
	case strings.HasPrefix(line, "## "):
		return H2, strings.TrimSpace(line[3:]), true
	case strings.HasPrefix(line, "# "):
		return H1, strings.TrimSpace(line[2:]), true
	}
	return "", "", false
}

func unorderedItem(line string) (string, bool) {
	if len(line) < 2 || (line[0] != '-' && line[0] != '*') {
		return "", false
	}
	if line[1] != ' ' && line[1] != '\t' {
		return "", false
	}
	return strings.TrimSpace(line[2:]), true
}

// inline escapes s and converts code spans, bold and italic. Code spans are
// swapped for placeholders first so emphasis can run across the whole line
// without touching their contents.
func (r *Renderer) inline(s string) string {
	s = strings.ReplaceAll(s, codeMark, "")

	var b strings.Builder
	var spans []string
	for {
		open := strings.IndexByte(s, '`')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(s[open+1:], '`')
		if closing <= 0 {
			// no closing tick or an empty `` pair: keep one tick literal
			b.WriteString(s[:open+1])
			s = s[open+1:]
			continue
		}
		b.WriteString(s[:open])
		b.WriteString(codeMark + strconv.Itoa(len(spans)) + codeMark)
		spans = append(spans, s[open+1:open+1+closing])
		s = s[open+1+closing+1:]
	}
	b.WriteString(s)

	out := r.emphasis(b.String())
	for i, code := range spans {
		var cb strings.Builder
		r.writeBlock(&cb, Code, templ.EscapeString(code))
		out = strings.Replace(out, codeMark+strconv.Itoa(i)+codeMark, cb.String(), 1)
	}
	return out
}

func (r *Renderer) emphasis(s string) string {
	s = templ.EscapeString(s)
	s = r.replace(s, boldItalicRe, 3, Strong, Em)
	s = r.replace(s, boldRe, 2, Strong)
	return r.replace(s, italicRe, 1, Em)
}

// replace wraps each match of re, minus width marker characters on either
// side, in els. Matches that would cut through an earlier tag stay literal.
func (r *Renderer) replace(s string, re *regexp.Regexp, width int, els ...Element) string {
	return re.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[width : len(m)-width]
		if !balanced(inner) {
			return m
		}
		var b strings.Builder
		for _, el := range els {
			r.openTag(&b, el)
		}
		b.WriteString(inner)
		for i := len(els) - 1; i >= 0; i-- {
			b.WriteString("</" + string(els[i]) + ">")
		}
		return b.String()
	})
}

// balanced reports whether every tag opened in s is closed in s. Text is
// escaped before emphasis runs, so any '<' belongs to a generated tag.
func balanced(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		if strings.HasPrefix(s[i:], "</") {
			depth--
		} else {
			depth++
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}
