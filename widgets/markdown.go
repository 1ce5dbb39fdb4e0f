package widgets

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/gdamore/tcell/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/odvcencio/ripple-ui/state"
)

// span is a run of text with one style.
type span struct {
	text  string
	style tcell.Style
}

type styledLine []span

func (l styledLine) String() string {
	var b strings.Builder
	for _, sp := range l {
		b.WriteString(sp.text)
	}
	return b.String()
}

// MarkdownView renders an observable markdown document as styled lines.
// Headings, emphasis, lists, blockquotes and links are styled directly;
// fenced code blocks are token-highlighted.
type MarkdownView struct {
	Base
	source  state.Readable[string]
	subs    state.Subscriptions
	md      goldmark.Markdown
	lines   []styledLine
	mounted bool

	baseStyle  tcell.Style
	codeStyle  tcell.Style
	quoteStyle tcell.Style
}

// NewMarkdownView creates a view bound to an observable markdown source.
func NewMarkdownView(source state.Readable[string]) *MarkdownView {
	m := &MarkdownView{
		source:     source,
		md:         goldmark.New(),
		baseStyle:  tcell.StyleDefault,
		codeStyle:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
		quoteStyle: tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true),
	}
	if source != nil {
		m.lines = m.parse(source.Get())
	}
	return m
}

// SetScheduler routes subscription callbacks through scheduler.
// Call before Mount.
func (m *MarkdownView) SetScheduler(scheduler state.Scheduler) {
	m.subs.SetScheduler(scheduler)
}

// Lines returns the rendered document as plain text lines.
func (m *MarkdownView) Lines() []string {
	out := make([]string, len(m.lines))
	for i, line := range m.lines {
		out[i] = line.String()
	}
	return out
}

// Mount subscribes to the source document.
func (m *MarkdownView) Mount() {
	m.mounted = true
	m.subs.Clear()
	if m.source == nil {
		m.lines = nil
		return
	}
	state.Observe(&m.subs, m.source, m.onNext)
}

// Unmount drops the subscription.
func (m *MarkdownView) Unmount() {
	m.mounted = false
	m.subs.Clear()
}

// Render draws the document into its bounds, clipping to width and height.
func (m *MarkdownView) Render(screen tcell.Screen) {
	bounds := m.Bounds()
	if bounds.Width == 0 || bounds.Height == 0 {
		return
	}
	maxX := bounds.X + bounds.Width
	for i, line := range m.lines {
		if i >= bounds.Height {
			break
		}
		x := bounds.X
		y := bounds.Y + i
		for _, sp := range line {
			if x >= maxX {
				break
			}
			setString(screen, x, y, maxX, sp.text, sp.style)
			x += textWidth(sp.text)
		}
	}
	m.ClearInvalidation()
}

func (m *MarkdownView) onNext(doc string) {
	if !m.mounted {
		return
	}
	m.lines = m.parse(doc)
	m.Invalidate()
}

func (m *MarkdownView) parse(doc string) []styledLine {
	src := []byte(doc)
	root := m.md.Parser().Parse(gmtext.NewReader(src))

	var lines []styledLine
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		block := m.renderBlock(n, src)
		if block == nil {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, styledLine{})
		}
		lines = append(lines, block...)
	}
	return lines
}

func (m *MarkdownView) renderBlock(n ast.Node, src []byte) []styledLine {
	switch t := n.(type) {
	case *ast.Heading:
		style := m.baseStyle.Bold(true)
		if t.Level == 1 {
			style = style.Underline(true)
		}
		return []styledLine{m.inline(n, src, style)}

	case *ast.Paragraph, *ast.TextBlock:
		return []styledLine{m.inline(n, src, m.baseStyle)}

	case *ast.FencedCodeBlock:
		return m.highlight(blockText(t, src), string(t.Language(src)))

	case *ast.CodeBlock:
		return m.highlight(blockText(t, src), "")

	case *ast.List:
		var out []styledLine
		index := t.Start
		if index == 0 {
			index = 1
		}
		for item := t.FirstChild(); item != nil; item = item.NextSibling() {
			marker := "• "
			if t.IsOrdered() {
				marker = strconv.Itoa(index) + ". "
				index++
			}
			line := styledLine{{text: marker, style: m.baseStyle}}
			if first := item.FirstChild(); first != nil {
				line = append(line, m.inline(first, src, m.baseStyle)...)
			}
			out = append(out, line)
		}
		return out

	case *ast.Blockquote:
		var out []styledLine
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			line := styledLine{{text: "> ", style: m.quoteStyle}}
			line = append(line, m.inline(c, src, m.quoteStyle)...)
			out = append(out, line)
		}
		return out

	case *ast.ThematicBreak:
		return []styledLine{{{text: strings.Repeat("─", 8), style: m.quoteStyle}}}

	default:
		return nil
	}
}

// inline flattens a block's inline children into a single styled line.
func (m *MarkdownView) inline(n ast.Node, src []byte, style tcell.Style) styledLine {
	return m.appendInline(nil, n, src, style)
}

func (m *MarkdownView) appendInline(spans styledLine, n ast.Node, src []byte, style tcell.Style) styledLine {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			spans = append(spans, span{text: string(t.Segment.Value(src)), style: style})
			if t.SoftLineBreak() || t.HardLineBreak() {
				spans = append(spans, span{text: " ", style: style})
			}
		case *ast.Emphasis:
			emphasized := style.Italic(true)
			if t.Level >= 2 {
				emphasized = style.Bold(true)
			}
			spans = m.appendInline(spans, c, src, emphasized)
		case *ast.CodeSpan:
			spans = m.appendInline(spans, c, src, m.codeStyle)
		case *ast.Link:
			spans = m.appendInline(spans, c, src, style.Underline(true))
		case *ast.AutoLink:
			spans = append(spans, span{text: string(t.URL(src)), style: style.Underline(true)})
		case *ast.Image:
			spans = m.appendInline(spans, c, src, style)
		default:
			if c.HasChildren() {
				spans = m.appendInline(spans, c, src, style)
			}
		}
	}
	return spans
}

func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

func (m *MarkdownView) highlight(code, lang string) []styledLine {
	code = strings.TrimRight(code, "\n")
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		var out []styledLine
		for _, line := range strings.Split(code, "\n") {
			out = append(out, styledLine{{text: line, style: m.codeStyle}})
		}
		return out
	}

	out := []styledLine{nil}
	for _, token := range iterator.Tokens() {
		style := m.tokenStyle(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if part != "" {
				last := len(out) - 1
				out[last] = append(out[last], span{text: part, style: style})
			}
		}
	}
	return out
}

func (m *MarkdownView) tokenStyle(t chroma.TokenType) tcell.Style {
	switch {
	case t.InCategory(chroma.Keyword):
		return tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	case t.InSubCategory(chroma.LiteralString):
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case t.InSubCategory(chroma.LiteralNumber):
		return tcell.StyleDefault.Foreground(tcell.ColorAqua)
	case t.InCategory(chroma.Comment):
		return tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true)
	case t == chroma.NameFunction:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case t.InCategory(chroma.Operator), t.InCategory(chroma.Punctuation):
		return tcell.StyleDefault.Foreground(tcell.ColorSilver)
	default:
		return m.codeStyle
	}
}
