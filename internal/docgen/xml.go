package docgen

import (
	"fmt"
	"strings"
)

// Low-level WordprocessingML fragment helpers. Components assemble these
// strings into paragraphs and tables; the package writer wraps them into
// a complete word/document.xml part.

// escape escapes a string for inclusion in XML text content or attributes
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// runFormat describes character formatting for a text run
type runFormat struct {
	bold   bool
	italic bool
	color  string // RRGGBB, empty for inherited
	size   int    // half-points, 0 for inherited
}

// runXML renders a single text run. Embedded newlines become soft line
// breaks within the run.
func runXML(text string, f runFormat) string {
	var b strings.Builder
	b.WriteString("<w:r>")

	if f.bold || f.italic || f.color != "" || f.size > 0 {
		b.WriteString("<w:rPr>")
		if f.bold {
			b.WriteString("<w:b/>")
		}
		if f.italic {
			b.WriteString("<w:i/>")
		}
		if f.color != "" {
			fmt.Fprintf(&b, `<w:color w:val=%q/>`, f.color)
		}
		if f.size > 0 {
			fmt.Fprintf(&b, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, f.size, f.size)
		}
		b.WriteString("</w:rPr>")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		fmt.Fprintf(&b, `<w:t xml:space="preserve">%s</w:t>`, escape(line))
	}

	b.WriteString("</w:r>")
	return b.String()
}

// paraXML renders a paragraph with optional paragraph properties
func paraXML(props string, runs ...string) string {
	var b strings.Builder
	b.WriteString("<w:p>")
	if props != "" {
		b.WriteString("<w:pPr>")
		b.WriteString(props)
		b.WriteString("</w:pPr>")
	}
	for _, r := range runs {
		b.WriteString(r)
	}
	b.WriteString("</w:p>")
	return b.String()
}

// pageBreakXML renders an explicit page break paragraph
func pageBreakXML() string {
	return `<w:p><w:r><w:br w:type="page"/></w:r></w:p>`
}

// emptyParaXML renders an empty paragraph used for vertical spacing
func emptyParaXML() string {
	return `<w:p><w:pPr><w:spacing w:after="120"/></w:pPr></w:p>`
}

// centered is the paragraph property for center alignment
const centered = `<w:jc w:val="center"/>`

// tblXML renders a table with the given column grid. When borderColor is
// non-empty, single borders are drawn around and inside the table.
func tblXML(widths []int, borderColor string, rows ...string) string {
	total := 0
	for _, w := range widths {
		total += w
	}

	var b strings.Builder
	b.WriteString("<w:tbl><w:tblPr>")
	fmt.Fprintf(&b, `<w:tblW w:w="%d" w:type="dxa"/>`, total)
	if borderColor != "" {
		b.WriteString("<w:tblBorders>")
		for _, side := range []string{"top", "left", "bottom", "right", "insideH", "insideV"} {
			fmt.Fprintf(&b, `<w:%s w:val="single" w:sz="4" w:space="0" w:color=%q/>`, side, borderColor)
		}
		b.WriteString("</w:tblBorders>")
	}
	b.WriteString(`<w:tblLayout w:type="fixed"/></w:tblPr><w:tblGrid>`)
	for _, w := range widths {
		fmt.Fprintf(&b, `<w:gridCol w:w="%d"/>`, w)
	}
	b.WriteString("</w:tblGrid>")
	for _, r := range rows {
		b.WriteString(r)
	}
	b.WriteString("</w:tbl>")
	return b.String()
}

// trXML renders a table row from pre-rendered cells
func trXML(cells ...string) string {
	return "<w:tr>" + strings.Join(cells, "") + "</w:tr>"
}

// tcXML renders a table cell. A fill of "" leaves the cell unshaded.
// Cells always contain at least one paragraph, as OOXML requires.
func tcXML(width int, fill string, blocks ...string) string {
	var b strings.Builder
	b.WriteString("<w:tc><w:tcPr>")
	fmt.Fprintf(&b, `<w:tcW w:w="%d" w:type="dxa"/>`, width)
	if fill != "" {
		fmt.Fprintf(&b, `<w:shd w:val="clear" w:color="auto" w:fill=%q/>`, fill)
	}
	b.WriteString(`<w:vAlign w:val="center"/></w:tcPr>`)
	if len(blocks) == 0 {
		b.WriteString("<w:p/>")
	}
	for _, blk := range blocks {
		b.WriteString(blk)
	}
	b.WriteString("</w:tc>")
	return b.String()
}
