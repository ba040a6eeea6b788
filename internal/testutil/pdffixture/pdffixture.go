// Package pdffixture builds small, valid PDF documents for tests.
package pdffixture

import (
	"bytes"
	"fmt"
	"strings"
)

var textEscaper = strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)

// Page describes one page of a generated document.
type Page struct {
	// Text is drawn as a single line with the font named /F1.
	Text string
	// Differences, when set, gives the page its own /F1 font object whose
	// encoding applies this /Differences array, e.g. "65 /B".
	Differences string
}

// Build returns a PDF with one page per entry. Each non-empty entry is drawn
// as a single line of Helvetica text; an empty entry yields a page with an
// empty content stream, like an image-only scan as far as text goes.
func Build(pages ...string) []byte {
	specs := make([]Page, len(pages))
	for i, text := range pages {
		specs[i] = Page{Text: text}
	}
	return BuildPages(specs...)
}

// BuildPages returns a PDF with the given pages. Pages without Differences
// share one WinAnsi Helvetica font object.
func BuildPages(pages ...Page) []byte {
	var buf bytes.Buffer
	total := 3 + 3*len(pages)
	offsets := make([]int, total+1)

	writeObject := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+3*i)
	}

	writeObject(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObject(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	writeObject(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, page := range pages {
		pageNum, contentNum, fontNum := 4+3*i, 5+3*i, 6+3*i

		fontRef := 3
		if page.Differences != "" {
			fontRef = fontNum
		}

		stream := ""
		if page.Text != "" {
			stream = fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", textEscaper.Replace(page.Text))
		}
		writeObject(pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			fontRef, contentNum,
		))
		writeObject(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
		writeObject(fontNum, fmt.Sprintf(
			"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding << /Type /Encoding /BaseEncoding /WinAnsiEncoding /Differences [%s] >> >>",
			page.Differences,
		))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", total+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= total; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, xref)

	return buf.Bytes()
}
