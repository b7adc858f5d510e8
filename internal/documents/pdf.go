package documents

import (
	"bytes"
	"fmt"
	"strings"
)

// Converter renders rate-confirmation text into a viewable document.
type Converter interface {
	Convert(content string) ([]byte, error)
}

// PDFConverter writes a single-page PDF with the content laid out as
// monospaced lines. The output targets PDF 1.4 viewers.
type PDFConverter struct{}

// NewPDFConverter returns a converter producing PDF bytes.
func NewPDFConverter() *PDFConverter {
	return &PDFConverter{}
}

const (
	pageWidth   = 612
	pageHeight  = 792
	fontSize    = 10
	lineSpacing = 14
	marginLeft  = 48
	marginTop   = 48
	maxLineLen  = 100
)

// Convert renders the text content as a PDF document.
func (c *PDFConverter) Convert(content string) ([]byte, error) {
	lines := wrapLines(content)

	var text bytes.Buffer
	text.WriteString("BT\n")
	fmt.Fprintf(&text, "/F1 %d Tf\n", fontSize)
	fmt.Fprintf(&text, "%d %d Td\n", marginLeft, pageHeight-marginTop)
	fmt.Fprintf(&text, "%d TL\n", lineSpacing)
	for _, line := range lines {
		fmt.Fprintf(&text, "(%s) Tj\nT*\n", escapePDFString(line))
	}
	text.WriteString("ET\n")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>", pageWidth, pageHeight),
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", text.Len(), text.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier >>",
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xrefStart := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", len(objects)+1)
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)

	return out.Bytes(), nil
}

func wrapLines(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	raw := strings.Split(normalized, "\n")

	lines := []string{}
	for _, line := range raw {
		for len(line) > maxLineLen {
			lines = append(lines, line[:maxLineLen])
			line = line[maxLineLen:]
		}
		lines = append(lines, line)
	}
	return lines
}

func escapePDFString(s string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(s)
}
