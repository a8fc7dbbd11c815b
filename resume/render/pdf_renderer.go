package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"resume-builder/resume/model"
)

// Layout in points on a letter page, origin at the top-left corner.
const (
	pdfMarginX     = 40.0
	pdfMarginTop   = 40.0
	pdfBottomLimit = 60.0
	pdfHeadingStep = 18.0
	pdfBodyStep    = 14.0
	pdfFontFamily  = "Helvetica"
)

// PDFFont is a Helvetica variant used by the layout.
type PDFFont struct {
	Style string
	Size  float64
}

var (
	pdfNameFont    = PDFFont{Style: "B", Size: 14}
	pdfHeadingFont = PDFFont{Style: "B", Size: 12}
	pdfBodyFont    = PDFFont{Style: "", Size: 11}
)

// PlacedLine is one drawn text line: its page (1-based), baseline offset from
// the top of the page, and font.
type PlacedLine struct {
	Page    int
	Y       float64
	Font    PDFFont
	Text    string
	Heading bool
}

var pdfTimestamp = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// RenderPDF renders the linearized résumé onto letter-sized pages.
func RenderPDF(resume model.ResumeData) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCreationDate(pdfTimestamp)
	pdf.SetModificationDate(pdfTimestamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(headerLine(resume), true)
	pdf.SetCreator("Resume Builder", false)
	pdf.SetMargins(pdfMarginX, pdfMarginTop, pdfMarginX)
	pdf.SetAutoPageBreak(false, 0)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	lines := Linearize(resume)
	for i, line := range lines {
		lines[i] = tr(line)
	}

	measure := fpdf.New("P", "pt", "Letter", "")
	measure.SetFont(pdfFontFamily, pdfBodyFont.Style, pdfBodyFont.Size)

	pageWidth, pageHeight := pdf.GetPageSize()
	placed, pages := LayoutPDFLines(lines, pageHeight, pageWidth-2*pdfMarginX, measure.GetStringWidth)

	current := 0
	for _, pl := range placed {
		for current < pl.Page {
			pdf.AddPage()
			current++
		}
		pdf.SetFont(pdfFontFamily, pl.Font.Style, pl.Font.Size)
		pdf.Text(pdfMarginX, pl.Y, pl.Text)
	}
	for current < pages {
		pdf.AddPage()
		current++
	}

	if measure.Err() {
		return nil, fmt.Errorf("measure pdf text: %w", measure.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// LayoutPDFLines places lines top to bottom. Known section headings use the
// heading font and an 18pt step; every other line is word-wrapped to maxWidth
// and advances 14pt per wrapped line. A new page starts whenever the cursor
// has passed the bottom limit before a line is placed. It returns the placed
// lines and the total page count.
func LayoutPDFLines(lines []string, pageHeight, maxWidth float64, measure func(string) float64) ([]PlacedLine, int) {
	var out []PlacedLine
	page := 1
	y := pdfMarginTop
	font := pdfNameFont
	bottom := pageHeight - pdfBottomLimit

	for _, line := range lines {
		if y > bottom {
			page++
			y = pdfMarginTop
			font = pdfBodyFont
		}
		if IsSectionHeading(line) {
			out = append(out, PlacedLine{Page: page, Y: y, Font: pdfHeadingFont, Text: line, Heading: true})
			font = pdfBodyFont
			y += pdfHeadingStep
			continue
		}
		for _, w := range wrapWords(line, maxWidth, measure) {
			out = append(out, PlacedLine{Page: page, Y: y, Font: font, Text: w})
			y += pdfBodyStep
		}
	}
	return out, page
}

// wrapWords greedily packs whitespace-separated words into lines no wider
// than maxWidth. A single word wider than maxWidth gets a line of its own.
// Blank input yields no lines.
func wrapWords(line string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return nil
	}
	var out []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > maxWidth {
			out = append(out, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(out, current)
}
