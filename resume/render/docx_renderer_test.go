package render

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"resume-builder/internal/extract"
	"resume-builder/resume/model"
)

func TestRenderDOCXStructure(t *testing.T) {
	docxBytes, err := RenderDOCX(sampleResume())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	documentXML, err := readZipPart(docxBytes, "word/document.xml")
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}

	assertStyledParagraph(t, documentXML, styleTitle, "Jordan Lee")
	for _, heading := range SectionHeadings {
		assertStyledParagraph(t, documentXML, styleHeading1, heading)
	}
	assertStyledParagraph(t, documentXML, styleListBullet, "Led the platform migration.")
	assertStyledParagraph(t, documentXML, styleListBullet, "Speaker at GopherCon")
	assertContains(t, documentXML, "Staff Engineer - Example Corp - 2020-2024")
	assertContains(t, documentXML, "Go (expert), PostgreSQL, Kubernetes (advanced)")
	assertContains(t, documentXML, "Senior Backend Engineer | jordan@example.com | +1-555-0102 | Austin, TX")
	assertNotContains(t, documentXML, "ignored")
}

func TestRenderDOCXBaseFont(t *testing.T) {
	docxBytes, err := RenderDOCX(model.ResumeData{Name: "Ada"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	stylesXML, err := readZipPart(docxBytes, "word/styles.xml")
	if err != nil {
		t.Fatalf("read styles.xml failed: %v", err)
	}
	assertContains(t, stylesXML, `w:ascii="Inter"`)
	assertContains(t, stylesXML, `<w:sz w:val="20"/>`)
	assertContains(t, stylesXML, `w:styleId="ListBullet"`)

	numberingXML, err := readZipPart(docxBytes, "word/numbering.xml")
	if err != nil {
		t.Fatalf("read numbering.xml failed: %v", err)
	}
	assertContains(t, numberingXML, `<w:numFmt w:val="bullet"/>`)
}

func TestRenderDOCXEmptyResume(t *testing.T) {
	docxBytes, err := RenderDOCX(model.ResumeData{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML, err := readZipPart(docxBytes, "word/document.xml")
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}
	assertStyledParagraph(t, documentXML, styleTitle, "Your Name")
	assertNotContains(t, documentXML, styleHeading1)
}

// The document walk emits the Skills heading for any non-empty skill list,
// even when no skill has a name; the text walk drops the section.
func TestRenderDOCXSkillsHeadingWithUnnamedSkills(t *testing.T) {
	resume := model.ResumeData{Name: "Ada", Skills: []model.Skill{{Level: "expert"}}}
	docxBytes, err := RenderDOCX(resume)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML, err := readZipPart(docxBytes, "word/document.xml")
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}
	assertStyledParagraph(t, documentXML, styleHeading1, HeadingSkills)
	assertNotContains(t, documentXML, "expert")
}

func TestRenderDOCXEscapesText(t *testing.T) {
	docxBytes, err := RenderDOCX(model.ResumeData{Name: "R&D <Lead>", Summary: "line one\nline two"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	documentXML, err := readZipPart(docxBytes, "word/document.xml")
	if err != nil {
		t.Fatalf("read document.xml failed: %v", err)
	}
	assertContains(t, documentXML, "R&amp;D &lt;Lead&gt;")
	assertContains(t, documentXML, `line one</w:t><w:br/><w:t xml:space="preserve">line two`)
}

func TestRenderDOCXIsIdempotent(t *testing.T) {
	first, err := RenderDOCX(sampleResume())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := RenderDOCX(sampleResume())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("expected byte-identical documents")
	}
}

func TestRenderDOCXReadableByExtractor(t *testing.T) {
	docxBytes, err := RenderDOCX(sampleResume())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	res, err := extract.ExtractTextFromBytes(context.Background(), docxBytes, extract.MimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	lines := strings.Split(res.Text, "\n")
	if lines[0] != "Jordan Lee" {
		t.Fatalf("expected name first, got %q", lines[0])
	}
	order := []string{"Summary", "Experience", "Education", "Skills", "Achievements"}
	last := -1
	for _, heading := range order {
		idx := indexOf(lines, heading)
		if idx <= last {
			t.Fatalf("expected %q after previous section, lines=%v", heading, lines)
		}
		last = idx
	}
}

func TestValidateDocumentXMLStructureRejectsNestedParagraphs(t *testing.T) {
	xmlText := `<w:document xmlns:w="` + wmlNamespace + `"><w:body><w:p><w:p></w:p></w:p></w:body></w:document>`
	if err := validateDocumentXMLStructure(xmlText); err == nil {
		t.Fatalf("expected nested paragraph error")
	}
}

func TestValidateDocumentXMLStrictRejectsUnknownPrefix(t *testing.T) {
	xmlText := `<w:document xmlns:w="` + wmlNamespace + `"><w14:foo/></w:document>`
	if err := validateDocumentXMLStrict(xmlText); err == nil {
		t.Fatalf("expected undeclared namespace error")
	}
}

func readZipPart(docxBytes []byte, name string) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(docxBytes), int64(len(docxBytes)))
	if err != nil {
		return "", err
	}
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return "", io.EOF
}

func assertStyledParagraph(t *testing.T, xmlText, style, text string) {
	t.Helper()
	want := `<w:pStyle w:val="` + style + `"/></w:pPr><w:r><w:t xml:space="preserve">` + text + `</w:t>`
	if !strings.Contains(xmlText, want) {
		t.Fatalf("expected %q paragraph with style %s", text, style)
	}
}

func indexOf(lines []string, target string) int {
	for i, line := range lines {
		if line == target {
			return i
		}
	}
	return -1
}
