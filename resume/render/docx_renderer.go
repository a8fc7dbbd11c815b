package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-builder/resume/model"
)

const (
	wmlNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relNamespace = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
)

// Zip entries carry a fixed timestamp so identical résumés produce identical bytes.
var docxModTime = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// paragraph is a single styled paragraph of the rendered document.
type paragraph struct {
	Style string
	Text  string
}

// RenderDOCX renders a résumé into a DOCX byte slice. It walks the résumé
// on its own rather than reusing Linearize, but emits sections in the same
// order with the same field joining.
func RenderDOCX(resume model.ResumeData) ([]byte, error) {
	documentXML, err := renderDocumentXMLText(buildParagraphs(resume))
	if err != nil {
		return nil, err
	}
	if err := validateDocumentXMLStrict(documentXML); err != nil {
		return nil, err
	}
	if err := validateDocumentXMLStructure(documentXML); err != nil {
		return nil, err
	}

	coreXML, err := corePropsXML(headerLine(resume))
	if err != nil {
		return nil, err
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"docProps/core.xml", coreXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", documentXML},
		{"word/styles.xml", stylesXML()},
		{"word/numbering.xml", numberingXML()},
	}

	var output bytes.Buffer
	writer := zip.NewWriter(&output)
	for _, part := range parts {
		if err := writeZipFile(writer, part.name, []byte(part.content)); err != nil {
			_ = writer.Close()
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}

func buildParagraphs(r model.ResumeData) []paragraph {
	out := []paragraph{{Style: styleTitle, Text: headerLine(r)}}
	if sub := subheaderLine(r); sub != "" {
		out = append(out, paragraph{Style: styleNormal, Text: sub})
	}

	if r.Summary != "" {
		out = append(out,
			paragraph{Style: styleHeading1, Text: HeadingSummary},
			paragraph{Style: styleNormal, Text: r.Summary},
		)
	}

	if len(r.Experience) > 0 {
		out = append(out, paragraph{Style: styleHeading1, Text: HeadingExperience})
		for _, e := range r.Experience {
			out = append(out, paragraph{Style: styleNormal, Text: experienceLine(e)})
			for _, b := range nonBlank(e.Bullets) {
				out = append(out, paragraph{Style: styleListBullet, Text: b})
			}
		}
	}

	if len(r.Education) > 0 {
		out = append(out, paragraph{Style: styleHeading1, Text: HeadingEducation})
		for _, ed := range r.Education {
			out = append(out, paragraph{Style: styleNormal, Text: educationLine(ed)})
			if ed.Details != "" {
				out = append(out, paragraph{Style: styleNormal, Text: ed.Details})
			}
		}
	}

	if len(r.Skills) > 0 {
		out = append(out,
			paragraph{Style: styleHeading1, Text: HeadingSkills},
			paragraph{Style: styleNormal, Text: skillsLine(r.Skills)},
		)
	}

	if len(r.Achievements) > 0 {
		out = append(out, paragraph{Style: styleHeading1, Text: HeadingAchievements})
		for _, a := range nonBlank(r.Achievements) {
			out = append(out, paragraph{Style: styleListBullet, Text: a})
		}
	}

	return out
}

func renderDocumentXMLText(paragraphs []paragraph) (string, error) {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString(`<w:document xmlns:w="` + wmlNamespace + `" xmlns:r="` + relNamespace + `"><w:body>`)
	for _, p := range paragraphs {
		if err := writeParagraph(&b, p); err != nil {
			return "", err
		}
	}
	b.WriteString(`<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>`)
	b.WriteString(`<w:pgMar w:top="1080" w:right="1080" w:bottom="1080" w:left="1080" w:header="720" w:footer="720" w:gutter="0"/>`)
	b.WriteString(`</w:sectPr></w:body></w:document>`)
	return b.String(), nil
}

// writeParagraph emits one <w:p>. Embedded newlines become <w:br/> inside a
// single run, matching how word processors treat soft line breaks.
func writeParagraph(b *strings.Builder, p paragraph) error {
	b.WriteString(`<w:p>`)
	if p.Style != "" && p.Style != styleNormal {
		fmt.Fprintf(b, `<w:pPr><w:pStyle w:val="%s"/></w:pPr>`, p.Style)
	}
	if p.Text != "" {
		b.WriteString(`<w:r>`)
		for i, line := range strings.Split(p.Text, "\n") {
			if i > 0 {
				b.WriteString(`<w:br/>`)
			}
			b.WriteString(`<w:t xml:space="preserve">`)
			if err := escapeXML(b, line); err != nil {
				return err
			}
			b.WriteString(`</w:t>`)
		}
		b.WriteString(`</w:r>`)
	}
	b.WriteString(`</w:p>`)
	return nil
}

func escapeXML(w io.Writer, text string) error {
	if err := xml.EscapeText(w, []byte(text)); err != nil {
		return fmt.Errorf("escape document text: %w", err)
	}
	return nil
}

func corePropsXML(title string) (string, error) {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">`)
	b.WriteString(`<dc:title>`)
	if err := escapeXML(&b, title); err != nil {
		return "", err
	}
	b.WriteString(`</dc:title><dc:creator>Resume Builder</dc:creator></cp:coreProperties>`)
	return b.String(), nil
}

func writeZipFile(writer *zip.Writer, name string, content []byte) error {
	header := &zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: docxModTime,
	}
	dst, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	if _, err := dst.Write(content); err != nil {
		return err
	}
	return nil
}

const contentTypesXML = xmlDeclaration +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xmlDeclaration +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlDeclaration +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`</Relationships>`
