package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const xmlNamespaceURL = "http://www.w3.org/XML/1998/namespace"

var knownNamespaces = map[string]struct{}{
	"":              {},
	"xmlns":         {},
	wmlNamespace:    {},
	relNamespace:    {},
	xmlNamespaceURL: {},
}

// validateDocumentXMLStrict parses the generated document.xml and rejects
// undeclared namespace prefixes.
func validateDocumentXMLStrict(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(xmlText, 5))
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		if err := checkDeclaredNamespace(start.Name, "element", xmlText); err != nil {
			return err
		}
		for _, attr := range start.Attr {
			if err := checkDeclaredNamespace(attr.Name, "attribute", xmlText); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateDocumentXMLStructure rejects nested paragraphs and text outside runs.
func validateDocumentXMLStructure(xmlText string) error {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	var stack []xml.Name

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("document.xml parse failed: %w\n%s", err, firstLines(xmlText, 5))
		}
		switch t := token.(type) {
		case xml.StartElement:
			if isWmlElement(t.Name, "p") && insideElement(stack, "p") {
				return fmt.Errorf("document.xml has nested <w:p>\n%s", firstLines(xmlText, 5))
			}
			if isWmlElement(t.Name, "t") && !insideElement(stack, "r") {
				return fmt.Errorf("document.xml has <w:t> outside a run\n%s", firstLines(xmlText, 5))
			}
			stack = append(stack, t.Name)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	return nil
}

func insideElement(stack []xml.Name, local string) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		if isWmlElement(stack[i], local) {
			return true
		}
	}
	return false
}

func isWmlElement(name xml.Name, local string) bool {
	return name.Space == wmlNamespace && name.Local == local
}

func checkDeclaredNamespace(name xml.Name, kind string, xmlText string) error {
	if _, ok := knownNamespaces[name.Space]; ok {
		return nil
	}
	return fmt.Errorf("document.xml %s %s:%s uses an undeclared namespace\n%s", kind, name.Space, name.Local, firstLines(xmlText, 5))
}

func firstLines(text string, count int) string {
	lines := strings.SplitN(text, "\n", count+1)
	if len(lines) > count {
		lines = lines[:count]
	}
	return strings.Join(lines, "\n")
}
