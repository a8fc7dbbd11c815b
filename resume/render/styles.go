package render

import (
	"fmt"
	"strings"
)

// RunStyle captures the run formatting applied by a paragraph style.
type RunStyle struct {
	Bold   bool
	Italic bool
	Size   int // half-points
	Color  string
}

// ParagraphStyle is a named style written to word/styles.xml.
type ParagraphStyle struct {
	ID          string
	Name        string
	BasedOn     string
	OutlineLvl  int // -1 for body styles
	SpaceBefore int // twips
	SpaceAfter  int // twips
	Bullet      bool
	Run         RunStyle
}

const (
	BaseFont     = "Inter"
	BaseSize     = 20 // 10pt
	HeadingColor = "1F2937"
	NameColor    = "111111"
	HeadingSize  = 28
	NameSize     = 56

	styleNormal     = "Normal"
	styleTitle      = "Title"
	styleHeading1   = "Heading1"
	styleListBullet = "ListBullet"

	bulletNumID = 1
)

// StyleMap centralizes the styles referenced by RenderDOCX.
var StyleMap = map[string]ParagraphStyle{
	styleNormal: {
		ID:         styleNormal,
		Name:       "Normal",
		OutlineLvl: -1,
		SpaceAfter: 80,
		Run:        RunStyle{Size: BaseSize},
	},
	styleTitle: {
		ID:         styleTitle,
		Name:       "Title",
		BasedOn:    styleNormal,
		OutlineLvl: 0,
		SpaceAfter: 120,
		Run:        RunStyle{Bold: true, Size: NameSize, Color: NameColor},
	},
	styleHeading1: {
		ID:          styleHeading1,
		Name:        "heading 1",
		BasedOn:     styleNormal,
		OutlineLvl:  0,
		SpaceBefore: 240,
		SpaceAfter:  80,
		Run:         RunStyle{Bold: true, Size: HeadingSize, Color: HeadingColor},
	},
	styleListBullet: {
		ID:         styleListBullet,
		Name:       "List Bullet",
		BasedOn:    styleNormal,
		OutlineLvl: -1,
		SpaceAfter: 40,
		Bullet:     true,
		Run:        RunStyle{Size: BaseSize},
	},
}

var styleOrder = []string{styleNormal, styleTitle, styleHeading1, styleListBullet}

func stylesXML() string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString(`<w:styles xmlns:w="` + wmlNamespace + `">`)
	fmt.Fprintf(&b, `<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:eastAsia="%[1]s" w:cs="%[1]s"/><w:sz w:val="%[2]d"/><w:szCs w:val="%[2]d"/></w:rPr></w:rPrDefault></w:docDefaults>`, BaseFont, BaseSize)
	for _, id := range styleOrder {
		writeParagraphStyle(&b, StyleMap[id])
	}
	b.WriteString(`</w:styles>`)
	return b.String()
}

func writeParagraphStyle(b *strings.Builder, s ParagraphStyle) {
	if s.ID == styleNormal {
		fmt.Fprintf(b, `<w:style w:type="paragraph" w:default="1" w:styleId="%s">`, s.ID)
	} else {
		fmt.Fprintf(b, `<w:style w:type="paragraph" w:styleId="%s">`, s.ID)
	}
	fmt.Fprintf(b, `<w:name w:val="%s"/>`, s.Name)
	if s.BasedOn != "" {
		fmt.Fprintf(b, `<w:basedOn w:val="%s"/>`, s.BasedOn)
	}
	b.WriteString(`<w:qFormat/><w:pPr>`)
	if s.Bullet {
		fmt.Fprintf(b, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr>`, bulletNumID)
	}
	fmt.Fprintf(b, `<w:spacing w:before="%d" w:after="%d"/>`, s.SpaceBefore, s.SpaceAfter)
	if s.Bullet {
		b.WriteString(`<w:ind w:left="360" w:hanging="360"/>`)
	}
	if s.OutlineLvl >= 0 && s.ID != styleTitle {
		fmt.Fprintf(b, `<w:outlineLvl w:val="%d"/>`, s.OutlineLvl)
	}
	b.WriteString(`</w:pPr><w:rPr>`)
	fmt.Fprintf(b, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s"/>`, BaseFont)
	if s.Run.Bold {
		b.WriteString(`<w:b/>`)
	}
	if s.Run.Italic {
		b.WriteString(`<w:i/>`)
	}
	if s.Run.Color != "" {
		fmt.Fprintf(b, `<w:color w:val="%s"/>`, s.Run.Color)
	}
	if s.Run.Size > 0 {
		fmt.Fprintf(b, `<w:sz w:val="%[1]d"/><w:szCs w:val="%[1]d"/>`, s.Run.Size)
	}
	b.WriteString(`</w:rPr></w:style>`)
}

func numberingXML() string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString(`<w:numbering xmlns:w="` + wmlNamespace + `">`)
	b.WriteString(`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="singleLevel"/>`)
	b.WriteString(`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="•"/><w:lvlJc w:val="left"/>`)
	b.WriteString(`<w:pPr><w:ind w:left="360" w:hanging="360"/></w:pPr></w:lvl></w:abstractNum>`)
	fmt.Fprintf(&b, `<w:num w:numId="%d"><w:abstractNumId w:val="0"/></w:num>`, bulletNumID)
	b.WriteString(`</w:numbering>`)
	return b.String()
}
