package pptx

import (
	"encoding/xml"
	"strings"
)

// presentationXML represents ppt/presentation.xml.
type presentationXML struct {
	XMLName     xml.Name       `xml:"presentation"`
	SlideIDList slideIDListXML `xml:"sldIdLst"`
}

// slideIDListXML wraps the ordered slide ID list.
type slideIDListXML struct {
	SlideIDs []slideIDXML `xml:"sldId"`
}

// slideIDXML is one slide reference; RID resolves through the
// presentation relationships to the slide part. The two id attributes
// are distinguished by namespace.
type slideIDXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
}

// relationshipsXML represents a part's .rels file.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

// relationshipXML is a single relationship entry.
type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// slideXML represents a slide part. Only the text content matters
// here, so the shape tree is modeled down to paragraphs and runs.
type slideXML struct {
	XMLName    xml.Name       `xml:"sld"`
	CommonData commonSlideXML `xml:"cSld"`
}

// commonSlideXML is the slide's common data (<p:cSld>).
type commonSlideXML struct {
	ShapeTree shapeTreeXML `xml:"spTree"`
}

// shapeTreeXML holds the slide's shapes (<p:spTree>).
type shapeTreeXML struct {
	Shapes []shapeXML `xml:"sp"`
}

// shapeXML is a shape with an optional text body (<p:sp>).
type shapeXML struct {
	TextBody textBodyXML `xml:"txBody"`
}

// textBodyXML is a shape's text body (<p:txBody>).
type textBodyXML struct {
	Paragraphs []textParagraphXML `xml:"p"`
}

// textParagraphXML is a text paragraph (<a:p>).
type textParagraphXML struct {
	Runs []textRunXML `xml:"r"`
}

// textRunXML is a text run (<a:r>).
type textRunXML struct {
	Text string `xml:"t"`
}

// text flattens the slide's shape tree into plain text, one line per
// paragraph.
func (s slideXML) text() string {
	var lines []string
	for _, shape := range s.CommonData.ShapeTree.Shapes {
		for _, p := range shape.TextBody.Paragraphs {
			var b strings.Builder
			for _, r := range p.Runs {
				b.WriteString(r.Text)
			}
			if line := b.String(); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}
