package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	Runs       []runXML       `xml:"r"`
	Hyperlinks []hyperlinkXML `xml:"hyperlink"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Texts  []textXML  `xml:"t"`
	Tabs   []emptyXML `xml:"tab"`
	Breaks []emptyXML `xml:"br"`
}

// emptyXML matches empty marker elements such as <w:tab/> and <w:br/>.
type emptyXML struct{}

// textXML represents run text (<w:t>).
type textXML struct {
	Value string `xml:",chardata"`
}

// hyperlinkXML represents a hyperlink wrapping one or more runs.
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}

// tableXML represents a table (<w:tbl>).
type tableXML struct {
	Rows []tableRowXML `xml:"tr"`
}

// tableRowXML represents a table row (<w:tr>).
type tableRowXML struct {
	Cells []tableCellXML `xml:"tc"`
}

// tableCellXML represents a table cell (<w:tc>).
type tableCellXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// text concatenates the paragraph's run text. Explicit tabs and line
// breaks in runs are preserved as '\t' and '\n'.
func (p paragraphXML) text() string {
	var out []byte
	appendRun := func(r runXML) {
		for range r.Tabs {
			out = append(out, '\t')
		}
		for range r.Breaks {
			out = append(out, '\n')
		}
		for _, t := range r.Texts {
			out = append(out, t.Value...)
		}
	}

	for _, r := range p.Runs {
		appendRun(r)
	}
	for _, h := range p.Hyperlinks {
		for _, r := range h.Runs {
			appendRun(r)
		}
	}
	return string(out)
}
