package xlsx

import "encoding/xml"

// workbookXML represents xl/workbook.xml.
type workbookXML struct {
	XMLName xml.Name  `xml:"workbook"`
	Sheets  sheetsXML `xml:"sheets"`
}

// sheetsXML wraps the sheet list.
type sheetsXML struct {
	Sheet []sheetXML `xml:"sheet"`
}

// sheetXML describes one sheet entry in the workbook.
type sheetXML struct {
	Name    string `xml:"name,attr"`
	SheetID string `xml:"sheetId,attr"`
	RID     string `xml:"id,attr"`
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

// sharedStringsXML represents xl/sharedStrings.xml.
type sharedStringsXML struct {
	XMLName xml.Name `xml:"sst"`
	SI      []siXML  `xml:"si"`
}

// siXML is a shared string item, either plain text or rich-text runs.
type siXML struct {
	T string           `xml:"t"`
	R []richTextRunXML `xml:"r"`
}

// richTextRunXML is a rich-text run inside a shared string item.
type richTextRunXML struct {
	T string `xml:"t"`
}

// worksheetXML represents a worksheet part.
type worksheetXML struct {
	XMLName   xml.Name     `xml:"worksheet"`
	SheetData sheetDataXML `xml:"sheetData"`
}

// sheetDataXML wraps the row list.
type sheetDataXML struct {
	Rows []rowXML `xml:"row"`
}

// rowXML is a single row.
type rowXML struct {
	Cells []cellXML `xml:"c"`
}

// cellXML is a single cell. Type distinguishes shared strings ("s"),
// inline strings ("inlineStr"), and booleans ("b"); numbers carry no
// type attribute.
type cellXML struct {
	Ref          string       `xml:"r,attr"`
	Type         string       `xml:"t,attr"`
	Value        string       `xml:"v"`
	InlineString inlineStrXML `xml:"is"`
}

// inlineStrXML is the inline string payload of a cell.
type inlineStrXML struct {
	T string `xml:"t"`
}
