// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tldinfo

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Inline formatting markers. The extractor records bold/italic spans as
// placeholder tokens while a cell is accumulating, because trimming the
// finished cell would strip the raw control bytes if they were inserted
// directly. The placeholders are swapped for the real control bytes
// after the trim, so IRC-style transports can render the formatting.
const (
	placeholderBold   = "<[bold]>"
	placeholderItalic = "<[italic]>"

	// IRC formatting control bytes.
	controlBold   = "\x02"
	controlItalic = "\x1d"
)

// Table is one extracted table: row 0 holds the column headings, and
// each subsequent row holds the data cells of one entry, zipped
// positionally against the headings.
type Table [][]string

// tableExtractor collects cell text from every table carrying the
// "wikitable" class marker in an HTML token stream. Content outside
// those tables is discarded.
//
// The skipping flag is deliberately overloaded: it gates table
// inclusion (tables without the class marker stay skipped) and it
// suppresses <sup> footnote markers inside cells. A superscript
// between a wanted table's close tag and the next wanted table would
// desynchronize the flag; the Wikipedia page this targets never puts
// one there.
type tableExtractor struct {
	inCell   bool
	skipping bool

	currentCell strings.Builder
	currentRow  []string
	rows        Table
	tables      []Table
}

func newTableExtractor() *tableExtractor {
	return &tableExtractor{skipping: true}
}

// ExtractTables tokenizes the HTML document in r and returns every
// wikitable-class table it contains, in document order. The input is
// consumed to completion; re-invoke on fresh input to parse again.
func ExtractTables(r io.Reader) ([]Table, error) {
	x := newTableExtractor()
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return x.tables, nil
		case html.StartTagToken:
			tok := z.Token()
			x.startTag(tok.Data, tok.Attr)
		case html.EndTagToken:
			x.endTag(z.Token().Data)
		case html.TextToken:
			x.text(string(z.Text()))
		}
	}
}

func (x *tableExtractor) startTag(name string, attrs []html.Attribute) {
	switch name {
	case "td", "th":
		x.inCell = true
	case "sup":
		// Superscripts are almost exclusively footnote markers;
		// their content must not pollute cell text.
		x.skipping = true
	case "table":
		for _, a := range attrs {
			if a.Key == "class" && strings.Contains(a.Val, "wikitable") {
				x.skipping = false
			}
		}
	case "b", "strong":
		if x.inCell {
			x.currentCell.WriteString(placeholderBold)
		}
	case "i", "em":
		if x.inCell {
			x.currentCell.WriteString(placeholderItalic)
		}
	}
}

func (x *tableExtractor) endTag(name string) {
	switch name {
	case "td", "th":
		x.inCell = false
		if !x.skipping {
			cell := strings.TrimSpace(x.currentCell.String())
			cell = strings.ReplaceAll(cell, placeholderBold, controlBold)
			cell = strings.ReplaceAll(cell, placeholderItalic, controlItalic)
			x.currentRow = append(x.currentRow, cell)
		}
		x.currentCell.Reset()
	case "tr":
		if !x.skipping {
			x.rows = append(x.rows, x.currentRow)
		}
		x.currentRow = nil
	case "table":
		if !x.skipping {
			x.tables = append(x.tables, x.rows)
		}
		x.rows = nil
		x.skipping = true
		x.inCell = false
	case "sup":
		if x.inCell {
			x.skipping = false
		}
	case "b", "strong":
		// Bold and italic markers are symmetric: the same control
		// byte toggles the formatting on and off.
		if x.inCell {
			x.currentCell.WriteString(placeholderBold)
		}
	case "i", "em":
		if x.inCell {
			x.currentCell.WriteString(placeholderItalic)
		}
	}
}

func (x *tableExtractor) text(data string) {
	if x.inCell && !x.skipping {
		x.currentCell.WriteString(data)
	}
}
