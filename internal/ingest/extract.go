package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedDocument = errors.New("unsupported document format")

var pdfMagic = []byte("%PDF-")

// ExtractText pulls line-oriented plain text out of an uploaded document.
// PDF and XLSX files are read page by page / row by row; anything else must
// be UTF-8 text.
func ExtractText(filename string, data []byte) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); {
	case ext == ".pdf" || bytes.HasPrefix(data, pdfMagic):
		return extractPDF(data)
	case ext == ".xlsx" || ext == ".xlsm":
		return extractSpreadsheet(data)
	case utf8.Valid(data):
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedDocument, filename)
	}
}

// extractPDF converts reader panics on malformed content streams into errors.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var out strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("failed to read PDF page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				out.WriteString(word.S)
			}
			out.WriteString("\n")
		}
	}

	return out.String(), nil
}

func extractSpreadsheet(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	var out strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell = strings.TrimSpace(cell); cell != "" {
					cells = append(cells, cell)
				}
			}
			out.WriteString(strings.Join(cells, " "))
			out.WriteString("\n")
		}
	}

	return out.String(), nil
}

// Snippet returns at most n characters of text, for error reports.
func Snippet(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
