// Package extract pulls plain text out of uploaded resume files.
// It never fails: unsupported formats yield a descriptive placeholder
// and extraction errors yield an inline error marker, so a bad file can
// never abort an upload batch.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

// Text extracts plain text from a resume file. The returned string is
// always non-empty for non-empty inputs; it is an error marker or
// placeholder when real extraction was impossible.
func Text(filename, contentType string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error
	switch {
	case ext == ".pdf" || contentType == "application/pdf":
		text, err = fromPDF(data)
	case ext == ".docx" || contentType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		text, err = fromDocx(data)
	case ext == ".txt" || strings.HasPrefix(contentType, "text/plain"):
		text = string(data)
	default:
		return fmt.Sprintf("[Format not supported for full text extraction: %s. Filename: %s]", contentType, filename)
	}
	if err != nil {
		return fmt.Sprintf("[Error extracting text from file: %v]", err)
	}
	return text
}

// fromPDF concatenates the text layer page by page.
func fromPDF(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty file")
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

// fromDocx strips word/document.xml down to raw text.
func fromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines before tags are stripped.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	reTags := regexp.MustCompile(`<[^>]+>`)
	txt := reTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(txt), nil
}

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, " ", " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
