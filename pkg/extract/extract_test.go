package extract_test

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"recruitpro-backend/pkg/extract"

	"github.com/stretchr/testify/assert"
)

func TestPlainTextPassthrough(t *testing.T) {
	text := extract.Text("resume.txt", "text/plain", []byte("Senior Go developer with 8 years experience"))
	assert.Equal(t, "Senior Go developer with 8 years experience", text)
}

func TestUnsupportedFormatReturnsPlaceholder(t *testing.T) {
	text := extract.Text("resume.xyz", "application/octet-stream", []byte{0x01, 0x02})
	assert.Contains(t, text, "Format not supported")
	assert.Contains(t, text, "resume.xyz")
}

func TestCorruptPDFReturnsErrorMarker(t *testing.T) {
	text := extract.Text("resume.pdf", "application/pdf", []byte("not really a pdf"))
	assert.Contains(t, text, "[Error extracting text from file:")
}

func TestZeroByteFileNeverPanics(t *testing.T) {
	for _, name := range []string{"empty.pdf", "empty.docx", "empty.txt", "empty.xyz"} {
		assert.NotPanics(t, func() {
			_ = extract.Text(name, "", nil)
		})
	}
}

func TestDocxExtraction(t *testing.T) {
	// Minimal docx: a zip holding word/document.xml with two paragraphs.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	assert.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>Backend engineer</w:t></w:r></w:p><w:p><w:r><w:t>Go and PostgreSQL</w:t></w:r></w:p></w:body></w:document>`))
	assert.NoError(t, err)
	assert.NoError(t, zw.Close())

	text := extract.Text("cv.docx", "", buf.Bytes())
	assert.Contains(t, text, "Backend engineer")
	assert.Contains(t, text, "Go and PostgreSQL")
	assert.False(t, strings.Contains(text, "<w:"))
}

func TestDocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("other.xml")
	_, _ = w.Write([]byte("<x/>"))
	_ = zw.Close()

	text := extract.Text("cv.docx", "", buf.Bytes())
	assert.Contains(t, text, "[Error extracting text from file:")
}
