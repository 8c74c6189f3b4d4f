package validation

import "strings"

// PDFExtension is the only upload extension the catalog accepts.
const PDFExtension = ".pdf"

// HasPDFExtension reports whether filename carries the .pdf suffix.
// The match is case-sensitive: "NOTES.PDF" does not pass.
func HasPDFExtension(filename string) bool {
	return strings.HasSuffix(filename, PDFExtension)
}
