package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentKind identifies the upload format of a document.
// The set is closed: rendering and validation switch over it exhaustively.
type DocumentKind string

const (
	// KindPDF is a PDF document.
	KindPDF DocumentKind = "pdf"
	// KindDocx is a Word document.
	KindDocx DocumentKind = "docx"
	// KindMarkdown is a Markdown document.
	KindMarkdown DocumentKind = "markdown"
)

// Valid reports whether k is one of the known document kinds.
func (k DocumentKind) Valid() bool {
	switch k {
	case KindPDF, KindDocx, KindMarkdown:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name for the kind.
func (k DocumentKind) Label() string {
	switch k {
	case KindPDF:
		return "PDF"
	case KindDocx:
		return "Word"
	case KindMarkdown:
		return "Markdown"
	default:
		return string(k)
	}
}

// KindFromFilename derives the document kind from a file extension.
// Returns ErrInvalidInput for unsupported extensions; the service only
// accepts the three known kinds, so unsupported files are rejected before
// any upload is attempted.
func KindFromFilename(name string) (DocumentKind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDocx, nil
	case ".md", ".markdown":
		return KindMarkdown, nil
	default:
		return "", ErrInvalidInput
	}
}

// Document is a reference to an uploaded document.
// Documents are owned by the remote service and immutable from the
// client's point of view.
type Document struct {
	// ID is the unique identifier for the document.
	ID int64

	// Title is the human-readable title.
	Title string

	// Filename is the name of the originally uploaded file.
	Filename string

	// Kind is the upload format.
	Kind DocumentKind

	// ContentLength is the extracted text length in characters.
	ContentLength int

	// Content is the extracted text. Only populated by the single-document
	// fetch; list responses omit it.
	Content string

	// CreatedAt is when the document was uploaded.
	CreatedAt time.Time
}

// Summary is a generated summary of a document.
type Summary struct {
	// ID is the unique identifier for the summary.
	ID int64

	// Title is the summary title.
	Title string

	// Content is the summary text.
	Content string

	// CreatedAt is when the summary was generated.
	CreatedAt time.Time
}
