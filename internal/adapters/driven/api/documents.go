package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// documentPayload is the wire form of a document reference.
type documentPayload struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Filename      string `json:"filename"`
	DocumentType  string `json:"document_type"`
	ContentLength int    `json:"content_length"`
	Content       string `json:"content,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func (p documentPayload) toDomain() domain.Document {
	return domain.Document{
		ID:            p.ID,
		Title:         p.Title,
		Filename:      p.Filename,
		Kind:          domain.DocumentKind(p.DocumentType),
		ContentLength: p.ContentLength,
		Content:       p.Content,
		CreatedAt:     parseTime(p.CreatedAt),
	}
}

// List returns all documents owned by the authenticated user.
func (c *Client) List(ctx context.Context) ([]domain.Document, error) {
	var out []documentPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/documents",
		out:    &out,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(out))
	for _, p := range out {
		docs = append(docs, p.toDomain())
	}
	return docs, nil
}

// Get returns a single document including its extracted content.
func (c *Client) Get(ctx context.Context, id int64) (*domain.Document, error) {
	var out documentPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/documents/" + strconv.FormatInt(id, 10),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	doc := out.toDomain()
	return &doc, nil
}

// Delete removes a document and its derived materials.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/documents/" + strconv.FormatInt(id, 10),
	})
}

// Upload sends a file as multipart form data under the "file" field.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (*domain.Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalising upload: %w", err)
	}

	var out documentPayload
	err = c.do(ctx, request{
		method: http.MethodPost,
		path:   "/documents/upload",
		raw:    &buf,
		rawCT:  writer.FormDataContentType(),
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	doc := out.toDomain()
	return &doc, nil
}
