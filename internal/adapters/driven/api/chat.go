package api

import (
	"context"
	"net/http"

	"github.com/mcpolo78/ai-knowledge-tutor/internal/core/domain"
)

// Ask sends a question scoped to a document and returns the exchange.
func (c *Client) Ask(ctx context.Context, question string, documentID int64) (*domain.Exchange, error) {
	payload := struct {
		Question   string `json:"question"`
		DocumentID int64  `json:"document_id"`
	}{Question: question, DocumentID: documentID}

	var out struct {
		Question      string `json:"question"`
		Answer        string `json:"answer"`
		DocumentTitle string `json:"document_title"`
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/chat/ask",
		body:   payload,
		out:    &out,
	})
	if err != nil {
		return nil, err
	}
	return &domain.Exchange{
		Question:      out.Question,
		Answer:        out.Answer,
		DocumentTitle: out.DocumentTitle,
	}, nil
}

// EligibleDocuments returns the documents available for chat.
func (c *Client) EligibleDocuments(ctx context.Context) ([]domain.Document, error) {
	var out []documentPayload
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/chat/documents",
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
