package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/sells-group/edinet-cli/internal/parser"
	"github.com/sells-group/edinet-cli/internal/store"
)

func documentByID(docID string) store.DocumentFilter {
	return store.DocumentFilter{DocID: docID, Limit: 1}
}

type archiveGetter func(ctx context.Context, docID string) ([]byte, error)
type archivePutter func(ctx context.Context, docID string, data []byte) error

// cachedDocument wraps a document with the local archive cache: hits skip
// the network, misses are stored after download. Cache write failures are
// logged and otherwise ignored.
type cachedDocument struct {
	parser.Document
	get archiveGetter
	put archivePutter
}

func newCachedDocument(doc parser.Document, get archiveGetter, put archivePutter) *cachedDocument {
	return &cachedDocument{Document: doc, get: get, put: put}
}

func (d *cachedDocument) Fetch(ctx context.Context) ([]byte, error) {
	if data, err := d.get(ctx, d.DocID()); err == nil && len(data) > 0 {
		return data, nil
	}

	data, err := d.Document.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := d.put(ctx, d.DocID(), data); err != nil {
		zap.L().Warn("archive cache write failed",
			zap.String("doc_id", d.DocID()),
			zap.Error(err),
		)
	}
	return data, nil
}
