package edinet

import (
	"context"
	"time"
)

// Document pairs a list entry with the client that can fetch its archive.
// It satisfies the parser's document collaborator.
type Document struct {
	Meta   DocumentMeta
	client *Client
}

// NewDocument binds a list entry to a client for fetching.
func (c *Client) NewDocument(meta DocumentMeta) *Document {
	return &Document{Meta: meta, client: c}
}

func (d *Document) Fetch(ctx context.Context) ([]byte, error) {
	return d.client.FetchArchive(ctx, d.Meta.DocID)
}

func (d *Document) DocID() string           { return d.Meta.DocID }
func (d *Document) DocTypeCode() string     { return d.Meta.DocTypeCode }
func (d *Document) FilerName() string       { return d.Meta.FilerName }
func (d *Document) FilerEDINETCode() string { return d.Meta.EDINETCode }
func (d *Document) FilingTime() *time.Time  { return d.Meta.SubmitTime() }
func (d *Document) Description() string     { return d.Meta.DocDescription }
