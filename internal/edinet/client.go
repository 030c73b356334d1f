// Package edinet is a client for the EDINET API v2, the Financial
// Services Agency's disclosure document service. It covers the two
// endpoints this tool needs: the per-date document list and the CSV
// archive download.
package edinet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/edinet-cli/internal/config"
	"github.com/sells-group/edinet-cli/internal/resilience"
)

const (
	// csvArchive selects the CSV-export ZIP of a document. Other type
	// values return PDF or XBRL bundles, which this tool does not parse.
	csvArchive = "5"

	// listWithMeta selects the document list including filer metadata.
	listWithMeta = "2"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
)

// Client talks to the EDINET API. All requests pass through a shared rate
// limiter and the retry policy; EDINET throttles hard during the morning
// filing window.
type Client struct {
	httpClient *http.Client
	baseURL    string
	key        string
	limiter    *rate.Limiter
	retry      resilience.RetryConfig
}

// NewClient builds a Client from configuration.
func NewClient(cfg config.APIConfig) *Client {
	rps := cfg.RequestsPerSec
	if rps <= 0 {
		rps = 2.0
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	retry := resilience.FromValues(cfg.RetryAttempts, cfg.RetryBackoffMs, cfg.RetryMaxWaitMs, cfg.RetryMultiplier)
	retry.OnRetry = resilience.RetryLogger("edinet", "request")

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		key:        cfg.Key,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		retry:      retry,
	}
}

// DocumentMeta is one entry of the EDINET document list.
type DocumentMeta struct {
	DocID           string `json:"docID"`
	EDINETCode      string `json:"edinetCode"`
	SecCode         string `json:"secCode"`
	JCN             string `json:"JCN"`
	FilerName       string `json:"filerName"`
	FundCode        string `json:"fundCode"`
	OrdinanceCode   string `json:"ordinanceCode"`
	FormCode        string `json:"formCode"`
	DocTypeCode     string `json:"docTypeCode"`
	PeriodStart     string `json:"periodStart"`
	PeriodEnd       string `json:"periodEnd"`
	SubmitDateTime  string `json:"submitDateTime"`
	DocDescription  string `json:"docDescription"`
	CSVFlag         string `json:"csvFlag"`
	WithdrawalFlag  string `json:"withdrawalStatus"`
	DisclosureState string `json:"disclosureStatus"`
}

// SubmitTime parses the list's submission timestamp, which EDINET reports
// minute-granular in JST without a zone marker. Returns nil when absent
// or malformed.
func (m DocumentMeta) SubmitTime() *time.Time {
	if m.SubmitDateTime == "" {
		return nil
	}
	loc := time.FixedZone("JST", 9*60*60)
	t, err := time.ParseInLocation("2006-01-02 15:04", m.SubmitDateTime, loc)
	if err != nil {
		return nil
	}
	return &t
}

// HasCSV reports whether the document has a CSV archive to download.
func (m DocumentMeta) HasCSV() bool { return m.CSVFlag == "1" }

type listResponse struct {
	Metadata struct {
		Status    string `json:"status"`
		Message   string `json:"message"`
		Resultset struct {
			Count int `json:"count"`
		} `json:"resultset"`
	} `json:"metadata"`
	Results []DocumentMeta `json:"results"`
}

// ListDocuments returns the document list for a filing date. EDINET
// reports list failures in-band as HTTP 200 with an error status inside
// the metadata envelope, so the status check sits inside the retry loop.
func (c *Client) ListDocuments(ctx context.Context, date time.Time) ([]DocumentMeta, error) {
	u := fmt.Sprintf("%s/documents.json?date=%s&type=%s", c.baseURL, date.Format("2006-01-02"), listWithMeta)

	resp, err := resilience.DoVal(ctx, c.retry, func(ctx context.Context) (listResponse, error) {
		body, err := c.getOnce(ctx, u)
		if err != nil {
			return listResponse{}, err
		}

		var resp listResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return listResponse{}, eris.Wrap(err, "decode document list")
		}
		if resp.Metadata.Status != "" && resp.Metadata.Status != "200" {
			return listResponse{}, resilience.NewAPIStatusError(resp.Metadata.Status, resp.Metadata.Message)
		}
		return resp, nil
	})
	if err != nil {
		return nil, eris.Wrapf(err, "edinet: list documents for %s", date.Format("2006-01-02"))
	}

	zap.L().Debug("edinet: listed documents",
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("count", len(resp.Results)),
	)
	return resp.Results, nil
}

// FetchArchive downloads the CSV archive ZIP for a document id.
func (c *Client) FetchArchive(ctx context.Context, docID string) ([]byte, error) {
	u := fmt.Sprintf("%s/documents/%s?type=%s", c.baseURL, docID, csvArchive)

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, eris.Wrapf(err, "edinet: fetch archive %s", docID)
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	return resilience.DoVal(ctx, c.retry, func(ctx context.Context) ([]byte, error) {
		return c.getOnce(ctx, url)
	})
}

// getOnce issues a single rate-limited request with no retry; callers
// that validate the response body wrap it in their own retry loop.
func (c *Client) getOnce(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "build request")
	}
	if c.key != "" {
		req.Header.Set(subscriptionKeyHeader, c.key)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little for the error message, then classify.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := eris.Errorf("http %d: %s", resp.StatusCode, string(snippet))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, resilience.NewTransientError(err, resp.StatusCode)
		}
		return nil, err
	}

	return io.ReadAll(resp.Body)
}
