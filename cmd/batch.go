package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/edinet-cli/internal/edinet"
	"github.com/sells-group/edinet-cli/internal/parser"
	"github.com/sells-group/edinet-cli/internal/store"
)

var (
	batchDate  string
	batchTypes string
	batchLimit int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a whole filing day concurrently",
	Long:  "Lists the documents filed on a date, downloads their CSV archives, parses each into a typed report, and stores the results.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		date, err := time.Parse("2006-01-02", batchDate)
		if err != nil {
			return eris.Wrapf(err, "batch: bad date %q", batchDate)
		}

		client := initClient()
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		docs, err := client.ListDocuments(ctx, date)
		if err != nil {
			return err
		}
		if err := st.UpsertDocuments(ctx, batchDate, docs); err != nil {
			return err
		}

		docs = selectBatchDocuments(docs, batchTypes, batchLimit)
		return processBatch(ctx, st, client, batchDate, docs, cfg.Batch.MaxConcurrent)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchDate, "date", time.Now().AddDate(0, 0, -1).Format("2006-01-02"), "filing date (YYYY-MM-DD)")
	batchCmd.Flags().StringVar(&batchTypes, "types", "", "comma-separated document type codes (default: all with CSV)")
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "max number of documents to parse (0 = all)")
	rootCmd.AddCommand(batchCmd)
}

// selectBatchDocuments keeps CSV-backed documents matching the requested
// type codes, capped at limit.
func selectBatchDocuments(docs []edinet.DocumentMeta, types string, limit int) []edinet.DocumentMeta {
	wanted := map[string]struct{}{}
	for _, t := range strings.Split(types, ",") {
		if t = strings.TrimSpace(t); t != "" {
			wanted[t] = struct{}{}
		}
	}

	out := docs[:0:0]
	for _, d := range docs {
		if !d.HasCSV() {
			continue
		}
		if len(wanted) > 0 {
			if _, ok := wanted[d.DocTypeCode]; !ok {
				continue
			}
		}
		out = append(out, d)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// processBatch parses documents concurrently, recording progress in a run
// row. Individual failures are counted, not fatal.
func processBatch(ctx context.Context, st store.Store, client *edinet.Client, filingDate string, docs []edinet.DocumentMeta, concurrency int) error {
	if len(docs) == 0 {
		zap.L().Info("no documents to parse", zap.String("date", filingDate))
		return nil
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	run, err := st.CreateRun(ctx, filingDate, len(docs))
	if err != nil {
		return err
	}

	zap.L().Info("processing batch",
		zap.String("run_id", run.ID),
		zap.String("date", filingDate),
		zap.Int("documents", len(docs)),
		zap.Int("concurrency", concurrency),
	)

	var parsed, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, meta := range docs {
		meta := meta
		g.Go(func() error {
			doc := newCachedDocument(client.NewDocument(meta), st.GetArchive, st.PutArchive)
			p := parser.Parse(gctx, doc)

			data, err := json.Marshal(p)
			if err != nil {
				failed.Add(1)
				zap.L().Warn("marshal report failed", zap.String("doc_id", meta.DocID), zap.Error(err))
				return nil
			}
			if err := st.SaveReport(gctx, meta.DocID, p.Kind(), data); err != nil {
				failed.Add(1)
				zap.L().Warn("save report failed", zap.String("doc_id", meta.DocID), zap.Error(err))
				return nil
			}
			parsed.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := st.CompleteRun(ctx, run.ID, int(parsed.Load()), int(failed.Load())); err != nil {
		return err
	}

	zap.L().Info("batch complete",
		zap.String("run_id", run.ID),
		zap.Int64("parsed", parsed.Load()),
		zap.Int64("failed", failed.Load()),
	)
	return nil
}
