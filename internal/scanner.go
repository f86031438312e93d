package internal

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// DocScanner walks a tree and counts matching documents.
type DocScanner struct{}

func NewDocScanner() *DocScanner { return &DocScanner{} }

// DocResult is reported to a callback, one per visited file.
type DocResult struct {
	DocStat
	Bytes int64
	Err   error
}

// NewReportSink returns a closure feeding results into the report and the
// run counters. Results carrying an error are counted and logged, not added.
func NewReportSink(rep *Report, stats *AppStats) func(DocResult) {
	stats.Start()
	return func(res DocResult) {
		if res.Err != nil {
			stats.Errors++
			logrus.WithFields(logrus.Fields{"path": res.Path, "err": res.Err}).Warn("Skipped")
			return
		}
		stats.FilesProcessed++
		stats.Words += int64(res.Words)
		stats.Lines += int64(res.Lines)
		stats.Bytes += res.Bytes
		rep.Add(res.DocStat)
	}
}

// Scan is the main pipeline: verify the root, walk it, count every file
// whose name matches the configured suffix, and emit one DocResult each.
//
// Unreadable directories are reported as error results and the walk moves
// on. A file that cannot be read or decoded aborts the scan unless
// SkipErrors is set, in which case it too becomes an error result.
func (ds *DocScanner) Scan(ctx context.Context, opts ScanOptions, onDoc func(DocResult)) error {
	if err := CheckRoot(opts.Root); err != nil {
		return err
	}

	return WalkWithDepth(ctx, opts.Root, opts.Depth, func(path string, d os.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			onDoc(DocResult{DocStat: DocStat{Path: filepath.ToSlash(path)}, Err: err})
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !opts.matchesExt(d.Name()) {
			return nil
		}

		doc, size, err := CountFile(path)
		if err != nil {
			if opts.SkipErrors {
				onDoc(DocResult{DocStat: DocStat{Name: d.Name(), Path: filepath.ToSlash(path)}, Err: err})
				return nil
			}
			return err
		}
		onDoc(DocResult{DocStat: doc, Bytes: size})
		return nil
	})
}
