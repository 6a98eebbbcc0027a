package driver

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"scanfmt/internal/diag"
	"scanfmt/internal/lexer"
	"scanfmt/internal/observ"
	"scanfmt/internal/source"
	"scanfmt/internal/token"
)

type CheckOptions struct {
	Lexer          lexer.Options // Reporter is ignored
	Jobs           int           // <= 0 means GOMAXPROCS
	MaxDiagnostics int           // per catalog
	NFC            bool
	Progress       ProgressSink
	Timer          *observ.Timer
}

// EntryResult is the outcome of lexing one catalog entry.
// Token spans refer to File, a detached file holding only the entry text.
type EntryResult struct {
	Entry  Entry
	File   *source.File
	Tokens token.Sequence
	Err    error
}

type CatalogResult struct {
	Path    string
	Catalog *Catalog // nil when the catalog failed to load
	Entries []EntryResult
	Bag     *diag.Bag
	LoadErr error
}

// Failed counts entries that did not lex, lines skipped for bad quoting,
// plus one for a load failure.
func (r *CatalogResult) Failed() int {
	n := 0
	if r.LoadErr != nil {
		n++
	}
	if r.Catalog != nil {
		n += r.Catalog.Skipped
	}
	for _, e := range r.Entries {
		if e.Err != nil {
			n++
		}
	}
	return n
}

type CheckResult struct {
	FileSet  *source.FileSet
	Catalogs []CatalogResult
}

// Entries counts lexed entries across all catalogs.
func (r *CheckResult) Entries() int {
	n := 0
	for i := range r.Catalogs {
		n += len(r.Catalogs[i].Entries)
	}
	return n
}

// Failed counts failures across all catalogs.
func (r *CheckResult) Failed() int {
	n := 0
	for i := range r.Catalogs {
		n += r.Catalogs[i].Failed()
	}
	return n
}

// Check loads every catalog and lexes all of their entries in parallel.
// Entry failures end up as diagnostics in the owning catalog's Bag, in
// entry order; the returned error is only set on cancellation.
func Check(ctx context.Context, paths []string, opts CheckOptions) (*CheckResult, error) {
	fs := source.NewFileSet()
	res := &CheckResult{
		FileSet:  fs,
		Catalogs: make([]CatalogResult, len(paths)),
	}

	for _, p := range paths {
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusQueued})
	}

	endLoad := opts.Timer.Begin("load")
	loadFailed := 0
	for i, p := range paths {
		cr := &res.Catalogs[i]
		cr.Path = p
		cr.Bag = diag.NewBag(opts.MaxDiagnostics)
		started := time.Now()
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusWorking})

		cat, err := LoadCatalog(fs, p, opts.NFC, cr.Bag)
		if err != nil {
			cr.LoadErr = err
			loadFailed++
			// an empty stand-in keeps the diagnostic attached to its own path
			id := fs.AddVirtual(p, nil)
			cr.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{File: id}, err.Error()))
			emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(started)})
			continue
		}
		cr.Catalog = cat
		cr.Entries = make([]EntryResult, len(cat.Entries))
		emit(opts.Progress, Event{File: p, Stage: StageLoad, Status: StatusDone, Total: len(cat.Entries), Elapsed: time.Since(started)})
	}
	note := fmt.Sprintf("%d catalogs", len(paths))
	if loadFailed > 0 {
		note = fmt.Sprintf("%s, %d unreadable", note, loadFailed)
	}
	endLoad(note)

	err := opts.Timer.Time("lex", func() error {
		return lexCatalogs(ctx, res, opts)
	})
	return res, err
}

type entryJob struct {
	cat   int
	entry int
}

// lexProgress is shared by the workers: entries finished per catalog and
// when the last one finished, relative to start.
type lexProgress struct {
	start time.Time
	done  []atomic.Int64
	last  []atomic.Int64
}

func (p *lexProgress) finish(cat int) int {
	p.last[cat].Store(int64(time.Since(p.start)))
	return int(p.done[cat].Add(1))
}

func lexCatalogs(ctx context.Context, res *CheckResult, opts CheckOptions) error {
	var jobsList []entryJob
	prog := &lexProgress{
		start: time.Now(),
		done:  make([]atomic.Int64, len(res.Catalogs)),
		last:  make([]atomic.Int64, len(res.Catalogs)),
	}
	bags := make([][]*diag.Bag, len(res.Catalogs))
	for ci := range res.Catalogs {
		cr := &res.Catalogs[ci]
		if cr.Catalog == nil {
			continue
		}
		n := len(cr.Catalog.Entries)
		bags[ci] = make([]*diag.Bag, n)
		for ei := range n {
			jobsList = append(jobsList, entryJob{cat: ci, entry: ei})
		}
	}

	var err error
	if len(jobsList) > 0 {
		err = runEntryJobs(ctx, res, jobsList, bags, prog, opts)
	}

	// merge in entry order so output does not depend on scheduling
	for ci := range res.Catalogs {
		cr := &res.Catalogs[ci]
		if cr.Catalog == nil {
			continue
		}
		for ei, bag := range bags[ci] {
			if bag == nil {
				continue
			}
			entry := cr.Catalog.Entries[ei]
			for _, d := range bag.Items() {
				cr.Bag.Add(entry.rebase(d))
			}
		}
		cr.Bag.Sort()
		total := len(cr.Catalog.Entries)
		emit(opts.Progress, Event{
			File:    cr.Path,
			Stage:   StageLex,
			Status:  statusFor(cr.Failed() > 0 || cr.Bag.HasErrors()),
			Done:    int(prog.done[ci].Load()),
			Total:   total,
			Elapsed: time.Duration(prog.last[ci].Load()),
		})
	}
	return err
}

func runEntryJobs(ctx context.Context, res *CheckResult, jobsList []entryJob, bags [][]*diag.Bag, prog *lexProgress, opts CheckOptions) error {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(jobsList)))

	for _, job := range jobsList {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			cr := &res.Catalogs[job.cat]
			entry := cr.Catalog.Entries[job.entry]
			bag := diag.NewBag(opts.MaxDiagnostics)
			file, seq, err := lexEntry(entry, opts.Lexer, bag)

			// indexes are unique per goroutine, no lock needed
			cr.Entries[job.entry] = EntryResult{Entry: entry, File: file, Tokens: seq, Err: err}
			bags[job.cat][job.entry] = bag

			n := prog.finish(job.cat)
			emit(opts.Progress, Event{
				File:   cr.Path,
				Stage:  StageLex,
				Status: StatusWorking,
				Done:   n,
				Total:  len(cr.Catalog.Entries),
			})
			return nil
		})
	}
	return g.Wait()
}

// lexEntry lexes one entry as a detached file; diagnostics land in bag
// with entry-relative spans.
func lexEntry(e Entry, lopts lexer.Options, bag *diag.Bag) (*source.File, token.Sequence, error) {
	efs := source.NewFileSet()
	file := efs.Get(efs.AddVirtual("entry", e.Format))
	lopts.Reporter = bag
	seq, err := lexer.Parse(file, lopts)
	return file, seq, err
}

func statusFor(failed bool) Status {
	if failed {
		return StatusError
	}
	return StatusDone
}
