package convert

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/ib-77/sig2gmt/internal/logging"
	"github.com/ib-77/sig2gmt/pkg/gmt"
	"github.com/ib-77/sig2gmt/pkg/naming"
	"github.com/ib-77/sig2gmt/pkg/rop"
	"github.com/ib-77/sig2gmt/pkg/rop/chain"
	"github.com/ib-77/sig2gmt/pkg/rop/solo"
	"github.com/ib-77/sig2gmt/pkg/signature"
)

// Stage names reported by failed or cancelled runs.
const (
	StageLoad    = "load"
	StageBind    = "bind"
	StageGroup   = "group"
	StageResolve = "resolve"
	StagePrepare = "prepare"
	StageWrite   = "write"
)

type Options struct {
	Input    string
	Key      string
	Resolver naming.Resolver
	// DryRun resolves every output path without touching the file system.
	DryRun bool
	Logger *slog.Logger
}

// FileSummary describes one group file.
type FileSummary struct {
	Key  string
	Path string
	Rows int
}

type Summary struct {
	RunID  uuid.UUID
	Input  string
	Rows   int
	Files  []FileSummary
	DryRun bool
}

type Converter struct {
	opts Options
	log  *slog.Logger
}

func New(opts Options) *Converter {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Converter{opts: opts, log: log}
}

// batch is the state carried along the railway.
type batch struct {
	table  *signature.Table
	sigs   []signature.Signature
	groups []gmt.Group
	paths  []string
}

type job struct {
	group gmt.Group
	path  string
}

// Run converts the configured input. On success the summary lists one file
// per distinct key with its row count.
func (c *Converter) Run(ctx context.Context) rop.Result[Summary] {
	runID := uuid.New()
	log := c.log.With("run", runID.String())
	schema := signature.NewSchema(c.opts.Key)

	start := chain.FromValue(ctx, c.opts.Input).
		Ensure(func(ctx context.Context, path string) { c.warnFootprint(log, path) })

	loaded := chain.ThenTry(start, StageLoad, func(ctx context.Context, path string) (batch, error) {
		t, err := signature.Load(ctx, path)
		if err != nil {
			return batch{}, err
		}
		log.Debug("table loaded", "path", path, "rows", t.Len(), "columns", len(t.Header))
		return batch{table: t}, nil
	})

	bound := chain.ThenTry(loaded, StageBind, func(ctx context.Context, b batch) (batch, error) {
		binding, err := schema.Bind(b.table)
		if err != nil {
			return b, err
		}
		b.sigs = binding.Signatures(b.table)
		return b, nil
	})

	grouped := chain.Map(bound, StageGroup, func(ctx context.Context, b batch) batch {
		b.groups = gmt.GroupBy(b.sigs)
		log.Debug("rows grouped", "key", schema.Key, "groups", len(b.groups))
		return b
	})

	resolved := chain.ThenTry(grouped, StageResolve, func(ctx context.Context, b batch) (batch, error) {
		keys := make([]string, len(b.groups))
		for i, g := range b.groups {
			keys[i] = g.Key
		}
		paths, err := c.opts.Resolver.Plan(keys)
		if err != nil {
			return b, err
		}
		b.paths = paths
		return b, nil
	})

	prepared := resolved.Check(StagePrepare, func(ctx context.Context, b batch) error {
		return c.prepareDir(len(b.groups))
	})

	written := chain.Then(prepared, StageWrite, func(ctx context.Context, b batch) rop.Result[[]FileSummary] {
		jobs := make([]job, len(b.groups))
		for i := range b.groups {
			jobs[i] = job{group: b.groups[i], path: b.paths[i]}
		}
		return solo.Each(ctx, jobs, func(ctx context.Context, j job) rop.Result[FileSummary] {
			return c.writeGroup(log, j)
		})
	})

	out := chain.Map(written, StageWrite, func(ctx context.Context, files []FileSummary) Summary {
		rows := 0
		for _, f := range files {
			rows += f.Rows
		}
		return Summary{RunID: runID, Input: c.opts.Input, Rows: rows, Files: files, DryRun: c.opts.DryRun}
	}).Result()

	if !out.IsSuccess() {
		log.Error("conversion stopped", "stage", out.Stage(), "cancelled", out.IsCancel(), "err", out.Err())
	}
	return out
}

func (c *Converter) writeGroup(log *slog.Logger, j job) rop.Result[FileSummary] {
	recs := gmt.ToRecords(j.group.Signatures)
	fs := FileSummary{Key: j.group.Key, Path: j.path, Rows: len(recs)}

	if c.opts.DryRun {
		log.Info("would write", "key", fs.Key, "path", fs.Path, "rows", fs.Rows)
		return rop.Success(fs)
	}

	if err := gmt.WriteFile(j.path, recs); err != nil {
		return rop.Fail[FileSummary](err)
	}
	log.Info("wrote "+logging.Count(fs.Rows, "signature"), "key", fs.Key, "path", fs.Path)
	return rop.Success(fs)
}

// prepareDir creates the output directory when there is something to write.
func (c *Converter) prepareDir(groups int) error {
	dir := c.opts.Resolver.Dir
	if c.opts.DryRun || groups == 0 || dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (c *Converter) warnFootprint(log *slog.Logger, path string) {
	fp, err := signature.Measure(path)
	if err != nil {
		// the load stage reports unreadable input
		return
	}
	if fp.Exceeds() {
		log.Warn("input is large relative to system memory; the whole table is held in memory",
			"path", path, "bytes", fp.Size, "memory", fp.Total)
	}
}
