// Package pipeline runs a scraping pass over a URL list, one URL at a
// time, and accumulates the resulting records.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/types"
)

// TimestampLayout is the ISO-8601 form used for scrapedAt
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DefaultDelay is the simulated latency per URL
const DefaultDelay = time.Second

var (
	// ErrNoURLs is returned by Begin when the URL list is empty
	ErrNoURLs = errors.New("no urls to scrape")
	// ErrRunInProgress is returned by Begin while another run is active
	ErrRunInProgress = errors.New("a run is already in progress")
	// ErrRunFinished is returned by Next once every URL was handled
	ErrRunFinished = errors.New("run finished")
)

// State is the pipeline state
type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Options configures a Pipeline. Zero values select the defaults.
type Options struct {
	Delay     time.Duration
	Fetcher   Fetcher
	Extractor Extractor
	Logger    *log.Logger
	Clock     func() time.Time
}

// Failure records a URL that could not be turned into a record
type Failure struct {
	Index int
	URL   string
	Err   error
}

// Event reports the outcome for one URL of a run
type Event struct {
	RunID  string
	Index  int
	Total  int
	URL    string
	Record *types.ScrapedRecord
	Err    error
	// Done is set on the event for the last URL; the pipeline is idle again
	Done bool
}

// Summary describes a finished or in-progress run
type Summary struct {
	RunID     string
	Total     int
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Pipeline owns the result set of the latest run. A single run writes to
// it while any number of readers may call the accessors.
type Pipeline struct {
	delay     time.Duration
	fetcher   Fetcher
	extractor Extractor
	logger    *log.Logger
	now       func() time.Time

	mu       sync.Mutex
	state    State
	results  []types.ScrapedRecord
	failures []Failure
}

// New creates an idle Pipeline
func New(opts Options) *Pipeline {
	p := &Pipeline{
		delay:     opts.Delay,
		fetcher:   opts.Fetcher,
		extractor: opts.Extractor,
		logger:    opts.Logger,
		now:       opts.Clock,
		results:   make([]types.ScrapedRecord, 0),
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	mock := Mock{Clock: p.now}
	if p.fetcher == nil {
		p.fetcher = mock
	}
	if p.extractor == nil {
		p.extractor = mock
	}
	if p.delay < 0 {
		p.delay = 0
	}
	return p
}

// Delay returns the simulated per-URL latency
func (p *Pipeline) Delay() time.Duration {
	return p.delay
}

// State returns the current state
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Results returns a copy of the records produced so far
func (p *Pipeline) Results() []types.ScrapedRecord {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]types.ScrapedRecord, len(p.results))
	copy(out, p.results)
	return out
}

// Failures returns the URLs skipped during the latest run
func (p *Pipeline) Failures() []Failure {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Failure, len(p.failures))
	copy(out, p.failures)
	return out
}

// JSON renders the current result set as indented JSON
func (p *Pipeline) JSON() ([]byte, error) {
	return types.MarshalRecords(p.Results())
}

// Begin starts a run over urls. The extraction config and the
// classification are snapshotted; later changes do not affect the run.
// An empty list is rejected without touching the previous results.
func (p *Pipeline) Begin(urls []string, cfg extraction.Config, classification []string) (*Run, error) {
	if len(urls) == 0 {
		return nil, ErrNoURLs
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == StateRunning {
		return nil, ErrRunInProgress
	}

	p.state = StateRunning
	p.results = make([]types.ScrapedRecord, 0, len(urls))
	p.failures = nil

	r := &Run{
		ID:             uuid.NewString(),
		p:              p,
		urls:           append([]string(nil), urls...),
		extraction:     cfg,
		classification: append(make([]string, 0, len(classification)), classification...),
		started:        p.now(),
	}

	p.logger.Info("scraping run started",
		"run", r.ID,
		"urls", len(urls),
		"fields", cfg.EnabledFields(),
		"classification", r.classification)

	return r, nil
}

// Run performs a complete run, calling onEvent after each URL
func (p *Pipeline) Run(ctx context.Context, urls []string, cfg extraction.Config, classification []string, onEvent func(Event)) (Summary, error) {
	r, err := p.Begin(urls, cfg, classification)
	if err != nil {
		return Summary{}, err
	}

	for {
		ev, err := r.Next(ctx)
		if errors.Is(err, ErrRunFinished) {
			break
		}
		if err != nil {
			return r.Summary(), err
		}
		if onEvent != nil {
			onEvent(ev)
		}
	}

	return r.Summary(), nil
}

func (p *Pipeline) synthesize(ctx context.Context, rawURL string, cfg extraction.Config, classification []string) (types.ScrapedRecord, error) {
	doc, err := p.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return types.ScrapedRecord{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	fields, err := p.extractor.Extract(doc, cfg)
	if err != nil {
		return types.ScrapedRecord{}, fmt.Errorf("extract %s: %w", rawURL, err)
	}

	return types.NewRecord(rawURL, fields, classification, p.now().UTC().Format(TimestampLayout)), nil
}

func (p *Pipeline) addResult(rec types.ScrapedRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, rec)
}

func (p *Pipeline) addFailure(f Failure) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, f)
}

func (p *Pipeline) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateIdle
}

// Run is one pass over a snapshot of the URL list. Next must be called
// from one goroutine at a time.
type Run struct {
	ID string

	p              *Pipeline
	urls           []string
	extraction     extraction.Config
	classification []string
	next           int
	processed      int
	failed         int
	started        time.Time
	elapsed        time.Duration
	finished       bool
}

// Total returns the number of URLs in the run
func (r *Run) Total() int {
	return len(r.urls)
}

// Summary returns the counters of the run so far
func (r *Run) Summary() Summary {
	elapsed := r.elapsed
	if !r.finished {
		elapsed = r.p.now().Sub(r.started)
	}
	return Summary{
		RunID:     r.ID,
		Total:     len(r.urls),
		Processed: r.processed,
		Failed:    r.failed,
		Elapsed:   elapsed,
	}
}

// Next waits the per-URL delay, then handles the next URL. A URL that
// cannot be handled is reported in Event.Err and skipped. Next returns
// ErrRunFinished when nothing is left, or the context error if ctx ends
// while waiting; in both cases the pipeline is idle.
func (r *Run) Next(ctx context.Context) (Event, error) {
	if r.finished || r.next >= len(r.urls) {
		r.finish()
		return Event{}, ErrRunFinished
	}

	if err := r.wait(ctx); err != nil {
		r.finish()
		return Event{}, err
	}

	idx := r.next
	rawURL := r.urls[idx]
	r.next++

	ev := Event{
		RunID: r.ID,
		Index: idx,
		Total: len(r.urls),
		URL:   rawURL,
	}

	rec, err := r.p.synthesize(ctx, rawURL, r.extraction, r.classification)
	if err != nil {
		r.failed++
		ev.Err = err
		r.p.addFailure(Failure{Index: idx, URL: rawURL, Err: err})
		r.p.logger.Warn("skipping url", "run", r.ID, "url", rawURL, "err", err)
	} else {
		r.processed++
		ev.Record = &rec
		r.p.addResult(rec)
		r.p.logger.Debug("record synthesized", "run", r.ID, "url", rawURL, "index", idx)
	}

	if r.next == len(r.urls) {
		r.finish()
		ev.Done = true
	}

	return ev, nil
}

func (r *Run) wait(ctx context.Context) error {
	if r.p.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(r.p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (r *Run) finish() {
	if r.finished {
		return
	}
	r.finished = true
	r.elapsed = r.p.now().Sub(r.started)
	r.p.finish()
	r.p.logger.Info("scraping run finished",
		"run", r.ID,
		"processed", r.processed,
		"failed", r.failed,
		"elapsed", r.elapsed)
}
