package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/briandowns/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/webscraper/internal/clipboard"
	"github.com/go-scripts/webscraper/internal/config"
	"github.com/go-scripts/webscraper/internal/extraction"
	"github.com/go-scripts/webscraper/internal/notice"
	"github.com/go-scripts/webscraper/internal/pipeline"
	"github.com/go-scripts/webscraper/internal/progress"
	"github.com/go-scripts/webscraper/internal/session"
	"github.com/go-scripts/webscraper/internal/writer"
	"github.com/go-scripts/webscraper/ui"
)

// Globals are flags shared by every command
type Globals struct {
	Config  string `help:"Path to configuration file" default:"webscraper.yaml" type:"path" short:"C"`
	Debug   bool   `help:"Enable debug logging" default:"false"`
	LogFile string `help:"Append logs to this file" type:"path"`
}

// CLI flags structure
type CLI struct {
	Globals

	TUI TUICmd `cmd:"" default:"withargs" help:"Open the interactive scraper form"`
	Run RunCmd `cmd:"" help:"Scrape URLs headless and print the JSON result"`
}

// TUICmd opens the form
type TUICmd struct {
	URLs []string `arg:"" optional:"" name:"url" help:"URLs to add to the list"`
}

// RunCmd performs a run without the form
type RunCmd struct {
	URLs     []string       `arg:"" optional:"" name:"url" help:"URLs to scrape, after the configured ones"`
	Fields   []string       `help:"Fields to extract (title,imageUrl,content,description,author,publishDate)" short:"f"`
	NoFields bool           `help:"Extract none of the optional fields"`
	Category []string       `help:"Classification categories attached to every record" short:"c"`
	Delay    *time.Duration `help:"Simulated latency per URL (overrides config)" short:"d"`
	Output   string         `help:"Write the JSON to this file instead of stdout" short:"o" type:"path"`
	Copy     bool           `help:"Copy the JSON to the clipboard"`
	Quiet    bool           `help:"Hide the progress spinner" short:"q"`
}

// newLogger builds the logger; logs go to --log-file when set, else to fallback
func newLogger(g *Globals, fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closer := func() error { return nil }

	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "webscraper",
	})
	if g.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// Run opens the Bubble Tea form
func (c *TUICmd) Run(g *Globals) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return err
	}
	cfg.URLs = append(cfg.URLs, c.URLs...)

	// The alt screen owns the terminal, so logs are dropped unless a file is given
	logger, closeLog, err := newLogger(g, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	p := pipeline.New(pipeline.Options{Delay: cfg.Delay, Logger: logger})
	model := ui.NewModel(context.Background(), session.New(cfg, p), clipboard.System{}, logger)

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Run scrapes the URLs and prints the JSON
func (c *RunCmd) Run(g *Globals) error {
	logger, closeLog, err := newLogger(g, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.execute(ctx, g, logger, os.Stdout, clipboard.System{})
}

// sessionConfig merges the config file with the command line
func (c *RunCmd) sessionConfig(g *Globals) (config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return config.Config{}, err
	}

	// Override config with command line flags if provided
	cfg.URLs = append(cfg.URLs, c.URLs...)
	if len(c.Fields) > 0 {
		ext, err := extraction.FromFields(c.Fields)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Extraction = ext
	}
	if c.NoFields {
		cfg.Extraction = extraction.None()
	}
	if len(c.Category) > 0 {
		cfg.Classification = c.Category
	}
	if c.Delay != nil {
		cfg.Delay = *c.Delay
	}
	return cfg, cfg.Validate()
}

func (c *RunCmd) execute(ctx context.Context, g *Globals, logger *log.Logger, stdout io.Writer, clip clipboard.Writer) error {
	cfg, err := c.sessionConfig(g)
	if err != nil {
		return err
	}

	s := session.New(cfg, pipeline.New(pipeline.Options{Delay: cfg.Delay, Logger: logger}))
	if s.URLs.Len() == 0 {
		logger.Error(notice.NoURLs().Message)
		return pipeline.ErrNoURLs
	}

	tracker := progress.New(s.URLs.Len())
	spin := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = tracker.Line()
	if !c.Quiet {
		spin.Start()
	}

	summary, err := s.Pipeline.Run(ctx, s.URLs.Items(), *s.Extraction, s.Classification.Selected(), func(ev pipeline.Event) {
		tracker.Done(ev.URL, ev.Err != nil)
		spin.Lock()
		spin.Suffix = tracker.Line()
		spin.Unlock()
		if ev.Err != nil {
			logger.Warn(notice.ItemFailed(ev.URL, ev.Err).Message)
		}
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("run %s stopped after %d urls: %w", summary.RunID, summary.Processed+summary.Failed, err)
	}

	logger.Info(notice.RunComplete(summary.Processed, summary.Failed).Message,
		"run", summary.RunID,
		"elapsed", summary.Elapsed.Round(time.Millisecond))

	data, err := s.Pipeline.JSON()
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if c.Output != "" {
		w, err := writer.New(c.Output)
		if err != nil {
			return err
		}
		if err := w.WriteRecords(s.Pipeline.Results()); err != nil {
			return err
		}
		logger.Info("results written", "path", w.Path())
	} else {
		fmt.Fprintln(stdout, string(data))
	}

	if c.Copy {
		n := clipboard.Copy(clip, string(data))
		if n.Level == notice.LevelError {
			logger.Error(n.Message)
		} else {
			logger.Info(n.Message)
		}
	}

	return nil
}

func main() {
	var cli CLI

	// Parse command line flags using kong
	ctx := kong.Parse(&cli,
		kong.Name("webscraper"),
		kong.Description("Configure sites to scrape and extract structured data as JSON."),
		kong.UsageOnError(),
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
