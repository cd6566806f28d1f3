// Package app implements the application layer for xspring.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/xspring/internal/adapters/detector"
	"go.trai.ch/xspring/internal/adapters/initializr"
	"go.trai.ch/xspring/internal/adapters/prompt"
	"go.trai.ch/xspring/internal/adapters/telemetry"
	"go.trai.ch/xspring/internal/core/domain"
	"go.trai.ch/xspring/internal/core/ports"
	"go.trai.ch/xspring/internal/engine/builder"
	"go.trai.ch/xspring/internal/engine/pipeline"
	"go.trai.ch/xspring/internal/ui/output"
	"go.trai.ch/xspring/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	settings  ports.SettingsLoader
	logger    ports.Logger
	observer  ports.Observer
	extractor ports.Extractor

	prompter   ports.Prompter
	teaOptions []tea.ProgramOption
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	now        func() time.Time
}

// New creates a new App instance.
func New(settings ports.SettingsLoader, log ports.Logger, observer ports.Observer, extractor ports.Extractor) *App {
	return &App{
		settings:  settings,
		logger:    log,
		observer:  observer,
		extractor: extractor,
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		now:       time.Now,
	}
}

// WithTeaOptions adds bubbletea program options to the TUI prompter.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithPrompter replaces the prompter chosen from the terminal environment.
func (a *App) WithPrompter(p ports.Prompter) *App {
	a.prompter = p
	return a
}

// WithIO replaces the standard streams. Nil arguments keep the current stream.
func (a *App) WithIO(in io.Reader, out, errOut io.Writer) *App {
	if in != nil {
		a.in = in
	}
	if out != nil {
		a.out = out
	}
	if errOut != nil {
		a.errOut = errOut
	}
	return a
}

// RunOptions configuration shared by every command.
type RunOptions struct {
	// Output is the directory the project is extracted into. Empty means the working directory.
	Output string
	// ServiceURL overrides the configured Initializr service when set.
	ServiceURL string
	// UI selects the prompt mode: "auto", "tui" or "linear".
	UI string
	// Verbosity raises console logging: 1 shows info, 2 and more show debug records.
	Verbosity int
	// LogJSON renders console records as JSON lines.
	LogJSON bool
}

// Interactive asks for every project axis and generates the project.
func (a *App) Interactive(ctx context.Context, opts RunOptions) error {
	return a.create(ctx, opts, func(ctx context.Context, b *builder.Builder, catalog *domain.Catalog) (domain.Request, error) {
		return b.Full(ctx, catalog)
	})
}

// Quick asks only for the identifiers (and optionally name and description) and
// generates the project with catalog defaults for everything else.
func (a *App) Quick(ctx context.Context, opts RunOptions, quick builder.QuickOptions) error {
	return a.create(ctx, opts, func(ctx context.Context, b *builder.Builder, catalog *domain.Catalog) (domain.Request, error) {
		return b.Quick(ctx, catalog, quick)
	})
}

// List prints one catalog axis, or the dependency catalog, to the standard output.
func (a *App) List(ctx context.Context, opts RunOptions, item domain.ListItem) error {
	if _, ok := item.Axis(&domain.Catalog{}); !ok && item != domain.ListDeps {
		return zerr.With(zerr.Wrap(domain.ErrUnknownListItem, "cannot list"), "item", string(item))
	}

	s, err := a.start(opts)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	catalog, err := a.fetch(ctx, s)
	if err != nil {
		return err
	}
	return renderList(a.out, catalog, item)
}

type configureFunc func(ctx context.Context, b *builder.Builder, catalog *domain.Catalog) (domain.Request, error)

func (a *App) create(ctx context.Context, opts RunOptions, configure configureFunc) error {
	s, err := a.start(opts)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	catalog, err := a.fetch(ctx, s)
	if err != nil {
		return err
	}

	configureCtx, span := s.tracer.Start(ctx, "project.configure")
	req, err := configure(configureCtx, builder.New(a.newPrompter(opts.UI), a.observer), catalog)
	span.RecordError(err)
	span.End()
	if err != nil {
		return err
	}

	destination := opts.Output
	if destination == "" {
		destination = "."
	}

	generateCtx, span := s.tracer.Start(ctx, "project.generate")
	span.SetAttribute("base_dir", req.BaseDir())
	span.SetAttribute("dependencies", req.Dependencies())
	err = pipeline.New(s.client, a.extractor, a.observer).Generate(generateCtx, req, destination)
	span.RecordError(err)
	span.End()
	if err != nil {
		return err
	}

	projectDir := filepath.Join(destination, req.BaseDir())
	a.logger.Info(fmt.Sprintf("generated %s", projectDir))
	a.success(fmt.Sprintf("Project created in %s", projectDir))
	return nil
}

func (a *App) fetch(ctx context.Context, s *session) (*domain.Catalog, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.fetch")
	defer span.End()
	span.SetAttribute("url", s.client.BaseURL())

	a.logger.Debug("fetching catalog from " + s.client.BaseURL())
	catalog, err := s.client.Fetch(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	categories := len(catalog.Dependencies.Categories)
	span.SetAttribute("categories", categories)
	a.observe(domain.EventCatalogFetched, "catalog fetched", map[string]any{
		"url":        s.client.BaseURL(),
		"categories": categories,
	})
	return catalog, nil
}

// session holds what one command run builds from the resolved settings.
type session struct {
	client   *initializr.Client
	tracer   ports.Tracer
	provider *telemetry.Provider
	logFile  fileSink
}

func (s *session) close(ctx context.Context) {
	if s.provider != nil {
		_ = s.provider.Shutdown(ctx)
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// jsonSwitch is implemented by loggers that can render console records as JSON.
type jsonSwitch interface {
	SetJSON(enable bool)
}

// fileSink is implemented by loggers that can mirror records into a daily file.
type fileSink interface {
	AttachFile(dir string, day time.Time) error
	Close() error
}

func (a *App) start(opts RunOptions) (*session, error) {
	a.logger.SetLevel(levelFor(opts.Verbosity))
	if sw, ok := a.logger.(jsonSwitch); ok {
		sw.SetJSON(opts.LogJSON)
	}

	settings, err := a.settings.Load()
	if err != nil {
		return nil, err
	}
	if opts.ServiceURL != "" {
		if err := domain.ValidateServiceURL(opts.ServiceURL); err != nil {
			return nil, err
		}
		settings.ServiceURL = strings.TrimRight(strings.TrimSpace(opts.ServiceURL), "/")
	}

	s := &session{client: initializr.NewClient(settings)}

	if sink, ok := a.logger.(fileSink); ok && settings.LogDir != "" {
		if err := sink.AttachFile(settings.LogDir, a.now()); err != nil {
			a.logger.Warn("file logging disabled: " + err.Error())
		} else {
			s.logFile = sink
		}
	}

	if a.observer == nil {
		s.tracer = telemetry.NewNoOpTracer()
		return s, nil
	}
	s.provider = telemetry.Setup(a.observer)
	s.tracer = s.provider.Tracer()
	return s, nil
}

func (a *App) newPrompter(ui string) ports.Prompter {
	if a.prompter != nil {
		return a.prompter
	}
	if detector.ResolveMode(detector.DetectEnvironment(), ui) == detector.ModeTUI {
		return prompt.NewTUI(a.in, a.errOut, a.teaOptions...)
	}
	return prompt.NewLinear(a.in, a.errOut)
}

func (a *App) success(msg string) {
	out := output.New(a.errOut)
	line := out.String(style.Check + " " + msg).Foreground(out.Color(string(style.Green)))
	_, _ = fmt.Fprintln(a.errOut, line)
}

func (a *App) observe(kind domain.EventKind, msg string, fields map[string]any) {
	if a.observer == nil {
		return
	}
	a.observer.Observe(domain.NewEvent(kind, msg, fields))
}

func levelFor(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
