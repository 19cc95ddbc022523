package bootstrap

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	casefileinadapter "courtdesk/internal/modules/casefile/adapter/in"
	casefileoutadapter "courtdesk/internal/modules/casefile/adapter/out"
	casefilein "courtdesk/internal/modules/casefile/port/in"
	casefileservice "courtdesk/internal/modules/casefile/service"
	casefileusecase "courtdesk/internal/modules/casefile/usecase"
	documentinadapter "courtdesk/internal/modules/document/adapter/in"
	documentoutadapter "courtdesk/internal/modules/document/adapter/out"
	documentservice "courtdesk/internal/modules/document/service"
	documentusecase "courtdesk/internal/modules/document/usecase"
	liveinadapter "courtdesk/internal/modules/live/adapter/in"
	liveoutadapter "courtdesk/internal/modules/live/adapter/out"
	liveservice "courtdesk/internal/modules/live/service"
	liveusecase "courtdesk/internal/modules/live/usecase"
	transcriptinadapter "courtdesk/internal/modules/transcript/adapter/in"
	transcriptoutadapter "courtdesk/internal/modules/transcript/adapter/out"
	transcriptdto "courtdesk/internal/modules/transcript/dto"
	transcriptin "courtdesk/internal/modules/transcript/port/in"
	transcriptservice "courtdesk/internal/modules/transcript/service"
	transcriptusecase "courtdesk/internal/modules/transcript/usecase"
	translationinadapter "courtdesk/internal/modules/translation/adapter/in"
	translationoutadapter "courtdesk/internal/modules/translation/adapter/out"
	translationin "courtdesk/internal/modules/translation/port/in"
	translationservice "courtdesk/internal/modules/translation/service"
	translationusecase "courtdesk/internal/modules/translation/usecase"
	"courtdesk/internal/platform/clock"
	"courtdesk/internal/platform/config"
	apperrors "courtdesk/internal/platform/errors"
	"courtdesk/internal/platform/id"
	"courtdesk/internal/platform/localstore"
	"courtdesk/internal/platform/logger"
	"courtdesk/internal/platform/role"
	"courtdesk/internal/platform/schedule"
	uiapp "courtdesk/internal/ui/app"
)

type App struct {
	TranslationCLI translationinadapter.CLIHandler
	TranscriptCLI  transcriptinadapter.CLIHandler
	CaseCLI        casefileinadapter.CLIHandler
	DocumentCLI    documentinadapter.CLIHandler
	LiveCLI        liveinadapter.CLIHandler

	liveOpts    liveservice.Options
	log         *logger.Logger
	translation translationin.Usecase
	transcript  transcriptin.Usecase
	cases       casefilein.Usecase
	store       *localstore.Store
	projector   *transcriptoutadapter.SQLiteRecordProjector
}

// Simulation is a live session driven by virtual time. Advance runs the
// session's timers synchronously.
type Simulation struct {
	LiveCLI liveinadapter.CLIHandler
	sched   *schedule.Virtual
}

func (s Simulation) Advance(d time.Duration) {
	s.sched.Advance(d)
}

func (s Simulation) Elapsed() time.Duration {
	return s.sched.Now()
}

func New(cfg config.Config, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	projector, err := transcriptoutadapter.NewSQLiteRecordProjector(cfg.DBPath)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("new record projector: %w", err)
	}

	translationUC := translationusecase.NewInteractor(translationservice.NewTranslationService(
		translationoutadapter.NewYAMLDictionaryStore(cfg.DictionaryPath, log),
		log,
	))

	transcriptUC := transcriptusecase.NewInteractor(
		transcriptservice.NewRecordService(
			ids,
			transcriptoutadapter.NewLocalRecordStore(store),
			projector,
			transcriptoutadapter.NewMarkdownRecordExporter(cfg.ExportDir),
			log,
		),
		transcriptservice.NewViewer(transcriptoutadapter.NewTranslationAdapter(translationUC)),
	)

	caseUC := casefileusecase.NewInteractor(casefileservice.NewCaseService(
		clk, ids, casefileoutadapter.NewLocalCaseStore(store), log,
	))
	documentUC := documentusecase.NewInteractor(documentservice.NewDocumentService(
		clk, ids, documentoutadapter.NewLocalDocumentStore(store), log,
	))

	app := &App{
		TranslationCLI: translationinadapter.NewCLIHandler(translationUC),
		TranscriptCLI:  transcriptinadapter.NewCLIHandler(transcriptUC),
		CaseCLI:        casefileinadapter.NewCLIHandler(caseUC),
		DocumentCLI:    documentinadapter.NewCLIHandler(documentUC),
		liveOpts: liveservice.Options{
			ClerkName:      cfg.ClerkName,
			TickInterval:   cfg.TickInterval,
			IngestInterval: cfg.IngestInterval,
		},
		log:         log,
		translation: translationUC,
		transcript:  transcriptUC,
		cases:       caseUC,
		store:       store,
		projector:   projector,
	}
	app.LiveCLI = app.newLive(schedule.Real{}, clk)
	return app, nil
}

// NewSimulation builds a second live session on a virtual scheduler whose
// timestamps start at base. It shares the stores with the App.
func (a *App) NewSimulation(base time.Time) Simulation {
	sched := schedule.NewVirtual()
	return Simulation{
		LiveCLI: a.newLive(sched, clock.Offset(base, sched.Now)),
		sched:   sched,
	}
}

func (a *App) newLive(sched schedule.Scheduler, clk clock.Clock) liveinadapter.CLIHandler {
	transcriptBridge := liveoutadapter.NewTranscriptAdapter(a.transcript)
	return liveinadapter.NewCLIHandler(liveusecase.NewInteractor(liveservice.NewLiveService(
		sched,
		clk,
		id.UUID{},
		liveoutadapter.NewTranslationAdapter(a.translation),
		transcriptBridge,
		transcriptBridge,
		liveoutadapter.NewCaseDirectoryAdapter(a.cases),
		a.liveOpts,
		a.log,
	)))
}

func (a *App) Close() error {
	a.LiveCLI.Close()
	projErr := a.projector.Close()
	storeErr := a.store.Close()
	if storeErr != nil {
		return fmt.Errorf("close local store: %w", storeErr)
	}
	if projErr != nil {
		return fmt.Errorf("close record projector: %w", projErr)
	}
	return nil
}

// StoreKeys lists the keys written to the local store so far.
func (a *App) StoreKeys() ([]string, error) {
	return a.store.Keys()
}

// ResetStore deletes the given local store keys, or every key when none
// are named. Each module falls back to its seed data on the next read.
// Transcripts are reloaded at once and the record index is rebuilt to
// match; other modules pick the change up on the next launch.
func (a *App) ResetStore(ctx context.Context, keys ...string) ([]string, error) {
	if len(keys) == 0 {
		all, err := a.store.Keys()
		if err != nil {
			return nil, err
		}
		keys = all
	}
	known := map[string]bool{
		localstore.KeyCases:          true,
		localstore.KeyTranscriptions: true,
		localstore.KeyDocuments:      true,
	}
	for _, key := range keys {
		if !known[key] {
			return nil, fmt.Errorf("%w: unknown store key %q", apperrors.ErrInvalidInput, key)
		}
	}
	reindex := false
	for _, key := range keys {
		if err := a.store.Remove(key); err != nil {
			return nil, err
		}
		reindex = reindex || key == localstore.KeyTranscriptions
	}
	if reindex {
		if err := a.transcript.Reindex(ctx, transcriptdto.ReindexInput{Reload: true}); err != nil {
			return nil, fmt.Errorf("rebuild record index: %w", err)
		}
	}
	a.log.Info("local store reset", "keys", keys)
	return keys, nil
}

// Languages lists the display language codes, capture language first.
func (a *App) Languages(ctx context.Context) ([]string, error) {
	out, err := a.TranslationCLI.Languages(ctx)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(out))
	for _, l := range out {
		codes = append(codes, l.Code)
	}
	return codes, nil
}

func RunTUI(ctx context.Context, app *App, actor role.Role) error {
	languages, err := app.Languages(ctx)
	if err != nil {
		return fmt.Errorf("load languages: %w", err)
	}
	model := uiapp.NewModel(actor, languages, app.TranscriptCLI, app.CaseCLI, app.DocumentCLI, app.LiveCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	app.LiveCLI.Close()
	return err
}
