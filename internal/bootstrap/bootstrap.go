package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	authinadapter "praxis/internal/modules/auth/adapter/in"
	authoutadapter "praxis/internal/modules/auth/adapter/out"
	authin "praxis/internal/modules/auth/port/in"
	authservice "praxis/internal/modules/auth/service"
	authusecase "praxis/internal/modules/auth/usecase"
	notesinadapter "praxis/internal/modules/notes/adapter/in"
	notesoutadapter "praxis/internal/modules/notes/adapter/out"
	notesin "praxis/internal/modules/notes/port/in"
	notesservice "praxis/internal/modules/notes/service"
	notesusecase "praxis/internal/modules/notes/usecase"
	sessionsinadapter "praxis/internal/modules/sessions/adapter/in"
	sessionsoutadapter "praxis/internal/modules/sessions/adapter/out"
	sessionsin "praxis/internal/modules/sessions/port/in"
	sessionsservice "praxis/internal/modules/sessions/service"
	sessionsusecase "praxis/internal/modules/sessions/usecase"
	"praxis/internal/platform/config"
	"praxis/internal/platform/httpapi"
	"praxis/internal/platform/id"
	"praxis/internal/platform/logging"
	uiapp "praxis/internal/ui/app"
)

type App struct {
	AuthCLI     authinadapter.CLIHandler
	SessionsCLI sessionsinadapter.CLIHandler
	NotesCLI    notesinadapter.CLIHandler

	authUC     authin.Usecase
	sessionsUC sessionsin.Usecase
	notesUC    notesin.Usecase
	log        *zap.Logger
}

func New(cfg config.Config) (*App, error) {
	cfg, err := cfg.Finalize()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogPath)

	api, err := httpapi.New(cfg.APIBaseURL, cfg.CookieJarPath(), log, id.UUID{})
	if err != nil {
		return nil, fmt.Errorf("new api client: %w", err)
	}

	state := authservice.NewSessionState()
	authUC := authusecase.NewInteractor(state, authoutadapter.NewAPIGateway(api), log)

	sessionsUC := sessionsusecase.NewInteractor(
		sessionsservice.NewSessionService(sessionsoutadapter.NewAPIStore(api)),
	)
	notesUC := notesusecase.NewInteractor(
		notesservice.NewNoteService(notesoutadapter.NewAPIStore(api)),
	)

	return &App{
		AuthCLI:     authinadapter.NewCLIHandler(authUC),
		SessionsCLI: sessionsinadapter.NewCLIHandler(sessionsUC),
		NotesCLI:    notesinadapter.NewCLIHandler(notesUC),
		authUC:      authUC,
		sessionsUC:  sessionsUC,
		notesUC:     notesUC,
		log:         log,
	}, nil
}

// Close flushes buffered log entries. Call it on process exit.
func (a *App) Close() {
	_ = a.log.Sync()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.authUC, app.sessionsUC, app.notesUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
