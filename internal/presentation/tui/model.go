package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/tesso57/foryou/internal/application/settings"
	"github.com/tesso57/foryou/internal/application/stream"
	"github.com/tesso57/foryou/internal/domain/foryou"
	"github.com/tesso57/foryou/internal/infrastructure/logging"
	"github.com/tesso57/foryou/internal/presentation/tui/components/theme"
	"github.com/tesso57/foryou/internal/presentation/tui/screen"
	"github.com/tesso57/foryou/internal/presentation/tui/state"
	"github.com/tesso57/foryou/internal/presentation/tui/update"
	"github.com/tesso57/foryou/internal/presentation/tui/view"
)

// FeedViewModel is the view-model the screen is bound to.
type FeedViewModel interface {
	Subscribe() *stream.Subscription[foryou.FeedUIState]
	UpdateTopicSelection(topicID int, checked bool)
	SaveFollowedTopics()
	UpdateNewsResourceSaved(resourceID int, checked bool)
}

// Model represents the main application state.
type Model struct {
	vm     FeedViewModel
	logger *log.Logger
	open   func(string) error
	ctx    context.Context
	cancel context.CancelFunc
	sub    *stream.Subscription[foryou.FeedUIState]
	state  *state.ModelState
}

// NewModel creates a new application model bound to vm. A nil logger
// discards log output.
func NewModel(cfg settings.Settings, vm FeedViewModel, logger *log.Logger) *Model {
	if logger == nil {
		logger = logging.Discard()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		vm:     vm,
		logger: logger,
		open:   openBrowser,
		ctx:    ctx,
		cancel: cancel,
		state:  newModelState(cfg),
	}
	update.Rebuild(m.state, m.deps())
	update.Sync(m.state)
	return m
}

// Init subscribes to the view-model and starts the spinner.
func (m *Model) Init() tea.Cmd {
	if m.sub != nil {
		m.sub.Close()
	}
	m.sub = m.vm.Subscribe()
	return tea.Batch(m.state.Spinner.Tick, update.WaitForStateCmd(m.ctx, m.sub))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			m.state.Follow = true
			update.Sync(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.StateMsg:
		update.HandleStateMsg(m.state, msg, m.deps())
		if m.sub != nil {
			cmds = append(cmds, update.WaitForStateCmd(m.ctx, m.sub))
		}
	case update.SubscriptionEndedMsg:
		update.HandleSubscriptionEnded(m.state, msg, m.deps())
	case spinner.TickMsg:
		if m.state.Loading() {
			var cmd tea.Cmd
			m.state.Spinner, cmd = m.state.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	default:
		var cmd tea.Cmd
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	update.Sync(m.state)
	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

// Close releases the state subscription.
func (m *Model) Close() {
	m.cancel()
	if m.sub != nil {
		m.sub.Close()
	}
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Callbacks: screen.Callbacks{
			OnTopicCheckedChanged:        m.vm.UpdateTopicSelection,
			SaveFollowedTopics:           m.vm.SaveFollowedTopics,
			OnNewsResourceCheckedChanged: m.vm.UpdateNewsResourceSaved,
			OpenURL:                      m.openURL,
		},
		Logger: m.logger,
	}
}

func (m *Model) openURL(url string) {
	if err := m.open(url); err != nil {
		m.logger.Warn("open link failed", "url", url, "err", err)
		m.state.StatusMessage = "Could not open link: " + err.Error()
		return
	}
	m.logger.Debug("opened link", "url", url)
}

func newModelState(cfg settings.Settings) *state.ModelState {
	t := theme.FromSettings(cfg.Theme)
	return &state.ModelState{
		Feed:     foryou.Loading{},
		Scrolled: screen.NoTarget,
		Viewport: newViewport(),
		Help:     help.New(),
		Spinner:  newSpinner(t),
		Keys:     state.NewKeyMap(cfg.KeyMap),
		Theme:    t,
	}
}

func newSpinner(t theme.Theme) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(t.Accent)
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	vp.KeyMap = viewport.KeyMap{}
	return vp
}
