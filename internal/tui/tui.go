// Package tui provides a Bubble Tea terminal user interface for studycafe.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/space84/studycafe/internal/config"
	"github.com/space84/studycafe/internal/detail"
	"github.com/space84/studycafe/internal/directory"
	"github.com/space84/studycafe/internal/fanfic"
	"github.com/space84/studycafe/internal/gallery"
	apihttp "github.com/space84/studycafe/internal/http"
	"github.com/space84/studycafe/internal/logging"
	"github.com/space84/studycafe/internal/model"
	"github.com/space84/studycafe/internal/router"
)

// API is the remote surface the TUI reads from.
type API interface {
	Info(ctx context.Context) (model.ServiceInfo, error)
	Artists(ctx context.Context) ([]model.Artist, error)
	Fanfic(ctx context.Context, slug string) (*model.Narrative, error)
}

// Deps are the collaborators a Model is built from.
type Deps struct {
	Settings *config.Settings
	Logger   *slog.Logger
	API      API
	// Images downloads gallery images. Nil disables thumbnails.
	Images gallery.Downloader
}

// session holds the view controllers. It is shared by every copy of Model
// and only touched from Update.
type session struct {
	router    *router.Router
	directory *directory.Directory
	detail    *detail.View
	pending   []router.Transition
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	settings *config.Settings
	logger   *slog.Logger
	api      API
	gallery  *gallery.Loader

	s *session

	search   textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	info    *model.ServiceInfo
	infoErr error

	cursor int

	thumbs         []gallery.Thumbnail
	galleryLoading bool

	// Context for in-flight requests; canceled on quit.
	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model on the home view.
func NewModel(deps Deps) Model {
	settings := deps.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	s := &session{router: router.New()}
	s.directory = directory.New(deps.API,
		directory.WithLogger(logger),
		directory.WithLocale(settings.LanguageTag()),
		directory.WithOnSelect(func(slug string) {
			t, err := s.router.Detail(slug)
			if err != nil {
				logger.Warn("artist selection ignored", "error", err)
				return
			}
			s.pending = append(s.pending, t)
		}),
	)
	s.detail = detail.New(deps.API, logger)

	var loader *gallery.Loader
	if settings.ShowThumbnails && deps.Images != nil {
		loader = gallery.NewLoader(deps.Images, settings.MaxConcurrentImages, settings.ThumbnailWidth, logger)
	}

	ti := textinput.New()
	ti.Placeholder = "아티스트 검색..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#667EEA"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		settings: settings,
		logger:   logger,
		api:      deps.API,
		gallery:  loader,
		s:        s,
		search:   ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		ctx:      ctx,
		cancel:   cancel,
		width:    80,
		height:   24,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchInfo(m.ctx, m.api))
}

// Current returns the router state, mostly for tests.
func (m Model) Current() router.State {
	return m.s.router.Current()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(msg.Width-10, 20)
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-detailChromeHeight, 5)
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InfoMsg:
		if msg.Err != nil {
			m.logger.Error("api info failed", "kind", fanfic.Classify(msg.Err).String(), "error", msg.Err)
			m.infoErr = msg.Err
		} else {
			info := msg.Info
			m.info = &info
			m.infoErr = nil
		}

	case ArtistsMsg:
		if m.s.directory.Resolve(msg.Seq, msg.Artists, msg.Err) {
			m.clampCursor()
		}

	case FanficMsg:
		if m.s.detail.Resolve(msg.Seq, msg.Narrative, msg.Err) {
			m.viewport.GotoTop()
			cmds = append(cmds, m.startGallery(msg.Seq))
			m.refreshViewport()
		}

	case GalleryMsg:
		if msg.Seq == m.s.detail.Seq() {
			m.galleryLoading = false
			if msg.Err == nil {
				m.thumbs = msg.Thumbs
			}
			m.refreshViewport()
		}
	}

	cmds = append(cmds, m.drainTransitions())
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.s.router.Current().View {
	case router.ViewHome:
		switch msg.String() {
		case "q", "esc":
			m.cancel()
			return m, tea.Quit
		case "f", "enter":
			m.navigate(m.s.router.List())
		}
		return m, nil

	case router.ViewList:
		switch msg.String() {
		case "esc":
			m.navigate(m.s.router.Home())
			return m, nil
		case "up", "ctrl+p":
			m.moveCursor(-1)
			return m, nil
		case "down", "ctrl+n":
			m.moveCursor(1)
			return m, nil
		case "pgup":
			m.moveCursor(-m.listRows())
			return m, nil
		case "pgdown":
			m.moveCursor(m.listRows())
			return m, nil
		case "ctrl+r":
			return m, fetchArtists(m.ctx, m.api, m.s.directory.Begin())
		case "enter":
			visible := m.s.directory.Visible()
			if m.cursor >= 0 && m.cursor < len(visible) {
				m.s.directory.Select(visible[m.cursor].Slug)
			}
			return m, nil
		}

		// Everything else edits the search field.
		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			m.s.directory.SetQuery(m.search.Value())
			m.cursor = 0
		}
		return m, cmd

	case router.ViewDetail:
		switch msg.String() {
		case "q":
			m.cancel()
			return m, tea.Quit
		case "esc", "b":
			m.navigate(m.s.router.Back())
			return m, nil
		case "h":
			m.navigate(m.s.router.Home())
			return m, nil
		case "r":
			return m, m.refresh()
		}

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// navigate queues a transition for drainTransitions.
func (m *Model) navigate(t router.Transition) {
	m.s.pending = append(m.s.pending, t)
}

// refresh reloads the bound artist. Overlapping refreshes are allowed;
// only the newest response is applied.
func (m *Model) refresh() tea.Cmd {
	slug := m.s.detail.Slug()
	if slug == "" {
		return nil
	}
	return m.loadDetail(slug)
}

func (m *Model) loadDetail(slug string) tea.Cmd {
	seq := m.s.detail.Begin(slug)
	m.thumbs = nil
	m.galleryLoading = false
	return fetchFanfic(m.ctx, m.api, seq, slug)
}

// drainTransitions turns queued router transitions into side effects.
// Entering the list loads the directory once; entering a detail state
// loads that artist. Transitions that leave the state unchanged do nothing.
func (m *Model) drainTransitions() tea.Cmd {
	if len(m.s.pending) == 0 {
		return nil
	}
	pending := m.s.pending
	m.s.pending = nil

	var cmds []tea.Cmd
	for _, t := range pending {
		if !t.Changed() {
			continue
		}
		m.logger.Debug("view transition", "from", t.From.String(), "to", t.To.String())

		switch {
		case t.Entered(router.ViewHome):
			m.search.Blur()
			if m.info == nil {
				cmds = append(cmds, fetchInfo(m.ctx, m.api))
			}

		case t.Entered(router.ViewList):
			cmds = append(cmds, m.search.Focus())
			if m.s.directory.State() == directory.StateIdle {
				cmds = append(cmds, fetchArtists(m.ctx, m.api, m.s.directory.Begin()))
			}

		case t.Entered(router.ViewDetail):
			m.search.Blur()
			cmds = append(cmds, m.loadDetail(t.To.Slug))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) startGallery(seq uint64) tea.Cmd {
	n := m.s.detail.Narrative()
	if m.gallery == nil || n == nil || !n.HasGallery() {
		return nil
	}
	m.galleryLoading = true
	urls := append([]string(nil), n.Images...)
	return fetchGallery(m.ctx, m.gallery, seq, urls)
}

func (m *Model) refreshViewport() {
	sections, ok := m.s.detail.Sections()
	if !ok {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(renderDetail(sections, m.thumbs, m.galleryLoading, m.width))
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.s.directory.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the TUI application against the API named in settings.
func Run(settings *config.Settings, logger *slog.Logger) error {
	httpClient := apihttp.NewClient(
		apihttp.WithTimeout(settings.RequestTimeout()),
		apihttp.WithUserAgent(settings.UserAgent),
	)
	api := fanfic.NewClient(settings.APIURL, httpClient)

	logger.Info("starting tui", "api_url", api.BaseURL())

	m := NewModel(Deps{
		Settings: settings,
		Logger:   logger,
		API:      api,
		Images:   httpClient,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.cancel()
	return err
}
