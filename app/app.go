package app

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"whitebox/config"
	"whitebox/content"
	"whitebox/inspect"
	"whitebox/keys"
	"whitebox/log"
	"whitebox/slider"
	"whitebox/ui"
	"whitebox/ui/layout"
	"whitebox/ui/overlay"
	"whitebox/watcher"
)

// Options are the per-run settings that override the configuration.
type Options struct {
	// ContentFile is the markdown page to show. Empty means the built-in page.
	ContentFile string
	// Before and After replace the page's images when set.
	Before string
	After  string
	// Watch reloads the page when its files change.
	Watch bool
}

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	h := newHome(ctx, cfg, opts, lipgloss.ColorProfile())
	if opts.Watch {
		w, err := watcher.New(0)
		if err != nil {
			log.WarningLog.Printf("hot reload disabled: %v", err)
		} else {
			defer w.Close()
			h.watcher = w
		}
	}

	p := tea.NewProgram(
		h,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and wheel
		tea.WithReportFocus(),     // Blur cancels a drag
	)
	_, err := p.Run()
	return err
}

type state int

const (
	// stateLoading is the state while the page and its images decode for the first time.
	stateLoading state = iota
	// stateReady is the state when the page is shown and the slider is live.
	stateReady
	// stateHelp is the state when the help overlay is displayed.
	stateHelp
)

func (s state) String() string {
	switch s {
	case stateLoading:
		return "loading"
	case stateReady:
		return "ready"
	case stateHelp:
		return "help"
	default:
		return "unknown"
	}
}

// handleSlop widens the handle hit region on both sides, in cells.
const handleSlop = 1

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	appConfig *config.Config
	opts      Options

	// -- State --

	// state is the current discrete state of the application
	state state
	// page is the loaded content; nil until the first load finishes
	page *content.Page
	// reloading is set while a reload runs in the background
	reloading bool

	// slider is mounted on the first window size
	slider *slider.Slider
	// grabbed is set while a press on the handle is being dragged
	grabbed bool
	// lastX is the terminal column of the previous drag sample
	lastX int
	// generation tags settle frame ticks. It is bumped whenever a gesture
	// starts or a new settle begins, so ticks from an older chain are dropped.
	generation int

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation
	plan          layout.Page
	// view is the page as last rendered into the viewport
	view ui.PageView

	// body caches the rendered markdown for bodyWidth
	body      string
	bodyWidth int
	// logo holds the rendered logo rows
	logo []string

	// -- UI Components --

	painter    ui.Painter
	comparison *ui.Comparison
	// viewport scrolls the page vertically
	viewport viewport.Model
	// menu displays the bottom hint bar
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// errSeq numbers shown errors so a stale hide timer leaves a newer one up
	errSeq int
	// global spinner instance. we plumb this down to where it's needed
	spinner spinner.Model
	// loadingOverlay is shown until the first load finishes
	loadingOverlay *overlay.LoadingOverlay
	// helpOverlay is shown in stateHelp
	helpOverlay *overlay.HelpOverlay

	// -- Background Services --

	// watcher reports changes to the page's files; nil when hot reload is off
	watcher  *watcher.Watcher
	watching bool
}

func newHome(ctx context.Context, cfg *config.Config, opts Options, profile termenv.Profile) *home {
	painter := ui.NewPainter(profile)
	h := &home{
		ctx:        ctx,
		appConfig:  cfg,
		opts:       opts,
		state:      stateLoading,
		painter:    painter,
		comparison: ui.NewComparison(painter),
		viewport:   viewport.New(0, 0),
		menu:       ui.NewMenu(),
		errBox:     ui.NewErrBox(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
	h.loadingOverlay = overlay.NewLoadingOverlay("Whitebox", &h.spinner)
	h.loadingOverlay.SetStatus("Loading images...")
	h.loadingOverlay.SetSource(opts.ContentFile)
	h.menu.SetState(ui.StateLoading)

	log.GetProfiler().SetFrameBudget(cfg.FrameInterval())
	return h
}

// sizing maps the configuration onto layout sizing.
func sizing(cfg *config.Config) layout.Sizing {
	return layout.Sizing{
		WidthRatio:      cfg.Slider.WidthRatio,
		HeightRatio:     cfg.Slider.HeightRatio,
		MaxWidth:        cfg.Slider.MaxWidth,
		MaxHeight:       cfg.Slider.MaxHeight,
		MinWidth:        cfg.Slider.MinWidth,
		MinHeight:       cfg.Slider.MinHeight,
		HandleWidth:     cfg.Slider.HandleWidth,
		InsetTop:        cfg.Insets.Top,
		InsetBottom:     cfg.Insets.Bottom,
		InsetHorizontal: cfg.Insets.Horizontal,
	}
}

func (m *home) sliderOptions() []slider.Option {
	s := m.appConfig.Settle
	return []slider.Option{
		slider.WithSpring(s.FPS, s.Frequency, s.Damping),
		slider.WithReleaseVelocity(s.Velocity),
	}
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	c := layout.ComputeConstraints(msg.Width, msg.Height, sizing(m.appConfig))
	d := layout.ComputeDegradation(c)
	m.constraints, m.degradation = c, d
	log.LayoutTrace("resize %dx%d mode=%s slider=%dx%d", msg.Width, msg.Height, c.Mode, c.SliderWidth, c.SliderHeight)

	m.viewport.Width = c.PageWidth
	m.viewport.Height = c.PageHeight
	m.menu.SetSize(c.MenuWidth, c.MenuHeight)
	m.menu.SetShort(d.ShortHints)
	if d.ShowMinWarning {
		m.menu.SetWarning("terminal too small")
	} else {
		m.menu.SetWarning("")
	}
	m.errBox.SetSize(c.ErrBoxWidth, c.ErrBoxHeight)

	ow, oh := layout.ComputeOverlaySize(msg.Width, msg.Height, layout.OverlayMaxWidth, layout.OverlayMaxHeight)
	if m.helpOverlay != nil {
		m.helpOverlay.SetSize(ow, oh)
	}
	m.loadingOverlay.SetWidth(min(ow, 40))

	g, err := slider.NewGeometry(float64(c.SliderWidth), float64(c.SliderHeight), float64(c.HandleWidth))
	if err != nil {
		log.ErrorLog.Printf("%v", err)
		return
	}
	if m.slider == nil {
		m.slider, err = slider.Mount(g, m.sliderOptions()...)
	} else {
		err = m.slider.Resize(g)
	}
	if err != nil {
		log.ErrorLog.Printf("%v", err)
	}

	m.renderBody()
	m.syncPage()
}

func (m *home) Init() tea.Cmd {
	// The spinner keeps ticking for the lifetime of the program; it is only
	// drawn while the loading overlay is up.
	return tea.Batch(
		m.spinner.Tick,
		m.load(false),
	)
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mod, cmd := m.update(msg)
	if inspect.IsEnabled() {
		if err := inspect.WriteSnapshot(m.snapshot()); err != nil {
			log.WarningLog.Printf("failed to write snapshot: %v", err)
		}
	}
	return mod, cmd
}

func (m *home) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		if msg.seq == m.errSeq {
			m.errBox.Clear()
		}
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case pageLoadedMsg:
		return m, m.handlePageLoaded(msg)
	case frameMsg:
		return m, m.handleFrame(msg)
	case watcher.ChangedMsg:
		log.InfoLog.Printf("reloading after changes to %v", msg.Paths)
		return m, tea.Batch(m.reload(), m.waitForChanges())
	case watcher.ErrorMsg:
		return m, tea.Batch(m.handleError(msg.Err), m.waitForChanges())
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.BlurMsg:
		// The release will never arrive once the terminal loses focus.
		if m.grabbed {
			log.InputTrace("blur cancels drag")
			return m, m.release(m.slider.DragCancel())
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMenuHighlighting returns a command to highlight the pressed key in the menu.
// This is purely visual - it briefly underlines the corresponding menu item.
func (m *home) handleMenuHighlighting(name keys.KeyName) tea.Cmd {
	if m.state != stateReady {
		return nil
	}
	return m.keydownCallback(name)
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == stateHelp {
		if m.helpOverlay.HandleKeyPress(msg) {
			m.state = stateReady
			m.helpOverlay = nil
			m.updateMenuState()
		}
		return m, nil
	}

	name, ok := keys.Lookup(msg.String())
	if !ok {
		// Paging keys and friends go straight to the viewport.
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	log.InputTrace("key %s", msg.String())

	highlightCmd := m.handleMenuHighlighting(name)
	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyHelp:
		if m.state == stateLoading {
			return m, nil
		}
		return m, m.showHelp()
	case keys.KeyReload:
		return m, tea.Batch(highlightCmd, m.reload())
	case keys.KeyScrollUp:
		m.viewport.ScrollUp(1)
	case keys.KeyScrollDown:
		m.viewport.ScrollDown(1)
	}
	return m, highlightCmd
}

// showHelp opens the help overlay. A drag in progress is cancelled first;
// the overlay takes the mouse, so its release would never arrive.
func (m *home) showHelp() tea.Cmd {
	var cmd tea.Cmd
	if m.grabbed && m.slider != nil {
		cmd = m.release(m.slider.DragCancel())
	}
	m.helpOverlay = overlay.NewHelpOverlay()
	m.helpOverlay.SetSize(layout.ComputeOverlaySize(m.width, m.height, layout.OverlayMaxWidth, layout.OverlayMaxHeight))
	m.state = stateHelp
	m.updateMenuState()
	return cmd
}

func (m *home) updateMenuState() {
	switch {
	case m.state == stateHelp:
		m.menu.SetState(ui.StateHelp)
	case m.grabbed:
		m.menu.SetState(ui.StateDragging)
	case m.state == stateLoading || m.reloading:
		m.menu.SetState(ui.StateLoading)
	default:
		m.menu.SetState(ui.StateDefault)
	}
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg clears the error box if the error numbered seq is still the one
// shown.
type hideErrMsg struct {
	seq int
}

// handleError shows err and returns a command that hides it after 3 seconds,
// unless another error has replaced it by then.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	m.errSeq++
	seq := m.errSeq
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(3 * time.Second):
		}

		return hideErrMsg{seq: seq}
	}
}

// handlePageLoaded installs a freshly loaded page and its images.
func (m *home) handlePageLoaded(msg pageLoadedMsg) tea.Cmd {
	m.reloading = false
	var cmds []tea.Cmd

	if msg.page != nil {
		m.page = msg.page
		m.setImages(msg.before, msg.after, msg.logo)
		m.bodyWidth = 0
		m.renderBody()

		if m.watcher != nil {
			if err := m.watcher.Watch(msg.page.Files()); err != nil {
				log.WarningLog.Printf("%v", err)
			}
			if !m.watching {
				m.watching = true
				cmds = append(cmds, m.watcher.Wait())
			}
		}
	}
	if msg.err != nil {
		cmds = append(cmds, m.handleError(msg.err))
	}

	if m.state == stateLoading {
		m.state = stateReady
	}
	m.updateMenuState()
	m.syncPage()
	return tea.Batch(cmds...)
}

func (m *home) setImages(before, after, logo image.Image) {
	// The before picture is clipped at the boundary over the after picture.
	m.comparison.SetImage(slider.ForegroundImage, before)
	m.comparison.SetImage(slider.BackgroundImage, after)
	m.logo = nil
	if logo != nil {
		w, h := ui.LogoSize()
		m.logo = m.painter.Render(ui.NewPicture(logo, w, h))
	}
}

// waitForChanges re-arms the watcher.
func (m *home) waitForChanges() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Wait()
}

// renderBody renders the markdown body when the page or its width changed.
func (m *home) renderBody() {
	if m.page == nil || m.constraints.ContentWidth == 0 || m.bodyWidth == m.constraints.ContentWidth {
		return
	}
	width := m.constraints.ContentWidth
	done := log.GetProfiler().StartRender("body")
	body, err := content.RenderBody(m.page.Body, m.appConfig.Theme, width)
	done()
	if err != nil {
		log.WarningLog.Printf("%v", err)
		body = m.page.Body
	}
	m.body = body
	m.bodyWidth = width
}

// pageView collects what the page shows for the current state.
func (m *home) pageView() ui.PageView {
	v := ui.PageView{
		Constraints: m.constraints,
		Degradation: m.degradation,
		Slider:      m.comparison.View(m.slider.Render()),
		Logo:        m.logo,
	}
	if m.page != nil {
		v.Title = m.page.Title
		v.Subtitle = m.page.Subtitle
		v.Body = m.body
	}
	return v
}

// syncPage redraws the page into the viewport.
func (m *home) syncPage() {
	if m.slider == nil {
		return
	}
	done := log.GetProfiler().StartRender("page")
	m.view = m.pageView()
	s, plan := ui.RenderPage(m.view)
	done()
	m.plan = plan
	m.viewport.SetContent(s)
}

func (m *home) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		m.menu.String(),
		m.errBox.String(),
	)

	switch m.state {
	case stateLoading:
		return overlay.PlaceCentered(m.width, m.height, m.loadingOverlay.Render(), mainView)
	case stateHelp:
		if m.helpOverlay == nil {
			log.ErrorLog.Printf("help overlay is nil")
			return mainView
		}
		return overlay.PlaceCentered(m.width, m.height, m.helpOverlay.Render(), mainView)
	}
	return mainView
}
