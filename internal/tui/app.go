package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/winhop/winhop/internal/config"
	"github.com/winhop/winhop/internal/hint"
	"github.com/winhop/winhop/internal/picker"
	"github.com/winhop/winhop/internal/tui/panels"
)

// uiMode is the root model's input mode.
type uiMode int

const (
	modeNormal uiMode = iota
	modePick          // a hint-selection session is consuming keystrokes
	modeRelay         // keystrokes are forwarded to the relay target
)

func (m uiMode) String() string {
	switch m {
	case modePick:
		return "PICK"
	case modeRelay:
		return "RELAY"
	default:
		return "NORMAL"
	}
}

// ReadFileFunc loads file content for the preview panel.
type ReadFileFunc func(name string) (string, error)

// Model is the root bubbletea model for the winhop multi-panel demo.
type Model struct {
	// Engine configuration
	alphabet     hint.Alphabet
	cancel       rune
	rendererMode string
	leaders      map[rune]string // leader char → handler name
	remap        map[rune]rune

	// Sub-panels
	files    panels.FilesPanel
	help     panels.HelpPanel
	logPanel panels.LogPanel
	preview  panels.PreviewPanel

	// Layout and focus
	layout     Layout
	focus      FocusTarget
	theme      Theme
	width      int
	height     int
	minW, minH int

	// Selection / relay state
	mode          uiMode
	pick          *picker.Session
	pickThenRelay bool
	relay         *picker.RelaySession
	relayTarget   FocusTarget
	hints         *HintDisplay

	// Host services
	readFile ReadFileFunc
	workDir  string

	// Time
	now time.Time
}

// New creates the multi-panel demo Model. cfg must already be validated.
func New(cfg *config.Config, entries []panels.FileEntry, logLines []string, readFile ReadFileFunc, workDir string) Model {
	th := NewTheme(cfg.UI.AccentColor)
	layout := Calculate(80, 24, cfg.UI.MinWidth, cfg.UI.MinHeight)

	filesW, filesH := innerDims(layout.Files)
	helpW, helpH := innerDims(layout.Help)
	logW, logH := innerDims(layout.Log)
	prevW, prevH := innerDims(layout.Preview)

	return Model{
		alphabet:     cfg.Alphabet(),
		cancel:       cfg.CancelKey(),
		rendererMode: cfg.Hints.Renderer,
		leaders:      cfg.LeaderRunes(),
		remap:        cfg.RemapRunes(),
		files:        panels.NewFilesPanel(entries, filesW, filesH),
		help:         panels.NewHelpPanel(helpW, helpH),
		logPanel:     panels.NewLogPanel(logW, logH).SetLines(logLines),
		preview:      panels.NewPreviewPanel(prevW, prevH),
		layout:       layout,
		focus:        FocusFiles,
		theme:        th,
		width:        80,
		height:       24,
		minW:         cfg.UI.MinWidth,
		minH:         cfg.UI.MinHeight,
		hints:        &HintDisplay{},
		readFile:     readFile,
		workDir:      workDir,
		now:          time.Now(),
	}
}

// Focus returns the panel currently holding focus.
func (m Model) Focus() FocusTarget { return m.focus }

// Mode returns the current input mode name.
func (m Model) Mode() string { return m.mode.String() }

// RelayTarget returns the relay target while relay mode is active.
func (m Model) RelayTarget() (FocusTarget, bool) {
	return m.relayTarget, m.mode == modeRelay
}

// HintsVisible reports whether hint labels are on display.
func (m Model) HintsVisible() bool { return m.hints.Visible() }

// Init returns the initial command: the clock ticker.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the next one-second clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all incoming bubbletea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case panels.FileSelectedMsg:
		return m.handleFileSelected(msg)
	case previewLoadedMsg:
		return m.handlePreviewLoaded(msg)
	}
	return m.delegateToFocused(msg)
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height, m.minW, m.minH)
	if !m.layout.TooSmall {
		filesW, filesH := innerDims(m.layout.Files)
		helpW, helpH := innerDims(m.layout.Help)
		logW, logH := innerDims(m.layout.Log)
		prevW, prevH := innerDims(m.layout.Preview)
		m.files = m.files.SetSize(filesW, filesH)
		m.help = m.help.SetSize(helpW, helpH)
		m.logPanel = m.logPanel.SetSize(logW, logH)
		m.preview = m.preview.SetSize(prevW, prevH)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, regardless of mode.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modePick:
		return m.handlePickKey(msg)
	case modeRelay:
		return m.handleRelayKey(msg)
	}

	if !IsGlobalKey(msg.String()) {
		return m.delegateToFocused(msg)
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.focus = m.focus.Next()
	case "shift+tab":
		m.focus = m.focus.Prev()
	case "w":
		return m.startPick(false), nil
	case "e":
		return m.startPick(true), nil
	}
	return m, nil
}

// startPick begins a hint-selection session. With relayAfter set the
// single-other-panel short-circuit applies and a successful selection enters
// relay mode instead of moving focus.
func (m Model) startPick(relayAfter bool) Model {
	s := picker.NewSession(SelectablePanels(m.focus), m.alphabet, m.cancel, m.hints, relayAfter)
	out, done := s.Start()
	if done {
		return m.concludePick(out, relayAfter)
	}
	m.pick = s
	m.pickThenRelay = relayAfter
	m.mode = modePick
	return m
}

func (m Model) handlePickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, ok := keyRune(msg)
	out, done := m.pick.Step(key, ok)
	if !done {
		return m, nil
	}
	m.pick = nil
	return m.concludePick(out, m.pickThenRelay), nil
}

// concludePick applies a terminal selection outcome: switch focus for a
// pick, or arm the relay loop for a relay.
func (m Model) concludePick(out picker.Outcome, relayAfter bool) Model {
	m.mode = modeNormal
	if !out.Selected {
		return m
	}
	target, found := TargetForID(out.Panel.ID)
	if !found {
		return m
	}
	if relayAfter {
		m.relayTarget = target
		m.relay = picker.NewRelaySession(m.cancel, m.leaders, m.remap)
		m.mode = modeRelay
		return m
	}
	m.focus = target
	return m
}

func (m Model) handleRelayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, ok := keyRune(msg)
	step := m.relay.Step(key, ok)
	switch step.Action {
	case picker.RelayExit:
		m.relay = nil
		m.mode = modeNormal
	case picker.RelayMotion:
		m = m.applyMotion(m.relayTarget, step.Key)
	case picker.RelayLeader:
		m = m.applyLeader(m.relayTarget, step.Leader, step.Key)
	}
	return m, nil
}

// applyMotion forwards one motion key to the target panel. Focus stays with
// the invoking panel.
func (m Model) applyMotion(target FocusTarget, key rune) Model {
	switch target {
	case FocusFiles:
		m.files = m.files.Motion(key)
	case FocusHelp:
		m.help = m.help.Motion(key)
	case FocusLog:
		m.logPanel = m.logPanel.Motion(key)
	case FocusPreview:
		m.preview = m.preview.Motion(key)
	}
	return m
}

// applyLeader dispatches a leader sequence against the target panel.
func (m Model) applyLeader(target FocusTarget, leader, arg rune) Model {
	switch m.leaders[leader] {
	case "bracket":
		delta := 1
		if arg == '[' {
			delta = -1
		}
		switch target {
		case FocusLog:
			m.logPanel = m.logPanel.JumpSection(delta)
		case FocusPreview:
			m.preview = m.preview.JumpSection(delta)
		}
	case "fold":
		if target == FocusLog {
			m.logPanel = m.logPanel.Fold(arg)
		}
	}
	return m
}

// keyRune converts a bubbletea key message to the engine's key model:
// a printable rune, escape, or "no input" for everything else.
func keyRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type == tea.KeyEsc {
		return 0x1b, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return msg.Runes[0], true
	}
	return 0, false
}

func (m Model) delegateToFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusFiles:
		m.files, cmd = m.files.Update(msg)
	case FocusHelp:
		m.help, cmd = m.help.Update(msg)
	case FocusLog:
		m.logPanel, cmd = m.logPanel.Update(msg)
	case FocusPreview:
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

func (m Model) handleFileSelected(msg panels.FileSelectedMsg) (tea.Model, tea.Cmd) {
	if m.readFile == nil {
		return m, nil
	}
	name := msg.Name
	read := m.readFile
	return m, func() tea.Msg {
		content, err := read(name)
		return previewLoadedMsg{Name: name, Content: content, Err: err}
	}
}

func (m Model) handlePreviewLoaded(msg previewLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.preview = m.preview.ShowFile(msg.Name, fmt.Sprintf("(cannot read %s: %v)", msg.Name, msg.Err))
		return m, nil
	}
	m.preview = m.preview.ShowFile(msg.Name, msg.Content)
	return m, nil
}

// View renders the full multi-panel TUI.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least %dx%d.", m.width, m.height, m.minW, m.minH)
		return dimStyle.
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		WorkDir:  m.workDir,
		Renderer: m.rendererMode,
		Alphabet: string(m.alphabet),
		Mode:     m.mode.String(),
		Clock:    m.now,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(m.footerProps(), m.layout.Footer.Width)

	filesW, filesH := innerDims(m.layout.Files)
	helpW, helpH := innerDims(m.layout.Help)
	logW, logH := innerDims(m.layout.Log)
	prevW, prevH := innerDims(m.layout.Preview)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelBorderStyle(m.focus == FocusFiles).
			Width(filesW).Height(filesH).
			Render(m.panelView(FocusFiles, m.files.View(), filesW)),
		m.theme.PanelBorderStyle(m.focus == FocusHelp).
			Width(helpW).Height(helpH).
			Render(m.panelView(FocusHelp, m.help.View(), helpW)),
	)

	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelBorderStyle(m.focus == FocusLog).
			Width(logW).Height(logH).
			Render(m.panelView(FocusLog, m.logPanel.View(), logW)),
		m.theme.PanelBorderStyle(m.focus == FocusPreview).
			Width(prevW).Height(prevH).
			Render(m.panelView(FocusPreview, m.preview.View(), prevW)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// footerProps assembles the footer state, including statusline hint labels
// when that renderer mode is active.
func (m Model) footerProps() panels.FooterProps {
	props := panels.FooterProps{
		Focus: m.focus.String(),
		Mode:  m.mode.String(),
	}
	if m.mode == modeRelay {
		props.RelayTarget = m.relayTarget.String()
		props.AwaitingLeader = m.relay.AwaitingArgument()
	}
	if m.rendererMode == config.RendererStatusline && m.hints.Visible() {
		props.HintLabels = m.hints.Labels()
	}
	return props
}

// panelView decorates a panel body with its overlay hint badge when the
// overlay renderer is active and a label is assigned to the panel.
func (m Model) panelView(f FocusTarget, body string, width int) string {
	if m.rendererMode != config.RendererOverlay || !m.hints.Visible() {
		return body
	}
	label, found := m.hints.LabelFor(f.PanelID())
	if !found {
		return body
	}
	badge := lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center, m.theme.HintBadge(label))
	lines := strings.Split(body, "\n")
	if len(lines) == 0 {
		return badge
	}
	lines[0] = badge
	return strings.Join(lines, "\n")
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
