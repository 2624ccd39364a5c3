// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/client"
	"github.com/markalston/inference-calculator/cli/internal/tui/breakeven"
	"github.com/markalston/inference-calculator/cli/internal/tui/comparison"
	"github.com/markalston/inference-calculator/cli/internal/tui/debuglog"
	"github.com/markalston/inference-calculator/cli/internal/tui/icons"
	"github.com/markalston/inference-calculator/cli/internal/tui/styles"
	"github.com/markalston/inference-calculator/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenWizard
	ScreenResults
)

// View selects which result panel is shown
type View int

const (
	ViewComparison View = iota
	ViewBreakEven
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4 // border plus padding, both sides
	requestTimeout   = 15 * time.Second
)

// catalogLoadedMsg is sent when hardware and pricing have been fetched
type catalogLoadedMsg struct {
	catalog *models.HardwareListResponse
	pricing *models.Pricing
	err     error
}

// comparedMsg is sent when a comparison request completes
type comparedMsg struct {
	input  *models.CompareRequest
	result *models.CompareResponse
	err    error
}

// App is the root model for the TUI
type App struct {
	client *client.Client
	screen Screen
	view   View
	width  int
	height int
	err    error
	busy   bool

	catalog     *models.HardwareListResponse
	pricing     *models.Pricing
	lastRequest *models.CompareRequest
	result      *models.CompareResponse
	lastUpdate  time.Time

	spinner      spinner.Model
	wizardScreen *wizard.Wizard
	compView     *comparison.Comparison
	breakView    *breakeven.BreakEven
}

// New creates a new TUI application
func New(apiClient *client.Client) *App {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		client:  apiClient,
		screen:  ScreenLoading,
		busy:    true,
		spinner: s,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadCatalog())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeViews()
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenLoading:
			return a.updateLoading(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenResults:
			return a.updateResults(msg)
		}

	case spinner.TickMsg:
		if !a.busy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case catalogLoadedMsg:
		a.busy = false
		if msg.err != nil {
			debuglog.Error("load catalog", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.catalog = msg.catalog
		a.pricing = msg.pricing
		return a, a.runWizard()

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		a.screen = ScreenResults
		return a, a.compare(msg.Input)

	case wizard.WizardCancelledMsg:
		a.wizardScreen = nil
		if a.result == nil {
			return a, tea.Quit
		}
		a.screen = ScreenResults
		return a, nil

	case comparedMsg:
		a.busy = false
		if msg.err != nil {
			debuglog.Error("compare", msg.err)
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.lastRequest = msg.input
		a.result = msg.result
		a.lastUpdate = time.Now()
		a.compView = comparison.New(a.result, a.contentWidth())
		a.breakView = breakeven.New(&a.result.BreakEven, a.result.Summary, a.contentWidth())
		a.screen = ScreenResults
		return a, nil

	default:
		// huh forms rely on their own internal messages
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
	}

	return a, nil
}

func (a *App) updateLoading(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		if a.err != nil && !a.busy {
			a.err = nil
			a.busy = true
			return a, tea.Batch(a.spinner.Tick, a.loadCatalog())
		}
	}
	return a, nil
}

func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "w":
		return a, a.runWizard()
	case "tab":
		if a.view == ViewComparison {
			a.view = ViewBreakEven
		} else {
			a.view = ViewComparison
		}
	case "m":
		if a.lastRequest != nil && !a.busy {
			next := *a.lastRequest
			next.Mode = string(toggleMode(next.Mode))
			return a, a.compare(&next)
		}
	case "r":
		if a.lastRequest != nil && !a.busy {
			return a, a.compare(a.lastRequest)
		}
	}
	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

// toggleMode flips between total cost and net revenue
func toggleMode(mode string) models.ProjectionMode {
	if m, err := models.ParseProjectionMode(mode); err == nil && m == models.ModeNetRevenue {
		return models.ModeTotalCost
	}
	return models.ModeNetRevenue
}

func (a *App) resizeViews() {
	if a.compView != nil {
		a.compView.SetWidth(a.contentWidth())
	}
	if a.breakView != nil {
		a.breakView.SetWidth(a.contentWidth())
	}
	if a.wizardScreen != nil {
		a.wizardScreen.SetWidth(a.contentWidth())
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenLoading:
		content = a.viewLoading()
	case ScreenWizard:
		content = a.viewWizard()
	case ScreenResults:
		content = a.viewResults()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewLoading() string {
	if a.err != nil {
		return styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n\n" +
			styles.Subtitle.Render("Press r to retry or q to quit")
	}
	return a.spinner.View() + " Loading hardware catalog..."
}

func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return styles.ActivePanel.Width(a.contentWidth()).Render(a.wizardScreen.View())
	}
	return ""
}

func (a *App) viewResults() string {
	var status string
	switch {
	case a.busy:
		status = a.spinner.View() + " Comparing...\n"
	case a.err != nil:
		status = styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n"
	}

	var body string
	switch {
	case a.view == ViewBreakEven && a.breakView != nil:
		body = a.breakView.View()
	case a.compView != nil:
		body = a.compView.View()
	default:
		body = "No comparison yet"
	}

	return status + styles.ActivePanel.Width(a.contentWidth()).Render(body)
}

// contentWidth is the inner width of the main panel
func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - panelPadding
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	// Guard against zero/small width before WindowSizeMsg is received
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Inference Hardware Calculator"))

	rightText := ""
	if a.pricing != nil && a.screen != ScreenLoading {
		rightText = contextStyle.Render(fmt.Sprintf("$%.2f/kWh · $%g/token", a.pricing.PowerCostPerKWh, a.pricing.MarketPricePerToken)) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╭─ and ─╮
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenLoading:
		shortcuts = []string{"r Retry", "q Quit"}
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenResults:
		shortcuts = []string{"tab " + a.otherViewName(), "m Mode", "w Wizard", "r Refresh", "q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
	}

	leftText := " " + strings.Join(styled, "  ")

	rightText := ""
	if !a.lastUpdate.IsZero() && a.screen == ScreenResults {
		rightText = statusStyle.Render("Updated "+a.formatTimeSince(a.lastUpdate)) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth // -4 for ╰─ and ─╯
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

func (a *App) otherViewName() string {
	if a.view == ViewComparison {
		return "Break-even"
	}
	return "Comparison"
}

// formatTimeSince formats a duration since the given time in human-readable form
func (a *App) formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}

	return fmt.Sprintf("%dh ago", int(d.Hours()))
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// loadCatalog fetches both hardware classes and the pricing assumptions
func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		catalog, err := a.client.Hardware(ctx, "")
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		pricing, err := a.client.Pricing(ctx)
		if err != nil {
			// The header simply omits pricing
			debuglog.Error("load pricing", err)
		}
		return catalogLoadedMsg{catalog: catalog, pricing: pricing}
	}
}

// runWizard transitions to the wizard screen, prefilled with the last request
func (a *App) runWizard() tea.Cmd {
	a.wizardScreen = wizard.New(a.catalog, a.lastRequest)
	a.wizardScreen.SetWidth(a.contentWidth())
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// compare calls the backend with input and reports the outcome as a comparedMsg
func (a *App) compare(input *models.CompareRequest) tea.Cmd {
	a.busy = true
	debuglog.Log("compare cpu=%q gpu=%q hours=%v mode=%s", input.CPUModel, input.GPUModel, input.UtilizationHours, input.Mode)
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := a.client.Compare(ctx, input)
		return comparedMsg{input: input, result: result, err: err}
	}
	return tea.Batch(a.spinner.Tick, fetch)
}

// Run starts the TUI. debugLogPath, when set, receives request and error logs.
func Run(apiClient *client.Client, debugLogPath string) error {
	if err := debuglog.Init(debugLogPath); err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer debuglog.Close()

	p := tea.NewProgram(
		New(apiClient),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
