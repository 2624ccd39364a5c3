// ABOUTME: Hardware selection wizard as a bubbletea model
// ABOUTME: Uses huh forms to pick a CPU, a GPU, utilization and projection settings

package wizard

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/inference-calculator/backend/models"
	"github.com/markalston/inference-calculator/cli/internal/format"
	"github.com/markalston/inference-calculator/cli/internal/tui/icons"
	"github.com/markalston/inference-calculator/cli/internal/tui/styles"
)

// Utilization bounds of the hours-per-day slider
const (
	MinHours     = 1
	MaxHours     = 24
	DefaultHours = 12

	DefaultMonths = 24
	MaxMonths     = 600
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Input *models.CompareRequest
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard walks through hardware and utilization selection
type Wizard struct {
	form *huh.Form

	cpuOptions []huh.Option[string]
	gpuOptions []huh.Option[string]

	// Form field values (strings for huh)
	cpuModel string
	gpuModel string
	hours    string
	months   string
	mode     string

	step  int
	width int
}

var stepNames = []string{"Hardware", "Utilization"}

func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	return t
}

var modeOptions = []huh.Option[string]{
	huh.NewOption("Total cost (hardware + power)", string(models.ModeTotalCost)),
	huh.NewOption("Net revenue (revenue − costs)", string(models.ModeNetRevenue)),
}

// New creates a wizard offering the catalog's models. prev, when non-nil,
// preselects the previous selection.
func New(catalog *models.HardwareListResponse, prev *models.CompareRequest) *Wizard {
	w := &Wizard{
		step:   1,
		hours:  strconv.Itoa(DefaultHours),
		months: strconv.Itoa(DefaultMonths),
		mode:   string(models.ModeTotalCost),
	}
	if catalog != nil {
		w.cpuOptions = specOptions(catalog.CPU)
		w.gpuOptions = specOptions(catalog.GPU)
		if len(catalog.CPU) > 0 {
			w.cpuModel = catalog.CPU[0].Model
		}
		if len(catalog.GPU) > 0 {
			w.gpuModel = catalog.GPU[0].Model
		}
	}

	if prev != nil {
		w.cpuModel = prev.CPUModel
		w.gpuModel = prev.GPUModel
		w.hours = strconv.FormatFloat(prev.UtilizationHours, 'f', -1, 64)
		if prev.HorizonMonths != nil {
			w.months = strconv.Itoa(*prev.HorizonMonths)
		}
		if prev.Mode != "" {
			w.mode = prev.Mode
		}
	}

	w.form = w.createHardwareForm()
	return w
}

// specOptions labels each model with its price and power draw
func specOptions(specs []models.HardwareSpec) []huh.Option[string] {
	opts := make([]huh.Option[string], len(specs))
	for i, s := range specs {
		label := fmt.Sprintf("%s  (%s, %s W)", s.Model, format.Currency(s.PriceUSD), format.Number(s.ThermalDesignPowerWatts))
		opts[i] = huh.NewOption(label, s.Model)
	}
	return opts
}

func (w *Wizard) createHardwareForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(icons.CPU.String()+" CPU").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(w.cpuOptions...).
				Value(&w.cpuModel),
			huh.NewSelect[string]().
				Title(icons.GPU.String()+" GPU").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(w.gpuOptions...).
				Value(&w.gpuModel),
		).Title("Step 1: Hardware").
			Description("Choose the CPU and GPU to compare"),
	).WithTheme(createTheme())
}

func (w *Wizard) createUtilizationForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Utilization (hours per day)").
				Description(fmt.Sprintf("Between %d and %d", MinHours, MaxHours)).
				Placeholder(strconv.Itoa(DefaultHours)).
				CharLimit(5).
				Value(&w.hours).
				Validate(validateHours),
			huh.NewInput().
				Title("Projection horizon (months)").
				Placeholder(strconv.Itoa(DefaultMonths)).
				CharLimit(3).
				Value(&w.months).
				Validate(validateMonths),
			huh.NewSelect[string]().
				Title("Break-even mode").
				Options(modeOptions...).
				Value(&w.mode),
		).Title("Step 2: Utilization").
			Description("How hard the hardware works and how far to project"),
	).WithTheme(createTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.form = w.createUtilizationForm()
		return w, w.form.Init()

	case 2:
		input, err := w.Input()
		if err != nil {
			// Stay on the step until the values validate
			w.form = w.createUtilizationForm()
			return w, w.form.Init()
		}
		return w, func() tea.Msg {
			return WizardCompleteMsg{Input: input}
		}
	}

	return w, nil
}

// Input builds the compare request from the collected values
func (w *Wizard) Input() (*models.CompareRequest, error) {
	if err := validateHours(w.hours); err != nil {
		return nil, fmt.Errorf("hours: %w", err)
	}
	if err := validateMonths(w.months); err != nil {
		return nil, fmt.Errorf("months: %w", err)
	}
	if w.cpuModel == "" || w.gpuModel == "" {
		return nil, fmt.Errorf("select both a CPU and a GPU")
	}

	hours, _ := strconv.ParseFloat(strings.TrimSpace(w.hours), 64)
	months, _ := strconv.Atoi(strings.TrimSpace(w.months))
	return &models.CompareRequest{
		CPUModel:         w.cpuModel,
		GPUModel:         w.gpuModel,
		UtilizationHours: hours,
		HorizonMonths:    &months,
		Mode:             w.mode,
	}, nil
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	return w.renderProgress() + "\n\n" + w.form.View()
}

// renderProgress renders the step indicator line
func (w *Wizard) renderProgress() string {
	var steps []string
	for i, name := range stepNames {
		stepNum := i + 1
		switch {
		case stepNum < w.step:
			steps = append(steps, lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())+" "+
				lipgloss.NewStyle().Foreground(styles.Muted).Render(name))
		case stepNum == w.step:
			current := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
			steps = append(steps, current.Render("● "+name))
		default:
			steps = append(steps, lipgloss.NewStyle().Foreground(styles.Muted).Render("○ "+name))
		}
	}
	return strings.Join(steps, "    ")
}

func validateHours(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || v < MinHours || v > MaxHours {
		return fmt.Errorf("must be between %d and %d", MinHours, MaxHours)
	}
	return nil
}

func validateMonths(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > MaxMonths {
		return fmt.Errorf("must be a whole number between 0 and %d", MaxMonths)
	}
	return nil
}
