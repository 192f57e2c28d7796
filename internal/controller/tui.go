package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	serviceStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	headerStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			Bold(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display in scan mode; list mode renders lazily.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)
	if config.mode != ModeScan {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.program != nil {
		return fmt.Errorf("scan display already running")
	}

	// Input stays with the terminal so SIGINT reaches the command context.
	p.program = tea.NewProgram(
		newScanModel(config.services),
		tea.WithOutput(p.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	p.done = make(chan struct{})

	go func(program *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Scan display failed", "error", err)
		}
	}(p.program, p.done)

	return nil
}

// Close stops the progress display and waits until it has restored the terminal.
func (p *TUI) Close(_ context.Context) {
	p.mu.Lock()
	program, done := p.program, p.done
	p.program, p.done = nil, nil
	p.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(scanFinishedMsg{})
	<-done
}

// DisplayScanInfo forwards concurrency settings to the progress display.
func (p *TUI) DisplayScanInfo(ctx context.Context, services int, threads uint) {
	if ctx.Err() != nil {
		return
	}

	p.send(scanInfoMsg{services: services, threads: threads})
}

// DisplayServiceCompleted advances the progress display.
func (p *TUI) DisplayServiceCompleted(ctx context.Context, result m.ServiceResult) {
	if ctx.Err() != nil {
		return
	}

	p.send(serviceDoneMsg{result: result})
}

func (p *TUI) send(msg tea.Msg) {
	p.mu.Lock()
	program := p.program
	p.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayScanReport renders the scan summary.
func (p *TUI) DisplayScanReport(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprint(p.output, renderReport(report))

	return err
}

// DisplayServiceList shows every service with its declared dependency counts.
func (p *TUI) DisplayServiceList(ctx context.Context, services []m.ServiceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lines := make([]string, 0, len(services))
	for _, service := range services {
		script := string(service.ControlScript)
		if script == "" {
			script = "-"
		}

		lines = append(lines, fmt.Sprintf("  %s  %s  %s",
			serviceStyle.Render(service.Key.String()),
			mutedStyle.Render(script),
			fmt.Sprintf("%d package(s), %d file(s), %d source(s)", service.Packages, len(service.Files), len(service.Sources)),
		))
	}

	footer := fmt.Sprintf("  📊 Total: %d service(s)", len(services))

	return p.page(newPagerModel("Services", lines, footer))
}

// DisplayServiceEdges shows every recorded dependency grouped by service.
func (p *TUI) DisplayServiceEdges(ctx context.Context, services []m.ServiceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var (
		lines []string
		edges int
	)

	for _, service := range services {
		lines = append(lines, "  "+serviceStyle.Render(service.Key.String()))

		if len(service.Files) == 0 && len(service.Sources) == 0 {
			lines = append(lines, "    "+mutedStyle.Render("no dependencies"))
		}

		for _, file := range service.Files {
			lines = append(lines, fmt.Sprintf("    %s %s", mutedStyle.Render("file  "), file))
		}

		for _, dir := range service.Sources {
			lines = append(lines, fmt.Sprintf("    %s %s", mutedStyle.Render("source"), dir))
		}

		edges += len(service.Files) + len(service.Sources)
	}

	footer := fmt.Sprintf("  📊 Total: %d edge(s) across %d service(s)", edges, len(services))

	return p.page(newPagerModel("Dependencies", lines, footer))
}

// page prints short content directly and pages long content interactively.
func (p *TUI) page(model pagerModel) error {
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func renderReport(report m.ScanReport) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("svcdeps - scan report"))
	b.WriteString("\n\n")

	for _, result := range report.Services {
		status := okStyle.Render("✓")
		if len(result.Skipped) > 0 {
			status = warnStyle.Render("⚠")
		}

		fmt.Fprintf(&b, "  %s %s  +%d file(s) +%d source(s)\n",
			status, serviceStyle.Render(result.Service.String()), result.FileEdges, result.SourceEdges)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  📦 Packages: %s\n", formatPackageOutcomes(report.Packages))
	fmt.Fprintf(&b, "  📄 Files read: %d\n", report.FilesRead)
	fmt.Fprintf(&b, "  🔗 New edges: %d file, %d source\n", report.FileEdges, report.SourceEdges)

	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render(fmt.Sprintf("⚠️  Skipped %d unreadable file(s):", len(report.Skipped))))

		for _, item := range report.Skipped {
			fmt.Fprintf(&b, "    %s %s\n", item.Service, item.Path)
		}
	}

	fmt.Fprintf(&b, "  ⏱  %s\n", report.Duration.Round(time.Millisecond))

	return b.String()
}

type scanInfoMsg struct {
	services int
	threads  uint
}

type serviceDoneMsg struct {
	result m.ServiceResult
}

type scanFinishedMsg struct{}

// scanModel is the Bubble Tea model shown while services are resolved.
type scanModel struct {
	spinner  spinner.Model
	progress progress.Model

	total       int
	completed   int
	threads     uint
	fileEdges   int
	sourceEdges int
	skipped     int
	last        string
	quitting    bool
}

func newScanModel(total int) scanModel {
	return scanModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(titleStyle)),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total:    total,
		threads:  1,
	}
}

func (sm scanModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scanInfoMsg:
		sm.total = msg.services
		sm.threads = msg.threads

		return sm, nil

	case serviceDoneMsg:
		sm.completed++
		sm.fileEdges += msg.result.FileEdges
		sm.sourceEdges += msg.result.SourceEdges
		sm.skipped += len(msg.result.Skipped)
		sm.last = msg.result.Service.String()

		return sm, nil

	case scanFinishedMsg:
		sm.quitting = true
		return sm, tea.Quit

	case tea.WindowSizeMsg:
		sm.progress.Width = max(min(msg.Width-20, 60), 10)
		return sm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

func (sm scanModel) percent() float64 {
	if sm.total == 0 {
		return 1
	}

	return float64(sm.completed) / float64(sm.total)
}

func (sm scanModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s Resolving services (%d worker(s))\n", sm.spinner.View(), sm.threads)
	fmt.Fprintf(&b, "  %s %d/%d\n", sm.progress.ViewAs(sm.percent()), sm.completed, sm.total)
	fmt.Fprintf(&b, "  +%d file(s) +%d source(s)", sm.fileEdges, sm.sourceEdges)

	if sm.skipped > 0 {
		b.WriteString("  " + warnStyle.Render(fmt.Sprintf("%d skipped", sm.skipped)))
	}

	b.WriteString("\n")

	if sm.last != "" {
		b.WriteString("  " + mutedStyle.Render("last: "+sm.last) + "\n")
	}

	return b.String()
}

// pagerModel is the Bubble Tea model for scrolling through long listings.
type pagerModel struct {
	title    string
	lines    []string
	footer   string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newPagerModel(title string, lines []string, footer string) pagerModel {
	return pagerModel{
		title:  title,
		lines:  lines,
		footer: footer,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop,exhaustive // Key handling requires multiple cases for UI navigation
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm.offset = min(pm.offset+1, pm.maxOffset())

	case "up", "k":
		pm.offset = max(pm.offset-1, 0)

	case "g", "home":
		pm.offset = 0

	case "G", "end":
		pm.offset = pm.maxOffset()

	case "d", "pgdown":
		pm.offset = min(pm.offset+pm.itemsPerPage(), pm.maxOffset())

	case "u", "pgup":
		pm.offset = max(pm.offset-pm.itemsPerPage(), 0)
	}

	return pm, nil
}

// itemsPerPage calculates how many lines fit between header and footer.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10
	}

	// header box (3) + blank + blank before footer + footer + page line + help
	const reserved = 9

	return max(pm.height-reserved, 1)
}

func (pm pagerModel) maxOffset() int {
	return max(len(pm.lines)-pm.itemsPerPage(), 0)
}

func (pm pagerModel) needsPagination() bool {
	return pm.height > 0 && len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("svcdeps - " + pm.title))
	b.WriteString("\n\n")

	if len(pm.lines) == 0 {
		b.WriteString("  📭 No services found\n")
		return b.String()
	}

	visible := pm.lines
	start, end := 0, len(pm.lines)

	if pm.needsPagination() {
		start = min(pm.offset, pm.maxOffset())
		end = min(start+pm.itemsPerPage(), len(pm.lines))
		visible = pm.lines[start:end]
	}

	for _, line := range visible {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pm.footer)
	b.WriteString("\n")

	if pm.needsPagination() {
		perPage := pm.itemsPerPage()
		fmt.Fprintf(&b, "  Page %d/%d | Showing %d-%d of %d\n",
			start/perPage+1, (len(pm.lines)+perPage-1)/perPage, start+1, end, len(pm.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}
