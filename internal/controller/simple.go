package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "svcdeps.dev/pkg/svcdeps/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayScanInfo shows concurrency settings.
func (s *SimpleUI) DisplayScanInfo(ctx context.Context, services int, threads uint) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Scanning %d service(s) with %d worker(s)\n", services, threads)
}

// DisplayServiceCompleted shows the edges found for one service.
func (s *SimpleUI) DisplayServiceCompleted(ctx context.Context, result m.ServiceResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Resolved %s: %d file edge(s), %d source edge(s), %d skipped\n",
		result.Service, result.FileEdges, result.SourceEdges, len(result.Skipped))
}

// DisplayScanReport prints the per-service table and the scan totals.
func (s *SimpleUI) DisplayScanReport(ctx context.Context, report m.ScanReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderScanTable(report))
	s.printf("Packages: %s\n", formatPackageOutcomes(report.Packages))

	for _, item := range report.Skipped {
		s.printf("Skipped %s %s: %v\n", item.Service, item.Path, item.Err)
	}

	s.printf("New edges: %d (%s)\n", report.NewEdges(), report.Duration.Round(time.Millisecond))

	return nil
}

// DisplayServiceList prints one row per service with its declared dependencies.
func (s *SimpleUI) DisplayServiceList(ctx context.Context, services []m.ServiceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderServiceTable(services))

	return nil
}

// DisplayServiceEdges prints every dependency edge grouped by service.
func (s *SimpleUI) DisplayServiceEdges(ctx context.Context, services []m.ServiceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderEdgeTable(services))

	return nil
}

func renderScanTable(report m.ScanReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Service", "Packages", "Files Read", "File Edges", "Source Edges", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	packages := 0

	for _, result := range report.Services {
		count := 0
		for _, n := range result.Packages {
			count += n
		}

		packages += count

		table.Append([]string{
			result.Service.String(),
			strconv.Itoa(count),
			strconv.Itoa(result.FilesRead),
			strconv.Itoa(result.FileEdges),
			strconv.Itoa(result.SourceEdges),
			strconv.Itoa(len(result.Skipped)),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Services %d", len(report.Services)),
		strconv.Itoa(packages),
		strconv.Itoa(report.FilesRead),
		strconv.Itoa(report.FileEdges),
		strconv.Itoa(report.SourceEdges),
		strconv.Itoa(len(report.Skipped)),
	})

	table.Render()

	return tableBuffer.String()
}

func renderServiceTable(services []m.ServiceSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Service", "Control Script", "Packages", "Files", "Sources"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, service := range services {
		script := string(service.ControlScript)
		if script == "" {
			script = "-"
		}

		table.Append([]string{
			service.Key.String(),
			script,
			strconv.Itoa(service.Packages),
			strconv.Itoa(len(service.Files)),
			strconv.Itoa(len(service.Sources)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Services %d", len(services)), "", "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderEdgeTable(services []m.ServiceSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Service", "Kind", "Target"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoMergeCells(true)

	for _, edge := range flattenEdges(services) {
		table.Append([]string{edge.Service.String(), string(edge.Kind), string(edge.Target)})
	}

	table.Render()

	return tableBuffer.String()
}

func flattenEdges(services []m.ServiceSummary) []m.Edge {
	var edges []m.Edge

	for _, service := range services {
		for _, file := range service.Files {
			edges = append(edges, m.Edge{Service: service.Key, Kind: m.EdgeFile, Target: file})
		}

		for _, dir := range service.Sources {
			edges = append(edges, m.Edge{Service: service.Key, Kind: m.EdgeSource, Target: dir})
		}
	}

	return edges
}

func formatPackageOutcomes(outcomes map[m.PackageOutcome]int) string {
	if len(outcomes) == 0 {
		return "none"
	}

	keys := make([]m.PackageOutcome, 0, len(outcomes))
	for outcome := range outcomes {
		keys = append(keys, outcome)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var b bytes.Buffer

	for i, outcome := range keys {
		if i > 0 {
			b.WriteString(", ")
		}

		fmt.Fprintf(&b, "%d %s", outcomes[outcome], outcome)
	}

	return b.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
