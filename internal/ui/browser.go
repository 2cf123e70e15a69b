package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/rivo/tview"

	"vtp/internal/config"
	"vtp/internal/domain"
)

// Browser displays a stored parameter set in an interactive TUI
type Browser struct {
	config *config.Config
}

// NewBrowser creates a new Browser
func NewBrowser(cfg *config.Config) *Browser {
	return &Browser{config: cfg}
}

// visibleTuples returns the indexes of the tuples shown, all of them or only
// the enabled ones
func visibleTuples(snapshot *domain.Snapshot, onlyEnabled bool) []int {
	var indexes []int
	for i, tuple := range snapshot.Tuples {
		if onlyEnabled && !tuple.Enabled {
			continue
		}
		indexes = append(indexes, i)
	}
	return indexes
}

// View displays the snapshot's tuples in an interactive TUI
func (b *Browser) View(snapshot *domain.Snapshot) error {
	if len(snapshot.Tuples) == 0 {
		color.Yellow("No test parameters in the last snapshot")
		return nil
	}

	onlyEnabled := false
	visible := visibleTuples(snapshot, onlyEnabled)

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		mode := "all"
		if onlyEnabled {
			mode = "enabled only"
		}
		headerView.SetText(fmt.Sprintf(" %s: %d total, %d enabled, showing %s | ↑↓ navigate, [yellow]E[white] toggle enabled only, → details, ← back, Ctrl+C exit ",
			tview.Escape(filepath.Base(b.config.GetOutputPath())), snapshot.Meta.TotalTuples, snapshot.Meta.EnabledTuples, mode))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		tuple := snapshot.Tuples[visible[index]]
		statsView.SetText(formatTupleStats(tuple, visible[index]+1))
		detailsView.SetText(formatTupleDetails(tuple))
	}

	fillList := func() {
		list.Clear()
		for _, i := range visible {
			list.AddItem(listItemText(snapshot.Tuples[i], i+1), "", 0, nil)
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'e' || event.Rune() == 'E' {
				onlyEnabled = !onlyEnabled
				visible = visibleTuples(snapshot, onlyEnabled)
				fillList()
				updateHeader()
				updateDetails()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	fillList()
	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func listItemText(tuple domain.TupleRecord, number int) string {
	name := tuple.Name
	if tuple.Fork != "" {
		name = fmt.Sprintf("%s [%s]", name, tuple.Fork)
	}
	name = tview.Escape(name)
	if tuple.Enabled {
		return fmt.Sprintf("[yellow]%d.[white] %s", number, name)
	}
	return fmt.Sprintf("[gray]✗ %d. %s[white]", number, name)
}

// formatTupleDetails formats a tuple for display using tview color tags
func formatTupleDetails(tuple domain.TupleRecord) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	name := tview.Escape(tuple.Name)
	if tuple.Enabled {
		fmt.Fprintf(w, "[green]✓ Test: %s[white]\n\n", name)
	} else {
		fmt.Fprintf(w, "[gray]✗ Test: %s (disabled)[white]\n\n", name)
	}

	fmt.Fprintf(w, "[cyan]File: %s[white]\n", tview.Escape(tuple.Path))
	if tuple.Fork != "" {
		fmt.Fprintf(w, "[yellow]Fork:\t%s[white]\n", tview.Escape(tuple.Fork))
	}
	if tuple.ContainerKind != "" {
		fmt.Fprintf(w, "[yellow]Container:\t%s[white]\n", tview.Escape(tuple.ContainerKind))
	}
	if tuple.Code != "" {
		fmt.Fprintf(w, "[yellow]Code:[white]\n%s\n", tview.Escape(tuple.Code))
	}
	fmt.Fprintf(w, "\n")

	value, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(tuple.Value, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "[red]Value could not be rendered: %v[white]\n", err)
	} else {
		fmt.Fprintf(w, "[yellow]Value:[white]\n%s\n", tview.Escape(string(value)))
	}

	w.Flush()
	return builder.String()
}

// formatTupleStats formats the stats header for a tuple
func formatTupleStats(tuple domain.TupleRecord, number int) string {
	path := tuple.Path
	if path == "" {
		path = "Unknown path"
	}

	name := tuple.Name
	if name == "" {
		name = fmt.Sprintf("Tuple %d", number)
	}

	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white]::[yellow]%s[white]\n", tview.Escape(path), tview.Escape(name))
}
