package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"vtp/internal/config"
	"vtp/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	faint  = color.New(color.Faint)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg, out: os.Stdout}
}

// SetOutput redirects the formatter's output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// TreeNode represents a node in the file tree structure
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Tuples   []domain.TupleRecord
	IsFile   bool
}

// buildTree groups records by file path into a directory tree
func (f *Formatter) buildTree(records []domain.TupleRecord) *TreeNode {
	root := &TreeNode{Children: make(map[string]*TreeNode)}

	for _, record := range records {
		parts := strings.Split(filepath.ToSlash(f.relPath(record.Path)), "/")
		current := root

		for i, part := range parts {
			if part == "" || part == "." {
				continue
			}

			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
		}
		current.Tuples = append(current.Tuples, record)
	}

	return root
}

// PrintTupleList prints the tuples as a tree of vector files, marking each
// tuple enabled or disabled, optionally with its value.
func (f *Formatter) PrintTupleList(records []domain.TupleRecord, showValues bool) error {
	if len(records) == 0 {
		yellow.Fprintln(f.out, "No test parameters generated")
		return nil
	}

	green.Fprintf(f.out, "Generated %d test parameter(s):\n\n", len(records))
	return f.printTreeNode(f.buildTree(records), "", showValues)
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string, showValues bool) error {
	// Sort children for consistent output
	keys := make([]string, 0, len(node.Children))
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		isLast := i == len(keys)-1

		connector, childPrefix := "├── ", "│   "
		if isLast {
			connector, childPrefix = "└── ", "    "
		}

		if child.IsFile {
			yellow.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
			if err := f.printTuples(child.Tuples, prefix+childPrefix, showValues); err != nil {
				return err
			}
			continue
		}

		cyan.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
		if err := f.printTreeNode(child, prefix+childPrefix, showValues); err != nil {
			return err
		}
	}

	return nil
}

func (f *Formatter) printTuples(records []domain.TupleRecord, prefix string, showValues bool) error {
	for j, record := range records {
		connector := "├── "
		if j == len(records)-1 {
			connector = "└── "
		}

		label := record.Name
		if record.Fork != "" {
			label = fmt.Sprintf("%s [%s]", record.Name, record.Fork)
		}

		fmt.Fprint(f.out, prefix+connector)
		if record.Enabled {
			green.Fprintf(f.out, "✓ %s\n", label)
		} else {
			faint.Fprintf(f.out, "✗ %s (disabled)\n", label)
		}

		if showValues {
			value, err := FormatValue(record.Value)
			if err != nil {
				return err
			}
			fmt.Fprintf(f.out, "%s    %s\n", prefix, value)
		}
	}
	return nil
}

// PrintSummary prints the counts of a generation run
func (f *Formatter) PrintSummary(meta domain.SnapshotMeta) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                  Test Parameter Statistics                    ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	f.row("Vector Files", fmt.Sprintf("%d", meta.VectorFiles), color.FgWhite)
	f.row("Total Tuples", fmt.Sprintf("%d", meta.TotalTuples), color.FgWhite)
	f.row("Enabled Tuples", fmt.Sprintf("%d", meta.EnabledTuples), color.FgGreen)
	f.row("Disabled Tuples", fmt.Sprintf("%d", meta.TotalTuples-meta.EnabledTuples), color.FgYellow)
	if meta.Duration != "" {
		f.row("Duration", meta.Duration, color.FgWhite)
	}

	fmt.Fprintln(f.out)
	if meta.EnabledTuples == meta.TotalTuples {
		green.Fprintln(f.out, "✓ All test parameters enabled")
	} else if meta.EnabledTuples == 0 {
		red.Fprintln(f.out, "✗ Every test parameter is disabled by the filters")
	} else {
		yellow.Fprintf(f.out, "%d of %d test parameter(s) disabled by the filters\n", meta.TotalTuples-meta.EnabledTuples, meta.TotalTuples)
	}
}

func (f *Formatter) row(label, value string, attr color.Attribute) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	color.New(attr).Fprintf(f.out, "%-27s │\n", value)
}

// relPath returns path relative to the project for cleaner display
func (f *Formatter) relPath(path string) string {
	if f.config == nil || f.config.ProjectPath == "" {
		return path
	}
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// FormatValue renders a tuple value as compact JSON
func FormatValue(value any) (string, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("format value: %w", err)
	}
	return string(data), nil
}
