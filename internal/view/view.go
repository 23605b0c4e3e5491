// Package view renders element trees and pipeline results for the terminal.
//
// Rendering only reads the tree. Layout follows a simple outline:
//
//	svg
//	| width="200"
//	|_g
//	  | id="group1"
//	  |_circle
//	    | r="55"
package view

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/itsmostafa/svgflat/internal/markup"
	"github.com/itsmostafa/svgflat/internal/tree"
	"github.com/mattn/go-runewidth"
)

// Empty is printed in place of an empty tree.
const Empty = "(empty tree)"

// Options control tree rendering.
type Options struct {
	// Title is printed above the tree when set.
	Title string
	// MaxWidth truncates attribute values wider than this many terminal
	// cells. Zero means no limit.
	MaxWidth int
	// NoColor disables styling.
	NoColor bool
}

// Render writes the outline of t to w.
func Render(w io.Writer, t *tree.Tree, opts Options) error {
	p := palette{plain: opts.NoColor}

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(p.title(opts.Title))
		b.WriteString("\n\n")
	}

	if t.Empty() {
		b.WriteString(p.dim(Empty))
		b.WriteString("\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	t.Walk(func(id tree.NodeID, depth int) bool {
		n := t.Node(id)
		if depth == 0 {
			b.WriteString(p.tag(n.Tag))
		} else {
			b.WriteString(strings.Repeat(" ", depth*2-2))
			b.WriteString(p.dim("|_"))
			b.WriteString(p.tag(n.Tag))
		}
		b.WriteString("\n")

		indent := strings.Repeat(" ", depth*2)
		for _, a := range n.Attributes {
			fmt.Fprintf(&b, "%s%s %s=\"%s\"\n", indent, p.dim("|"), p.attr(a.Name), truncate(a.Value, opts.MaxWidth))
		}
		return true
	})

	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// Summary describes a finished conversion.
type Summary struct {
	Input    string
	Output   string
	Format   string
	Nodes    int
	Rows     int
	Depth    int
	Duration time.Duration
}

// FormatSummary renders the conversion summary box.
func FormatSummary(w io.Writer, s Summary, noColor bool) {
	p := palette{plain: noColor}

	line1 := fmt.Sprintf("%s %s  %s %s (%s)",
		p.dim("Input:"), s.Input,
		p.dim("Output:"), s.Output, s.Format,
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %d  %s %s  %s",
		p.dim("Nodes:"), s.Nodes,
		p.dim("Rows:"), s.Rows,
		p.dim("Depth:"), s.Depth,
		p.dim("Time:"), s.Duration.Round(time.Microsecond),
		p.success("OK"),
	)

	content := p.title("Conversion Complete") + "\n" + line1 + "\n" + line2
	fmt.Fprintln(w, p.box(content))
}

// FormatValid renders the message for a document that passed validation.
func FormatValid(w io.Writer, input string, noColor bool) {
	p := palette{plain: noColor}
	fmt.Fprintf(w, "%s %s\n", p.success("OK"), input)
}

// Diagnose renders err with whatever detail the pipeline attached to it.
func Diagnose(w io.Writer, err error, noColor bool) {
	if err == nil {
		return
	}
	p := palette{plain: noColor}

	fmt.Fprintf(w, "%s %s\n", p.failure("ERROR"), err)

	var se *tree.StructureError
	if errors.As(err, &se) {
		if se.Index >= 0 {
			fmt.Fprintf(w, "  %s %d\n", p.dim("fragment:"), se.Fragment)
		} else {
			fmt.Fprintf(w, "  %s %s\n", p.dim("fragment:"), "end of input")
		}
		if se.Tag != "" {
			fmt.Fprintf(w, "  %s <%s>\n", p.dim("tag:"), se.Tag)
		}
		if se.Expected != "" && se.Expected != se.Tag {
			fmt.Fprintf(w, "  %s </%s>\n", p.dim("expected:"), se.Expected)
		}
	}

	var fe *markup.FragmentError
	if errors.As(err, &fe) {
		if fe.Index >= 0 {
			fmt.Fprintf(w, "  %s %d\n", p.dim("fragment:"), fe.Index)
		}
		fmt.Fprintf(w, "  %s %s\n", p.dim("text:"), fe.Fragment)
	}
}
