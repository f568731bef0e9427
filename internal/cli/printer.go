package cli

// This file wraps pterm so that commands print through a single Printer.
// Styling is stripped when the output is not a terminal.

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Printer writes command output. Quiet suppresses headers but never tables
// or results.
type Printer struct {
	Quiet  bool
	Writer io.Writer
	styled bool
}

// DefaultPrinter prints to stdout.
var DefaultPrinter = NewPrinter(os.Stdout)

// NewPrinter returns a Printer writing to w, styled when w is a terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{Writer: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) out() io.Writer {
	if p.Writer == nil {
		return os.Stdout
	}
	return p.Writer
}

func (p *Printer) write(s string) {
	if !p.styled {
		s = pterm.RemoveColorFromString(s)
	}
	fmt.Fprint(p.out(), s)
}

// Println prints its operands followed by a newline.
func (p *Printer) Println(a ...any) {
	p.write(fmt.Sprintln(a...))
}

// Header prints a full-width title.
func (p *Printer) Header(title string) {
	if p.Quiet {
		return
	}
	p.write(pterm.DefaultHeader.Sprint(title) + "\n")
}

// Table prints data with its first row as header.
func (p *Printer) Table(data [][]string) error {
	return p.table(data, false)
}

// TableBoxed is Table with a surrounding box.
func (p *Printer) TableBoxed(data [][]string) error {
	return p.table(data, true)
}

func (p *Printer) table(data [][]string, boxed bool) error {
	if len(data) == 0 {
		return nil
	}
	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(boxed).
		WithData(data).
		Srender()
	if err != nil {
		return err
	}
	p.write(out + "\n")
	return nil
}
