// Package printer writes human-facing command output: one-line outcome
// notices, diagnostic item lists and the boxed error shown when a command
// fails.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hay-kot/criterio"
	"golang.org/x/term"
)

// ANSI color codes (Tokyo Night palette)
const (
	ColorReset     = "\033[0m"
	ColorRed       = "\033[38;2;215;95;107m"  // #d75f6b
	ColorGreen     = "\033[38;2;158;206;106m" // #9ece6a
	ColorYellow    = "\033[38;2;224;175;104m" // #e0af68
	ColorGray      = "\033[38;2;86;95;137m"   // #565f89
	ColorBold      = "\033[1m"
	ColorUnderline = "\033[4m"
)

// Symbols
const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

// Level classifies a notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

type mark struct {
	symbol string
	color  string
}

var marks = map[Level]mark{
	LevelInfo:    {Dot, ColorGray},
	LevelSuccess: {Check, ColorGreen},
	LevelWarn:    {Dot, ColorYellow},
	LevelError:   {Cross, ColorRed},
}

type ctxKey struct{}

// Printer writes notices to a writer. Colors are only emitted when the
// writer is a terminal. Printer is safe for concurrent use.
type Printer struct {
	mu     sync.Mutex
	writer io.Writer
	color  bool
}

func New(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		color:  isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewContext returns a context with the printer attached
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx retrieves the printer from context, or creates a default one
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// Notify writes msg behind the level's symbol. Continuation lines of a
// multi-line message are indented under the first so backend messages
// that carry newlines stay grouped with their symbol.
func (p *Printer) Notify(level Level, msg string) {
	m, ok := marks[level]
	if !ok {
		m = marks[LevelInfo]
	}

	lines := strings.Split(strings.TrimRight(msg, "\n"), "\n")

	var b strings.Builder
	b.WriteString(p.colorize(m.color, m.symbol+" "+lines[0]))
	b.WriteByte('\n')
	for _, line := range lines[1:] {
		b.WriteString("  ")
		b.WriteString(p.colorize(ColorGray, line))
		b.WriteByte('\n')
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.write(b.String())
}

// NotifySuccess, NotifyError and NotifyInfo satisfy eventhub.Notifier.
func (p *Printer) NotifySuccess(msg string) { p.Notify(LevelSuccess, msg) }
func (p *Printer) NotifyError(msg string)   { p.Notify(LevelError, msg) }
func (p *Printer) NotifyInfo(msg string)    { p.Notify(LevelInfo, msg) }

func (p *Printer) Successf(format string, args ...any) {
	p.Notify(LevelSuccess, fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.Notify(LevelInfo, fmt.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.Notify(LevelWarn, fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.Notify(LevelError, fmt.Sprintf(format, args...))
}

// Printf prints a plain line without a symbol or colors.
func (p *Printer) Printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.write(fmt.Sprintf(format, args...) + "\n")
}

// Section prints a bold, underlined header.
func (p *Printer) Section(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.write(p.colorize(ColorBold+ColorUnderline, title) + "\n")
}

// Item prints an indented list entry marked by level, e.g. one line of a
// doctor or config validate report.
func (p *Printer) Item(level Level, label, detail string) {
	m, ok := marks[level]
	if !ok {
		m = marks[LevelInfo]
	}

	line := "  " + p.colorize(m.color, m.symbol) + " " + label
	if detail != "" {
		line += ": " + detail
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.write(line + "\n")
}

// FatalError prints a boxed error. It does not exit; the caller owns the
// exit code.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.fieldErrorBox(err, fieldErrs)
		return
	}

	bar := p.colorize(ColorRed, "│")
	var b strings.Builder
	b.WriteString(p.colorize(ColorRed, "╭ Error") + "\n")
	for _, line := range strings.Split(err.Error(), "\n") {
		b.WriteString(bar + " " + p.colorize(ColorGray, line) + "\n")
	}
	b.WriteString(p.colorize(ColorRed, "╵") + "\n")

	p.mu.Lock()
	defer p.mu.Unlock()
	p.write(b.String())
}

// fieldErrorBox lists each field error on its own line, under whatever
// prefix the caller wrapped the errors with.
func (p *Printer) fieldErrorBox(wrapped error, fieldErrs criterio.FieldErrors) {
	prefix := ""
	if idx := strings.Index(wrapped.Error(), fieldErrs.Error()); idx > 0 {
		prefix = strings.TrimSuffix(wrapped.Error()[:idx], ": ")
	}

	bar := p.colorize(ColorRed, "│")
	var b strings.Builder
	b.WriteString(p.colorize(ColorRed, "╭ Validation Error") + "\n")
	if prefix != "" {
		b.WriteString(bar + " " + p.colorize(ColorGray, prefix) + "\n")
		b.WriteString(bar + "\n")
	}
	for _, fe := range fieldErrs {
		b.WriteString(bar + " " + p.colorize(ColorRed, Cross) + " ")
		if fe.Field != "" {
			b.WriteString(p.colorize(ColorGray, fe.Field+": "))
		}
		b.WriteString(fe.Err.Error() + "\n")
	}
	b.WriteString(p.colorize(ColorRed, "╵") + "\n")

	p.mu.Lock()
	defer p.mu.Unlock()
	p.write(b.String())
}

// write expects p.mu to be held.
func (p *Printer) write(s string) {
	_, _ = io.WriteString(p.writer, s)
}

func (p *Printer) colorize(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ColorReset
}
