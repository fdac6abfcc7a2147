package log

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/jonboulle/clockwork"

	"github.com/ydb-platform/ydb-go-bignum/internal/xstring"
)

const timeLayout = "2006-01-02 15:04:05.000"

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*TextLogger)(nil)

// TextLogger writes one line per event:
//
//	2026-10-19 10:00:00.000 WARN kbignum.decimal.parse: failed error="decimal: parse \"x\"" input=x
//
// Each line goes to the writer in a single Write call.
type TextLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock

	mu sync.Mutex
	w  io.Writer
}

// Default returns text logger which writes into w.
// Events below INFO are skipped unless WithMinLevel says otherwise.
func Default(w io.Writer, opts ...TextOption) *TextLogger {
	l := &TextLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

func (l *TextLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}

	b := xstring.Buffer()
	defer b.Free()
	l.appendLine(&b.Buffer, lvl, NamesFromContext(ctx), msg, fields)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(b.Bytes())
}

func (l *TextLogger) appendLine(b *bytes.Buffer, lvl Level, names []string, msg string, fields []Field) {
	b.WriteString(l.clock.Now().Format(timeLayout))
	b.WriteByte(' ')
	if l.coloring {
		b.WriteString(lvl.BoldColor())
		b.WriteString(lvl.String())
		b.WriteString(colorReset)
	} else {
		b.WriteString(lvl.String())
	}
	b.WriteByte(' ')
	if len(names) > 0 {
		b.WriteString(strings.Join(names, "."))
		b.WriteString(": ")
	}
	b.WriteString(msg)
	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key())
		b.WriteByte('=')
		appendValue(b, f.String())
	}
	b.WriteByte('\n')
}

// appendValue quotes v unless it is a non-empty run of printable
// characters without spaces, quotes and '='.
func appendValue(b *bytes.Buffer, v string) {
	if v == "" || strings.IndexFunc(v, needsQuote) >= 0 {
		b.WriteString(strconv.Quote(v))

		return
	}
	b.WriteString(v)
}

func needsQuote(r rune) bool {
	return r == '"' || r == '=' || unicode.IsSpace(r) || !unicode.IsPrint(r)
}
