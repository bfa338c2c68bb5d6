package process

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"time"
)

// lineBuffer accumulates the lines of one stream in write order. Each buffer
// is mutated only by its own drain goroutine, but the mutex keeps Text safe
// to call from the parent once that goroutine has been joined.
type lineBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *lineBuffer) append(line string) {
	b.mu.Lock()
	b.lines = append(b.lines, line)
	b.mu.Unlock()
}

// Text returns the accumulated stream content, lines joined with newlines.
func (b *lineBuffer) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return strings.Join(b.lines, "\n")
}

// drain reads r line-by-line until EOF, appending each line to buf and
// forwarding it to sink. The two drains for a command run concurrently so a
// child interleaving stdout and stderr never blocks on an unread pipe.
func drain(operation string, stream Stream, r io.Reader, buf *lineBuffer, sink Sink) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line

	for scanner.Scan() {
		// Malformed bytes are recovered, not fatal.
		line := strings.ToValidUTF8(scanner.Text(), "�")
		buf.append(line)
		emit(sink, Event{
			Operation: operation,
			Stream:    stream,
			Line:      line,
			Time:      time.Now(),
		})
	}
	// A scanner error here means the pipe died with the process; the
	// lines read so far are all the caller can get either way.
}

// emit forwards an event best-effort. A nil, closed, or panicking sink must
// never take down a drain goroutine mid-command.
func emit(sink Sink, ev Event) {
	if sink == nil {
		return
	}
	defer func() { _ = recover() }()
	sink.Emit(ev)
}
