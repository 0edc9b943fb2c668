// Package history keeps the lines typed into the message field across sessions.
package history

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/malonaz/urlreader/internal/file"
)

const maxHistorySize = 1000

// History of submitted inputs, persisted to a file.
type History struct {
	entries []string
	// index is -1 when not navigating.
	index   int
	current string
	mu      sync.Mutex
	path    string
}

// New instantiates a History backed by path and loads its entries.
// An empty path keeps the history in memory only.
func New(path string) *History {
	h := &History{
		index: -1,
		path:  path,
	}
	h.load()
	return h
}

func (h *History) load() {
	if h.path == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(h.path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := unescape(scanner.Text()); line != "" {
			h.entries = append(h.entries, line)
		}
	}
	if len(h.entries) > maxHistorySize {
		h.entries = h.entries[len(h.entries)-maxHistorySize:]
	}
}

// save is best effort. A history that cannot be written only lives for the session.
func (h *History) save() {
	if h.path == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder
	for _, entry := range h.entries {
		b.WriteString(escape(entry))
		b.WriteString("\n")
	}
	file.WriteFile(h.path, []byte(b.String()), 0600)
}

// escape stores multi-line entries on a single line.
func escape(entry string) string {
	entry = strings.ReplaceAll(entry, `\`, `\\`)
	return strings.ReplaceAll(entry, "\n", `\n`)
}

func unescape(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		if line[i] == '\\' && i+1 < len(line) {
			i++
			if line[i] == 'n' {
				b.WriteByte('\n')
			} else {
				b.WriteByte(line[i])
			}
			continue
		}
		b.WriteByte(line[i])
	}
	return b.String()
}

// Add records entry, skipping blanks and repeats of the newest entry.
func (h *History) Add(entry string) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return
	}

	h.mu.Lock()
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		h.index = -1
		h.current = ""
		h.mu.Unlock()
		return
	}

	h.entries = append(h.entries, entry)
	if len(h.entries) > maxHistorySize {
		h.entries = h.entries[len(h.entries)-maxHistorySize:]
	}

	h.index = -1
	h.current = ""
	h.mu.Unlock()

	h.save()
}

// Previous steps back one entry. currentInput is restored once Next walks past the newest entry.
func (h *History) Previous(currentInput string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return "", false
	}

	if h.index == -1 {
		h.current = currentInput
		h.index = len(h.entries) - 1
	} else if h.index > 0 {
		h.index--
	} else {
		return h.entries[0], false
	}

	return h.entries[h.index], true
}

// Next steps forward one entry.
func (h *History) Next() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.index == -1 {
		return "", false
	}
	h.index++
	if h.index >= len(h.entries) {
		h.index = -1
		return h.current, true
	}

	return h.entries[h.index], true
}

// Reset stops navigating. Called whenever the input is edited.
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.index = -1
	h.current = ""
}
