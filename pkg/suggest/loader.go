package suggest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadEntries reads newline-separated entries from r and registers them.
// Each line is "path" or "path<TAB>frequency"; blank lines and lines
// starting with '#' are skipped. Returns the number of entries loaded.
func (c *Completer) LoadEntries(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	loaded := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		path := line
		frequency := 1
		if idx := strings.IndexByte(line, '\t'); idx >= 0 {
			path = strings.TrimSpace(line[:idx])
			rawFreq := strings.TrimSpace(line[idx+1:])
			parsed, err := strconv.Atoi(rawFreq)
			if err != nil {
				log.Warnf("Skipping bad frequency %q for entry %q: %v", rawFreq, path, err)
			} else {
				frequency = parsed
			}
		}
		if path == "" {
			continue
		}
		c.AddEntry(path, frequency)
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, fmt.Errorf("suggest: reading entries: %w", err)
	}
	return loaded, nil
}

// LoadFile loads entries from a plain-text file at path.
func (c *Completer) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("suggest: opening entries file: %w", err)
	}
	defer f.Close()

	loaded, err := c.LoadEntries(f)
	if err != nil {
		return loaded, err
	}
	log.Debugf("Loaded %d entries from %s", loaded, path)
	return loaded, nil
}
