// Package cli handles interactive input and suggestion output for
// debugging and testing the completion engine.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MikVR7/homie-core/internal/logger"
	"github.com/MikVR7/homie-core/internal/utils"
	"github.com/MikVR7/homie-core/pkg/suggest"
)

// InputHandler reads prefixes from stdin and prints ranked suggestions.
// Flags control prefix length bounds, result limits and input filtering.
type InputHandler struct {
	completer       suggest.ICompleter
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	noFilter        bool
	log             *log.Logger
}

// NewInputHandler initializes the handler with basic parameters.
func NewInputHandler(completer suggest.ICompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		completer:       completer,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
		log:             logger.Default("cli"),
	}
}

// Start runs the interface loop: prompt, read a line, complete it.
// The loop terminates when reading from stdin fails.
func (h *InputHandler) Start() error {
	h.log.Print("homie-core CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a prefix and press Enter to see the suggestions (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		prefix, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		h.handleInput(prefix)
	}
}

// handleInput validates a single prefix and prints its suggestions.
func (h *InputHandler) handleInput(prefix string) {
	if len(prefix) < h.minPrefixLength {
		h.log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		h.log.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter {
		if !utils.IsValidInput(prefix) {
			h.log.Infof("No results found for prefix: '%s'", prefix)
			return
		}
	} else {
		h.log.Debug("Input filtering disabled - querying raw entries")
	}

	start := time.Now()
	suggestions := h.completer.Complete(prefix, h.suggestLimit)
	elapsed := time.Since(start)
	h.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(suggestions) == 0 {
		h.log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.log.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		fmtFreq := utils.FormatWithCommas(s.Frequency)
		clPath := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Path)
		h.log.Printf("%2d. %-40s (freq: %8s)", i+1, clPath, fmtFreq)
	}
}
