package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/MikVR7/homie-core/internal/logger"
	"github.com/MikVR7/homie-core/internal/utils"
	"github.com/MikVR7/homie-core/pkg/config"
	"github.com/MikVR7/homie-core/pkg/suggest"
)

// Server handles the IPC for path completions.
type Server struct {
	completer suggest.ICompleter
	config    *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
	log       *log.Logger
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(completer suggest.ICompleter, cfg *config.Config) *Server {
	return NewServerWithIO(completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a completion server over explicit streams.
func NewServerWithIO(completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		completer: completer,
		config:    cfg,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
		log:       logger.New("ipc"),
	}
}

// Start signals readiness and processes requests until the input stream
// closes.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches on the command field.
func (s *Server) handleRequest(request Request) {
	switch request.Command {
	case "complete":
		s.handleComplete(request)
	case "stats":
		s.sendResponse(StatsResponse{
			ID:       request.ID,
			Counters: s.completer.Stats(),
		})
	case "ping":
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown command: %s", request.Command), 400)
	}
}

// handleComplete validates the prefix against the configured bounds,
// asks the completer and replies with position-ranked suggestions.
func (s *Server) handleComplete(request Request) {
	prefix := request.Prefix

	if prefix == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		s.log.Debug("Prefix is empty in request")
		return
	}
	if len(prefix) < s.config.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", s.config.Server.MinPrefix), 400)
		return
	}
	if len(prefix) > s.config.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.config.Server.MaxPrefix), 400)
		return
	}
	if s.config.Server.EnableFilter && !utils.IsValidInput(prefix) {
		s.sendResponse(CompletionResponse{
			ID:          request.ID,
			Suggestions: []ResponseSuggestion{},
			Prefix:      prefix,
		})
		return
	}

	limit := request.Limit
	if limit < 1 || limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(prefix, limit)
	elapsed := time.Since(start)

	ranked := make([]ResponseSuggestion, len(suggestions))
	for i, sg := range suggestions {
		ranked[i] = ResponseSuggestion{
			Path: sg.Path,
			Rank: uint16(i + 1),
			Freq: sg.Frequency,
		}
	}

	s.sendResponse(CompletionResponse{
		ID:          request.ID,
		Suggestions: ranked,
		Count:       len(ranked),
		Prefix:      prefix,
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) sendResponse(response any) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:     id,
		Error:  message,
		Status: code,
	})
}
