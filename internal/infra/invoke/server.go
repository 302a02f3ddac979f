package invoke

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/runoshun/shellbridge/internal/domain"
	"golang.org/x/sync/errgroup"
)

const logCategoryInvoke = "invoke"

// Server reads JSON-lines requests and writes one JSON-line response per
// request. Requests are served concurrently; responses are written in
// completion order.
type Server struct {
	router *Router
	logger domain.Logger
}

// NewServer creates a Server dispatching to router.
func NewServer(router *Router, logger domain.Logger) *Server {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Server{router: router, logger: logger}
}

// Serve handles requests from r until EOF, then waits for in-flight requests
// and returns. Blank lines are skipped. Lines may be arbitrarily long.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	out := &responseWriter{w: w}
	g, gctx := errgroup.WithContext(ctx)
	reader := bufio.NewReader(r)

	var readErr error
	for {
		if err := gctx.Err(); err != nil {
			readErr = err
			break
		}

		line, err := reader.ReadBytes('\n')
		if line = bytes.TrimSpace(line); len(line) > 0 {
			g.Go(func() error {
				return out.write(s.handle(gctx, line))
			})
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				readErr = fmt.Errorf("read request: %w", err)
			}
			break
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return readErr
}

// handle decodes and dispatches one request line.
func (s *Server) handle(ctx context.Context, line []byte) domain.InvokeResponse {
	var req domain.InvokeRequest
	if err := json.Unmarshal(line, &req); err != nil {
		s.logger.Warn(logCategoryInvoke, fmt.Sprintf("malformed request: %v", err))
		return domain.InvokeResponse{Error: fmt.Sprintf("malformed request: %v", err)}
	}

	resp := domain.InvokeResponse{ID: req.ID}
	if err := req.Validate(); err != nil {
		resp.Error = err.Error()
		return resp
	}

	s.logger.Debug(logCategoryInvoke, fmt.Sprintf("request id=%s cmd=%s", string(req.ID), req.Cmd))

	result, err := s.router.Invoke(ctx, req.Cmd, req.Args)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}

	payload, err := json.Marshal(result)
	if err != nil {
		resp.Error = fmt.Sprintf("encode result: %v", err)
		return resp
	}
	resp.Ok = payload
	return resp
}

// responseWriter serialises whole response lines onto w.
type responseWriter struct {
	w  io.Writer
	mu sync.Mutex
}

func (rw *responseWriter) write(resp domain.InvokeResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	data = append(data, '\n')

	rw.mu.Lock()
	defer rw.mu.Unlock()
	if _, err := rw.w.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
