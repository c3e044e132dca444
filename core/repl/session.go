// Package repl - Interactive conversion prompt
// A line-based loop: first unit, second unit, value. "list" and "exit" are
// accepted where a unit is expected. Works the same on a terminal or a pipe.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"conversion-wiz/core/conversion"
	"conversion-wiz/core/output"
)

const (
	promptFirst  = "Enter first unit of conversion query or 'exit' to quit:"
	promptList   = "or type 'list' to list all units"
	promptSecond = "Enter second unit of conversion query:"
	promptValue  = "Enter value to convert:"

	msgInvalidUnit   = "Please enter a valid unit."
	msgInvalidNumber = "Please enter a valid number."

	cmdExit = "exit"
	cmdList = "list"
)

// ReloadFunc rebuilds the graph, typically from the definition file
type ReloadFunc func() (*conversion.Graph, error)

// Session is one interactive query loop. It owns its graph exclusively;
// reloads swap the graph between queries, never during one.
type Session struct {
	graph     *conversion.Graph
	in        *bufio.Scanner
	out       io.Writer
	precision int
	showPath  bool
	logger    *zap.Logger

	reloadC <-chan struct{}
	reload  ReloadFunc
}

// Option configures a Session
type Option func(*Session)

// WithPrecision sets decimal places for results
func WithPrecision(precision int) Option {
	return func(s *Session) { s.precision = precision }
}

// WithShowPath prints the hops used by each conversion
func WithShowPath(show bool) Option {
	return func(s *Session) { s.showPath = show }
}

// WithLogger sets the session logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithReload rebuilds the graph with fn whenever signal fires
func WithReload(signal <-chan struct{}, fn ReloadFunc) Option {
	return func(s *Session) {
		s.reloadC = signal
		s.reload = fn
	}
}

// NewSession creates a session reading queries from in and writing to out
func NewSession(graph *conversion.Graph, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		graph:     graph,
		in:        bufio.NewScanner(in),
		out:       out,
		precision: output.FullPrecision,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", uuid.NewString()))
	return s
}

// Run processes queries until "exit", end of input or ctx is cancelled
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started")
	defer s.logger.Debug("session finished")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.maybeReload()

		s.println(promptFirst)
		s.println(promptList)
		first, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if strings.EqualFold(first, cmdExit) {
			return nil
		}
		if strings.EqualFold(first, cmdList) {
			s.printListing()
			continue
		}
		if !s.graph.ContainsUnit(first) {
			s.println(msgInvalidUnit)
			continue
		}

		s.println(promptSecond)
		second, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if strings.EqualFold(second, cmdExit) {
			return nil
		}
		if !s.graph.ContainsUnit(second) {
			s.println(msgInvalidUnit)
			continue
		}

		s.println(promptValue)
		raw, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if strings.EqualFold(raw, cmdExit) {
			return nil
		}
		value, err := output.ParseValue(raw)
		if err != nil {
			s.println(msgInvalidNumber)
			continue
		}

		s.convert(first, second, value)
	}
}

func (s *Session) convert(from, to string, value float64) {
	path, err := s.graph.Path(from, to)
	if err != nil {
		s.logger.Debug("conversion failed",
			zap.String("from", from),
			zap.String("to", to),
			zap.Error(err),
		)
		s.println("Error: " + err.Error())
		return
	}

	result := path.Apply(value)
	s.println(output.FormatResult(value, from, result, to, s.precision))
	if s.showPath {
		for _, line := range output.FormatPath(path) {
			s.println("\t" + line)
		}
	}
}

func (s *Session) printListing() {
	s.println("Units:")
	for _, line := range output.FormatListing(s.graph.ListUnits()) {
		s.println(line)
	}
}

func (s *Session) maybeReload() {
	if s.reloadC == nil || s.reload == nil {
		return
	}
	select {
	case <-s.reloadC:
	default:
		return
	}

	graph, err := s.reload()
	if err != nil {
		s.logger.Warn("reload failed", zap.Error(err))
		s.println("Reload failed, keeping previous definitions: " + err.Error())
		return
	}
	s.graph = graph
	stats := graph.Stats()
	s.logger.Info("definitions reloaded", zap.Int("units", stats.Units), zap.Int("edges", stats.Edges))
	s.println(fmt.Sprintf("Definitions reloaded (%d units).", stats.Listed))
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}
