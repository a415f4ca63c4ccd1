package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"golang.org/x/sync/semaphore"

	"logistics/internal/entities"
	"logistics/internal/service/routing"
	"logistics/pkg/logger"
)

const (
	defaultTimeout   = time.Minute
	stderrTailLength = 512
	// после отмены ждем закрытия пайпов не дольше этого
	waitDelay = time.Second
)

type Config struct {
	Command        string
	Args           []string
	Timeout        time.Duration
	MaxConcurrency int
}

// Solver запускает решатель маршрутов отдельным процессом на каждый запрос.
type Solver struct {
	log     solverLogger
	cfg     Config
	limiter *semaphore.Weighted
}

func New(log solverLogger, cfg Config) *Solver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	var limiter *semaphore.Weighted
	if cfg.MaxConcurrency > 0 {
		limiter = semaphore.NewWeighted(int64(cfg.MaxConcurrency))
	}

	return &Solver{
		log: log.With(
			logger.NewField("component", "route_solver"),
			logger.NewField("command", cfg.Command),
		),
		cfg:     cfg,
		limiter: limiter,
	}
}

func (s *Solver) Solve(ctx context.Context, request entities.RoutingRequest) (entities.Schedule, error) {
	args, err := buildArgs(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", routing.ErrExternalProcessFailure, err)
	}

	if s.limiter != nil {
		if err := s.limiter.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("wait for solver slot: %w", err)
		}
		defer s.limiter.Release(1)
	}

	SolverInFlight.Inc()
	defer SolverInFlight.Dec()

	start := time.Now()
	stdout, runErr := s.run(ctx, args)

	var schedule entities.Schedule
	if runErr == nil {
		schedule, runErr = parseSchedule(stdout)
	}

	outcome := "ok"
	if runErr != nil {
		outcome = "error"
	}
	SolverRunDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	if runErr != nil {
		s.log.With(
			logger.NewField("error", runErr),
			logger.NewField("duration", time.Since(start)),
		).Warn("route solver failed")
		return nil, runErr
	}

	s.log.With(
		logger.NewField("duration", time.Since(start)),
	).Info("route solver finished")
	return schedule, nil
}

func (s *Solver) run(ctx context.Context, args []string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	cmdArgs := make([]string, 0, len(s.cfg.Args)+len(args))
	cmdArgs = append(cmdArgs, s.cfg.Args...)
	cmdArgs = append(cmdArgs, args...)

	cmd := exec.CommandContext(runCtx, s.cfg.Command, cmdArgs...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	tail := stderrTail(stderr.Bytes())

	var exitErr *exec.ExitError
	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		SolverFailuresTotal.WithLabelValues("timeout").Inc()
		return nil, fmt.Errorf("%w: solver timed out after %s: %s", routing.ErrExternalProcessFailure, s.cfg.Timeout, tail)
	case ctx.Err() != nil:
		SolverFailuresTotal.WithLabelValues("cancelled").Inc()
		return nil, fmt.Errorf("solver run cancelled: %w", ctx.Err())
	case errors.As(err, &exitErr):
		SolverFailuresTotal.WithLabelValues("exit").Inc()
		return nil, fmt.Errorf("%w: solver exited with code %d: %s", routing.ErrExternalProcessFailure, exitErr.ExitCode(), tail)
	default:
		SolverFailuresTotal.WithLabelValues("launch").Inc()
		return nil, fmt.Errorf("%w: start solver: %w", routing.ErrExternalProcessFailure, err)
	}
}

// parseSchedule ждет в stdout один JSON-массив и возвращает его первый элемент.
func parseSchedule(stdout []byte) (entities.Schedule, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 {
		SolverFailuresTotal.WithLabelValues("output").Inc()
		return nil, fmt.Errorf("%w: solver produced no output", routing.ErrExternalProcessFailure)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		SolverFailuresTotal.WithLabelValues("output").Inc()
		return nil, fmt.Errorf("%w: solver output is not a JSON array: %w", routing.ErrExternalProcessFailure, err)
	}

	if len(items) == 0 {
		SolverFailuresTotal.WithLabelValues("output").Inc()
		return nil, fmt.Errorf("%w: solver returned an empty array", routing.ErrExternalProcessFailure)
	}

	return entities.Schedule(items[0]), nil
}

func stderrTail(stderr []byte) string {
	stderr = bytes.TrimSpace(stderr)
	if len(stderr) > stderrTailLength {
		stderr = stderr[len(stderr)-stderrTailLength:]
	}
	if len(stderr) == 0 {
		return "no stderr output"
	}
	return string(stderr)
}
