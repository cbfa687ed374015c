package benchkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// ErrProtocol is returned when an external benchmark process violates the
// line protocol: a malformed response or a closed stream.
var ErrProtocol = errors.New("benchkit: benchmark process protocol error")

// ProgramRoutine measures an external process through a line-oriented
// request/response protocol on its standard streams: the harness writes a
// decimal iteration count followed by a newline to the child's stdin; the
// child performs that many iterations and writes the elapsed nanoseconds as
// a decimal followed by a newline to its stdout.
//
// The blocking read of the child's response is the only suspension point in
// a measurement; no timeout is enforced, so a hung child hangs the
// benchmark run.
type ProgramRoutine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
}

// NewProgramRoutine spawns the benchmark process. A spawn failure is a
// resource-acquisition error and aborts the whole run, unlike protocol
// errors which are fatal only for the one benchmark.
func NewProgramRoutine(name string, args ...string) (*ProgramRoutine, error) {
	cmd := exec.Command(name, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("benchkit: stdin pipe for %s: %w", name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("benchkit: stdout pipe for %s: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("benchkit: spawn %s: %w", name, err)
	}
	return &ProgramRoutine{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}, nil
}

func (p *ProgramRoutine) send(iters uint64) error {
	if _, err := fmt.Fprintf(p.stdin, "%d\n", iters); err != nil {
		return fmt.Errorf("%w: write iteration count: %v", ErrProtocol, err)
	}
	return nil
}

func (p *ProgramRoutine) recv() (float64, error) {
	line, err := p.stdout.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("%w: read response: %v", ErrProtocol, err)
	}
	elapsed, err := strconv.ParseUint(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed response %q", ErrProtocol, strings.TrimSpace(line))
	}
	return float64(elapsed), nil
}

func (p *ProgramRoutine) WarmUp(d time.Duration) (uint64, uint64, error) {
	return warmUp(d, func(iters uint64) (float64, error) {
		if err := p.send(iters); err != nil {
			return 0, err
		}
		return p.recv()
	})
}

// Measure sends all iteration counts up front and then collects the
// responses in order, keeping the child busy without interleaving harness
// work into its timed regions.
func (p *ProgramRoutine) Measure(iters []uint64) ([]float64, error) {
	for _, n := range iters {
		if err := p.send(n); err != nil {
			return nil, err
		}
	}
	elapsed := make([]float64, len(iters))
	for i := range elapsed {
		e, err := p.recv()
		if err != nil {
			return nil, err
		}
		elapsed[i] = e
	}
	return elapsed, nil
}

// Close tears the child down: stdin is closed first so a well-behaved
// child sees EOF and exits, then the process is reaped. Close runs
// regardless of how the benchmark terminated.
func (p *ProgramRoutine) Close() error {
	errClose := p.stdin.Close()
	errWait := p.cmd.Wait()
	if errClose != nil {
		return errClose
	}
	return errWait
}

var _ Routine = (*ProgramRoutine)(nil)
