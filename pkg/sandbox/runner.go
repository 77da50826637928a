package sandbox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/scenecraft/pkg/mesh"
	"github.com/chazu/scenecraft/pkg/noise"
	"github.com/chazu/scenecraft/pkg/sceneconfig"
)

// RuntimeError reports a failure raised by generation source itself, as
// opposed to a rejection by the static validator.
type RuntimeError struct {
	Message       string
	Line          int
	VerticesSoFar uint32
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// TimeoutError reports that generation exceeded its wall-clock budget.
type TimeoutError struct{ Budget time.Duration }

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generation timed out after %s", e.Budget)
}

// CancelledError reports that Cancel was called while this generation was
// still executing; its result, once it arrives, is discarded.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "generation cancelled" }

// Runner executes generation source in a fresh, isolated zygomys sandbox
// per call. It owns no state across calls: the mesh buffer, RNG, and
// zygomys environment are all created fresh inside Run, mirroring the
// teacher's Engine.evaluate, which creates a fresh sandbox per Evaluate
// call for determinism.
type Runner struct {
	mu         sync.Mutex
	generation uint64
}

// NewRunner returns a Runner ready to execute generation calls.
func NewRunner() *Runner {
	return &Runner{}
}

type runResult struct {
	buf *mesh.Buffer
	err error
}

// Run evaluates source against bounds with the given seed, returning a
// drained mesh buffer on success. It enforces timeout as a hard wall-clock
// limit using the same goroutine+timer+generation-counter race the teacher
// uses in waitWithTimeout, since the sandbox itself has no notion of
// cooperative cancellation once env.Run is underway.
func (r *Runner) Run(source string, seed uint32, bounds sceneconfig.SceneBounds, timeout time.Duration) (*mesh.Buffer, error) {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.mu.Unlock()

	ch := make(chan runResult, 1)

	go func() {
		buf, err := r.run(source, seed, bounds)
		ch <- runResult{buf: buf, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		r.mu.Lock()
		current := r.generation
		r.mu.Unlock()
		if gen != current {
			return nil, &CancelledError{}
		}
		return res.buf, res.err

	case <-timer.C:
		return nil, &TimeoutError{Budget: timeout}
	}
}

// Cancel discards the result of any generation currently in flight. A
// generation whose result arrives after Cancel is called is treated as
// stale and discarded by the generation check in Run.
func (r *Runner) Cancel() {
	r.mu.Lock()
	r.generation++
	r.mu.Unlock()
}

func (r *Runner) run(source string, seed uint32, bounds sceneconfig.SceneBounds) (buf *mesh.Buffer, err error) {
	buf = mesh.NewBuffer()

	if strings.TrimSpace(source) == "" {
		return buf, nil
	}

	defer func() {
		if rec := recover(); rec != nil {
			if sp, ok := rec.(sandboxPanic); ok {
				err = toRuntimeError(sp.err, buf.VertexCount(), 0)
				return
			}
			err = &RuntimeError{Message: fmt.Sprintf("panic: %v", rec), VerticesSoFar: buf.VertexCount()}
		}
	}()

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	cx, cy, cz := bounds.Center()
	prologue := scenePrologue(bounds, cx, cy, cz)
	prologueLines := strings.Count(prologue, "\n")

	rng := noise.NewRNG(seed)
	registerBuiltins(env, buf, bounds, rng)

	full := prologue + preprocessSource(source)

	if loadErr := env.LoadString(full); loadErr != nil {
		return buf, toRuntimeError(loadErr, buf.VertexCount(), prologueLines)
	}
	if _, runErr := env.Run(); runErr != nil {
		return buf, toRuntimeError(runErr, buf.VertexCount(), prologueLines)
	}
	return buf, nil
}

// scenePrologue defines the scene bounds constants ahead of generation
// source, one `def` per line so its line count can be subtracted back out
// of any reported error line number.
func scenePrologue(b sceneconfig.SceneBounds, cx, cy, cz float64) string {
	lines := []string{
		fmt.Sprintf("(def SCENE_MIN_X %v)", b.MinX),
		fmt.Sprintf("(def SCENE_MAX_X %v)", b.MaxX),
		fmt.Sprintf("(def SCENE_MIN_Y %v)", b.MinY),
		fmt.Sprintf("(def SCENE_MAX_Y %v)", b.MaxY),
		fmt.Sprintf("(def SCENE_MIN_Z %v)", b.MinZ),
		fmt.Sprintf("(def SCENE_MAX_Z %v)", b.MaxZ),
		fmt.Sprintf("(def SCENE_CENTER_X %v)", cx),
		fmt.Sprintf("(def SCENE_CENTER_Y %v)", cy),
		fmt.Sprintf("(def SCENE_CENTER_Z %v)", cz),
	}
	return strings.Join(lines, "\n") + "\n"
}

var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// toRuntimeError extracts a line number from a zygomys error message,
// following the same two-pattern approach the teacher's
// parseZygomysError uses, then subtracts prologueLines so the reported
// line matches what the caller actually wrote.
func toRuntimeError(err error, verticesSoFar uint32, prologueLines int) *RuntimeError {
	msg := err.Error()

	adjust := func(line int) int {
		adjusted := line - prologueLines
		if adjusted < 0 {
			return 0
		}
		return adjusted
	}

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &RuntimeError{Message: strings.TrimSpace(m[2]), Line: adjust(line), VerticesSoFar: verticesSoFar}
	}
	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &RuntimeError{Message: strings.TrimSpace(m[2]), Line: adjust(line), VerticesSoFar: verticesSoFar}
	}
	return &RuntimeError{Message: strings.TrimSpace(msg), VerticesSoFar: verticesSoFar}
}
