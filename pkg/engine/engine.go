// Package engine provides the Lisp evaluation surface for Armature.
// It wraps zygomys in a sandboxed environment and evaluates scene
// scripts into frames, intersection results, and solver outputs.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/armature/pkg/kinematics"
)

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error or a runtime error in user code.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Finding is a non-fatal kernel diagnostic raised by a builtin, such as
// an intersection of parallel lines or a unit mismatch. Findings never
// abort evaluation.
type Finding struct {
	Source  string // builtin that raised it
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Source, f.Message)
}

// EvalResult bundles the full output of an evaluation.
type EvalResult struct {
	Frames   *kinematics.FrameGraph
	Values   map[string]string
	Findings []Finding
	Errors   []EvalError
}

// Engine wraps the zygomys interpreter for Armature scene scripts.
// It is safe for concurrent use; each call to Evaluate creates a fresh
// sandboxed environment for determinism.
type Engine struct {
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs a scene script and returns its result.
//
// Return semantics:
//   - On success: result with nil Errors, nil error
//   - On parse/eval failure: result carrying Errors, nil error
//   - On fatal failure (timeout, panic): nil result + error
func (e *Engine) Evaluate(source string) (*EvalResult, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalOutcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalOutcome{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		result, err := e.evaluate(source)
		ch <- evalOutcome{result: result, err: err}
	}()

	return waitWithTimeout(ch, gen, &e.mu, &e.generation)
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*EvalResult, error) {
	scene := newScene()

	// Empty source is a valid script that produces an empty scene.
	if strings.TrimSpace(source) == "" {
		return scene.result(nil), nil
	}

	// Sandbox mode prevents user code from accessing the filesystem or
	// syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	registerBuiltins(env, scene)

	err := env.LoadString(preprocessSource(source))
	if err != nil {
		return scene.result(parseZygomysError(err)), nil
	}

	_, err = env.Run()
	if err != nil {
		return scene.result(parseZygomysError(err)), nil
	}

	return scene.result(nil), nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, extracting line numbers when the message carries them.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	if m := linePatternShort.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
