// Package checklist runs independent named checks and collects their
// results. A check that errors or panics is recorded as failed; it never
// stops the run.
package checklist

import (
	"fmt"

	"github.com/tplkit/tplkit/internal/domain"
)

const (
	messageOK     = "OK"
	messageFailed = "FAILED"
)

// Outcome is what a check reports when it completes without error.
type Outcome struct {
	Passed  bool
	Message string
}

// OK is a pass with the default message.
func OK() Outcome { return Outcome{Passed: true, Message: messageOK} }

// Fail is a failure with the default message.
func Fail() Outcome { return Outcome{Passed: false, Message: messageFailed} }

// Pass is a pass carrying a detail message. An empty message becomes "OK".
func Pass(msg string) Outcome {
	if msg == "" {
		msg = messageOK
	}
	return Outcome{Passed: true, Message: msg}
}

// Bool maps a predicate result to OK or Fail.
func Bool(b bool) Outcome {
	if b {
		return OK()
	}
	return Fail()
}

// PassIf returns Pass(msg) when b holds, Fail otherwise.
func PassIf(b bool, msg string) Outcome {
	if b {
		return Pass(msg)
	}
	return Fail()
}

// CheckFunc evaluates a single check.
type CheckFunc func() (Outcome, error)

// Runner executes checks as they are registered.
type Runner struct {
	results []domain.CheckResult
	onFail  func(domain.CheckResult)
}

// NewRunner creates an empty Runner. onFail, if non-nil, is called for every
// failed result.
func NewRunner(onFail func(domain.CheckResult)) *Runner {
	return &Runner{onFail: onFail}
}

// Register runs fn immediately and records its result.
func (r *Runner) Register(category, name string, fn CheckFunc) {
	res := evaluate(fn)
	res.Category = category
	res.Name = name
	r.results = append(r.results, res)
	if !res.Passed && r.onFail != nil {
		r.onFail(res)
	}
}

// Results returns results in registration order.
func (r *Runner) Results() []domain.CheckResult {
	out := make([]domain.CheckResult, len(r.results))
	copy(out, r.results)
	return out
}

// Summary returns aggregate counts.
func (r *Runner) Summary() domain.ChecklistSummary {
	return domain.Summarize(r.results)
}

func evaluate(fn CheckFunc) (res domain.CheckResult) {
	defer func() {
		if p := recover(); p != nil {
			res = domain.CheckResult{Passed: false, Message: fmt.Sprint(p)}
		}
	}()

	out, err := fn()
	if err != nil {
		return domain.CheckResult{Passed: false, Message: err.Error()}
	}
	msg := out.Message
	if msg == "" {
		msg = messageOK
		if !out.Passed {
			msg = messageFailed
		}
	}
	return domain.CheckResult{Passed: out.Passed, Message: msg}
}
