package progress

import (
	json "github.com/goccy/go-json"
)

// Emit builds an Event at percent/message, clamps percent to be
// monotonically non-decreasing within this Reporter's lifetime, and
// forwards it to the callback (if any) and the text sink (if any). Sink
// write failures are tolerated and discarded — progress emission is the
// one place in this module where an I/O failure is not treated as fatal.
func (r *Reporter) Emit(percent int, message string) {
	if r == nil {
		return
	}
	if percent < r.lastPct {
		percent = r.lastPct
	}
	r.lastPct = percent

	ev := Event{
		Percent: percent,
		Message: message,
		Elapsed: nowFunc().Sub(r.start).Seconds(),
	}

	if r.callback != nil {
		r.callback(ev)
	}
	if r.sink != nil {
		line, err := json.Marshal(struct {
			Type string `json:"type"`
			Event
		}{Type: "progress", Event: ev})
		if err != nil {
			return
		}
		line = append(line, '\n')
		_, _ = r.sink.Write(line) // best-effort; I/O failures are not fatal
	}
}

// Fixed milestones: 0 (start), 5 (enumeration), 10-15 (matrix/pruner
// done), 30-90 (iterations), 95 (post-processing), 100 (done).

// Init reports the 0% "start" milestone.
func (r *Reporter) Init(message string) { r.Emit(0, message) }

// Enumerated reports the 5% "enumeration done" milestone.
func (r *Reporter) Enumerated(message string) { r.Emit(5, message) }

// MatrixBuilt reports the 10-15% "matrix/pruner done" milestone.
func (r *Reporter) MatrixBuilt(percent int, message string) { r.Emit(percent, message) }

// SolverStarted reports the solver-dispatch milestone (15% in the reference
// policy).
func (r *Reporter) SolverStarted(message string) { r.Emit(15, message) }

// Iterating reports an in-progress iteration tick, anywhere in [30, 90].
func (r *Reporter) Iterating(percent int, message string) { r.Emit(percent, message) }

// PostProcessing reports the 95% "post-processing" milestone.
func (r *Reporter) PostProcessing(message string) { r.Emit(95, message) }

// Done reports the 100% "done" milestone.
func (r *Reporter) Done(message string) { r.Emit(100, message) }

// Warn reports a non-fatal condition (e.g. PartialCoverage) at percent,
// clamped like any Emit; message alone carries the warning text.
func (r *Reporter) Warn(percent int, message string) { r.Emit(percent, message) }
