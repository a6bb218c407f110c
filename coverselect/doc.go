// Package coverselect is the top-level driver for the covering-design
// selector: it validates parameters, materialises the working sample,
// enumerates candidates and targets, dispatches to exactsolve (s == j) or
// greedysolve (s < j), and assembles the result record.
//
// coverselect is the only package that imports both exactsolve and
// greedysolve; combi/coverage/pruner callers outside this package should
// not need to. Progress is reported through an explicitly passed
// *progress.Reporter rather than process-wide mutable state, and the
// worker-count default (max(1, round(1.5 * runtime.NumCPU())), fallback 4;
// NumCPU counts logical CPUs, not physical cores) is resolved here, so exactsolve only ever sees an already-positive
// Workers value.
package coverselect
