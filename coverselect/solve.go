package coverselect

import (
	"errors"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samplecover/coverkit/combi"
	"github.com/samplecover/coverkit/coverage"
	"github.com/samplecover/coverkit/exactsolve"
	"github.com/samplecover/coverkit/greedysolve"
	"github.com/samplecover/coverkit/progress"
	"github.com/samplecover/coverkit/pruner"
)

// defaultTimeLimit is the exact solver's wall-clock budget when the caller
// leaves TimeLimit at zero.
const defaultTimeLimit = 30 * time.Second

// nowFunc is indirected so tests can substitute a fixed clock.
var nowFunc = time.Now

// Solve validates cfg, materialises the working sample, enumerates
// candidates (KCombo) and targets (JSubset), and dispatches to exactsolve
// when cfg.S == cfg.J or to greedysolve otherwise.
//
// Errors: ErrInvalidParameters, ErrConfigurationError (both raised before
// any work begins), ErrInfeasibleInstance / ErrSolverFailure (exact mode
// only, returned in place of the exactsolve error, which is not wrapped).
// greedysolve.ErrPartialCoverage is not fatal: Solve returns the Result
// with a nil error, FullyCovered == false and a PartialCoverage warning
// recorded in Result.Warnings and the progress stream.
func Solve(cfg Config) (Result, error) {
	start := nowFunc()

	if err := validate(cfg); err != nil {
		return Result{}, err
	}

	log := logrus.WithFields(logrus.Fields{
		"m": cfg.M, "n": cfg.N, "k": cfg.K, "j": cfg.J, "s": cfg.S, "t": cfg.T,
	})

	rep := cfg.Reporter
	rep.Init("validated parameters")

	sample, err := materialiseSample(cfg)
	if err != nil {
		return Result{}, err
	}
	log.WithField("samples", sample).Debug("materialised working sample")

	kCombos, err := combi.Enumerate(sample, cfg.K)
	if err != nil {
		return Result{}, err
	}
	jSubsets, err := combi.Enumerate(sample, cfg.J)
	if err != nil {
		return Result{}, err
	}
	rep.Enumerated("enumerated candidates and targets")

	workers := resolveWorkers(cfg.Workers)

	var (
		combos       []combi.Tuple
		fullyCovered = true
		warnings     []string
	)

	if cfg.S == cfg.J {
		combos, err = solveExact(cfg, kCombos, jSubsets, sample, workers, rep)
	} else {
		combos, fullyCovered, warnings, err = solveApprox(cfg, kCombos, jSubsets, rep)
	}
	if err != nil {
		return Result{}, err
	}

	rep.Done("solve complete")

	out := make([][]int, len(combos))
	for i, c := range combos {
		out[i] = append([]int(nil), c...)
	}

	elapsed := nowFunc().Sub(start).Seconds()
	elapsed = math.Round(elapsed*1000) / 1000 // round to ms

	log.WithFields(logrus.Fields{
		"combos": len(out), "workers": workers, "execution_time": elapsed,
	}).Info("solve finished")

	return Result{
		M: cfg.M, N: cfg.N, K: cfg.K, J: cfg.J, S: cfg.S, T: cfg.T,
		Samples:       sample,
		Combos:        out,
		ExecutionTime: elapsed,
		Workers:       workers,
		FullyCovered:  fullyCovered,
		Warnings:      warnings,
	}, nil
}

// materialiseSample returns the caller's sorted sample, or a fresh seeded
// draw of cfg.N distinct values from 1..=cfg.M when cfg.RandomSelect is set.
func materialiseSample(cfg Config) ([]int, error) {
	if len(cfg.Samples) > 0 {
		return sortedSample(cfg.Samples), nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	pool := make([]int, cfg.M)
	for i := range pool {
		pool[i] = i + 1
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	drawn := append([]int(nil), pool[:cfg.N]...)

	return sortedSample(drawn), nil
}

// resolveWorkers applies the default: max(1, round(1.5 * runtime.NumCPU())),
// falling back to 4 when NumCPU reports <= 0. NumCPU counts logical CPUs;
// physical cores are not detected separately. A caller override
// (cfg.Workers > 0) always wins.
func resolveWorkers(requested int) int {
	if requested > 0 {
		return requested
	}

	cores := runtime.NumCPU()
	if cores <= 0 {
		return 4
	}

	w := int(math.Round(1.5 * float64(cores)))
	if w < 1 {
		w = 1
	}

	return w
}

// solveExact runs the pruner + exactsolve pipeline for s == j.
func solveExact(cfg Config, kCombos, jSubsets []combi.Tuple, sample []int, workers int, rep *progress.Reporter) ([]combi.Tuple, error) {
	pruned, err := pruner.Prune(kCombos, cfg.S)
	if err != nil {
		return nil, err
	}
	rep.MatrixBuilt(10, "pruned candidate equivalence classes")

	matrix, err := coverage.Build(kCombos, jSubsets, cfg.S)
	if err != nil {
		return nil, err
	}
	rep.MatrixBuilt(15, "built bitmask coverage matrix")

	warmStart := warmStartIndices(cfg.WarmStart, kCombos)

	rep.SolverStarted("starting exact search")

	timeLimit := cfg.TimeLimit
	if timeLimit <= 0 {
		timeLimit = defaultTimeLimit
	}

	res, err := exactsolve.Solve(exactsolve.Config{
		Matrix:          matrix,
		Representatives: pruned.Representatives,
		Threshold:       cfg.T,
		WarmStart:       warmStart,
		Workers:         workers,
		TimeLimit:       timeLimit,
		Reporter:        rep,
	})
	// ErrTimeLimit still carries a feasible (possibly non-optimal) incumbent.
	if err != nil && !errors.Is(err, exactsolve.ErrTimeLimit) {
		switch {
		case errors.Is(err, exactsolve.ErrInfeasibleInstance):
			return nil, ErrInfeasibleInstance
		default:
			return nil, ErrSolverFailure
		}
	}

	out := make([]combi.Tuple, len(res.Selected))
	for i, idx := range res.Selected {
		out[i] = kCombos[idx]
	}

	return out, nil
}

// solveApprox runs the greedysolve pipeline for s < j.
func solveApprox(cfg Config, kCombos, jSubsets []combi.Tuple, rep *progress.Reporter) ([]combi.Tuple, bool, []string, error) {
	matrix, err := coverage.Build(kCombos, jSubsets, cfg.S)
	if err != nil {
		return nil, false, nil, err
	}
	rep.MatrixBuilt(15, "built bitmask coverage matrix")
	rep.SolverStarted("starting greedy beam construction")

	beamWidth := cfg.BeamWidth
	if beamWidth < 1 {
		beamWidth = 1
	}

	res, err := greedysolve.Solve(greedysolve.Config{
		Matrix:    matrix,
		BeamWidth: beamWidth,
		Seed:      cfg.Seed,
		Reporter:  rep,
	})

	out := make([]combi.Tuple, len(res.Selected))
	for i, idx := range res.Selected {
		out[i] = kCombos[idx]
	}

	if err != nil {
		if errors.Is(err, greedysolve.ErrPartialCoverage) {
			rep.Warn(95, "partial coverage: not every target was covered")

			return out, false, []string{"PartialCoverage: not every target was covered"}, nil
		}

		return nil, false, nil, err
	}

	return out, true, nil, nil
}

// warmStartIndices maps caller-supplied sample-relative tuples to their
// indices in kCombos, skipping any hint that is not canonical or not
// present in the enumeration (a best-effort hint, never a hard error).
func warmStartIndices(hints []Tuple, kCombos []combi.Tuple) []int {
	if len(hints) == 0 {
		return nil
	}

	byKey := make(map[string]int, len(kCombos))
	for i, c := range kCombos {
		byKey[tupleKey(c)] = i
	}

	out := make([]int, 0, len(hints))
	for _, h := range hints {
		sorted := append([]int(nil), h...)
		if !combi.Canonical(sorted) {
			continue
		}
		if idx, ok := byKey[tupleKey(sorted)]; ok {
			out = append(out, idx)
		}
	}

	return out
}

func tupleKey(t combi.Tuple) string {
	buf := make([]byte, 0, len(t)*4)
	for i, v := range t {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendIntDigits(buf, v)
	}

	return string(buf)
}

func appendIntDigits(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
