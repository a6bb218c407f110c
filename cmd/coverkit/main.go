// Command coverkit is the CLI front end for the covering-design selector:
// flags map onto coverselect.Config, progress lines are written to stderr
// as they're emitted, and the final result record is written to stdout as
// one compact JSON line.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/samplecover/coverkit/coverselect"
	"github.com/samplecover/coverkit/internal/httpapi"
	"github.com/samplecover/coverkit/internal/store"
	"github.com/samplecover/coverkit/progress"
)

// Exit codes.
const (
	exitSuccess  = 0
	exitInvalid  = 1
	exitSolver   = 2
	exitUnexpect = 3
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	app := &cli.App{
		Name:  "coverkit",
		Usage: "compute a minimum covering-design selector family",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "m", Required: true},
			&cli.IntFlag{Name: "n", Required: true},
			&cli.IntFlag{Name: "k", Required: true},
			&cli.IntFlag{Name: "j", Required: true},
			&cli.IntFlag{Name: "s", Required: true},
			&cli.IntFlag{Name: "t", Value: 1},
			&cli.StringFlag{Name: "samples", Usage: `comma-separated ints, e.g. "1,2,3"`},
			&cli.BoolFlag{Name: "random"},
			&cli.Int64Flag{Name: "seed"},
			&cli.IntFlag{Name: "time", Usage: "exact-solver wall-clock limit, seconds"},
			&cli.IntFlag{Name: "workers"},
			&cli.IntFlag{Name: "beam", Value: 1},
		},
		Action: func(c *cli.Context) error { return runSolve(c) },
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP /select, /results/:id surface",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: ":8080"},
					&cli.StringFlag{Name: "db", Value: "results.sqlite3"},
				},
				Action: runServe,
			},
		},
	}

	app.ExitErrHandler = func(*cli.Context, error) {} // exit code decided below, not by the library

	if err := app.Run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return classifyError(err)
	}

	return exitSuccess
}

// classifyError maps a coverselect/cli error to one of the exit codes above.
func classifyError(err error) int {
	switch {
	case isConfigError(err):
		return exitInvalid
	case isSolverError(err):
		return exitSolver
	default:
		return exitUnexpect
	}
}

func isConfigError(err error) bool {
	return errors.Is(err, coverselect.ErrInvalidParameters) || errors.Is(err, coverselect.ErrConfigurationError)
}

func isSolverError(err error) bool {
	return errors.Is(err, coverselect.ErrInfeasibleInstance) || errors.Is(err, coverselect.ErrSolverFailure)
}

func runSolve(c *cli.Context) error {
	cfg, err := configFromFlags(c)
	if err != nil {
		return err
	}

	reporter := progress.New(nil, os.Stderr)
	cfg.Reporter = reporter

	res, err := coverselect.Solve(cfg)
	if err != nil {
		return err
	}

	line, err := json.Marshal(res)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(line))

	logrus.WithField("combos", len(res.Combos)).Info("solve finished")

	return nil
}

func runServe(c *cli.Context) error {
	s, err := store.Open(c.String("db"))
	if err != nil {
		return err
	}
	defer s.Close()

	r := gin.Default()
	httpapi.NewServer(s).Register(r)

	addr := c.String("addr")
	logrus.WithField("addr", addr).Info("coverkit HTTP server listening")

	return r.Run(addr)
}

func configFromFlags(c *cli.Context) (coverselect.Config, error) {
	cfg := coverselect.Config{
		M: c.Int("m"), N: c.Int("n"), K: c.Int("k"), J: c.Int("j"), S: c.Int("s"), T: c.Int("t"),
		RandomSelect: c.Bool("random"),
		Seed:         c.Int64("seed"),
		Workers:      c.Int("workers"),
		BeamWidth:    c.Int("beam"),
	}
	if tl := c.Int("time"); tl > 0 {
		cfg.TimeLimit = time.Duration(tl) * time.Second
	}

	raw := c.String("samples")
	if raw != "" {
		samples, err := parseSamples(raw)
		if err != nil {
			return coverselect.Config{}, fmt.Errorf("%w: %v", coverselect.ErrInvalidParameters, err)
		}
		cfg.Samples = samples
	}

	if cfg.Samples == nil && !cfg.RandomSelect {
		return coverselect.Config{}, coverselect.ErrConfigurationError
	}

	return cfg, nil
}

func parseSamples(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
