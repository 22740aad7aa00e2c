package main

import (
	"cmp"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hillclimb/localsearch"
	"github.com/katalvlaran/hillclimb/problems"
)

// Report is the YAML document printed by `hillclimb run`.
type Report struct {
	RunID        string `yaml:"run_id"`
	Problem      string `yaml:"problem"`
	State        any    `yaml:"state"`
	Score        any    `yaml:"score"`
	InitialScore any    `yaml:"initial_score"`
	Iterations   int    `yaml:"iterations"`
	Accepted     int    `yaml:"accepted"`
	Evaluations  int    `yaml:"evaluations"`
	Reason       string `yaml:"reason"`
}

type tourView struct {
	Order  []int   `yaml:"order"`
	Length float64 `yaml:"length"`
}

type knapsackView struct {
	Taken  []int `yaml:"taken"`
	Weight int   `yaml:"weight"`
	Value  int   `yaml:"value"`
}

// runProblem builds the initial state described by cfg and climbs from it.
// cfg must already be validated.
func runProblem(cfg RunConfig, log *slog.Logger) (Report, error) {
	var rep Report
	switch cfg.Problem {
	case problemQuadratic:
		rep = climbReport[problems.Quadratic, int](
			problems.Quadratic(cfg.Quadratic.Start), cfg.MaxIterations, log,
			func(q problems.Quadratic) any { return int(q) },
		)

	case problemQueens:
		rows := cfg.Queens.Rows
		if len(rows) == 0 {
			rows = make([]int, cfg.Queens.Size)
		}
		q, err := problems.NewQueens(rows)
		if err != nil {
			return Report{}, fmt.Errorf("queens: %w", err)
		}
		rep = climbReport[problems.Queens, int](q, cfg.MaxIterations, log,
			func(q problems.Queens) any { return q.Rows() },
		)

	case problemTour:
		pts := make([][2]float64, len(cfg.Tour.Points))
		for i, p := range cfg.Tour.Points {
			pts[i] = [2]float64{p[0], p[1]}
		}
		t, err := problems.NewTour(problems.EuclideanMatrix(pts), cfg.Tour.Order)
		if err != nil {
			return Report{}, fmt.Errorf("tour: %w", err)
		}
		rep = climbReport[problems.Tour, float64](t, cfg.MaxIterations, log,
			func(t problems.Tour) any { return tourView{Order: t.Order(), Length: t.Length()} },
		)

	case problemKnapsack:
		items := make([]problems.Item, len(cfg.Knapsack.Items))
		for i, it := range cfg.Knapsack.Items {
			items[i] = problems.Item{Weight: it.Weight, Value: it.Value}
		}
		k, err := problems.NewKnapsack(items, cfg.Knapsack.Capacity, cfg.Knapsack.Take)
		if err != nil {
			return Report{}, fmt.Errorf("knapsack: %w", err)
		}
		rep = climbReport[problems.Knapsack, int](k, cfg.MaxIterations, log,
			func(k problems.Knapsack) any {
				return knapsackView{Taken: k.Taken(), Weight: k.Weight(), Value: k.Evaluate()}
			},
		)

	default:
		return Report{}, fmt.Errorf("%w: unknown problem %q", ErrInvalidConfig, cfg.Problem)
	}
	rep.Problem = cfg.Problem

	return rep, nil
}

// climbReport runs the search, logging every accepted move at debug level.
func climbReport[T localsearch.Problem[T, S], S cmp.Ordered](
	initial T,
	maxIterations int,
	log *slog.Logger,
	view func(T) any,
) Report {
	res := localsearch.Climb[T, S](
		initial,
		localsearch.WithMaxIterations(maxIterations),
		localsearch.WithOnStep(func(s localsearch.Step) {
			log.Debug("accepted move",
				"iteration", s.Iteration,
				"accepted", s.Accepted,
				"candidates", s.Candidates,
				"score", s.Score,
			)
		}),
	)

	return Report{
		State:        view(res.State),
		Score:        res.Score,
		InitialScore: initial.Evaluate(),
		Iterations:   res.Iterations,
		Accepted:     res.Accepted,
		Evaluations:  res.Evaluations,
		Reason:       res.Reason.String(),
	}
}
