package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/forestrie/go-fral/fral"
	"github.com/forestrie/go-fral/fral/rc"
)

var workloadNames = []string{"cons", "uncons", "get", "update"}

var (
	ErrNoItems         = errors.New("items must be positive")
	ErrNoRounds        = errors.New("rounds must be positive")
	ErrUnknownWorkload = errors.New("unknown workload")
)

type benchConfig struct {
	Items     int
	Rounds    int
	Workloads []string
	Values    []uint8
	Indices   []int
}

func (c benchConfig) validate() error {
	if c.Items <= 0 {
		return ErrNoItems
	}
	if c.Rounds <= 0 {
		return ErrNoRounds
	}
	for _, w := range c.Workloads {
		if !slices.Contains(workloadNames, w) {
			return fmt.Errorf("%w: %q", ErrUnknownWorkload, w)
		}
	}
	return nil
}

type result struct {
	Workload string
	Impl     string
	PerRound time.Duration
}

// sequence is what every measured implementation provides.
type sequence[S any] interface {
	Cons(uint8) S
	Uncons() (uint8, S, bool)
	Get(int) (uint8, bool)
	Update(int, uint8) (S, bool)
}

func runAll(cfg benchConfig) []result {
	var results []result
	results = append(results, measure(cfg, "fral", fral.New[uint8]())...)
	results = append(results, measure(cfg, "rc", rc.New[uint8]())...)
	results = append(results, measure(cfg, "conslist", (*consList)(nil))...)
	return results
}

func measure[S sequence[S]](cfg benchConfig, impl string, empty S) []result {
	full := empty
	for _, v := range cfg.Values {
		full = full.Cons(v)
	}

	var results []result
	for _, w := range cfg.Workloads {
		var round func()
		switch w {
		case "cons":
			round = func() {
				s := empty
				for _, v := range cfg.Values {
					s = s.Cons(v)
				}
			}
		case "uncons":
			round = func() {
				s := full
				for ok := true; ok; {
					_, s, ok = s.Uncons()
				}
			}
		case "get":
			round = func() {
				for _, i := range cfg.Indices {
					full.Get(i)
				}
			}
		case "update":
			round = func() {
				for _, i := range cfg.Indices {
					full.Update(i, 0)
				}
			}
		default:
			continue
		}
		results = append(results, result{
			Workload: w,
			Impl:     impl,
			PerRound: timeRounds(cfg.Rounds, round),
		})
	}
	return results
}

func timeRounds(rounds int, round func()) time.Duration {
	start := time.Now()
	for range rounds {
		round()
	}
	return time.Since(start) / time.Duration(rounds)
}
