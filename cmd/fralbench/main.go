package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:  "fralbench",
		Usage: "compare cons, uncons, get and update across random access list variants",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "items",
				Usage: "number of elements pushed per round",
				Value: 2048,
			},
			&cli.IntFlag{
				Name:  "rounds",
				Usage: "number of timed rounds per workload",
				Value: 200,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for the random values and indices",
				Value: 0,
			},
			&cli.StringSliceFlag{
				Name:  "workload",
				Usage: "workloads to run, any of cons, uncons, get, update",
				Value: cli.NewStringSlice(workloadNames...),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "INFO",
				EnvVars: []string{"FRALBENCH_LOG_LEVEL"},
			},
		},
		Action: runBench,
	}
	return app.Run(args)
}

func runBench(cctx *cli.Context) error {
	logger.New(cctx.String("log-level"))
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("fralbench")

	cfg := benchConfig{
		Items:     cctx.Int("items"),
		Rounds:    cctx.Int("rounds"),
		Workloads: cctx.StringSlice("workload"),
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cctx.Int64("seed")))
	cfg.Values = make([]uint8, cfg.Items)
	cfg.Indices = make([]int, cfg.Items)
	for i := range cfg.Values {
		cfg.Values[i] = uint8(rng.Intn(256))
		cfg.Indices[i] = rng.Intn(cfg.Items)
	}

	log.Infof("items=%d rounds=%d workloads=%v", cfg.Items, cfg.Rounds, cfg.Workloads)
	for _, r := range runAll(cfg) {
		log.Infof("%-8s %-8s %12v/round", r.Workload, r.Impl, r.PerRound)
	}
	return nil
}
