package main

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/hopsim/config"
	"github.com/sarchlab/hopsim/report"
	"github.com/sarchlab/hopsim/routing"
	"github.com/sarchlab/hopsim/sim"
	"github.com/sarchlab/hopsim/simulation"
	"go.uber.org/zap"
)

type runResult struct {
	Now        sim.VTimeInSec
	Reports    []report.NodeReport
	Totals     report.Totals
	OutputPath string
}

func simulationBuilder(cfg *config.Config, logger *zap.Logger) simulation.Builder {
	b := simulation.MakeBuilder().
		WithLogger(logger).
		WithTimeLimit(sim.VTimeInSec(cfg.TimeLimit))

	if cfg.Monitor.Enable {
		b = b.WithMonitorPort(cfg.Monitor.Port)
		if cfg.Monitor.OpenBrowser {
			b = b.WithBrowser()
		}
	} else {
		b = b.WithoutMonitoring()
	}

	if cfg.NoRecording {
		b = b.WithoutRecording()
	} else if cfg.Output != "" {
		b = b.WithOutputFileName(cfg.Output)
	}

	return b
}

func runSimulation(cfg *config.Config, logger *zap.Logger) (*runResult, error) {
	topo, err := buildTopology(cfg.Topology)
	if err != nil {
		return nil, err
	}

	if cfg.ParallelIDs {
		if err := sim.UseParallelIDGenerator(); err != nil {
			return nil, fmt.Errorf("switching to parallel ids: %w", err)
		}
	}

	s, err := simulationBuilder(cfg, logger).Build()
	if err != nil {
		return nil, err
	}

	collector := report.NewCollector()
	reporters := report.MultiReporter{collector, report.NewLogReporter(logger)}

	if recorder := s.GetDataRecorder(); recorder != nil {
		reporters = append(reporters, report.NewRecorderReporter(recorder))
	}

	engine := s.GetEngine()
	if cfg.Trace.Events {
		engine.AcceptHook(sim.NewEventLogger(logger))
	}

	network := routing.MakeNetworkBuilder().
		WithEngine(engine).
		WithTopology(topo).
		WithReporter(reporters).
		WithSeed(cfg.Seed).
		WithLinkLatency(sim.VTimeInSec(cfg.LinkLatency)).
		Build()

	for _, c := range network.Components() {
		s.RegisterComponent(c)
	}

	limiter := routing.NewArrivalLimiter(engine, cfg.MaxArrivals)
	if monitor := s.GetMonitor(); monitor != nil && cfg.MaxArrivals > 0 {
		bar := monitor.CreateProgressBar("Arrivals", cfg.MaxArrivals)
		defer monitor.CompleteProgressBar(bar)

		limiter.AddTracker(bar)
	}

	network.AcceptHook(limiter)

	if cfg.Trace.Msgs {
		network.AcceptHook(routing.NewMsgLogger(logger))
	}

	if cfg.Trace.Ports {
		network.AcceptPortHook(sim.NewPortMsgLogger(logger))
	}

	logger.Info("simulation started",
		zap.String("id", s.ID()),
		zap.Int("nodes", network.Size()),
		zap.Int64("seed", cfg.Seed),
		zap.Uint64("max_arrivals", cfg.MaxArrivals),
		zap.Float64("time_limit", cfg.TimeLimit),
	)

	s.RecordProperty("Seed", strconv.FormatInt(cfg.Seed, 10))
	s.RecordProperty("Topology", cfg.Topology.Kind)
	s.RecordProperty("Nodes", strconv.Itoa(network.Size()))
	s.RecordProperty("Link Latency",
		strconv.FormatFloat(cfg.LinkLatency, 'g', -1, 64))

	network.Initialize()

	if err := engine.Run(); err != nil {
		_ = s.Terminate()
		return nil, fmt.Errorf("running simulation: %w", err)
	}

	engine.Finished()

	result := &runResult{
		Now:        engine.CurrentTime(),
		Reports:    collector.Reports(),
		Totals:     collector.Totals(),
		OutputPath: s.OutputPath(),
	}

	logger.Info("simulation finished",
		zap.Float64("time", float64(result.Now)),
		zap.Uint64("sent", result.Totals.Sent),
		zap.Uint64("received", result.Totals.Received),
		zap.Float64("max_hop_count", result.Totals.MaxHopCount),
		zap.Float64("mean_hop_count", result.Totals.MeanHops),
	)

	if err := s.Terminate(); err != nil {
		return nil, fmt.Errorf("closing simulation: %w", err)
	}

	return result, nil
}
