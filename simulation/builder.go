package simulation

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sarchlab/hopsim/datarecording"
	"github.com/sarchlab/hopsim/monitoring"
	"github.com/sarchlab/hopsim/sim"
	"go.uber.org/zap"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	openBrowser    bool
	recordingOn    bool
	outputFileName string
	timeLimit      sim.VTimeInSec
	logger         *zap.Logger
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn:   true,
		recordingOn: true,
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowser opens the monitoring page once the server starts.
func (b Builder) WithBrowser() Builder {
	b.openBrowser = true
	return b
}

// WithoutRecording sets the simulation to not create a results database.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
// The ".sqlite3" suffix is appended.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithTimeLimit makes the engine stop at the given simulated time. A zero
// time limit means no limit.
func (b Builder) WithTimeLimit(t sim.VTimeInSec) Builder {
	b.timeLimit = t
	return b
}

// WithLogger sets the logger of the simulation.
func (b Builder) WithLogger(logger *zap.Logger) Builder {
	b.logger = logger
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && (b.monitorPort != 0 || b.openBrowser) {
		panic("monitor options cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file cannot be set when recording is disabled")
	}

	if b.timeLimit < 0 {
		panic("time limit cannot be negative")
	}
}

// Build builds the simulation.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		logger:        b.logger,
		compNameIndex: make(map[string]int),
		portNameIndex: make(map[string]int),
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	engine := sim.NewSerialEngine()
	if b.timeLimit > 0 {
		engine.SetTimeLimit(b.timeLimit)
	}

	s.engine = engine

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "hopsim_" + s.id
		}

		recorder, err := datarecording.New(outputPath)
		if err != nil {
			return nil, fmt.Errorf("creating recorder: %w", err)
		}

		s.outputPath = outputPath + ".sqlite3"
		s.dataRecorder = recorder
		s.execRecorder = datarecording.NewExecRecorder(s.dataRecorder)
		s.execRecorder.Start()
		s.execRecorder.Set("Simulation ID", s.id)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor().WithLogger(s.logger)
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}

		if b.openBrowser {
			s.monitor.WithBrowser()
		}

		s.monitor.RegisterEngine(s.engine)

		if err := s.monitor.StartServer(); err != nil {
			return nil, fmt.Errorf("starting monitor: %w", err)
		}
	}

	return s, nil
}
