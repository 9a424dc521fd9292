// Package simulation provides the services that every simulation run needs:
// the engine, the results database and the monitor.
package simulation

import (
	"github.com/sarchlab/hopsim/datarecording"
	"github.com/sarchlab/hopsim/monitoring"
	"github.com/sarchlab/hopsim/sim"
	"go.uber.org/zap"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id     string
	engine sim.Engine
	logger *zap.Logger

	dataRecorder datarecording.DataRecorder
	execRecorder *datarecording.ExecRecorder
	outputPath   string
	monitor      *monitoring.Monitor

	components    []sim.Component
	compNameIndex map[string]int
	ports         []sim.Port
	portNameIndex map[string]int
}

// ID returns the unique identifier of the run.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetLogger returns the logger of the simulation.
func (s *Simulation) GetLogger() *zap.Logger {
	return s.logger
}

// GetDataRecorder returns the data recorder used in the simulation. It
// returns nil if recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// OutputPath returns the file name of the results database. It is empty if
// recording is disabled.
func (s *Simulation) OutputPath() string {
	return s.outputPath
}

// RecordProperty stores a property of the run, such as the seed, in the
// results database. It is a no-op if recording is disabled.
func (s *Simulation) RecordProperty(property, value string) {
	if s.execRecorder == nil {
		return
	}

	s.execRecorder.Set(property, value)
}

// GetMonitor returns the monitor used in the simulation. It returns nil if
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	for _, p := range c.Ports() {
		s.registerPort(p)
	}

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

func (s *Simulation) registerPort(p sim.Port) {
	portName := p.Name()
	if _, found := s.portNameIndex[portName]; found {
		panic("port " + portName + " already registered")
	}

	s.ports = append(s.ports, p)
	s.portNameIndex[portName] = len(s.ports) - 1
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return s.components
}

// GetComponentByName returns the component with the given name. It returns
// nil if no such component is registered.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	i, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[i]
}

// GetPortByName returns the port with the given name. It returns nil if no
// such port is registered.
func (s *Simulation) GetPortByName(name string) sim.Port {
	i, found := s.portNameIndex[name]
	if !found {
		return nil
	}

	return s.ports[i]
}

// Terminate flushes the results and stops the services of the simulation.
func (s *Simulation) Terminate() error {
	if s.monitor != nil {
		if err := s.monitor.StopServer(); err != nil {
			s.logger.Warn("cannot stop monitor", zap.Error(err))
		}
	}

	if s.dataRecorder == nil {
		return nil
	}

	s.execRecorder.End()

	return s.dataRecorder.Close()
}
