package config

import "github.com/spf13/pflag"

// FlagKeys maps command line flags to configuration keys.
var FlagKeys = map[string]string{
	"seed":          "seed",
	"topology":      "topology.kind",
	"nodes":         "topology.nodes",
	"topology-file": "topology.file",
	"link-latency":  "link_latency",
	"max-arrivals":  "max_arrivals",
	"time-limit":    "time_limit",
	"output":        "output",
	"no-recording":  "no_recording",
	"parallel-ids":  "parallel_ids",
	"monitor":       "monitor.enable",
	"monitor-port":  "monitor.port",
	"open-browser":  "monitor.open_browser",
	"trace-events":  "trace.events",
	"trace-msgs":    "trace.msgs",
	"trace-ports":   "trace.ports",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// RegisterTopologyFlags adds the flags that select the network.
func RegisterTopologyFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.String("topology", d.Topology.Kind,
		"network shape: ring, line, star, mesh or file")
	fs.Int("nodes", d.Topology.Nodes, "number of nodes of a generated network")
	fs.String("topology-file", d.Topology.File,
		"YAML file that lists the links of the network")
}

// RegisterLogFlags adds the flags that control logging.
func RegisterLogFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.String("log-level", d.Log.Level, "debug, info, warn or error")
	fs.String("log-format", d.Log.Format, "console or json")
}

// RegisterRunFlags adds the flags of a simulation run.
func RegisterRunFlags(fs *pflag.FlagSet) {
	d := Default()

	fs.Int64("seed", d.Seed, "seed of the random streams")
	RegisterTopologyFlags(fs)
	fs.Float64("link-latency", d.LinkLatency,
		"simulated seconds a message spends on a link")
	fs.Uint64("max-arrivals", d.MaxArrivals,
		"stop after this many messages arrive, 0 for no limit")
	fs.Float64("time-limit", d.TimeLimit,
		"stop at this simulated time in seconds, 0 for no limit")
	fs.String("output", d.Output,
		"name of the results database, without the .sqlite3 suffix")
	fs.Bool("no-recording", d.NoRecording, "do not write a results database")
	fs.Bool("parallel-ids", d.ParallelIDs,
		"use globally unique message ids instead of sequence numbers")
	fs.Bool("monitor", d.Monitor.Enable, "serve the web monitor")
	fs.Int("monitor-port", d.Monitor.Port,
		"port of the web monitor, 0 for a random port")
	fs.Bool("open-browser", d.Monitor.OpenBrowser,
		"open the web monitor in the default browser")
	fs.Bool("trace-events", d.Trace.Events, "log every event at debug level")
	fs.Bool("trace-msgs", d.Trace.Msgs,
		"log every generated, forwarded and arrived message")
	fs.Bool("trace-ports", d.Trace.Ports,
		"log every message sent, received and retrieved by a port")
	RegisterLogFlags(fs)
}
