package main

import (
	"fmt"

	"github.com/sarchlab/hopsim/config"
	"github.com/sarchlab/hopsim/topology"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTopologyCmd() *cobra.Command {
	topologyCmd := &cobra.Command{
		Use:   "topology",
		Short: "Print and validate a network.",
		Long: `Print the outgoing links of every node of the network that ` +
			`the flags select and check that every node can send messages. ` +
			`With --yaml, the network is printed as a topology file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asYAML, _ := cmd.Flags().GetBool("yaml")

			return withLogger(cmd, true,
				func(cfg *config.Config, _ *zap.Logger) error {
					topo, err := buildTopology(cfg.Topology)
					if err != nil {
						return err
					}

					if asYAML {
						return topology.Dump(cmd.OutOrStdout(), topo)
					}

					printTopology(cmd, topo)

					return nil
				})
		},
	}

	config.RegisterTopologyFlags(topologyCmd.Flags())
	config.RegisterLogFlags(topologyCmd.Flags())
	topologyCmd.Flags().Bool("yaml", false, "print as a topology file")

	return topologyCmd
}

func printTopology(cmd *cobra.Command, topo topology.Topology) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-6s %-6s %-6s\n", "node", "link", "peer")

	for node := 0; node < topo.NetworkSize(); node++ {
		for link := 0; link < topo.LinkCount(node); link++ {
			fmt.Fprintf(out, "%-6d %-6d %-6d\n",
				node, link, topo.PeerOnLink(node, link))
		}
	}
}

func buildTopology(c config.TopologyConfig) (topology.Topology, error) {
	var (
		g   *topology.Graph
		err error
	)

	if c.Kind == config.TopologyFromFile {
		g, err = topology.Load(c.File)
	} else {
		g, err = topology.ByKind(c.Kind, c.Nodes)
	}

	if err != nil {
		return nil, fmt.Errorf("building topology: %w", err)
	}

	if err := topology.Validate(g); err != nil {
		return nil, fmt.Errorf("building topology: %w", err)
	}

	return g, nil
}
