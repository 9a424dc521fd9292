package topology

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the file representation of a topology.
//
//	nodes: 3
//	bidirectional: true
//	links:
//	  - [0, 1]
//	  - [1, 2]
//	  - [2, 0]
type Spec struct {
	Nodes         int      `yaml:"nodes"`
	Bidirectional *bool    `yaml:"bidirectional,omitempty"`
	Links         [][2]int `yaml:"links"`
}

// Graph turns the spec into a graph. Links are bidirectional unless the spec
// says otherwise.
func (s Spec) Graph() (*Graph, error) {
	if s.Nodes < 0 {
		return nil, fmt.Errorf("invalid number of nodes %d", s.Nodes)
	}

	bidirectional := true
	if s.Bidirectional != nil {
		bidirectional = *s.Bidirectional
	}

	g := NewGraph(s.Nodes)
	for i, l := range s.Links {
		for _, end := range l {
			if end < 0 || end >= s.Nodes {
				return nil, fmt.Errorf("link %d (%d-%d): %w",
					i, l[0], l[1], ErrPeerOutOfRange)
			}
		}

		g.AddLink(l[0], l[1])
		if bidirectional {
			g.AddLink(l[1], l[0])
		}
	}

	return g, nil
}

// Parse reads a topology in YAML and validates it.
func Parse(r io.Reader) (*Graph, error) {
	var spec Spec

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decoding topology: %w", err)
	}

	g, err := spec.Graph()
	if err != nil {
		return nil, err
	}

	if err := Validate(g); err != nil {
		return nil, err
	}

	return g, nil
}

// Load reads and validates a topology file.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening topology file: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Dump writes the graph as a YAML topology with one-way links.
func Dump(w io.Writer, t Topology) error {
	bidirectional := false
	spec := Spec{
		Nodes:         t.NetworkSize(),
		Bidirectional: &bidirectional,
	}

	for node := 0; node < t.NetworkSize(); node++ {
		for link := 0; link < t.LinkCount(node); link++ {
			spec.Links = append(spec.Links, [2]int{node, t.PeerOnLink(node, link)})
		}
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(spec)
}
