package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewNodes is returned when a network has less than two nodes,
	// which leaves no valid destination for generated messages.
	ErrTooFewNodes = errors.New("network needs at least 2 nodes")

	// ErrNoOutgoingLinks is returned when a node cannot forward messages.
	ErrNoOutgoingLinks = errors.New("node has no outgoing links")

	// ErrPeerOutOfRange is returned when a link leads outside the network.
	ErrPeerOutOfRange = errors.New("link peer is not in the network")

	// ErrSelfLoop is returned when a link leads back to its own node.
	ErrSelfLoop = errors.New("link leads back to its own node")
)

// Error reports where a topology is misconfigured.
type Error struct {
	Node int
	Link int
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Node < 0:
		return e.Err.Error()
	case e.Link < 0:
		return fmt.Sprintf("node %d: %s", e.Node, e.Err)
	default:
		return fmt.Sprintf("node %d link %d: %s", e.Node, e.Link, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validate checks that every node of the topology can generate and forward
// messages.
func Validate(t Topology) error {
	n := t.NetworkSize()
	if n < 2 {
		return &Error{Node: -1, Link: -1, Err: ErrTooFewNodes}
	}

	for node := 0; node < n; node++ {
		linkCount := t.LinkCount(node)
		if linkCount == 0 {
			return &Error{Node: node, Link: -1, Err: ErrNoOutgoingLinks}
		}

		for link := 0; link < linkCount; link++ {
			peer := t.PeerOnLink(node, link)

			if peer < 0 || peer >= n {
				return &Error{Node: node, Link: link, Err: ErrPeerOutOfRange}
			}

			if peer == node {
				return &Error{Node: node, Link: link, Err: ErrSelfLoop}
			}
		}
	}

	return nil
}

// MustBeValid panics if the topology does not pass Validate.
func MustBeValid(t Topology) {
	if err := Validate(t); err != nil {
		panic(err)
	}
}
