package sim

import (
	"fmt"
	"os"
	"sync"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// A Component is a element that is being simulated.
type Component interface {
	Named
	Handler
	Hookable

	// NotifyRecv is called by a port owned by the component when the port
	// receives a message.
	NotifyRecv(now VTimeInSec, port Port)

	// Ports returns all the ports of the component.
	Ports() []Port
}

// ComponentBase provides some functions that other component can use.
type ComponentBase struct {
	HookableBase
	sync.Mutex

	name      string
	ports     []Port
	portIndex map[string]Port
}

// NewComponentBase creates a new ComponentBase
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.name = name
	c.portIndex = make(map[string]Port)

	return c
}

// Name returns the name of the BasicComponent
func (c *ComponentBase) Name() string {
	return c.name
}

// AddPort registers a port under a short name, such as "Port[0]".
func (c *ComponentBase) AddPort(name string, port Port) {
	if _, found := c.portIndex[name]; found {
		panic("port " + name + " already added to " + c.name)
	}

	c.ports = append(c.ports, port)
	c.portIndex[name] = port
}

// Ports returns the ports in the order they were added.
func (c *ComponentBase) Ports() []Port {
	return c.ports
}

// GetPortByName returns the port by the name of the port.
func (c *ComponentBase) GetPortByName(name string) Port {
	port, found := c.portIndex[name]
	if !found {
		errMsg := fmt.Sprintf(
			"Port %s is not available on component %s.\n", name, c.name)
		errMsg += "Available ports include:\n"

		for n := range c.portIndex {
			errMsg += fmt.Sprintf("\t%s\n", n)
		}

		fmt.Fprint(os.Stderr, errMsg)

		panic("port not found")
	}

	return port
}
