package sim

import (
	"errors"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// ErrIDGeneratorInUse is returned when the ID generator is switched after
// IDs have been handed out.
var ErrIDGeneratorInUse = errors.New("id generator already in use")

// IDGenerator can generate IDs
type IDGenerator interface {
	// Generate an ID
	Generate() string
}

var (
	idGeneratorMutex sync.Mutex
	idGenerator      IDGenerator
	idGeneratorInUse bool
)

// UseParallelIDGenerator makes IDs globally unique xids instead of sequence
// numbers, for runs whose traces are merged with other runs. Message IDs are
// then no longer reproducible; routing results still are. It must be called
// before the first ID is generated.
func UseParallelIDGenerator() error {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	if _, ok := idGenerator.(parallelIDGenerator); ok {
		return nil
	}

	if idGeneratorInUse {
		return ErrIDGeneratorInUse
	}

	idGenerator = parallelIDGenerator{}

	return nil
}

// GetIDGenerator returns the ID generator used in the current simulation. The
// generator is sequential unless configured otherwise before the first use.
func GetIDGenerator() IDGenerator {
	idGeneratorMutex.Lock()
	defer idGeneratorMutex.Unlock()

	if idGenerator == nil {
		idGenerator = &sequentialIDGenerator{}
	}

	idGeneratorInUse = true

	return idGenerator
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	return strconv.FormatUint(atomic.AddUint64(&g.nextID, 1), 10)
}

type parallelIDGenerator struct{}

func (parallelIDGenerator) Generate() string {
	return xid.New().String()
}
