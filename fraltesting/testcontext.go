package fraltesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   testing.TB
	Cfg TestConfig

	rng *rand.Rand
}

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		Cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Ints returns n values in [0, bound), the same values for the same seed.
func (c *TestContext) Ints(n int, bound int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = c.rng.Intn(bound)
	}
	return values
}

// Bytes returns n random byte values, the element type used by the
// benchmarks.
func (c *TestContext) Bytes(n int) []uint8 {
	values := make([]uint8, n)
	for i := range values {
		values[i] = uint8(c.rng.Intn(256))
	}
	return values
}

// UUIDs returns n distinct uuid strings, reproducible for the same seed.
func (c *TestContext) UUIDs(n int) []string {
	values := make([]string, n)
	for i := range values {
		id, err := uuid.NewRandomFromReader(c.rng)
		require.NoError(c.T, err)
		values[i] = id.String()
	}
	return values
}

// Ops returns a random script of n list operations, used to drive a list and
// a slice model side by side. Cons is the most likely operation, so lists
// tend to grow over the course of a script.
func (c *TestContext) Ops(n int) []Op {
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = Op{
			Kind:  opWeights[c.rng.Intn(len(opWeights))],
			Index: c.rng.Intn(1 << 16),
			Value: c.rng.Int(),
		}
	}
	return ops
}
