package generation

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"
)

// Config holds the parameters of one dungeon layout. Lengths are in world
// units; a room one unit wide carves to one tile.
type Config struct {
	RoomCount        int     `json:"roomCount"`
	SampleRadius     float64 `json:"sampleRadius"`
	MinRoomSize      float64 `json:"minRoomSize"`
	MaxRoomSize      float64 `json:"maxRoomSize"`
	MinimumRoomArea  float64 `json:"minimumRoomArea"`
	SeparationFactor float64 `json:"separationFactor"`

	// MaxSeparationIterations caps the relaxation passes in SeparateRooms.
	MaxSeparationIterations int `json:"maxSeparationIterations"`
	// GridSnap rounds sizes, positions and separation pushes to multiples
	// of itself. Zero keeps everything continuous.
	GridSnap            float64 `json:"gridSnap"`
	SuperTriangleMargin float64 `json:"superTriangleMargin"`
	// LoopEdgeChance is the probability that a triangulation edge left out
	// of the spanning tree is kept as an extra corridor.
	LoopEdgeChance float64 `json:"loopEdgeChance"`
}

// DefaultConfig returns the stock layout parameters.
func DefaultConfig() Config {
	return Config{
		RoomCount:               100,
		SampleRadius:            100,
		MinRoomSize:             6,
		MaxRoomSize:             20,
		MinimumRoomArea:         220,
		SeparationFactor:        4,
		MaxSeparationIterations: 10000,
		GridSnap:                1,
		SuperTriangleMargin:     30,
		LoopEdgeChance:          0.125,
	}
}

// Validate returns a *ConfigurationError naming the first bad field.
func (c Config) Validate() error {
	fail := func(field, reason string) error {
		return &ConfigurationError{Field: field, Reason: reason}
	}

	switch {
	case c.RoomCount <= 0:
		return fail("roomCount", "must be positive")
	case !positive(c.SampleRadius):
		return fail("sampleRadius", "must be positive")
	case !positive(c.MinRoomSize):
		return fail("minRoomSize", "must be positive")
	case !positive(c.MaxRoomSize):
		return fail("maxRoomSize", "must be positive")
	case c.MinRoomSize > c.MaxRoomSize:
		return fail("minRoomSize", "must not exceed maxRoomSize")
	case !(c.MinimumRoomArea >= 0) || math.IsInf(c.MinimumRoomArea, 1):
		return fail("minimumRoomArea", "must be zero or positive")
	case !positive(c.SeparationFactor):
		return fail("separationFactor", "must be positive")
	case c.MaxSeparationIterations <= 0:
		return fail("maxSeparationIterations", "must be positive")
	case !(c.GridSnap >= 0) || math.IsInf(c.GridSnap, 1):
		return fail("gridSnap", "must be zero or positive")
	case c.GridSnap > c.MinRoomSize:
		return fail("gridSnap", "must not exceed minRoomSize")
	case !positive(c.SuperTriangleMargin):
		return fail("superTriangleMargin", "must be positive")
	case !(c.LoopEdgeChance >= 0 && c.LoopEdgeChance <= 1):
		return fail("loopEdgeChance", "must be within [0, 1]")
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// LoadConfig reads a JSON file over DefaultConfig and validates the result.
// Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "generation: read config")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "generation: parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "generation: config %s", path)
	}
	return cfg, nil
}
