package fdsmconfig

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// SwapStrategy selects the degree-preserving randomization algorithm of §4.4.
type SwapStrategy string

const (
	// StrategyCurveball selects the Curveball trade (§4.4.3).
	StrategyCurveball SwapStrategy = "curveball"
	// StrategySingleSwitch selects the single-edge switch (§4.4.1/§4.4.2).
	StrategySingleSwitch SwapStrategy = "singleswitch"
)

// TopologyConfig mirrors the §6 options controlling graph shape:
// bipartite/nonbipartite, sideofinterest, directedgevalue.
type TopologyConfig struct {
	// Bipartite selects the bipartite model; false selects the general
	// (actors==events) model.
	Bipartite bool `mapstructure:"bipartite"`
	// SideOfInterest is "l" or "r" for bipartite runs, naming which
	// partition's pairwise co-occurrences are reported.
	SideOfInterest string `mapstructure:"side_of_interest"`
	// DirectEdgeValue is W_direct, the general-graph direct-edge
	// contribution weight (§4.5.2). Default 1.
	DirectEdgeValue int `mapstructure:"direct_edge_value"`
}

// SwapConfig mirrors the §6 swap-strategy options: swaps, curveball/
// singleswitch, degrees, eventsperdegree, theta.
type SwapConfig struct {
	// Strategy picks Curveball or single-switch.
	Strategy SwapStrategy `mapstructure:"strategy"`
	// SwapsPerSample, if >0, overrides SwapHeuristic calibration (the
	// "swaps" option given as an explicit integer rather than "elne").
	SwapsPerSample int `mapstructure:"swaps_per_sample"`
	// UseELNESwaps selects the "elne" keyword for "swaps": compute
	// swapsPerSample as nEdges*ln(nEdges) directly rather than running
	// the full calibration loop.
	UseELNESwaps bool `mapstructure:"use_elne_swaps"`
	// DegreesSwapHeuristic and EventsPerDegreeSwapHeuristic carry the
	// "degrees" and "eventsperdegree" options. CalibrateSwaps does not read
	// them, and nothing checks their product against the degree spectrum.
	DegreesSwapHeuristic         int     `mapstructure:"degrees_swap_heuristic"`
	EventsPerDegreeSwapHeuristic int     `mapstructure:"events_per_degree_swap_heuristic"`
	Theta                        float64 `mapstructure:"theta"`
}

// SamplingConfig mirrors the §6 sampling-strategy options: mincooc,
// samples, maxsamples, ratiogtpairs, internalppv.
type SamplingConfig struct {
	// MinCooc is the relevance threshold: pairs with OriginalCooc below
	// this are never ranked or sampled against.
	MinCooc int `mapstructure:"min_cooc"`
	// FixedSamples, if >0, skips the SampleHeuristic and runs whole
	// batches until at least this many samples have been drawn.
	FixedSamples int `mapstructure:"fixed_samples"`
	// MaxSamples caps the SampleHeuristic's total sample budget.
	MaxSamples int `mapstructure:"max_samples"`
	// RatioGT is ratioGt: the fraction of relevant pairs kept as the
	// rolling internal ground truth.
	RatioGT float64 `mapstructure:"ratio_gt"`
	// InternalPPVThreshold is the stopping threshold for the PPV
	// criterion (§4.9).
	InternalPPVThreshold float64 `mapstructure:"internal_ppv_threshold"`
}

// RNGConfig mirrors the §6 "seed" option.
type RNGConfig struct {
	// Seed is the run-level seed s of §4.3. Zero is a valid, deterministic
	// seed; deriving one from a monotonic clock when the user supplies none
	// is the out-of-scope CLI's job, not Config's.
	Seed int64 `mapstructure:"seed"`
}

// Config is the populated settings value every component receives at
// construction. It is immutable once built.
type Config struct {
	Topology   TopologyConfig `mapstructure:"topology"`
	Swap       SwapConfig     `mapstructure:"swap"`
	Sampling   SamplingConfig `mapstructure:"sampling"`
	RNG        RNGConfig      `mapstructure:"rng"`
	NumWorkers int            `mapstructure:"num_workers"`
	Debug      bool           `mapstructure:"debug"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("topology.bipartite", true)
	v.SetDefault("topology.side_of_interest", "l")
	v.SetDefault("topology.direct_edge_value", 1)

	v.SetDefault("swap.strategy", string(StrategyCurveball))
	v.SetDefault("swap.swaps_per_sample", 0)
	v.SetDefault("swap.use_elne_swaps", false)
	v.SetDefault("swap.degrees_swap_heuristic", 10)
	v.SetDefault("swap.events_per_degree_swap_heuristic", 10)
	v.SetDefault("swap.theta", 1.01)

	v.SetDefault("sampling.min_cooc", 1)
	v.SetDefault("sampling.fixed_samples", 0)
	v.SetDefault("sampling.max_samples", 10000)
	v.SetDefault("sampling.ratio_gt", 0.005)
	v.SetDefault("sampling.internal_ppv_threshold", 0.95)

	v.SetDefault("rng.seed", int64(0))

	v.SetDefault("num_workers", 16)
	v.SetDefault("debug", false)
}

// Default returns a Config populated with the package defaults, equivalent
// to Load("") with no file or environment overrides.
func Default() *Config {
	cfg, _ := Load("")
	return cfg
}

// Load builds a Config from defaults, then (if path is non-empty) overlays
// a YAML file at path, then overlays any FDSM_-prefixed environment
// variables. An empty path yields pure defaults.
//
// Complexity: O(file size). Concurrency: safe; each call builds an
// independent viper.Viper instance, mirroring the teacher's
// newBuilderConfig(opts...) pattern of never sharing mutable config state
// across calls.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("FDSM")
	v.AutomaticEnv()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fdsmconfig.Load(%s): %w", path, err)
		}
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("fdsmconfig.Load(%s): %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fdsmconfig.Load(%s): unmarshal: %w", path, err)
	}
	return &cfg, nil
}
