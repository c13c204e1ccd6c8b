package searcher

// Search hyperparameter defaults.
const (
	DefaultSimulations   = 10000
	DefaultCPuct         = 1.4
	DefaultMaxPlayoutLen = 1024
)

// priorFloor keeps sampled expansion from starving zero-weight entries.
const priorFloor = 1e-6
