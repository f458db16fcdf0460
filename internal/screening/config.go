package screening

// Defaults for the tunable screening knobs. The fuzzy thresholds were
// chosen by eyeballing real batches, not derived from data; they are
// configuration on purpose so they can be recalibrated without a code
// change.
const (
	// DefaultSkillMatchThreshold is the minimum fuzzy ratio (0-100) for
	// a required skill to count as present when no exact substring match
	// is found.
	DefaultSkillMatchThreshold = 70

	// DefaultNameMatchThreshold is the minimum token-sort ratio (0-100)
	// for two candidate names to be considered the same identity.
	DefaultNameMatchThreshold = 85

	// DefaultDegenerateSimilarity is the resume/JD similarity percentage
	// above which a submission is treated as a copy of the job
	// description itself.
	DefaultDegenerateSimilarity = 95.0

	// DefaultMaxWorkers bounds concurrent scoring tasks. Kept low to
	// respect rate limits on the enrichment API.
	DefaultMaxWorkers = 5
)

// Config carries the tunable parameters of a screening run.
type Config struct {
	SkillMatchThreshold  int
	NameMatchThreshold   int
	DegenerateSimilarity float64
	MaxWorkers           int
}

// DefaultConfig returns a Config with all knobs at their defaults.
func DefaultConfig() Config {
	return Config{
		SkillMatchThreshold:  DefaultSkillMatchThreshold,
		NameMatchThreshold:   DefaultNameMatchThreshold,
		DegenerateSimilarity: DefaultDegenerateSimilarity,
		MaxWorkers:           DefaultMaxWorkers,
	}
}

// sanitize fills zero values with defaults so a partially populated
// Config is still usable.
func (c Config) sanitize() Config {
	d := DefaultConfig()
	if c.SkillMatchThreshold <= 0 {
		c.SkillMatchThreshold = d.SkillMatchThreshold
	}
	if c.NameMatchThreshold <= 0 {
		c.NameMatchThreshold = d.NameMatchThreshold
	}
	if c.DegenerateSimilarity <= 0 {
		c.DegenerateSimilarity = d.DegenerateSimilarity
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = d.MaxWorkers
	}
	return c
}
