package detection

// Config holds every tunable this package reads. Values are fixed constants
// by default; internal/infra/config.Load overrides them from YAML/env for
// the CLI, but unit tests and library callers can construct a Config
// directly.
type Config struct {
	// DetectionConfidenceThreshold is the minimum detection_confidence a
	// candidate must reach to survive the final filter.
	DetectionConfidenceThreshold float64 `mapstructure:"detection_confidence_threshold"`
	// ClassificationConfidenceThreshold and RoleConfidenceThreshold are
	// carried for forward compatibility with collaborators that read them,
	// but the orchestrator filters on DetectionConfidenceThreshold only.
	ClassificationConfidenceThreshold float64 `mapstructure:"classification_confidence_threshold"`
	RoleConfidenceThreshold           float64 `mapstructure:"role_confidence_threshold"`

	// LineHorizontalEpsilon bounds |start.y - end.y|: a vector line is
	// treated as horizontal only when that difference is below this value.
	LineHorizontalEpsilon float64 `mapstructure:"line_horizontal_epsilon"`
	// MinUnderlineLength discards horizontal lines whose length does not
	// exceed this.
	MinUnderlineLength float64 `mapstructure:"underline_min_width"`
	// MaxLabelDistance bounds the label finder's Manhattan search radius.
	MaxLabelDistance float64 `mapstructure:"label_search_radius"`

	CheckboxSizeMin       float64 `mapstructure:"checkbox_size_min"`
	CheckboxSizeMax       float64 `mapstructure:"checkbox_size_max"`
	CheckboxSquarenessTol float64 `mapstructure:"checkbox_squareness_tol"`

	// OverlapThreshold is the dedup significant-overlap fraction.
	OverlapThreshold float64 `mapstructure:"overlap_threshold"`
}

// DefaultConfig returns the fixed default tunables.
func DefaultConfig() Config {
	return Config{
		DetectionConfidenceThreshold:      0.5,
		ClassificationConfidenceThreshold: 0.6,
		RoleConfidenceThreshold:           0.5,
		LineHorizontalEpsilon:             2.0,
		MinUnderlineLength:                50.0,
		MaxLabelDistance:                  100.0,
		CheckboxSizeMin:                   8,
		CheckboxSizeMax:                   25,
		CheckboxSquarenessTol:             5,
		OverlapThreshold:                  0.5,
	}
}
