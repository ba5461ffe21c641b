package models

// Stats summarises a comparison.
type Stats struct {
	Added      int     `json:"added"`
	Removed    int     `json:"removed"`
	Changed    int     `json:"changed"`
	Unchanged  int     `json:"unchanged"`
	Similarity float64 `json:"similarity"`
	Identical  bool    `json:"identical"`
}

// Comparison is the rendered-ready result for one file pair.
type Comparison struct {
	Label1 string       `json:"label1"`
	Label2 string       `json:"label2"`
	Rows   []AlignedRow `json:"rows"`
	Stats  Stats        `json:"stats"`
	// ContextOnly reports whether unchanged regions were collapsed.
	ContextOnly bool `json:"context_only"`
}

// ComparisonEntry is one line of the batch index.
type ComparisonEntry struct {
	Label1 string `json:"label1"`
	Label2 string `json:"label2"`
	Link   string `json:"link"`
	Stats  Stats  `json:"stats"`
}

// ComparisonFailure records a pair that could not be compared or rendered.
type ComparisonFailure struct {
	Label1 string `json:"label1"`
	Label2 string `json:"label2"`
	Error  string `json:"error"`
}

// BatchResult is what the batch coordinator hands back to the shell.
type BatchResult struct {
	Entries   []ComparisonEntry   `json:"entries"`
	Failures  []ComparisonFailure `json:"failures,omitempty"`
	IndexPath string              `json:"index_path,omitempty"`
	// OutputPath is set for single file comparisons.
	OutputPath string `json:"output_path,omitempty"`
}
