package reporter

const (
	// Embedded template names
	ComparisonTemplateName = "comparison.html.tmpl"
	IndexTemplateName      = "index.html.tmpl"

	// Embedded asset paths
	EmbeddedDiffCSSPath  = "assets/css/diff.css"
	EmbeddedIndexCSSPath = "assets/css/index.css"

	// Output file naming
	ComparisonFilePrefix   = "comparison_"
	ReportFileExtension    = ".html"
	PatchFileExtension     = ".patch"
	IndexFileName          = "index.html"
	StandaloneIndexName    = "ir_comparisons_index.html"
	SanitizedEmptyFilename = "unnamed"

	// Report generation defaults
	DefaultIndexTitle = "IR Comparisons Index"
	DefaultTabSize    = 4

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644

	// Media types handed to the minifier
	MediaTypeHTML = "text/html"
	MediaTypeCSS  = "text/css"
)
