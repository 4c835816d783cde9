package types

// ListImagesResult holds the result of the 'list' command.
type ListImagesResult struct {
	Folder string   `json:"folder" yaml:"folder" toml:"folder"`
	Files  []string `json:"files" yaml:"files" toml:"files"`
}

// Mapping is one planned or completed copy: the source file that lands at
// Position (1-based) under Target in the output directory.
type Mapping struct {
	Position int    `json:"position" yaml:"position" toml:"position"`
	Source   string `json:"source" yaml:"source" toml:"source"`
	Target   string `json:"target" yaml:"target" toml:"target"`
}

// ReorderResult holds the result of the 'reorder' and 'preview' commands.
type ReorderResult struct {
	Folder    string    `json:"folder" yaml:"folder" toml:"folder"`
	OutputDir string    `json:"outputDir" yaml:"outputDir" toml:"outputDir"`
	Mappings  []Mapping `json:"mappings" yaml:"mappings" toml:"mappings"`
	DryRun    bool      `json:"dryRun" yaml:"dryRun" toml:"dryRun"`
}

// Sources returns the source paths in their new order.
func (r *ReorderResult) Sources() []string {
	sources := make([]string, len(r.Mappings))
	for i, m := range r.Mappings {
		sources[i] = m.Source
	}
	return sources
}
