package entity

// Metadata is the record written next to the generated image.
type Metadata struct {
	GeneratedAt string `json:"generatedAt"`
	RunID       string `json:"runId"`
	TotalSaved  Number `json:"totalSaved"`
	GoalName    string `json:"goalName"`
	GoalTarget  Number `json:"goalTarget"`
	Percentage  Number `json:"percentage"`
	Remaining   Number `json:"remaining"`
	Caption     string `json:"caption"`
	ImageURL    string `json:"imageUrl"`
}

// CIOutput holds the key=value pairs appended to the CI output file.
type CIOutput struct {
	TotalSaved string
	GoalName   string
	ImageURL   string
	Percentage string
}

// PostResult resume os artefatos produzidos por uma execução.
type PostResult struct {
	RunID         string   `json:"run_id"`
	ImagePath     string   `json:"image_path"`
	ThumbnailPath string   `json:"thumbnail_path,omitempty"`
	MetadataPath  string   `json:"metadata_path"`
	ReportPaths   []string `json:"report_paths,omitempty"`
	PublishedKeys []string `json:"published_keys,omitempty"`
}
