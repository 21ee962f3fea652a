package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Input           string   `json:"input" yaml:"input" toml:"input"`
	OutputDir       string   `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	ImageBaseURL    string   `json:"image_base_url" yaml:"image_base_url" toml:"image_base_url"`
	ImageWidth      int      `json:"image_width" yaml:"image_width" toml:"image_width"`
	ImageHeight     int      `json:"image_height" yaml:"image_height" toml:"image_height"`
	ImageModel      string   `json:"image_model" yaml:"image_model" toml:"image_model"`
	ImageTimeout    string   `json:"image_timeout" yaml:"image_timeout" toml:"image_timeout"`
	CaptionLanguage string   `json:"caption_language" yaml:"caption_language" toml:"caption_language"`
	ReportName      string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType      []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	ThumbnailWidth  int      `json:"thumbnail_width" yaml:"thumbnail_width" toml:"thumbnail_width"`
	S3Bucket        string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix        string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
	Profile         string   `json:"profile" yaml:"profile" toml:"profile"`
	Region          string   `json:"region" yaml:"region" toml:"region"`
}
