package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile      string
	Input           string
	OutputDir       string
	ImageBaseURL    string
	ImageWidth      int
	ImageHeight     int
	ImageModel      string
	ImageTimeout    time.Duration
	CaptionLanguage string
	ReportName      string
	ReportType      []string
	ThumbnailWidth  int
	S3Bucket        string
	S3Prefix        string
	Profile         string
	Region          string
	Quiet           bool
	Verbose         bool
}
