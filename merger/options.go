package merger

import (
	"errors"
	"fmt"

	"github.com/pdfmerge/pdfmerge/report"
)

// Option is a function that configures a merge operation
type Option func(*mergeConfig) error

type mergeConfig struct {
	filePaths []string
	output    string

	// nil means use the default from DefaultConfig
	strict      *bool
	reporter    report.Reporter
	logger      Logger
	newAppender AppenderFactory
}

// MergeWithOptions merges PDF files using functional options.
//
// Example:
//
//	result, err := merger.MergeWithOptions(
//	    merger.WithFilePaths("cover.pdf", "body.pdf"),
//	    merger.WithOutput("book.pdf"),
//	)
func MergeWithOptions(opts ...Option) (*MergeResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("merger: invalid options: %w", err)
	}

	mc := DefaultConfig()
	if cfg.strict != nil {
		mc.StrictValidation = *cfg.strict
	}
	mc.Reporter = cfg.reporter
	mc.Logger = cfg.logger
	mc.NewAppender = cfg.newAppender

	return New(mc).Merge(cfg.filePaths, cfg.output)
}

func applyOptions(opts ...Option) (*mergeConfig, error) {
	cfg := &mergeConfig{
		filePaths: make([]string, 0),
		output:    DefaultOutput,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if len(cfg.filePaths) == 0 {
		return nil, errors.New("at least one input file is required")
	}
	return cfg, nil
}

// WithFilePaths adds input PDFs; repeated use appends in order
func WithFilePaths(paths ...string) Option {
	return func(cfg *mergeConfig) error {
		cfg.filePaths = append(cfg.filePaths, paths...)
		return nil
	}
}

// WithOutput sets the output path (default: merged.pdf)
func WithOutput(path string) Option {
	return func(cfg *mergeConfig) error {
		if path == "" {
			return errors.New("output path cannot be empty")
		}
		cfg.output = path
		return nil
	}
}

// WithStrictValidation enables or disables strict PDF validation
func WithStrictValidation(strict bool) Option {
	return func(cfg *mergeConfig) error {
		cfg.strict = &strict
		return nil
	}
}

// WithReporter sets the destination for per-file status lines
func WithReporter(r report.Reporter) Option {
	return func(cfg *mergeConfig) error {
		cfg.reporter = r
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l Logger) Option {
	return func(cfg *mergeConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithAppender sets the factory used to create the appender
func WithAppender(factory AppenderFactory) Option {
	return func(cfg *mergeConfig) error {
		if factory == nil {
			return errors.New("appender factory cannot be nil")
		}
		cfg.newAppender = factory
		return nil
	}
}
