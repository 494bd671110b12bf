package inputprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"tasktagger/internal/util"
)

// StdinMarker selects standard input as the text source.
const StdinMarker = "-"

// Input type values reported in Result.Source.
const (
	SourceRaw   = "raw"
	SourceFile  = "file"
	SourceStdin = "stdin"
)

// Result holds the resolved text and where it came from
type Result struct {
	Text     string
	Source   string
	FilePath *string // absolute path when Source is "file"
}

// Processor defines the interface for resolving CLI input into text
type Processor interface {
	Process(ctx context.Context, input string) (Result, error)
}

// New creates a processor reading "-" from os.Stdin
func New() Processor {
	return &defaultProcessor{stdin: os.Stdin}
}

// NewWithStdin creates a processor reading "-" from r
func NewWithStdin(r io.Reader) Processor {
	return &defaultProcessor{stdin: r}
}

type defaultProcessor struct {
	stdin io.Reader
}

// Process resolves "-" to stdin, an existing regular file to its content,
// and anything else to the literal input string.
func (p *defaultProcessor) Process(ctx context.Context, input string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if input == StdinMarker {
		data, err := io.ReadAll(p.stdin)
		if err != nil {
			return Result{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		text, err := util.CleanText(data, "stdin")
		if err != nil {
			return Result{}, err
		}
		return Result{Text: text, Source: SourceStdin}, nil
	}

	fi, err := os.Stat(input)
	switch {
	case err == nil && !fi.IsDir():
		return p.processFile(input)
	case err == nil:
		log.Debugf("Input '%s' is a directory, treating as raw string.", input)
	case !errors.Is(err, os.ErrNotExist) && !errors.Is(err, os.ErrInvalid):
		// Long free text can trip ENAMETOOLONG and similar; treat it as text.
		log.Debugf("Stat of input failed (%v), treating as raw string.", err)
	}

	return Result{Text: input, Source: SourceRaw}, nil
}

func (p *defaultProcessor) processFile(path string) (Result, error) {
	binary, err := util.IsLikelyBinary(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to inspect file '%s': %w", path, err)
	}
	if binary {
		return Result{}, fmt.Errorf("file '%s' looks binary, refusing to categorize it", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return Result{}, fmt.Errorf("permission denied reading file '%s': %w", path, err)
		}
		return Result{}, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	text, err := util.CleanText(data, path)
	if err != nil {
		return Result{}, err
	}

	absPath, pathErr := filepath.Abs(path)
	if pathErr != nil {
		log.Warnf("Failed to get absolute path for '%s': %v. Using original path.", path, pathErr)
		absPath = path
	}
	log.Debugf("Input '%s' detected as a file.", path)
	return Result{Text: text, Source: SourceFile, FilePath: &absPath}, nil
}

// Ensure defaultProcessor satisfies the Processor interface.
var _ Processor = (*defaultProcessor)(nil)
