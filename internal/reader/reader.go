package reader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrParse marks every failure to turn a file into an Input.
var ErrParse = errors.New("unable to read import file")

type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatXLSX   Format = "xlsx"
	FormatManual Format = "manual"
)

// ParseFormat accepts a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX, FormatManual:
		return f, nil
	default:
		return "", fmt.Errorf("unknown import format: %q", s)
	}
}

// DetectFormat guesses the format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("cannot detect format of %q, use --format", filepath.Base(path))
	}
}

// Input is the loosely structured result of reading a file. It is either
// Rows (csv, xlsx) or Records (json, manual).
type Input interface {
	Len() int
	isInput()
}

// Rows is a header row plus data rows of cell strings.
type Rows struct {
	Header []string
	Data   [][]string
}

func (r Rows) Len() int { return len(r.Data) }
func (Rows) isInput()   {}

// Record is one decoded JSON object.
type Record map[string]any

type Records []Record

func (r Records) Len() int { return len(r) }
func (Records) isInput()   {}

// ReadFile opens path and reads it with the reader for format.
func ReadFile(ctx context.Context, path string, format Format) (Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer f.Close()

	switch format {
	case FormatCSV:
		return ReadCSV(f)
	case FormatJSON, FormatManual:
		return ReadJSON(f)
	case FormatXLSX:
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrParse, format)
	}
}
