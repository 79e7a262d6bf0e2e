package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/collatz/internal/collatz"
)

var ErrUnknownFormat = errors.New("export: unknown file format")

type Format string

const (
	CSV  Format = "csv"
	TXT  Format = "txt"
	JSON Format = "json"
	SVG  Format = "svg"
)

// DefaultFilename mirrors the save dialog's suggested name.
func DefaultFilename(seq collatz.Sequence, f Format) string {
	return fmt.Sprintf("Collatz-Conjecture-N-%d.%s", seq.Start(), f)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); Format(ext) {
	case CSV, TXT, JSON, SVG:
		return Format(ext), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// WriteFile exports seq to path in the format implied by its extension.
// opts only matters for SVG.
func WriteFile(path string, seq collatz.Sequence, opts ChartOptions) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return WriteFileAs(path, seq, format, opts)
}

// WriteFileAs exports seq to path in format f, whatever the extension.
func WriteFileAs(path string, seq collatz.Sequence, f Format, opts ChartOptions) error {
	if seq.IsEmpty() {
		return errors.New("export: empty sequence")
	}
	switch f {
	case CSV, TXT, JSON, SVG:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch f {
	case JSON:
		err = WriteJSON(file, seq)
	case SVG:
		err = WriteSVG(file, seq, opts)
	default:
		err = WriteCSV(file, seq)
	}
	if err != nil {
		return err
	}
	return file.Close()
}
