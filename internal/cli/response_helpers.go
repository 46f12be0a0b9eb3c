package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"min_triangle_path/internal/triangle"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

type result struct {
	Rows  int     `json:"rows" yaml:"rows"`
	Found bool    `json:"found" yaml:"found"`
	Path  []int64 `json:"path" yaml:"path"`
	Sum   int64   `json:"sum" yaml:"sum"`
	Text  string  `json:"text" yaml:"text"`
}

func newResult(rows int, path triangle.Path) result {
	values := []int64(path)
	if values == nil {
		values = []int64{}
	}
	return result{
		Rows:  rows,
		Found: len(path) > 0,
		Path:  values,
		Sum:   path.Sum(),
		Text:  triangle.Format(path),
	}
}

type writerFunc func(w io.Writer, res result) error

func writerFor(format string) (writerFunc, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", formatText:
		return writeTextResult, nil
	case formatJSON:
		return writeJSONResult, nil
	case formatYAML, "yml":
		return writeYAMLResult, nil
	default:
		return nil, fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, format)
	}
}

func writeTextResult(w io.Writer, res result) error {
	_, err := fmt.Fprintln(w, res.Text)
	return err
}

func writeJSONResult(w io.Writer, res result) error {
	return json.NewEncoder(w).Encode(res)
}

func writeYAMLResult(w io.Writer, res result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return err
	}
	return enc.Close()
}

func logResult(logger *zap.Logger, res result) {
	if logger == nil {
		return
	}
	if !res.Found {
		logger.Info("no path", zap.Int("rows", res.Rows))
		return
	}
	logger.Info("minimal path",
		zap.Int("rows", res.Rows),
		zap.Int64s("path", res.Path),
		zap.Int64("sum", res.Sum),
	)
}
