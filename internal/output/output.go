// Package output 将批量展开结果写为 lines、json 或 yaml。
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/batch"
	"github.com/lwmacct/251019-go-pkg-braces/internal/config"
)

// Options 输出选项。
type Options struct {
	Sort   bool
	Unique bool
}

// Record 是 json/yaml 输出中的单条记录。
type Record struct {
	Pattern string   `json:"pattern" yaml:"pattern"`
	Count   int      `json:"count" yaml:"count"`
	Words   []string `json:"words,omitempty" yaml:"words,omitempty"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Records 按选项整理结果。
func Records(results []batch.Result, opts Options) []Record {
	records := make([]Record, 0, len(results))
	for _, r := range results {
		rec := Record{Pattern: r.Pattern}
		if r.Err != nil {
			rec.Error = r.Err.Error()
			records = append(records, rec)
			continue
		}

		words := slices.Clone(r.Words)
		if opts.Sort || opts.Unique {
			slices.Sort(words)
		}
		if opts.Unique {
			words = slices.Compact(words)
		}
		rec.Words = words
		rec.Count = len(words)
		records = append(records, rec)
	}

	return records
}

// Write 按 format 写出结果。
//
// lines 格式只输出展开后的词，每行一个，出错的模式被跳过。
func Write(w io.Writer, format string, results []batch.Result, opts Options) error {
	records := Records(results, opts)

	switch format {
	case config.FormatLines:
		for _, rec := range records {
			for _, word := range rec.Words {
				if _, err := fmt.Fprintln(w, word); err != nil {
					return err
				}
			}
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(records)
	case config.FormatYAML:
		enc := yamlv3.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
