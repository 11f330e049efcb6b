// Package batch 并发展开多个模式，结果保持输入顺序。
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/lwmacct/251019-go-pkg-braces/pkg/braces"
)

// Options 批量展开选项。
type Options struct {
	Jobs   int  // 并发数，<= 0 时为 1
	Strict bool // 首个错误即取消其余任务并返回该错误

	// BraceOptions 传递给每个模式的 braces.Compile。
	BraceOptions []braces.Option
}

// Result 单个模式的展开结果。
type Result struct {
	Pattern string
	Words   []string
	Err     error
}

// Expand 展开 patterns。
//
// 非 Strict 模式下，单个模式的错误记录在 Result.Err 中，不影响其他模式；
// 返回的 error 仅来自 ctx 取消。
func Expand(ctx context.Context, patterns []string, opts Options) ([]Result, error) {
	results := make([]Result, len(patterns))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Jobs, 1))

	for i, pattern := range patterns {
		results[i].Pattern = pattern
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			words, err := braces.ExpandAll(pattern, opts.BraceOptions...)
			if err != nil {
				slog.Debug("Pattern expansion failed", "pattern", pattern, "error", err)
				results[i].Err = err
				if opts.Strict {
					return fmt.Errorf("expand %q: %w", pattern, err)
				}

				return nil
			}

			results[i].Words = words
			slog.Debug("Pattern expanded", "pattern", pattern, "count", len(words))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// Failed 返回出错的结果数量。
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}
