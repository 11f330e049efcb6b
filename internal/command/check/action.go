package check

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/command"
	"github.com/lwmacct/251019-go-pkg-braces/pkg/braces"
)

// action 逐个编译模式，输出 "数量<TAB>模式"；出错时输出 "error<TAB>模式<TAB>原因"。
//
// 计数不遍历结果，因此不受 expand.max-results 限制。
func action(_ context.Context, cmd *cli.Command) error {
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	patterns, err := command.Patterns(cmd)
	if err != nil {
		return err
	}

	w := command.Stdout(cmd)
	failed := 0
	for _, pattern := range patterns {
		n, err := braces.Count(pattern, braces.WithMaxDepth(cfg.Expand.MaxDepth))
		if err != nil {
			failed++
			slog.Debug("Pattern check failed", "pattern", pattern, "error", err)
			if _, werr := fmt.Fprintf(w, "error\t%s\t%v\n", pattern, err); werr != nil {
				return werr
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", n, pattern); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d patterns invalid", failed, len(patterns))
	}

	return nil
}
