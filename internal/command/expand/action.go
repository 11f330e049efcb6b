package expand

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/batch"
	"github.com/lwmacct/251019-go-pkg-braces/internal/command"
	"github.com/lwmacct/251019-go-pkg-braces/internal/output"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := command.Setup(cmd)
	if err != nil {
		return err
	}

	patterns, err := command.Patterns(cmd)
	if err != nil {
		return err
	}
	slog.Debug("Expanding patterns", "count", len(patterns), "jobs", cfg.Expand.Jobs)

	results, err := batch.Expand(ctx, patterns, batch.Options{
		Jobs:         cfg.Expand.Jobs,
		Strict:       cfg.Expand.Strict,
		BraceOptions: command.BraceOptions(cfg),
	})
	if err != nil {
		return err
	}

	err = output.Write(command.Stdout(cmd), cfg.Output.Format, results, output.Options{
		Sort:   cfg.Output.Sort,
		Unique: cfg.Output.Unique,
	})
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	failed := batch.Failed(results)
	if failed == 0 {
		return nil
	}
	for _, r := range results {
		if r.Err != nil {
			slog.Error("Pattern expansion failed", "pattern", r.Pattern, "error", r.Err)
		}
	}

	return fmt.Errorf("%d of %d patterns failed", failed, len(results))
}
