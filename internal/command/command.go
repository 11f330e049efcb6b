// Package command 提供 expand 与 check 命令共用的 flags 和辅助函数。
package command

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/config"
	"github.com/lwmacct/251019-go-pkg-braces/internal/version"
	"github.com/lwmacct/251019-go-pkg-braces/pkg/braces"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// CommonFlags 返回 expand 与 check 共用的 flags。
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    config.FlagConfig,
			Aliases: []string{"c"},
			Usage:   "配置文件路径",
		},
		&cli.IntFlag{
			Name:  "expand-max-depth",
			Value: Defaults.Expand.MaxDepth,
			Usage: "最大嵌套深度",
		},
		&cli.IntFlag{
			Name:  "expand-max-results",
			Value: Defaults.Expand.MaxResults,
			Usage: "单个模式的结果上限, 0 表示不限制",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: Defaults.Log.Level,
			Usage: "日志级别: debug, info, warn, error",
		},
	}
}

// Setup 加载配置并初始化日志。
func Setup(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd, version.AppRawName)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(Stderr(cmd), &slog.HandlerOptions{Level: level})))
	slog.Debug("Config loaded", "expand", cfg.Expand, "output", cfg.Output)

	return cfg, nil
}

// BraceOptions 将配置转换为 braces 选项。
func BraceOptions(cfg *config.Config) []braces.Option {
	return []braces.Option{
		braces.WithMaxDepth(cfg.Expand.MaxDepth),
		braces.WithMaxResults(cfg.Expand.MaxResults),
	}
}

// Patterns 返回命令行参数中的模式；没有参数时从标准输入逐行读取，忽略空行。
func Patterns(cmd *cli.Command) ([]string, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return args, nil
	}

	var patterns []string
	scanner := bufio.NewScanner(Stdin(cmd))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}

	return patterns, nil
}

// Stdout 返回根命令的 Writer。
func Stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}

// Stderr 返回根命令的 ErrWriter。
func Stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}

// Stdin 返回根命令的 Reader。
func Stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}

	return os.Stdin
}
