// Package expand 提供 expand 命令。
package expand

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/command"
	"github.com/lwmacct/251019-go-pkg-braces/internal/config"
)

// Command 展开命令
var Command = New()

// New 创建新的命令实例。
func New() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "展开花括号模式",
		ArgsUsage: "[pattern...]",
		Description: "没有参数时从标准输入逐行读取模式。\n\n" +
			"示例：\n" +
			"  braces expand 'thumbnail.{png,jp{e,}g}'\n" +
			"  printf 'a{b,c}\\n' | braces expand -f json",
		Action: action,
		Flags: append(command.CommonFlags(),
			&cli.IntFlag{
				Name:    "expand-jobs",
				Aliases: []string{"j"},
				Value:   command.Defaults.Expand.Jobs,
				Usage:   "并发展开的模式数",
			},
			&cli.BoolFlag{
				Name:  "expand-strict",
				Value: command.Defaults.Expand.Strict,
				Usage: "遇到错误立即停止",
			},
			&cli.StringFlag{
				Name:    "output-format",
				Aliases: []string{"f"},
				Value:   command.Defaults.Output.Format,
				Usage:   "输出格式: " + config.FormatLines + ", " + config.FormatJSON + ", " + config.FormatYAML,
			},
			&cli.BoolFlag{
				Name:  "output-sort",
				Value: command.Defaults.Output.Sort,
				Usage: "按字典序排序结果",
			},
			&cli.BoolFlag{
				Name:    "output-unique",
				Aliases: []string{"u"},
				Value:   command.Defaults.Output.Unique,
				Usage:   "去除重复结果",
			},
		),
	}
}
