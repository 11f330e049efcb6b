// Package check 提供 check 命令：校验模式并输出展开数量。
package check

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/command"
)

// Command 校验命令
var Command = New()

// New 创建新的命令实例。
func New() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "校验花括号模式并统计展开数量",
		ArgsUsage: "[pattern...]",
		Action:    action,
		Flags:     command.CommonFlags(),
	}
}
