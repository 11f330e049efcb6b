// Package version 提供构建版本信息与 version 子命令。
//
// 构建时通过 -ldflags 注入：
//
//	go build -ldflags "-X github.com/lwmacct/251019-go-pkg-braces/internal/version.Version=v1.2.3"
package version

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// AppRawName 应用名称，同时用于配置文件搜索路径。
const AppRawName = "braces"

// 构建信息，由 -ldflags 覆盖。
var (
	Version   = ""
	Commit    = ""
	BuildTime = ""
)

// GetVersion 返回版本号；未注入时回退到模块版本，再回退到 "dev"。
func GetVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}

// Command version 子命令
var Command = &cli.Command{
	Name:  "version",
	Usage: "显示版本信息",
	Action: func(_ context.Context, cmd *cli.Command) error {
		w := cmd.Root().Writer
		if w == nil {
			w = os.Stdout
		}
		_, err := fmt.Fprintf(w, "%s %s (commit %s, built %s, %s)\n",
			AppRawName, GetVersion(), orUnknown(Commit), orUnknown(BuildTime), runtime.Version())

		return err
	},
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}
