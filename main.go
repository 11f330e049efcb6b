package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251019-go-pkg-braces/internal/command/check"
	"github.com/lwmacct/251019-go-pkg-braces/internal/command/expand"
	"github.com/lwmacct/251019-go-pkg-braces/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppRawName,
		Usage:   "花括号展开工具",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			version.Command,
			expand.Command,
			check.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
