package main

import (
	"fmt"

	"git.home.luguber.info/inful/docugen/cmd/docugen/commands"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docugen"),
		kong.Description("Generate, rework, and publish project documentation from a codebase input."),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("docugen %s (commit %s, built %s)", version.Version, version.GitCommit, version.BuildTime),
		},
	)

	global := &commands.Global{}
	if err := ctx.Run(global, &cli); err != nil {
		derrors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
	}
}
