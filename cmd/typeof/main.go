package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/typeof/cmds"
	"github.com/reusee/typeof/modes"
)

func main() {
	cmds.Execute(os.Args[1:])
	if len(requests) == 0 {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		ctx := context.Background()
		for _, req := range requests {
			if err := run(ctx, req, os.Stdin, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
	})

}
