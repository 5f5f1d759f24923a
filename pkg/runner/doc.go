/*
Package runner implements the intent loop between a Waymark session and the outside world.

The runner reads commands from a pluggable handler, applies them to the
session and hands the outcome back to the handler for display.

# Key Components

  - Runner: the loop. It stops on quit, on end of input or when the context is cancelled.
  - IOHandler: decouples how commands arrive and how outcomes are shown.
  - TextHandler: line commands for humans ("mode waypoint", "tap 1 2", "compute").
  - JSONHandler: one JSON intent per line in, one JSON diff per line out.

# Usage

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx, sess); err != nil {
		log.Fatal(err)
	}
*/
package runner
