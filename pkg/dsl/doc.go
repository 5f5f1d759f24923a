/*
Package dsl provides a fluent Go API for writing waymark scenarios.

It is the programmatic counterpart of scenario YAML files: every call
appends the intents a user would send, including the mode switches, so the
result replays exactly like a hand-written file.

Example usage:

	sc, err := dsl.New("detour").
		Grid(3, 2).
		Waypoints(domain.Pt(0, 0), domain.Pt(2, 0)).
		Risky(domain.Pt(1, 0), 5).
		Compute().
		ExpectPaths(1).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	report, err := sc.Replay(ctx, s)
*/
package dsl
