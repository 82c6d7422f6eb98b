/*
Package runner implements a JSON-Lines loop that feeds tool calls to a plugin.

Each input line holds one domain.ToolCall. The runner executes it and writes
exactly one domain.ToolResult line back, in input order. Malformed lines and
calls blocked by an interceptor produce error results instead of stopping the
loop, so a host can keep a single long-lived pipe open.

# Usage

	r := runner.New(plugin,
		runner.WithLogger(logger),
		runner.WithInterceptor(runner.AllowList("toUpperCase", "trimText")),
	)

	if err := r.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
*/
package runner
