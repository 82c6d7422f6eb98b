/*
Package operations implements the six text operations exposed by the plugin.

Every operation reads the "input" key of a Context (defaulting to "") and
returns a string. Operations never fail and never mutate their Context, so they
can be called concurrently without coordination.

	ops := operations.New()
	ctx := operations.NewContext(map[string]string{"input": "Hello World!"})
	ops.CharacterCount(ctx) // "Character count: 12"

Hosts that dispatch by name use the registration table:

	fn := ops.Functions()[operations.OpWordCount]
	fn(ctx) // "Word count: 2"
*/
package operations
