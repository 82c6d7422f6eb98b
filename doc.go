/*
Package textops is a text-operations plugin: six stateless transformations
(toUpperCase, toLowerCase, characterCount, wordCount, reverseText, trimText)
exposed to a host through a name-to-function registration table.

Every operation reads the "input" key of a keyed context (the empty string when
the key is absent) and returns a string. Operations never fail; the only error a
host can observe is an unknown operation name.

# Usage

	plugin := textops.New(textops.WithLanguage(language.Turkish))

	out, err := plugin.Call(ctx, "toUpperCase", map[string]any{"input": "istanbul"})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out) // İSTANBUL

Hosts that speak in tool calls use Execute, which never returns an error for an
unknown operation but reports it inside the domain.ToolResult:

	res, _ := plugin.Execute(ctx, domain.ToolCall{Name: "wordCount", Args: args})

The same plugin can be served over HTTP (pkg/adapters/http), the Model Context
Protocol (pkg/adapters/mcp) or as a process tool (pkg/adapters/process).
*/
package textops
