package operations

import "github.com/aretw0/textops/pkg/domain"

var descriptions = map[string]string{
	OpToUpperCase:    "Convert the input text to upper case.",
	OpToLowerCase:    "Convert the input text to lower case.",
	OpCharacterCount: "Count the bytes of the input text. Returns \"Character count: N\".",
	OpWordCount:      "Count the whitespace-delimited words of the input text. Returns \"Word count: N\".",
	OpReverseText:    "Reverse the input text byte by byte.",
	OpTrimText:       "Remove leading and trailing whitespace from the input text.",
}

// Describe returns the host-facing description of an operation.
func Describe(name string) string {
	return descriptions[name]
}

// Tools returns host metadata for every operation, in declaration order.
func Tools() []domain.Tool {
	names := Names()
	tools := make([]domain.Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, domain.Tool{
			Name:        name,
			Description: descriptions[name],
			Parameters:  inputSchema(),
		})
	}
	return tools
}

func inputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			KeyInput: map[string]any{
				"type":        "string",
				"description": "Text to operate on. Defaults to the empty string.",
			},
		},
	}
}
