package cli

import (
	"io"
	"strings"
)

// ResolveInput picks the text for `run`: the --input flag when set, stdin when
// the only argument is "-", otherwise the arguments joined by single spaces.
func ResolveInput(args []string, flag string, flagSet bool, stdin io.Reader) (string, error) {
	if flagSet {
		return flag, nil
	}
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}
