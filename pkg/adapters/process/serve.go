package process

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ArgPrefix marks the environment variables through which hosts pass tool arguments.
const ArgPrefix = "TRELLIS_ARG_"

// Caller runs a named operation.
type Caller interface {
	Call(ctx context.Context, name string, args map[string]any) (string, error)
}

// ArgsFromEnv collects TRELLIS_ARG_<KEY>=value entries of environ (as returned
// by os.Environ) into an argument map. Keys are lowercased, so TRELLIS_ARG_INPUT
// becomes "input".
func ArgsFromEnv(environ []string) map[string]any {
	args := make(map[string]any)
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, ArgPrefix) {
			continue
		}
		name := strings.ToLower(strings.TrimPrefix(key, ArgPrefix))
		if name == "" {
			continue
		}
		args[name] = value
	}
	return args
}

// Serve runs one operation with arguments taken from environ and writes the
// result to stdout unmodified. The host reads stdout as the tool result.
func Serve(ctx context.Context, caller Caller, name string, environ []string, stdout io.Writer) error {
	out, err := caller.Call(ctx, name, ArgsFromEnv(environ))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(stdout, out)
	return err
}
