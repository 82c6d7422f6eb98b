package operations

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// KeyInput is the only context key the operations consume.
const KeyInput = "input"

// Context is the caller-supplied keyed input of an operation.
// The zero value is an empty context.
type Context struct {
	vars map[string]string
}

// NewContext copies vars into a new Context.
func NewContext(vars map[string]string) Context {
	c := Context{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		c.vars[k] = v
	}
	return c
}

// ContextFromArgs builds a Context from loosely typed host arguments.
// Strings are kept verbatim and bools become "true" or "false". Other scalars
// are weakly decoded (42 -> "42"), nil becomes "" and anything else falls back
// to its fmt representation.
func ContextFromArgs(args map[string]any) Context {
	c := Context{vars: make(map[string]string, len(args))}
	for k, v := range args {
		c.vars[k] = stringify(v)
	}
	return c
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	}

	var s string
	if err := mapstructure.WeakDecode(v, &s); err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// Get returns the value stored under key, or def when the key is absent.
func (c Context) Get(key, def string) string {
	if v, ok := c.vars[key]; ok {
		return v
	}
	return def
}

// Input is shorthand for Get(KeyInput, "").
func (c Context) Input() string {
	return c.Get(KeyInput, "")
}

// Keys returns the context keys in sorted order.
func (c Context) Keys() []string {
	keys := make([]string, 0, len(c.vars))
	for k := range c.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys in the context.
func (c Context) Len() int {
	return len(c.vars)
}
