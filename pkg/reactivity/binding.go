package reactivity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fleetcore/hxglue/pkg/vdom"
)

const (
	// BindingAttr carries a declarative binding: "Name:{json config}".
	BindingAttr = "v-hook"

	// InitAttr marks an element whose binding has been initialised.
	InitAttr = "data-v-init"
)

// Bind creates a binding attribute for element. The config is serialized
// to JSON into the attribute value.
//
//	Div(reactivity.Bind("Counter", map[string]any{"start": 3}))
func Bind(name string, config any) vdom.Attr {
	b, err := json.Marshal(config)
	if err != nil || string(b) == "null" {
		b = []byte("{}")
	}
	return vdom.AttrOf(BindingAttr, name+":"+string(b))
}

// ParseBinding splits a binding attribute value into its name and config.
// A value without a config ("Name") yields an empty config.
func ParseBinding(value string) (string, Config, error) {
	name, raw, _ := strings.Cut(strings.TrimSpace(value), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("reactivity: binding %q has no name", value)
	}

	config := Config{}
	if raw = strings.TrimSpace(raw); raw != "" {
		if err := json.Unmarshal([]byte(raw), &config); err != nil {
			return "", nil, fmt.Errorf("reactivity: binding %s config: %w", name, err)
		}
	}
	return name, config, nil
}

// Config is a decoded binding configuration.
type Config map[string]any

// Accessors

func (c Config) String(key string) string {
	if v, ok := c[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func (c Config) Int(key string) int {
	if v, ok := c[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		case string:
			i, _ := strconv.Atoi(val)
			return i
		}
	}
	return 0
}

func (c Config) Bool(key string) bool {
	if v, ok := c[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
		b, _ := strconv.ParseBool(fmt.Sprintf("%v", v))
		return b
	}
	return false
}

func (c Config) Strings(key string) []string {
	if v, ok := c[key]; ok {
		// JSON arrays decode as []any.
		if list, ok := v.([]any); ok {
			strs := make([]string, len(list))
			for i, item := range list {
				strs[i] = fmt.Sprintf("%v", item)
			}
			return strs
		}
		if list, ok := v.([]string); ok {
			return list
		}
	}
	return nil
}
