package reactivity

import (
	"testing"

	"github.com/fleetcore/hxglue/pkg/htmx"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

func TestBind(t *testing.T) {
	attr := Bind("Counter", map[string]any{"start": 3})
	if attr.Key != BindingAttr {
		t.Errorf("Key = %q, want %q", attr.Key, BindingAttr)
	}
	if attr.Value != `Counter:{"start":3}` {
		t.Errorf("Value = %v", attr.Value)
	}

	if got := Bind("Empty", nil).Value; got != "Empty:{}" {
		t.Errorf("nil config Value = %v, want Empty:{}", got)
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{"with config", `Tooltip:{"content":"Hi"}`, "Tooltip", false},
		{"no config", "Dropdown", "Dropdown", false},
		{"empty config", "Dropdown:", "Dropdown", false},
		{"spaces", `  Sortable : {"group":"a"} `, "Sortable", false},
		{"no name", `:{"a":1}`, "", true},
		{"bad json", "Tooltip:{oops", "", true},
		{"config not object", "Tooltip:[1]", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, config, err := ParseBinding(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if name != tt.want {
				t.Errorf("name = %q, want %q", name, tt.want)
			}
			if config == nil {
				t.Error("config is nil")
			}
		})
	}
}

func TestConfigAccessors(t *testing.T) {
	_, c, err := ParseBinding(`X:{"s":"hello","n":42,"ns":"7","b":true,"bs":"true","list":["a",1]}`)
	if err != nil {
		t.Fatal(err)
	}

	if got := c.String("s"); got != "hello" {
		t.Errorf("String(s) = %q", got)
	}
	if got := c.String("missing"); got != "" {
		t.Errorf("String(missing) = %q", got)
	}
	if got := c.Int("n"); got != 42 {
		t.Errorf("Int(n) = %d", got)
	}
	if got := c.Int("ns"); got != 7 {
		t.Errorf("Int(ns) = %d", got)
	}
	if !c.Bool("b") || !c.Bool("bs") || c.Bool("missing") {
		t.Error("Bool accessors wrong")
	}
	if got := c.Strings("list"); len(got) != 2 || got[0] != "a" || got[1] != "1" {
		t.Errorf("Strings(list) = %v", got)
	}
}

func newCountingRegistry() (*Registry, map[string]int) {
	calls := map[string]int{}
	reg := NewRegistry()
	reg.Register("Counter", func(n *vdom.VNode, c Config) {
		calls[n.ID()]++
		n.SetAttr("data-count", c.Int("start"))
	})
	return reg, calls
}

func TestRegistryInitOnce(t *testing.T) {
	reg, calls := newCountingRegistry()

	root := vdom.Div(
		vdom.ID("root"),
		vdom.Div(vdom.ID("a"), Bind("Counter", map[string]any{"start": 1})),
		vdom.Ul(
			vdom.Li(vdom.ID("b"), Bind("Counter", map[string]any{"start": 2})),
			vdom.Li(vdom.ID("c"), Bind("Unknown", nil)),
			vdom.Li(vdom.ID("d"), vdom.AttrOf(BindingAttr, "Counter:{broken")),
		),
	)

	if n := reg.Init(root); n != 2 {
		t.Fatalf("Init = %d, want 2", n)
	}
	if n := reg.Init(root); n != 0 {
		t.Errorf("second Init = %d, want 0", n)
	}
	if calls["a"] != 1 || calls["b"] != 1 {
		t.Errorf("calls = %v", calls)
	}

	a := root.GetElementByID("a")
	if v, _ := a.Attr("data-count"); v != "1" {
		t.Errorf("data-count = %q, want 1", v)
	}
	if _, ok := a.Attr(InitAttr); !ok {
		t.Error("initialised element not marked")
	}
	for _, id := range []string{"c", "d"} {
		if _, ok := root.GetElementByID(id).Attr(InitAttr); ok {
			t.Errorf("%s marked although not initialised", id)
		}
	}
}

func TestRegistryLateRegistration(t *testing.T) {
	reg := NewRegistry()
	node := vdom.Div(Bind("Late", nil))

	reg.InitTree(node)
	if _, ok := node.Attr(InitAttr); ok {
		t.Fatal("unknown binding marked")
	}

	ran := 0
	reg.Register("Late", func(*vdom.VNode, Config) { ran++ })
	if !reg.Registered("Late") {
		t.Error("Registered(Late) = false")
	}
	reg.InitTree(node)
	reg.InitTree(node)
	if ran != 1 {
		t.Errorf("ran = %d, want 1", ran)
	}
}

func TestRegistryNilRoot(t *testing.T) {
	reg, _ := newCountingRegistry()
	if n := reg.Init(nil); n != 0 {
		t.Errorf("Init(nil) = %d", n)
	}
}

func TestHookInitializesSwappedContent(t *testing.T) {
	bus := htmx.NewBus()
	reg, calls := newCountingRegistry()
	unsubscribe := Hook(bus, reg)

	target := vdom.Div(vdom.ID("target"))
	swapper := &htmx.Swapper{Bus: bus}
	swapper.Swap(target, []*vdom.VNode{
		vdom.Div(vdom.ID("fresh"), Bind("Counter", map[string]any{"start": 5})),
	}, htmx.SwapInnerHTML)

	if calls["fresh"] != 1 {
		t.Fatalf("calls = %v, want fresh initialised once", calls)
	}

	unsubscribe()
	swapper.Swap(target, []*vdom.VNode{
		vdom.Div(vdom.ID("later"), Bind("Counter", nil)),
	}, htmx.SwapBeforeEnd)
	if calls["later"] != 0 {
		t.Error("hook ran after unsubscribe")
	}
}

func TestHookNilRuntime(t *testing.T) {
	bus := htmx.NewBus()
	Hook(bus, nil)

	// Must not panic.
	bus.EmitAfterSwap(htmx.SwapEvent{Target: vdom.Div()})
}

func TestHookNilTarget(t *testing.T) {
	bus := htmx.NewBus()
	reg, calls := newCountingRegistry()
	Hook(bus, reg)

	bus.EmitAfterSwap(htmx.SwapEvent{})
	if len(calls) != 0 {
		t.Errorf("calls = %v", calls)
	}
}
