package htmx

import (
	"strings"

	"github.com/fleetcore/hxglue/pkg/vdom"
)

// SwapStyle says where swapped content goes relative to the target.
type SwapStyle string

const (
	SwapInnerHTML  SwapStyle = "innerHTML"
	SwapOuterHTML  SwapStyle = "outerHTML"
	SwapBeforeEnd  SwapStyle = "beforeend"
	SwapAfterBegin SwapStyle = "afterbegin"
)

// ParseSwapStyle reads the style from an hx-swap / HX-Reswap value, which
// may carry modifiers ("innerHTML transition:true"). Unknown or empty values
// fall back to innerHTML.
func ParseSwapStyle(value string) SwapStyle {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return SwapInnerHTML
	}
	switch s := SwapStyle(fields[0]); s {
	case SwapInnerHTML, SwapOuterHTML, SwapBeforeEnd, SwapAfterBegin:
		return s
	default:
		return SwapInnerHTML
	}
}

// Swap places nodes relative to target according to style and returns the
// element that now holds the content: target itself, or for outerHTML the
// old target's parent. A detached target with outerHTML swaps nothing.
func Swap(target *vdom.VNode, nodes []*vdom.VNode, style SwapStyle) *vdom.VNode {
	if target == nil {
		return nil
	}

	switch style {
	case SwapOuterHTML:
		parent := target.Parent
		if !target.ReplaceWith(nodes...) {
			return nil
		}
		return parent

	case SwapBeforeEnd:
		for _, n := range nodes {
			target.AppendChild(n)
		}

	case SwapAfterBegin:
		for i := len(nodes) - 1; i >= 0; i-- {
			target.PrependChild(nodes[i])
		}

	default:
		target.ReplaceChildren(nodes...)
	}
	return target
}

// Swapper swaps content into the page and announces it on the bus.
type Swapper struct {
	Bus *Bus
}

// Swap performs the swap and emits a SwapEvent for the element holding the
// new content. It must run on the event loop.
func (s *Swapper) Swap(target *vdom.VNode, nodes []*vdom.VNode, style SwapStyle) *vdom.VNode {
	holder := Swap(target, nodes, style)
	if holder != nil && s.Bus != nil {
		s.Bus.EmitAfterSwap(SwapEvent{Target: holder})
	}
	return holder
}
