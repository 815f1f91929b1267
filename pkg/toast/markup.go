package toast

import "github.com/fleetcore/hxglue/pkg/vdom"

const baseClasses = "toast flex items-center gap-3 px-4 py-3 rounded-lg shadow-lg border"

var categoryClasses = map[Type]string{
	TypeSuccess: "toast-success bg-green-50 border-green-200 text-green-800 dark:bg-green-900/30 dark:border-green-800 dark:text-green-400",
	TypeError:   "toast-error bg-red-50 border-red-200 text-red-800 dark:bg-red-900/30 dark:border-red-800 dark:text-red-400",
	TypeInfo:    "toast-info bg-blue-50 border-blue-200 text-blue-800 dark:bg-blue-900/30 dark:border-blue-800 dark:text-blue-400",
}

// build creates the detached toast element:
//
//	<div id="toast-…" class="toast …" data-toast data-type="success" data-visible="true">
//	  <span class="text-sm">message</span>
//	  <button type="button" data-dismiss="toast-…"></button>
//	</div>
//
// The dismiss control carries no text so the element's text content is the
// message alone; its glyph comes from the stylesheet.
func (m *Manager) build(t *Toast) *vdom.VNode {
	category := t.typ.Category()

	var body *vdom.VNode
	if m.trusted {
		body = vdom.Raw(t.message)
	} else {
		body = vdom.Text(t.message)
	}

	return vdom.Div(
		vdom.ID(t.id),
		vdom.Class(baseClasses, categoryClasses[category]),
		vdom.AttrOf("data-toast", true),
		vdom.Data("type", string(category)),
		vdom.Data("visible", "true"),
		vdom.Span(vdom.Class("text-sm"), body),
		vdom.Button(
			vdom.Type("button"),
			vdom.Class("toast-dismiss ml-2 opacity-60 hover:opacity-100"),
			vdom.Data("dismiss", t.id),
		),
	)
}
