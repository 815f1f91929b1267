package render

import (
	"fmt"
	"io"

	"github.com/fleetcore/hxglue/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the <body> node (or any node rendered inside <body>).
	Body *vdom.VNode

	// Title is the page title
	Title string

	// Lang is the language attribute for the html element
	// Defaults to "en" if not specified
	Lang string

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Scripts contains inline scripts appended at the end of the body.
	Scripts []string
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `  <meta charset="utf-8">`+"\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n"); err != nil {
		return err
	}

	body := page.Body
	if body == nil || body.Tag != "body" {
		// Wrap without AppendChild so the caller's node keeps its parent.
		wrapper := &vdom.VNode{Kind: vdom.KindElement, Tag: "body"}
		if body != nil {
			wrapper.Children = []*vdom.VNode{body}
		}
		body = wrapper
	}

	// Scripts go last inside body, without mutating the caller's tree.
	if len(page.Scripts) > 0 {
		if _, err := fmt.Fprintf(w, "<body"); err != nil {
			return err
		}
		if err := r.renderAttributes(w, body); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		for _, child := range body.Children {
			if err := r.renderNode(w, child, 1); err != nil {
				return err
			}
		}
		for _, script := range page.Scripts {
			if _, err := fmt.Fprintf(w, "<script>%s</script>", script); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</body>\n"); err != nil {
			return err
		}
	} else if err := r.RenderToWriter(w, body); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n</html>\n")
	return err
}
