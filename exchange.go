package hxglue

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fleetcore/hxglue/internal/errors"
	"github.com/fleetcore/hxglue/pkg/htmx"
	"github.com/fleetcore/hxglue/pkg/vdom"
)

// Exchange describes a completed request/swap cycle.
type Exchange struct {
	// Status is the response status code.
	Status int

	// Target is the id of the element the response was swapped into.
	Target string

	// Style is the swap style used.
	Style htmx.SwapStyle

	// Swapped reports whether content was swapped. Error statuses and
	// 204 No Content leave the page untouched.
	Swapped bool

	// Header is the response header.
	Header http.Header
}

// Request performs an exchange the way the browser library does for an
// hx-get/hx-post: the response fragment is parsed and swapped into the
// element with targetID using style, and any toast requested through the
// trigger headers is shown. HX-Retarget and HX-Reswap on the response
// override targetID and style. An empty targetID means the main content
// element.
func (h *Host) Request(ctx context.Context, method, rawURL string, body io.Reader, targetID string, style htmx.SwapStyle) (*Exchange, error) {
	u, err := h.resolve(rawURL)
	if err != nil {
		return nil, errors.New(errors.CodeExchange).
			WithDetail("Invalid URL " + rawURL).
			Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, errors.New(errors.CodeExchange).Wrap(err)
	}
	if targetID != "" {
		req.Header.Set(htmx.HeaderTarget, targetID)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Warn("exchange failed", "method", method, "url", u, "error", err)
		return nil, errors.New(errors.CodeExchange).Wrap(err)
	}
	defer resp.Body.Close()

	ex := &Exchange{
		Status: resp.StatusCode,
		Target: targetID,
		Style:  style,
		Header: resp.Header,
	}
	if retarget := strings.TrimPrefix(htmx.Retarget(resp), "#"); retarget != "" {
		ex.Target = retarget
	}
	if reswap := htmx.Reswap(resp); reswap != "" {
		ex.Style = htmx.ParseSwapStyle(reswap)
	}
	if ex.Target == "" {
		ex.Target = h.cfg.AppID
	}
	if ex.Style == "" {
		ex.Style = htmx.SwapInnerHTML
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || resp.StatusCode == http.StatusNoContent {
		h.logger.Debug("exchange not swapped", "method", method, "url", u, "status", resp.StatusCode)
		return ex, nil
	}

	nodes, err := vdom.ParseFragment(io.LimitReader(resp.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		return ex, errors.New(errors.CodeExchange).
			WithDetail("The response body could not be parsed as HTML.").
			Wrap(err)
	}

	var swapErr error
	err = h.loop.Call(ctx, func() {
		target := h.body.GetElementByID(ex.Target)
		if target == nil {
			swapErr = targetMissing(ex.Target)
			return
		}
		holder := h.swapper.Swap(target, nodes, ex.Style)
		if holder == nil {
			swapErr = targetMissing(ex.Target)
			return
		}
		ex.Swapped = true
		h.changed(holder)
	})
	if err != nil {
		return ex, err
	}
	return ex, swapErr
}

func (h *Host) resolve(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if h.baseURL != nil {
		u = h.baseURL.ResolveReference(u)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("relative URL %q without a base URL", rawURL)
	}
	return u.String(), nil
}

func targetMissing(id string) error {
	return errors.New(errors.CodeTargetMissing).
		WithDetail(fmt.Sprintf("No element with id %q.", id))
}
