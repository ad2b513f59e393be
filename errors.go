package staticrouter

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrRouterRequired is returned when Register is called without a Router.
var ErrRouterRequired = errors.New("staticrouter: router is required")

const (
	contentLoadFailedCode = "CONTENT_LOAD_FAILED"
	pageNotFoundCode      = "PAGE_NOT_FOUND"
	pageRenderFailedCode  = "PAGE_RENDER_FAILED"
)

func wrapLoadError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "content load failed").
		WithTextCode(contentLoadFailedCode)
}

func notFoundError(path string) error {
	return goerrors.New("static page not found: "+path, goerrors.CategoryNotFound).
		WithTextCode(pageNotFoundCode)
}

func wrapRenderError(err error, route, template string) error {
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryInternal, "render "+route+" with template "+template).
		WithTextCode(pageRenderFailedCode)
}
