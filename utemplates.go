// Package utemplates builds HTML element trees in Go and renders them to
// markup.
//
// This is the recommended import for most applications:
//
//	import (
//	    "github.com/vango-dev/utemplates"
//	    . "github.com/vango-dev/utemplates/pkg/node"
//	)
//
// Usage:
//
//	page := Div(Class("card"),
//	    H1("Report"),
//	    P("Completion: ", Text{Value: 0.42}),
//	)
//	html, err := utemplates.Render(page)
//	if err != nil {
//	    return err
//	}
//	err = utemplates.SaveToFile(html, "out/report.html")
//
// Conversions for non-string Text values come from the configuration file
// named by U_TEMPLATING_CONFIG_PATH (default u_templating_config.json).
package utemplates

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vango-dev/utemplates/internal/config"
	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/convert"
	"github.com/vango-dev/utemplates/pkg/node"
	"github.com/vango-dev/utemplates/pkg/output"
	"github.com/vango-dev/utemplates/pkg/render"
	"github.com/vango-dev/utemplates/pkg/respond"
)

// =============================================================================
// Tree model (re-export from pkg/node)
// =============================================================================

// Node is any renderable tree element: Text, SafeText, Tag or Group.
type Node = node.Node

// Text is a leaf whose value is converted and escaped.
type Text = node.Text

// SafeText is a leaf written verbatim.
type SafeText = node.SafeText

// Tag is an element with ordered attributes and children.
type Tag = node.Tag

// Group renders its children with no wrapper.
type Group = node.Group

// Renderer turns trees into markup.
type Renderer = render.Renderer

// Page is the HTML5 document boilerplate.
type Page = render.Page

// NewPage creates a Page with the given title.
var NewPage = render.NewPage

// =============================================================================
// Errors (re-export from internal/errors)
// =============================================================================

// Error is the structured error returned by every operation.
type Error = errors.Error

// Category sentinels for errors.Is.
var (
	ErrConfiguration = errors.ErrConfiguration
	ErrConversion    = errors.ErrConversion
	ErrStructural    = errors.ErrStructural
	ErrIO            = errors.ErrIO
)

// ErrNotApplicable is returned by a conversion that does not handle a value.
var ErrNotApplicable = convert.ErrNotApplicable

// =============================================================================
// Configuration
// =============================================================================

// Config is the parsed configuration document.
type Config = config.Config

const (
	// EnvConfigPath names the environment variable holding the config path.
	EnvConfigPath = config.EnvConfigPath

	// DefaultConfigFile is used when EnvConfigPath is unset.
	DefaultConfigFile = config.ConfigFileName
)

// LoadConfig reads the configuration document at path.
func LoadConfig(path string) (*Config, error) {
	return config.LoadFile(path)
}

// Register makes fn available to configuration documents under name.
// Registrations must happen before the first call to Default.
func Register(name string, fn convert.Func) {
	convert.Register(name, fn)
}

// FromConfig builds a renderer whose pipeline is cfg's conversion list,
// resolved against the process-wide registry.
func FromConfig(cfg *Config, opts ...render.Option) (*Renderer, error) {
	p, err := cfg.Pipeline(convert.Default)
	if err != nil {
		return nil, err
	}
	return render.New(append([]render.Option{render.WithPipeline(p)}, opts...)...), nil
}

// =============================================================================
// Default renderer
// =============================================================================

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Default returns the process-wide renderer. The configuration is loaded
// once, on first use; a load failure is returned on every call.
func Default() (*Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = loadDefault(slog.Default())
	})
	return defaultRenderer, defaultErr
}

func loadDefault(logger *slog.Logger) (*Renderer, error) {
	path, explicit := config.PathFromEnv()
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Error("load config failed", "path", path, "error", err)
		return nil, err
	}
	if cfg.Path() == "" {
		logger.Debug("no config file, using no conversions", "path", path)
	}

	r, err := FromConfig(cfg, render.WithLogger(logger))
	if err != nil {
		logger.Error("resolve conversions failed", "path", path, "error", err)
		return nil, err
	}
	logger.Info("utemplates configured",
		"path", cfg.Path(),
		"explicit", explicit,
		"conversions", r.Pipeline().Names(),
	)
	return r, nil
}

// Render renders input with the default renderer. input is a Node, a
// string (written verbatim), or a slice of them.
func Render(input any) (string, error) {
	r, err := Default()
	if err != nil {
		return "", err
	}
	return r.Render(input)
}

// RenderTo renders input with the default renderer and writes it to w.
func RenderTo(w io.Writer, input any) error {
	r, err := Default()
	if err != nil {
		return err
	}
	return r.RenderTo(w, input)
}

// SaveToFile writes html to path, creating missing parent directories.
func SaveToFile(html, path string) error {
	return output.SaveToFile(html, path)
}

// Handler serves the tree built by fn with the default renderer.
func Handler(fn func(r *http.Request) (any, error), opts ...respond.Option) http.Handler {
	r, err := Default()
	if err != nil {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			slog.Default().Error("render failed", "path", req.URL.Path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	}
	return respond.New(append([]respond.Option{respond.WithRenderer(r)}, opts...)...).Handler(fn)
}
