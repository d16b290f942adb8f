package presskit

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Serve starts a local preview server over the built output directory. It is
// meant for development; the output deploys to any static host.
func (s *Site) Serve(addr string) error {
	e := s.handler()
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// handler builds the echo instance serving the output dir, with a custom
// error handler that serves the built 404 page for unmatched routes.
func (s *Site) handler() *echo.Echo {
	out := s.Config.OutputDir

	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
			if page, readErr := os.ReadFile(filepath.Join(out, "404.html")); readErr == nil {
				_ = c.HTMLBlob(http.StatusNotFound, page)
				return
			}
		}
		e.DefaultHTTPErrorHandler(err, c)
	}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(cacheControl)
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  out,
		Index: "index.html",
	}))

	return e
}

// cacheControl sets Cache-Control headers based on the request path, matching
// what a production static host would send.
func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/public/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/sitemap.xml" || path == "/feed.xml" || path == "/robots.txt":
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		default:
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		}
		return next(c)
	}
}
