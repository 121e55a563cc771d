package api

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"tripwhisperer/internal/config"
)

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/trip" or any custom path, always starts with '/'
	if subpath == "" {
		subpath = "/"
	}

	// Load HTML templates
	r.LoadHTMLFiles("./frontend/index.html", "./frontend/result.html")

	// Serve frontend static assets
	r.Static(path.Join(subpath, "css"), "./frontend/css")

	// Index form
	r.GET(subpath, IndexHandler(cfg))
	if subpath != "/" {
		// Redirect /subpath/ to /subpath (no duplicate panic)
		r.GET(subpath+"/", func(c *gin.Context) {
			target := subpath
			if q := c.Request.URL.RawQuery; q != "" {
				target += "?" + q
			}
			c.Redirect(http.StatusMovedPermanently, target)
		})
	}

	// API routes
	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))

		// Guide generation (HTML and JSON flavors)
		group.POST("/guide", GuidePageHandler(cfg, deps))
		group.POST("/guide.json", GuideJSONHandler(cfg, deps))
		group.POST("/guide/download", DownloadGuideHandler(cfg))

		// Progress-streaming variant of /guide
		group.GET("/ws/guide", WSGuideHandler(cfg, deps))
	}
	return r
}
