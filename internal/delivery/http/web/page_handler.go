package web

import (
	"net/http"

	"go-hr-website/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
)

type PageHandler struct{}

// NewPageHandler registers the static content pages
func NewPageHandler(r gin.IRouter) {
	h := &PageHandler{}

	r.GET("/", h.render("home.html", "Home", gin.H{
		"Intro":    homeIntro,
		"Services": homeServices,
		"Slides":   slides,
	}))
	r.GET("/about", h.render("about.html", "About", gin.H{
		"Story":  aboutStory,
		"Values": aboutValues,
	}))
	r.GET("/slider", h.render("slider.html", "Highlights", gin.H{
		"Slides": slides,
	}))
}

func (h *PageHandler) render(name, title string, data gin.H) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, pageData(c, title, data))
	}
}

// pageData merges the layout fields every template expects into data
func pageData(c *gin.Context, title string, data gin.H) gin.H {
	out := gin.H{
		"SiteName":   siteName,
		"Title":      title,
		"Path":       c.Request.URL.Path,
		"Navigation": navigation,
		"CSRFToken":  c.GetString(middleware.CSRFTokenKey),
	}
	for k, v := range data {
		out[k] = v
	}
	return out
}
