package web

import (
	"net/http"

	"go-hr-website/config"
	"go-hr-website/internal/delivery/http/middleware"
	"go-hr-website/internal/delivery/http/response"
	"go-hr-website/internal/domain"
	"go-hr-website/internal/usecase"
	"go-hr-website/pkg/apperror"
	"go-hr-website/pkg/security"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the text fields next to the resume
const multipartOverhead = 1 << 20

type RouterDeps struct {
	CareerUC       domain.CareerUsecase
	ContactUC      domain.ContactUsecase
	HealthUC       usecase.HealthUsecase
	CareerLimiter  *middleware.RateLimiter
	ContactLimiter *middleware.RateLimiter
	SecurityLogger *security.SecurityLogger
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	secure := cfg.IsProduction()

	r := gin.New()
	r.SetHTMLTemplate(parseTemplates())
	r.MaxMultipartMemory = cfg.ResumeMaxBytes + multipartOverhead

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(secure))
	r.Use(middleware.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		var report map[string]string
		if deps.HealthUC != nil {
			report = deps.HealthUC.Check(c.Request.Context())
		}
		response.Success(c, http.StatusOK, "System operational", report)
	})
	r.StaticFS("/static", staticFiles())
	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("The page you are looking for does not exist"))
	})

	site := r.Group("")
	site.Use(middleware.BodyLimit(cfg.ResumeMaxBytes + multipartOverhead))
	site.Use(middleware.Session(cfg.SessionTTL, secure))
	site.Use(middleware.CSRFMiddleware(secure, deps.SecurityLogger))
	{
		NewPageHandler(site)
		NewCareerHandler(site, deps.CareerUC, deps.CareerLimiter.Middleware(), cfg.ResumeMaxBytes, cfg.NotificationTimeout)
		NewContactHandler(site, deps.ContactUC, deps.ContactLimiter.Middleware())
	}

	return r
}
