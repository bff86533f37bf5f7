package httpserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"inventory-management-api/docs"
	"inventory-management-api/internal/middleware"
	pkgErrors "inventory-management-api/pkg/errors"
	"inventory-management-api/pkg/response"
)

var errRouteNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, response.MessageRouteNotFound)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	srv.registerFallbacks()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l, middleware.Config{
		Environment:    srv.environment,
		AllowedOrigins: srv.allowedOrigins,
	})

	srv.gin.Use(
		mw.RequestID(),
		mw.Recovery(),
		mw.Logger(),
		mw.SecureHeaders(),
		mw.CORS(),
	)

	ctx := context.Background()
	if srv.environment.IsProduction() {
		srv.l.Infof(ctx, "HTTP mode: production, error details hidden")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s, error details exposed", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.docsRedirect)

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// "Try it out" must target the mounted item routes
	docs.SwaggerInfo.BasePath = srv.basePath
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under the configured base path.
func (srv *HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group(srv.basePath)

	return srv.setupItemDomain(context.Background(), api)
}

func (srv *HTTPServer) registerFallbacks() {
	srv.gin.HandleMethodNotAllowed = true

	srv.gin.NoRoute(func(c *gin.Context) {
		response.AbortError(c, errRouteNotFound)
	})
	srv.gin.NoMethod(func(c *gin.Context) {
		response.AbortError(c, pkgErrors.ErrMethodNotAllowed)
	})
}

func (srv *HTTPServer) docsRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/swagger/index.html")
}
