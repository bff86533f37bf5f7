package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "inventory-management-api/internal/item/delivery/http"
	itemUC "inventory-management-api/internal/item/usecase"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, exposeErrors)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h)
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase
	uc := itemUC.New(srv.itemRepo, srv.l)

	// 2. HTTP Handler: 500 details stay hidden in production
	h := itemHTTP.New(srv.l, uc, !srv.environment.IsProduction())

	// 3. Routes: registers <base_path>/items
	itemHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Item domain registered under %q", srv.basePath+"/items")
	return nil
}
