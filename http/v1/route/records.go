package route

import (
	"github.com/labstack/echo/v4"

	"github.com/benedict-erwin/agency-console/http/middleware"
	"github.com/benedict-erwin/agency-console/http/registry"
	"github.com/benedict-erwin/agency-console/http/v1/handler"
	"github.com/benedict-erwin/agency-console/internal/services/sandbox"
	"github.com/benedict-erwin/agency-console/pkg/auth"
)

func init() {
	registry.Register("v1", func(g *echo.Group) {
		// one list endpoint per screen, guarded by read:<resource>
		for _, r := range sandbox.Routes() {
			g.GET("/"+r.ListPath, handler.ListRecords(r.Name),
				middleware.JWTAuthMiddleware(auth.Permission(auth.ActionRead, r.Resource)))
		}

		g.GET("/statuses/:screen", handler.ListStatuses,
			middleware.JWTAuthMiddleware(auth.Permission(auth.ActionRead, auth.ResourceStatuses)))
	})
}
