package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PublicRouteGroup defines routes that don't require a session.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// SessionRouteGroup defines routes that operate on a resolved session.
type SessionRouteGroup interface {
	// RegisterSessionRoutes registers session-scoped routes to the given router group.
	RegisterSessionRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
