package router

import "net/http"

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(authMiddleware func(http.Handler) http.Handler, controllers ...RouteRegistrar) *http.ServeMux {
	mux := http.NewServeMux()

	for _, controller := range controllers {
		if controller != nil {
			controller.RegisterRoutes(mux, authMiddleware)
		}
	}

	return mux
}
