package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/deepcalm/campaign-console/pkg/apiErrors"
	"github.com/deepcalm/campaign-console/pkg/metrics"
	"github.com/deepcalm/campaign-console/pkg/middleware"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}

	// WithInstrumentation deve vir antes de WithRoutes para que as rotas sejam medidas
	WithInstrumentation = func(m *metrics.Metrics) ConfigRouter {
		return func(router *Router) {
			router.metrics = m
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router  *httprouter.Router
	metrics *metrics.Metrics
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Método não permitido para esta rota", nil)
	})

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		if r.metrics != nil {
			handler = middleware.Metrics(r.metrics, route.Path)(handler)
		}
		handler = middleware.Route(route.Path)(handler)

		r.router.Handler(route.Method, route.Path, handler)
	}
}
