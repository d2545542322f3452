package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/iftm/clients/internal/clients/store"
	"github.com/iftm/clients/pkg/httpx"
	"github.com/iftm/clients/pkg/slogx"

	_ "github.com/iftm/clients/api/clients" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	ClientService ClientService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", notFound)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clients Service API
//	@version		0.1.0
//	@description	CRUD and search over client records with paging and sorting.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.LenientLimit))
	}
	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, httpx.RateLimitByIP(httpx.ModerateLimit))
	}

	// Each search answers with and without the trailing slash.
	list := read(h.HandleList)
	r.Mux.Handle("GET /clients", list)
	r.Mux.Handle("GET /clients/{$}", list)

	byIncome := read(h.HandleFindByIncome)
	r.Mux.Handle("GET /clients/income", byIncome)
	r.Mux.Handle("GET /clients/income/{$}", byIncome)

	byIncomeGreaterThan := read(h.HandleFindByIncomeGreaterThan)
	r.Mux.Handle("GET /clients/incomeGreaterThan", byIncomeGreaterThan)
	r.Mux.Handle("GET /clients/incomeGreaterThan/{$}", byIncomeGreaterThan)

	byCpf := read(h.HandleFindByCpfLike)
	r.Mux.Handle("GET /clients/cpfLike", byCpf)
	r.Mux.Handle("GET /clients/cpfLike/{$}", byCpf)

	r.Mux.Handle("GET /clients/id/{id}", read(h.HandleGet))

	create := write(h.HandleCreate)
	r.Mux.Handle("POST /clients", create)
	r.Mux.Handle("POST /clients/{$}", create)

	r.Mux.Handle("PUT /clients/{id}", write(h.HandleUpdate))
	r.Mux.Handle("DELETE /clients/{id}", write(h.HandleDelete))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
