package http

import (
	"net/http"

	_ "github.com/DRSN-tech/online-sales/docs" // Регистрация swag-спецификаций
	"github.com/DRSN-tech/online-sales/internal/usecase"
	"github.com/DRSN-tech/online-sales/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init подключает общие middleware и Swagger UI для указанного экземпляра swag.
// Вызывается до регистрации маршрутов.
func (r *Router) Init(swaggerInstance string) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(accessLog(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.InstanceName(swaggerInstance),
	))
}

func (r *Router) InitClientRoutes(registration usecase.ClientRegistrationUC, search usecase.ClientSearchUC) {
	h := NewClientHandler(registration, search, r.logger)

	r.router.Route("/client", func(cl chi.Router) {
		cl.Get("/", h.searchClients)
		cl.Post("/", h.registerClient)
		cl.Put("/", h.updateClient)
		cl.Get("/isRegistered/{id}", h.isClientRegistered)
		cl.Get("/cpf/{cpf}", h.searchClientByCPF)
		cl.Get("/{id}", h.searchClientByID)
		cl.Delete("/{id}", h.deleteClient)
	})
}

func (r *Router) InitProductRoutes(registration usecase.ProductRegistrationUC, search usecase.ProductSearchUC) {
	h := NewProductHandler(registration, search, r.logger)

	r.router.Route("/product", func(pr chi.Router) {
		pr.Get("/", h.searchProducts)
		pr.Post("/", h.registerProduct)
		pr.Put("/", h.updateProduct)
		pr.Get("/isRegistered/{id}", h.isProductRegistered)
		pr.Get("/code/{code}", h.searchProductByCode)
		pr.Get("/{id}", h.searchProductByID)
		pr.Delete("/{id}", h.deleteProduct)
	})
}

func (r *Router) Handler() http.Handler {
	return r.router
}
