package handler

import (
	"net/http"

	"github.com/salenest/salenest-api/internal/api/handler/router"
	"github.com/salenest/salenest-api/internal/usecases/catalog"
	"github.com/salenest/salenest-api/internal/usecases/selling"
	"github.com/salenest/salenest-api/pkg/middleware"
)

// maxBodyBytes limita o corpo das rotas de escrita
const maxBodyBytes = 100 << 10

func limited() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{middleware.LimitBody(maxBodyBytes)}
}

func Healthcheck(store Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: BannerHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
	}
}

func Catalog(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:        "/pushing",
			Method:      http.MethodPost,
			Handler:     CreateItem(service),
			Middlewares: limited(),
		},
		{
			Path:    "/getting",
			Method:  http.MethodGet,
			Handler: ListItems(service),
		},
		{
			Path:        "/updating/:id",
			Method:      http.MethodPut,
			Handler:     UpdateItem(service),
			Middlewares: limited(),
		},
		{
			Path:    "/deleting/:id",
			Method:  http.MethodDelete,
			Handler: DeleteItem(service),
		},
	}
}

func Sales(service selling.SalesService) []router.Route {
	return []router.Route{
		{
			Path:        "/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: limited(),
		},
		{
			Path:    "/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/sales/:id",
			Method:  http.MethodGet,
			Handler: SaleLookup(service),
		},
		{
			Path:    "/sales/:id/:startDate/:endDate",
			Method:  http.MethodGet,
			Handler: SalesByDateRange(service),
		},
	}
}
