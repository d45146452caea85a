package handlers

import (
	"wearline/internal/config"
	"wearline/internal/repos"
	"wearline/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CatalogHandler  *CatalogHandler
	SearchHandler   *SearchHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	itemRepo := repos.NewItemRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(itemRepo)
	cartSvc := services.NewCartService(cartRepo, itemRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, orderRepo)

	return &Deps{
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, Auth: auth},
		CheckoutHandler: &CheckoutHandler{Checkout: checkoutSvc, Orders: orderRepo, Auth: auth},
		AdminHandler:    &AdminHandler{Catalog: catalogSvc, Orders: orderRepo, UploadDir: cfg.UploadDir},
	}
}
