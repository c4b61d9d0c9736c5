package handlers

import (
	"candleworks/internal/repos"
	"candleworks/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	ProductHandler   *ProductHandler
	CategoryHandler  *CategoryHandler
	CartHandler      *CartHandler
	OrderHandler     *OrderHandler
	AdminHandler     *AdminHandler
	MarketingHandler *MarketingHandler
	Auth             *services.AuthService
}

func NewDeps(db *sqlx.DB) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	mktRepo := repos.NewMarketingRepo(db)

	authSvc := &services.AuthService{Users: userRepo}
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	cartSvc := services.NewCartService(db, cartRepo, prodRepo)
	orderSvc := services.NewOrderService(db, cartRepo, prodRepo, orderRepo)
	mktSvc := services.NewMarketingService(mktRepo)

	return &Deps{
		AuthHandler:      &AuthHandler{Auth: authSvc},
		ProductHandler:   &ProductHandler{Catalog: catalogSvc},
		CategoryHandler:  &CategoryHandler{Catalog: catalogSvc},
		CartHandler:      &CartHandler{Cart: cartSvc},
		OrderHandler:     &OrderHandler{Order: orderSvc},
		AdminHandler:     &AdminHandler{Order: orderSvc, Marketing: mktSvc},
		MarketingHandler: &MarketingHandler{Marketing: mktSvc},
		Auth:             authSvc,
	}
}
