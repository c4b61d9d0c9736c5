package services

import (
	"errors"

	"candleworks/internal/domain"
	"candleworks/internal/repos"

	"github.com/google/uuid"
)

type CartService struct {
	DB    repos.Querier
	Carts *repos.CartRepo
	Prods *repos.ProductRepo
}

func NewCartService(db repos.Querier, carts *repos.CartRepo, prods *repos.ProductRepo) *CartService {
	return &CartService{DB: db, Carts: carts, Prods: prods}
}

// Add puts qty units of a product in the user's cart, merging into an
// existing line for the same product. Note the stock check covers only the
// quantity being added, not the merged line total; historical behavior, kept.
func (s *CartService) Add(user *domain.User, productID string, qty int) (domain.CartItem, error) {
	if qty < 1 {
		qty = 1
	}
	p, err := s.Prods.Get(productID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if qty > p.Stock {
		return domain.CartItem{}, &domain.StockError{ProductID: p.ID, ProductName: p.Name, Requested: qty, Available: p.Stock}
	}

	existing, err := s.Carts.ByUserProduct(user.ID, productID)
	if err == nil {
		existing.Quantity += qty
		if err := s.Carts.SetQuantity(existing.ID, existing.Quantity); err != nil {
			return domain.CartItem{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.CartItem{}, err
	}

	it := domain.CartItem{ID: uuid.NewString(), UserID: user.ID, ProductID: productID, Quantity: qty}
	if err := s.Carts.Insert(it); err != nil {
		return domain.CartItem{}, err
	}
	return it, nil
}

// Update sets a line's quantity. Zero or negative removes the line, which
// makes removal idempotent from the caller's side.
func (s *CartService) Update(user *domain.User, itemID string, qty int) (domain.CartItem, error) {
	it, err := s.Carts.Get(user.ID, itemID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if qty <= 0 {
		if err := s.Carts.Delete(user.ID, itemID); err != nil {
			return domain.CartItem{}, err
		}
		it.Quantity = 0
		return it, nil
	}
	p, err := s.Prods.Get(it.ProductID)
	if err != nil {
		return domain.CartItem{}, err
	}
	if qty > p.Stock {
		return domain.CartItem{}, &domain.StockError{ProductID: p.ID, ProductName: p.Name, Requested: qty, Available: p.Stock}
	}
	if err := s.Carts.SetQuantity(itemID, qty); err != nil {
		return domain.CartItem{}, err
	}
	it.Quantity = qty
	return it, nil
}

func (s *CartService) Remove(user *domain.User, itemID string) error {
	return s.Carts.Delete(user.ID, itemID)
}

func (s *CartService) Clear(user *domain.User) error {
	return s.Carts.Clear(s.DB, user.ID)
}

type CartView struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
}

func (s *CartService) List(user *domain.User) (CartView, error) {
	lines, err := s.Carts.Lines(s.DB, user.ID)
	if err != nil {
		return CartView{}, err
	}
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal
	}
	return CartView{Items: lines, Total: total}, nil
}
