package services

import (
	"candleworks/internal/domain"
	"candleworks/internal/repos"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type OrderService struct {
	DB     *sqlx.DB
	Carts  *repos.CartRepo
	Prods  *repos.ProductRepo
	Orders *repos.OrderRepo
}

func NewOrderService(db *sqlx.DB, carts *repos.CartRepo, prods *repos.ProductRepo, orders *repos.OrderRepo) *OrderService {
	return &OrderService{DB: db, Carts: carts, Prods: prods, Orders: orders}
}

// PlaceInput is what checkout collects from the user; payment is stored, not
// processed.
type PlaceInput struct {
	ShippingAddress string
	Phone           string
	PaymentMethod   string
}

// Place converts the user's cart into an order: validate stock, snapshot
// prices into line items, decrement inventory, clear the cart. The whole
// sequence runs in one transaction; any failure rolls everything back.
func (s *OrderService) Place(user *domain.User, in PlaceInput) (domain.Order, []domain.OrderItem, error) {
	tx, err := s.DB.Beginx()
	if err != nil {
		return domain.Order{}, nil, err
	}
	defer func() { _ = tx.Rollback() }()

	lines, err := s.Carts.Lines(tx, user.ID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	if len(lines) == 0 {
		return domain.Order{}, nil, domain.ErrEmptyCart
	}

	total := 0.0
	for _, l := range lines {
		if l.Quantity > l.Stock {
			return domain.Order{}, nil, &domain.StockError{
				ProductID: l.ProductID, ProductName: l.ProductName,
				Requested: l.Quantity, Available: l.Stock,
			}
		}
		total += l.Price * float64(l.Quantity)
	}

	paymentStatus := "pending"
	if in.PaymentMethod == "cod" {
		paymentStatus = "cod"
	}
	order := domain.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		TotalAmount:     total,
		Status:          "confirmed",
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   paymentStatus,
		ShippingAddress: in.ShippingAddress,
		Phone:           in.Phone,
	}
	if err := s.Orders.Create(tx, order); err != nil {
		return domain.Order{}, nil, err
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		it := domain.OrderItem{OrderID: order.ID, ProductID: l.ProductID, Quantity: l.Quantity, Price: l.Price}
		if err := s.Orders.InsertItem(tx, it); err != nil {
			return domain.Order{}, nil, err
		}
		// Guarded decrement backs up the check above against concurrent orders.
		if err := s.Prods.DecrementStock(tx, l.ProductID, l.Quantity); err != nil {
			return domain.Order{}, nil, err
		}
		items = append(items, it)
	}

	if err := s.Carts.Clear(tx, user.ID); err != nil {
		return domain.Order{}, nil, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Order{}, nil, err
	}
	return order, items, nil
}

func (s *OrderService) Get(user *domain.User, orderID string) (domain.Order, []domain.OrderItem, error) {
	o, err := s.Orders.Get(user.ID, orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	items, err := s.Orders.Items(orderID)
	if err != nil {
		return domain.Order{}, nil, err
	}
	return o, items, nil
}

func (s *OrderService) ListByUser(user *domain.User) ([]domain.Order, error) {
	return s.Orders.ListByUser(user.ID)
}

func (s *OrderService) AdminList(caller *domain.User) ([]domain.Order, error) {
	if caller == nil || !caller.IsAdmin {
		return nil, domain.ErrForbidden
	}
	return s.Orders.ListAll()
}

func (s *OrderService) AdminUpdateStatus(caller *domain.User, orderID, status string) error {
	if caller == nil || !caller.IsAdmin {
		return domain.ErrForbidden
	}
	return s.Orders.UpdateStatus(orderID, status)
}
