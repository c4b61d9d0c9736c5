package domain

type Category struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

type Product struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Category    string  `json:"category" db:"category"`
	ImageURL    string  `json:"image_url" db:"image_url"`
	Stock       int     `json:"stock" db:"stock"`
	IsAvailable bool    `json:"is_available" db:"is_available"`
	IsFeatured  bool    `json:"is_featured" db:"is_featured"`
	CreatedAt   string  `json:"created_at" db:"created_at"`
}

type CartItem struct {
	ID        string `json:"id" db:"id"`
	UserID    string `json:"user_id" db:"user_id"`
	ProductID string `json:"product_id" db:"product_id"`
	Quantity  int    `json:"quantity" db:"quantity"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// CartLine is a cart item joined with its live product snapshot, the shape
// cart reads hand back to callers.
type CartLine struct {
	ID          string  `json:"id" db:"id"`
	ProductID   string  `json:"product_id" db:"product_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Price       float64 `json:"price" db:"price"`
	Stock       int     `json:"stock" db:"stock"`
	ImageURL    string  `json:"image_url" db:"image_url"`
	Subtotal    float64 `json:"subtotal" db:"subtotal"`
}

type Order struct {
	ID              string  `json:"id" db:"id"`
	UserID          string  `json:"user_id" db:"user_id"`
	TotalAmount     float64 `json:"total_amount" db:"total_amount"`
	Status          string  `json:"status" db:"status"`
	PaymentMethod   string  `json:"payment_method" db:"payment_method"`
	PaymentStatus   string  `json:"payment_status" db:"payment_status"`
	ShippingAddress string  `json:"shipping_address" db:"shipping_address"`
	Phone           string  `json:"phone" db:"phone"`
	CreatedAt       string  `json:"created_at" db:"created_at"`
}

// OrderItem copies (product_id, quantity, price) at order time. Price is a
// snapshot, deliberately decoupled from later catalog price changes.
type OrderItem struct {
	OrderID   string  `json:"order_id" db:"order_id"`
	ProductID string  `json:"product_id" db:"product_id"`
	Quantity  int     `json:"quantity" db:"quantity"`
	Price     float64 `json:"price" db:"price"`
}

type NewsletterSub struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	SubscribedAt string `json:"subscribed_at" db:"subscribed_at"`
}

type ContactMessage struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Mobile    string `json:"mobile" db:"mobile"`
	Message   string `json:"message" db:"message"`
	CreatedAt string `json:"created_at" db:"created_at"`
}
