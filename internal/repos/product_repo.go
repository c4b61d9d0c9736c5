package repos

import (
	"database/sql"
	"errors"

	"candleworks/internal/domain"

	"github.com/jmoiron/sqlx"
)

// DefaultImageURL substitutes for products stored without an image so rows
// never leave the repo layer with an empty image_url.
const DefaultImageURL = "/static/uploads/default.jpg"

const productCols = `
  id, name, description, price, category,
  CASE WHEN image_url IS NULL OR image_url = '' THEN '` + DefaultImageURL + `' ELSE image_url END AS image_url,
  stock, is_available, is_featured, created_at`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Filter narrows the public product listing. Zero values mean "no filter".
type Filter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	Search   string
	Skip     int
	Limit    int
}

func (r *ProductRepo) List(f Filter) ([]domain.Product, error) {
	where := `is_available = 1`
	args := []any{}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	if f.MinPrice > 0 {
		where += ` AND price >= ?`
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where += ` AND price <= ?`
		args = append(args, f.MaxPrice)
	}
	if f.Search != "" {
		where += ` AND LOWER(name) LIKE ?`
		args = append(args, "%"+f.Search+"%")
	}
	if f.Limit <= 0 {
		f.Limit = 100
	}

	query := `SELECT ` + productCols + ` FROM products WHERE ` + where + ` LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Skip)

	out := []domain.Product{}
	err := r.db.Select(&out, query, args...)
	return out, err
}

func (r *ProductRepo) Featured() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE is_featured = 1 AND is_available = 1
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,name,description,price,category,image_url,stock,is_available,is_featured)
	  VALUES(?,?,?,?,?,?,?,?,?)
	`, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Stock, p.IsAvailable, p.IsFeatured)
	return err
}

func (r *ProductRepo) Update(p domain.Product) error {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name=?, description=?, price=?, category=?, image_url=?, stock=?, is_available=?, is_featured=?
	  WHERE id=?
	`, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Stock, p.IsAvailable, p.IsFeatured, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock subtracts "by" units if enough stock exists; the guarded
// UPDATE is what keeps two concurrent orders from both taking the last unit.
func (r *ProductRepo) DecrementStock(q Querier, productID string, by int) error {
	res, err := q.Exec(`
		UPDATE products
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?
	`, by, productID, by)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var cur struct {
			Name  string `db:"name"`
			Stock int    `db:"stock"`
		}
		if gerr := q.Get(&cur, `SELECT name, stock FROM products WHERE id = ?`, productID); gerr != nil {
			return domain.ErrNotFound
		}
		return &domain.StockError{ProductID: productID, ProductName: cur.Name, Requested: by, Available: cur.Stock}
	}
	return nil
}

// CountInCategory reports how many products still reference a category name.
func (r *ProductRepo) CountInCategory(name string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM products WHERE category = ?`, name)
	return n, err
}

// DistinctCategories lists category names present on products, including ones
// never registered in the categories table.
func (r *ProductRepo) DistinctCategories() ([]string, error) {
	out := []string{}
	err := r.db.Select(&out, `
	  SELECT DISTINCT category FROM products
	  WHERE category IS NOT NULL AND category != ''
	`)
	return out, err
}
