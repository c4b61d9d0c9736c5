package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"candleworks/internal/domain"
	"candleworks/internal/repos"
	"candleworks/internal/services"
)

func newCatalogEnv(t *testing.T) (*services.CatalogService, *repos.ProductRepo) {
	t.Helper()
	db := memdbAll(t)
	if _, err := db.Exec(`
		INSERT INTO categories(id,name) VALUES ('c1','Scented Candles'), ('c2','Gift Sets');
		INSERT INTO products(id,name,description,price,category,image_url,stock,is_available,is_featured) VALUES
		  ('cnd-hid','Retired Candle','gone',5.0,'Scented Candles','',0,0,0),
		  ('cnd-feat','Amber Glow','featured',30.0,'Scented Candles','/static/uploads/f.jpg',3,1,1);
	`); err != nil {
		t.Fatal(err)
	}
	prodRepo := repos.NewProductRepo(db)
	return services.NewCatalogService(repos.NewCategoryRepo(db), prodRepo), prodRepo
}

func TestCatalogList_Filters(t *testing.T) {
	svc, _ := newCatalogEnv(t)

	// Unavailable products never show on the public listing.
	all, err := svc.List(repos.Filter{})
	require.NoError(t, err)
	for _, p := range all {
		require.NotEqual(t, "cnd-hid", p.ID)
		require.True(t, p.IsAvailable)
	}

	byCat, err := svc.List(repos.Filter{Category: "Pillar Candles"})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	require.Equal(t, "cnd-c", byCat[0].ID)

	byPrice, err := svc.List(repos.Filter{MinPrice: 40, MaxPrice: 120})
	require.NoError(t, err)
	for _, p := range byPrice {
		require.GreaterOrEqual(t, p.Price, 40.0)
		require.LessOrEqual(t, p.Price, 120.0)
	}

	bySearch, err := svc.List(repos.Filter{Search: "ember"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	require.Equal(t, "Vanilla Ember", bySearch[0].Name)

	page, err := svc.List(repos.Filter{Limit: 2, Skip: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
}

func TestCatalogList_SubstitutesDefaultImage(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	p, err := svc.Get("cnd-c") // stored with empty image_url
	require.NoError(t, err)
	require.Equal(t, "/static/uploads/default.jpg", p.ImageURL)
}

func TestCatalogFeatured(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	feats, err := svc.Featured()
	require.NoError(t, err)
	require.Len(t, feats, 1)
	require.Equal(t, "cnd-feat", feats[0].ID)
}

func TestCatalogCategories_MergesTableAndProducts(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	names, err := svc.Categories()
	require.NoError(t, err)
	// "Pillar Candles" comes only from a product row, "Gift Sets" only from
	// the table; both appear once, sorted.
	require.Equal(t, []string{"Gift Sets", "Pillar Candles", "Scented Candles"}, names)
}

func TestAddCategory_DuplicateConflicts(t *testing.T) {
	svc, _ := newCatalogEnv(t)
	_, err := svc.AddCategory("Seasonal")
	require.NoError(t, err)
	_, err = svc.AddCategory("Seasonal")
	require.ErrorIs(t, err, domain.ErrConflict)
}

func TestDeleteCategory_BlockedWhileReferenced(t *testing.T) {
	svc, _ := newCatalogEnv(t)

	err := svc.DeleteCategory("Scented Candles")
	require.ErrorIs(t, err, domain.ErrConflict)
	names, err := svc.Categories()
	require.NoError(t, err)
	require.Contains(t, names, "Scented Candles")

	// Unreferenced category deletes cleanly.
	require.NoError(t, svc.DeleteCategory("Gift Sets"))
	names, err = svc.Categories()
	require.NoError(t, err)
	require.NotContains(t, names, "Gift Sets")
}

func TestProductAdminCRUD(t *testing.T) {
	svc, _ := newCatalogEnv(t)

	p, err := svc.CreateProduct(domain.Product{Name: "Sea Salt Candle", Price: 21.0, Category: "Scented Candles", Stock: 4})
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.True(t, p.IsAvailable)
	require.Equal(t, "/static/uploads/default.jpg", p.ImageURL)

	p.Price = 18.0
	updated, err := svc.UpdateProduct(p)
	require.NoError(t, err)
	require.Equal(t, 18.0, updated.Price)

	require.NoError(t, svc.DeleteProduct(p.ID))
	_, err = svc.Get(p.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteProduct("no-such")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
