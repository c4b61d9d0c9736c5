package services

import (
	"errors"
	"sort"
	"strings"

	"candleworks/internal/domain"
	"candleworks/internal/repos"

	"github.com/google/uuid"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) List(f repos.Filter) ([]domain.Product, error) {
	return s.Prods.List(f)
}

func (s *CatalogService) Featured() ([]domain.Product, error) {
	return s.Prods.Featured()
}

func (s *CatalogService) Get(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

// Categories merges the registered category table with names found directly
// on products, deduplicated and sorted.
func (s *CatalogService) Categories() ([]string, error) {
	cats, err := s.Cats.List()
	if err != nil {
		return nil, err
	}
	fromProducts, err := s.Prods.DistinctCategories()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	names := []string{}
	for _, c := range cats {
		if !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	for _, n := range fromProducts {
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *CatalogService) AddCategory(name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if _, err := s.Cats.ByName(name); err == nil {
		return domain.Category{}, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Category{}, err
	}
	c := domain.Category{ID: uuid.NewString(), Name: name}
	if err := s.Cats.Create(c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// DeleteCategory refuses to remove a category any product still references.
func (s *CatalogService) DeleteCategory(name string) error {
	c, err := s.Cats.ByName(name)
	if err != nil {
		return err
	}
	n, err := s.Prods.CountInCategory(c.Name)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict
	}
	return s.Cats.Delete(c.ID)
}

func (s *CatalogService) CreateProduct(p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.IsAvailable = true
	if err := s.Prods.Create(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) UpdateProduct(p domain.Product) (domain.Product, error) {
	if err := s.Prods.Update(p); err != nil {
		return domain.Product{}, err
	}
	return s.Prods.Get(p.ID)
}

func (s *CatalogService) DeleteProduct(id string) error {
	return s.Prods.Delete(id)
}
