package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/repository"
)

var (
	ErrMissingFields   = errors.New("all fields are required except thumbnails")
	ErrProductNotFound = errors.New("product not found")
)

// NewProduct поля, принимаемые при создании товара
type NewProduct struct {
	Title       string
	Description string
	Code        string
	Price       float64
	Stock       int64
	Category    string
	Thumbnails  []string
}

// ProductPatch частичное обновление: применяются только заполненные
// указатели, id не обновляется никогда
type ProductPatch struct {
	Title       *string
	Description *string
	Code        *string
	Price       *float64
	Stock       *int64
	Category    *string
	Status      *bool
	Thumbnails  *[]string
}

// CatalogService операции над каталогом товаров поверх файловой
// коллекции: загрузка целиком, правка в памяти, полная запись.
type CatalogService struct {
	products repository.Collection[domain.Product]
	ids      repository.IDGenerator
	log      *zap.Logger
}

func NewCatalogService(products repository.Collection[domain.Product], ids repository.IDGenerator, log *zap.Logger) *CatalogService {
	return &CatalogService{products: products, ids: ids, log: log}
}

// List возвращает все товары либо первые limit в порядке добавления.
// limit <= 0 — без усечения.
func (s *CatalogService) List(ctx context.Context, limit int) ([]domain.Product, error) {
	items, _, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Product{}
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	items, _, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			cp := items[i]
			return &cp, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *CatalogService) Create(ctx context.Context, in NewProduct) (*domain.Product, error) {
	// только проверка наличия: ноль считается отсутствием,
	// отрицательные значения проходят
	if in.Title == "" || in.Description == "" || in.Code == "" ||
		in.Category == "" || in.Price == 0 || in.Stock == 0 {
		return nil, ErrMissingFields
	}
	items, _, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := domain.Product{
		ID:          s.ids.NewID(),
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Price:       in.Price,
		Status:      true,
		Stock:       in.Stock,
		Category:    in.Category,
		Thumbnails:  in.Thumbnails,
	}
	if p.Thumbnails == nil {
		p.Thumbnails = []string{}
	}
	items = append(items, p)
	if err := s.products.Save(ctx, items); err != nil {
		return nil, err
	}
	s.log.Info("product created", zap.String("id", p.ID), zap.String("code", p.Code))
	return &p, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	items, _, err := s.products.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrProductNotFound
	}
	p := &items[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Thumbnails != nil {
		p.Thumbnails = *patch.Thumbnails
	}
	if err := s.products.Save(ctx, items); err != nil {
		return nil, err
	}
	s.log.Info("product updated", zap.String("id", id))
	cp := *p
	return &cp, nil
}

func (s *CatalogService) Remove(ctx context.Context, id string) error {
	items, _, err := s.products.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(items) {
		return ErrProductNotFound
	}
	if err := s.products.Save(ctx, kept); err != nil {
		return err
	}
	s.log.Info("product removed", zap.String("id", id))
	return nil
}
