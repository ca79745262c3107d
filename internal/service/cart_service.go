package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/repository"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a number greater than 0")
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("product not found in cart")
	ErrNoCarts         = errors.New("no carts available")
)

// CartService операции над корзинами. Каждая мутация — один полный
// цикл load → правка → save; изоляции между параллельными запросами
// нет, побеждает последняя запись.
type CartService struct {
	carts repository.Collection[domain.Cart]
	ids   repository.IDGenerator
	log   *zap.Logger
}

func NewCartService(carts repository.Collection[domain.Cart], ids repository.IDGenerator, log *zap.Logger) *CartService {
	return &CartService{carts: carts, ids: ids, log: log}
}

// Create создаёт пустую корзину; отсутствие файла не ошибка
func (s *CartService) Create(ctx context.Context) (*domain.Cart, error) {
	carts, _, err := s.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	c := domain.Cart{ID: s.ids.NewID(), Products: []domain.CartItem{}}
	carts = append(carts, c)
	if err := s.carts.Save(ctx, carts); err != nil {
		return nil, err
	}
	s.log.Info("cart created", zap.String("id", c.ID))
	return &c, nil
}

// List сообщает ErrNoCarts, пока файл корзин не создан — намеренная
// асимметрия с каталогом, который в этом случае отдаёт пустой список
func (s *CartService) List(ctx context.Context) ([]domain.Cart, error) {
	carts, ok, err := s.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCarts
	}
	if carts == nil {
		carts = []domain.Cart{}
	}
	return carts, nil
}

func (s *CartService) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	carts, ok, err := s.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCarts
	}
	for i := range carts {
		if carts[i].ID == id {
			cp := carts[i]
			return &cp, nil
		}
	}
	return nil, ErrCartNotFound
}

// AddItem добавляет товар в корзину; если позиция уже есть, количество
// суммируется — дубликатов productId в корзине не бывает
func (s *CartService) AddItem(ctx context.Context, cartID, productID string, quantity int64) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	carts, ok, err := s.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCarts
	}
	idx := findCart(carts, cartID)
	if idx == -1 {
		return nil, ErrCartNotFound
	}
	cart := &carts[idx]
	merged := false
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			cart.Products[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Products = append(cart.Products, domain.CartItem{ProductID: productID, Quantity: quantity})
	}
	if err := s.carts.Save(ctx, carts); err != nil {
		return nil, err
	}
	s.log.Info("item added to cart",
		zap.String("cart_id", cartID),
		zap.String("product_id", productID),
		zap.Int64("quantity", quantity),
	)
	cp := *cart
	return &cp, nil
}

// SetItemQuantity перезаписывает количество существующей позиции
func (s *CartService) SetItemQuantity(ctx context.Context, cartID, productID string, quantity int64) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	carts, ok, err := s.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCarts
	}
	idx := findCart(carts, cartID)
	if idx == -1 {
		return nil, ErrCartNotFound
	}
	cart := &carts[idx]
	item := -1
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			item = i
			break
		}
	}
	if item == -1 {
		return nil, ErrItemNotFound
	}
	cart.Products[item].Quantity = quantity
	if err := s.carts.Save(ctx, carts); err != nil {
		return nil, err
	}
	s.log.Info("item quantity updated",
		zap.String("cart_id", cartID),
		zap.String("product_id", productID),
		zap.Int64("quantity", quantity),
	)
	cp := *cart
	return &cp, nil
}

// RemoveItem убирает позицию из корзины, порядок остальных сохраняется
func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	carts, ok, err := s.carts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoCarts
	}
	idx := findCart(carts, cartID)
	if idx == -1 {
		return nil, ErrCartNotFound
	}
	cart := &carts[idx]
	item := -1
	for i := range cart.Products {
		if cart.Products[i].ProductID == productID {
			item = i
			break
		}
	}
	if item == -1 {
		return nil, ErrItemNotFound
	}
	cart.Products = append(cart.Products[:item], cart.Products[item+1:]...)
	if err := s.carts.Save(ctx, carts); err != nil {
		return nil, err
	}
	s.log.Info("item removed from cart",
		zap.String("cart_id", cartID),
		zap.String("product_id", productID),
	)
	cp := *cart
	return &cp, nil
}

func (s *CartService) Remove(ctx context.Context, cartID string) error {
	carts, ok, err := s.carts.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoCarts
	}
	kept := make([]domain.Cart, 0, len(carts))
	for _, c := range carts {
		if c.ID != cartID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(carts) {
		return ErrCartNotFound
	}
	if err := s.carts.Save(ctx, kept); err != nil {
		return err
	}
	s.log.Info("cart removed", zap.String("id", cartID))
	return nil
}

func findCart(carts []domain.Cart, id string) int {
	for i := range carts {
		if carts[i].ID == id {
			return i
		}
	}
	return -1
}
