package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/cartshare"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
)

// CartUseCase carrito de la tienda y su enlace compartible.
type CartUseCase struct {
	carts         repository.CartRepository
	publicBaseURL string
}

// NewCartUseCase construye el caso de uso. publicBaseURL es la raíz del frontend para ?sharedCart=.
func NewCartUseCase(carts repository.CartRepository, publicBaseURL string) *CartUseCase {
	return &CartUseCase{carts: carts, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Get carrito con total.
func (uc *CartUseCase) Get(ctx context.Context, storeID string) (*dto.CartResponse, error) {
	items, err := uc.carts.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// Replace valida cada línea con las reglas del carrito compartido y reemplaza el carrito.
func (uc *CartUseCase) Replace(ctx context.Context, storeID string, items []entity.CartItem) (*dto.CartResponse, error) {
	if err := cartshare.Validate(items); err != nil {
		return nil, fmt.Errorf("%w: cada línea necesita productId y quantity > 0", domain.ErrInvalidInput)
	}
	if err := uc.carts.Save(ctx, storeID, items); err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// Share codifica el carrito actual y arma el enlace.
func (uc *CartUseCase) Share(ctx context.Context, storeID string) (*dto.CartShareResponse, error) {
	items, err := uc.carts.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	code, err := cartshare.Encode(items)
	if err != nil {
		return nil, err
	}
	return &dto.CartShareResponse{
		Code: code,
		URL:  uc.publicBaseURL + "/?sharedCart=" + url.QueryEscape(code),
	}, nil
}

// Import decodifica un código compartido y reemplaza el carrito.
func (uc *CartUseCase) Import(ctx context.Context, storeID, code string) (*dto.CartResponse, error) {
	items, err := cartshare.Decode(code)
	if err != nil {
		if errors.Is(err, cartshare.ErrInvalidSharedCart) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return nil, err
	}
	if err := uc.carts.Save(ctx, storeID, items); err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

func toCartResponse(items []entity.CartItem) *dto.CartResponse {
	if items == nil {
		items = []entity.CartItem{}
	}
	return &dto.CartResponse{Items: items, Total: entity.CartTotal(items)}
}
