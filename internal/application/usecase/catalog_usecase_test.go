package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tiendapyme-api/internal/application/dto"
	"github.com/jhoicas/tiendapyme-api/internal/application/ports"
	"github.com/jhoicas/tiendapyme-api/internal/domain"
	"github.com/jhoicas/tiendapyme-api/internal/domain/entity"
	"github.com/jhoicas/tiendapyme-api/internal/domain/repository"
	"github.com/jhoicas/tiendapyme-api/internal/infrastructure/memory"
)

type fakeReceipts struct{ got ports.ReceiptData }

func (f *fakeReceipts) RenderOrderReceipt(_ context.Context, data ports.ReceiptData) ([]byte, error) {
	f.got = data
	return []byte("%PDF-fake"), nil
}

type shop struct {
	db       *memory.DB
	storeID  string
	userID   string
	products *ProductUseCase
	stores   *StoreUseCase
	carts    *CartUseCase
	orders   *OrderUseCase
	receipts *fakeReceipts
}

func newShop(t *testing.T) *shop {
	t.Helper()
	db := memory.NewDB()
	ctx := context.Background()
	users := memory.NewUserRepository(db)
	stores := memory.NewStoreRepository(db)
	now := time.Now()
	user := &entity.User{ID: "u-1", Email: "ana@tienda.co", Role: entity.RoleSME, Status: entity.UserStatusActive, CreatedAt: now, UpdatedAt: now}
	store := &entity.Store{ID: "s-1", UserID: user.ID, BusinessName: "Tienda de Ana", OnboardingStatus: entity.OnboardingNotStarted, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, users.Create(ctx, user))
	require.NoError(t, stores.Create(ctx, store))

	tx := memory.NewTxRunner(db)
	storeUC := NewStoreUseCase(stores, memory.NewSettingsRepository(db), tx)
	receipts := &fakeReceipts{}
	return &shop{
		db:       db,
		storeID:  store.ID,
		userID:   user.ID,
		products: NewProductUseCase(memory.NewProductRepository(db), stores, users, memory.NewPlanRepository(db), tx),
		stores:   storeUC,
		carts:    NewCartUseCase(memory.NewCartRepository(db), "https://tienda.example/"),
		orders:   NewOrderUseCase(memory.NewOrderRepository(db), memory.NewProductRepository(db), storeUC, tx, receipts),
		receipts: receipts,
	}
}

func (s *shop) addProduct(t *testing.T, name, price string) *dto.ProductResponse {
	t.Helper()
	p, err := s.products.Create(context.Background(), s.storeID, dto.ProductRequest{Name: name, Price: price, ImagePreviewURLs: []string{"https://img/" + name}})
	require.NoError(t, err)
	return p
}

func TestProduct_CreateValidaYCompletaOnboarding(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	_, err := s.products.Create(ctx, s.storeID, dto.ProductRequest{Name: "  ", Price: "15000"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	neg := -1
	_, err = s.products.Create(ctx, s.storeID, dto.ProductRequest{Name: "Vela", Stock: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.stores.SubmitPersonalization(ctx, s.storeID, dto.PersonalizationRequest{PrimaryColor: "#ff0000"})
	require.NoError(t, err)

	p := s.addProduct(t, "Vela", "15000")
	assert.Equal(t, string(entity.ProductActive), p.Status)

	status, err := s.stores.OnboardingStatus(ctx, s.storeID)
	require.NoError(t, err)
	assert.Equal(t, entity.OnboardingCompleted, status)
}

func TestProduct_PrecioEsTextoLibre(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	p, err := s.products.Create(ctx, s.storeID, dto.ProductRequest{Name: "Vela", Price: " quince mil "})
	require.NoError(t, err)
	assert.Equal(t, "quince mil", p.Price)

	upd, err := s.products.Update(ctx, s.storeID, p.ID, dto.ProductRequest{Name: "Vela", Price: "a convenir"})
	require.NoError(t, err)
	assert.Equal(t, "a convenir", upd.Price)
}

func TestProduct_LimiteDelPlan(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	one := 1
	require.NoError(t, memory.NewPlanRepository(s.db).Create(ctx, &entity.SubscriptionPlan{ID: "plan-1", Name: "Gratis", Price: decimal.Zero, Limits: entity.PlanLimits{MaxProducts: &one}}))
	users := memory.NewUserRepository(s.db)
	u, err := users.GetByID(ctx, s.userID)
	require.NoError(t, err)
	u.PlanID = "plan-1"
	require.NoError(t, users.Update(ctx, u))

	p := s.addProduct(t, "Vela", "15000")

	_, err = s.products.Create(ctx, s.storeID, dto.ProductRequest{Name: "Jabón"})
	assert.ErrorIs(t, err, domain.ErrPlanLimitReached)
	_, err = s.products.Duplicate(ctx, s.storeID, p.ID)
	assert.ErrorIs(t, err, domain.ErrPlanLimitReached)
}

func TestProduct_DuplicateYToggle(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	p := s.addProduct(t, "Vela", "15000")

	cp, err := s.products.Duplicate(ctx, s.storeID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vela (Copia)", cp.Name)
	assert.Equal(t, string(entity.ProductInactive), cp.Status)
	assert.NotEqual(t, p.ID, cp.ID)

	toggled, err := s.products.ToggleStatus(ctx, s.storeID, cp.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ProductActive), toggled.Status)

	_, err = s.products.ToggleStatus(ctx, s.storeID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_UpdateYDeleteSincronizanCarrito(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	vela := s.addProduct(t, "Vela", "15000")
	jabon := s.addProduct(t, "Jabón", "8000")

	_, err := s.carts.Replace(ctx, s.storeID, []entity.CartItem{
		{ProductID: vela.ID, Name: vela.Name, Price: vela.Price, Quantity: 2},
		{ProductID: jabon.ID, Name: jabon.Name, Price: jabon.Price, Quantity: 1},
	})
	require.NoError(t, err)

	_, err = s.products.Update(ctx, s.storeID, vela.ID, dto.ProductRequest{Name: "Vela grande", Price: "20000", ImagePreviewURLs: []string{"https://img/grande"}})
	require.NoError(t, err)
	require.NoError(t, s.products.Delete(ctx, s.storeID, jabon.ID))

	cart, err := s.carts.Get(ctx, s.storeID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Vela grande", cart.Items[0].Name)
	assert.Equal(t, "20000", cart.Items[0].Price)
	assert.Equal(t, "https://img/grande", cart.Items[0].ImagePreviewURL)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(40000)))

	assert.ErrorIs(t, s.products.Delete(ctx, s.storeID, jabon.ID), domain.ErrNotFound)
}

func TestProduct_ListFiltraYOrdena(t *testing.T) {
	s := newShop(t)
	s.addProduct(t, "Café orgánico", "30000")
	s.addProduct(t, "Cafetera", "a convenir")
	s.addProduct(t, "Taza", "12000")

	list, err := s.products.List(context.Background(), s.storeID, dto.ProductListQuery{Search: "cafe", Sort: "price-asc"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Café orgánico", list[0].Name)
	assert.Equal(t, "Cafetera", list[1].Name, "precio no numérico al final")
}

func TestStore_SettingsPorDefectoYMerge(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	got, err := s.stores.Settings(ctx, s.storeID)
	require.NoError(t, err)
	assert.Equal(t, "Tienda de Ana", got.BusinessName)
	assert.Equal(t, entity.DefaultPrimaryColor, got.PrimaryColor)

	merged, err := s.stores.MergeSettings(ctx, s.storeID, json.RawMessage(`{"businessName":"Velas Ana","contactInfo":"Cra 1"}`))
	require.NoError(t, err)
	assert.Equal(t, "Velas Ana", merged.BusinessName)
	assert.Equal(t, entity.DefaultPrimaryColor, merged.PrimaryColor, "las claves no enviadas se conservan")

	store, err := memory.NewStoreRepository(s.db).GetByID(ctx, s.storeID)
	require.NoError(t, err)
	assert.Equal(t, "Velas Ana", store.BusinessName)

	_, err = s.stores.MergeSettings(ctx, s.storeID, json.RawMessage(`[1,2]`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_OnboardingPasos(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	_, err := s.stores.SubmitBusinessInfo(ctx, s.storeID, dto.BusinessInfoRequest{BusinessName: "Velas Ana", BusinessCategory: "Hogar"})
	require.NoError(t, err)
	status, err := s.stores.OnboardingStatus(ctx, s.storeID)
	require.NoError(t, err)
	assert.Equal(t, entity.OnboardingBusinessInfoSubmitted, status)

	assert.ErrorIs(t, s.stores.SetOnboardingStatus(ctx, s.storeID, "DONE"), domain.ErrInvalidInput)
	require.NoError(t, s.stores.SetOnboardingStatus(ctx, s.storeID, entity.OnboardingNotStarted))
}

func TestCart_ShareEImport(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	_, err := s.carts.Share(ctx, s.storeID)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = s.carts.Replace(ctx, s.storeID, []entity.CartItem{{ProductID: "p1", Name: "Vela", Price: "15000", Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	items := []entity.CartItem{{ProductID: "p1", Name: "Vela", Price: "15000", Quantity: 3}}
	_, err = s.carts.Replace(ctx, s.storeID, items)
	require.NoError(t, err)

	share, err := s.carts.Share(ctx, s.storeID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(share.URL, "https://tienda.example/?sharedCart="))

	_, err = s.carts.Replace(ctx, s.storeID, []entity.CartItem{})
	require.NoError(t, err)
	imported, err := s.carts.Import(ctx, s.storeID, share.Code)
	require.NoError(t, err)
	assert.Equal(t, items, imported.Items)
	assert.True(t, imported.Total.Equal(decimal.NewFromInt(45000)))

	_, err = s.carts.Import(ctx, s.storeID, "@@@")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrder_CheckoutVaciaCarritoYArmaEnlace(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	_, err := s.stores.MergeSettings(ctx, s.storeID, json.RawMessage(`{"whatsappNumber":"+57 300 123 4567"}`))
	require.NoError(t, err)

	_, err = s.orders.Checkout(ctx, s.storeID, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = s.carts.Replace(ctx, s.storeID, []entity.CartItem{{ProductID: "p1", Name: "Vela", Price: "15000", Quantity: 2}})
	require.NoError(t, err)

	_, err = s.orders.Checkout(ctx, s.storeID, dto.CheckoutRequest{Customer: &dto.CustomerForm{FullName: "Luis"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := s.orders.Checkout(ctx, s.storeID, dto.CheckoutRequest{CustomerNotes: "Sin bolsa"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderPending), out.Order.Status)
	assert.True(t, out.Order.TotalAmount.Equal(decimal.NewFromInt(30000)))
	assert.True(t, strings.HasPrefix(out.WhatsappLink, "https://wa.me/+573001234567?text="))
	assert.Contains(t, out.Message, "Vela")

	cart, err := s.carts.Get(ctx, s.storeID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	list, err := s.orders.List(ctx, s.storeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestOrder_StatusYComprobante(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	_, err := s.orders.Create(ctx, s.storeID, dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	o, err := s.orders.Create(ctx, s.storeID, dto.CreateOrderRequest{Items: []entity.CartItem{{ProductID: "p1", Name: "Vela", Price: "15000", Quantity: 1}}})
	require.NoError(t, err)

	_, err = s.orders.UpdateStatus(ctx, s.storeID, o.ID, "Enviado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	updated, err := s.orders.UpdateStatus(ctx, s.storeID, o.ID, entity.OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, string(entity.OrderCompleted), updated.Status)

	pdf, name, err := s.orders.Receipt(ctx, s.storeID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(pdf))
	assert.Equal(t, "pedido-"+o.ID[:8]+".pdf", name)
	assert.Empty(t, s.receipts.got.ConfirmLink, "sin número no hay QR")
	assert.Equal(t, "Tienda de Ana", s.receipts.got.BusinessName)

	_, _, err = s.orders.Receipt(ctx, s.storeID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrder_ConsultaSinNumeroEsConflicto(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()

	_, err := s.orders.GeneralInquiry(ctx, s.storeID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	p := s.addProduct(t, "Vela", "15000")
	_, err = s.stores.MergeSettings(ctx, s.storeID, json.RawMessage(`{"whatsappNumber":"3001234567"}`))
	require.NoError(t, err)
	out, err := s.orders.ProductInquiry(ctx, s.storeID, p.ID)
	require.NoError(t, err)
	assert.Contains(t, out.Message, "Vela")
	assert.Contains(t, out.WhatsappLink, "wa.me/3001234567")

	_, err = s.orders.ProductInquiry(ctx, s.storeID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

var errStoreWrite = errors.New("escritura de tienda rechazada")

// brokenStores falla toda escritura sobre la tienda dentro de la transacción.
type brokenStores struct{ repository.StoreRepository }

func (brokenStores) Update(context.Context, *entity.Store) error { return errStoreWrite }

func (brokenStores) UpdateOnboardingStatus(context.Context, string, entity.OnboardingStatus) error {
	return errStoreWrite
}

type brokenStoreTx struct{ *memory.TxRunner }

func (r brokenStoreTx) RunStore(ctx context.Context, fn func(repository.StoreRepository, repository.SettingsRepository, repository.ProductRepository) error) error {
	return r.TxRunner.RunStore(ctx, func(stores repository.StoreRepository, settings repository.SettingsRepository, products repository.ProductRepository) error {
		return fn(brokenStores{stores}, settings, products)
	})
}

func TestStore_EscriturasParcialesSeRevierten(t *testing.T) {
	s := newShop(t)
	ctx := context.Background()
	stores := memory.NewStoreRepository(s.db)
	settings := memory.NewSettingsRepository(s.db)
	tx := brokenStoreTx{memory.NewTxRunner(s.db)}

	storeUC := NewStoreUseCase(stores, settings, tx)
	_, err := storeUC.MergeSettings(ctx, s.storeID, json.RawMessage(`{"businessName":"Velas Ana","contactInfo":"Calle 1"}`))
	require.ErrorIs(t, err, errStoreWrite)
	doc, err := settings.Get(ctx, s.storeID)
	require.NoError(t, err)
	assert.Nil(t, doc, "el documento no debe guardarse si el renombre falla")

	_, err = storeUC.SubmitBusinessInfo(ctx, s.storeID, dto.BusinessInfoRequest{BusinessName: "Tienda de Ana", BusinessCategory: "Hogar"})
	require.ErrorIs(t, err, errStoreWrite)
	doc, err = settings.Get(ctx, s.storeID)
	require.NoError(t, err)
	assert.Nil(t, doc, "sin avance de onboarding tampoco queda la categoría")

	require.NoError(t, stores.UpdateOnboardingStatus(ctx, s.storeID, entity.OnboardingPersonalizationSubmitted))
	productUC := NewProductUseCase(memory.NewProductRepository(s.db), stores, memory.NewUserRepository(s.db), memory.NewPlanRepository(s.db), tx)
	_, err = productUC.Create(ctx, s.storeID, dto.ProductRequest{Name: "Vela", Price: "15000"})
	require.ErrorIs(t, err, errStoreWrite)
	list, err := productUC.List(ctx, s.storeID, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list, "el producto no debe quedar si el onboarding no avanza")
}
