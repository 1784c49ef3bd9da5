package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProductStatus_Toggled(t *testing.T) {
	assert.Equal(t, ProductInactive, ProductActive.Toggled())
	assert.Equal(t, ProductActive, ProductInactive.Toggled())
	assert.Equal(t, ProductActive, ProductOutOfStock.Toggled())
}

func TestProduct_Duplicate(t *testing.T) {
	stock := 3
	p := &Product{ID: "1", Name: "Café", Status: ProductActive, ImageURLs: []string{"a"}, Stock: &stock}
	now := time.Now()
	cp := p.Duplicate("2", now)

	assert.Equal(t, "2", cp.ID)
	assert.Equal(t, "Café (Copia)", cp.Name)
	assert.Equal(t, ProductInactive, cp.Status)
	assert.Equal(t, now, cp.CreatedAt)

	cp.ImageURLs[0] = "b"
	*cp.Stock = 9
	assert.Equal(t, "a", p.ImageURLs[0], "la copia no comparte slices")
	assert.Equal(t, 3, *p.Stock)
}

func TestCart_SyncYRemove(t *testing.T) {
	items := []CartItem{
		{ProductID: "1", Name: "viejo", Price: "1", Quantity: 2},
		{ProductID: "2", Name: "otro", Price: "5", Quantity: 1},
	}
	p := &Product{ID: "1", Name: "nuevo", Price: "2", ImageURLs: []string{"img"}}

	assert.True(t, SyncCartWithProduct(items, p))
	assert.Equal(t, CartItem{ProductID: "1", Name: "nuevo", Price: "2", Quantity: 2, ImagePreviewURL: "img"}, items[0])
	assert.False(t, SyncCartWithProduct(items, p))

	assert.Equal(t, "9", CartTotal(items).String())

	out, changed := RemoveFromCart(items, "1")
	assert.True(t, changed)
	assert.Len(t, out, 1)
	_, changed = RemoveFromCart(out, "zzz")
	assert.False(t, changed)
}

func TestCartItem_SubtotalNoNumerico(t *testing.T) {
	assert.True(t, CartItem{Price: "a convenir", Quantity: 3}.Subtotal().IsZero())
}

func TestAIProviderConfig_Kind(t *testing.T) {
	assert.Equal(t, AIKindGemini, (&AIProviderConfig{ProviderName: "Gemini Pro"}).Kind())
	assert.Equal(t, AIKindAnthropic, (&AIProviderConfig{ProviderName: "Claude Haiku"}).Kind())
	assert.Equal(t, AIKindUnknown, (&AIProviderConfig{ProviderName: "OpenAI GPT-4"}).Kind())
	assert.Equal(t, "*****6789", (&AIProviderConfig{APIKey: "123456789"}).MaskedAPIKey())
}

func TestDefaultStoreName(t *testing.T) {
	assert.Equal(t, "Ana's Store", DefaultStoreName("Ana"))
	assert.Equal(t, "My Store", DefaultStoreName(""))
}
