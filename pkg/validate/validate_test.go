package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"max=5"`
	Status string `json:"status" validate:"omitempty,oneof=a b"`
}

func TestStruct_Valido(t *testing.T) {
	assert.Nil(t, Struct(sample{Email: "a@b.co", Name: "ok"}))
}

func TestStruct_Errores(t *testing.T) {
	errs := Struct(sample{Email: "no-es-email", Name: "demasiado", Status: "c"})
	assert.Equal(t, "email inválido", errs["email"])
	assert.Equal(t, "máximo 5", errs["name"])
	assert.Equal(t, "debe ser uno de: a, b", errs["status"])
}

func TestFormat_Ordenado(t *testing.T) {
	got := Format(map[string]string{"b": "dos", "a": "uno"})
	assert.Equal(t, "a: uno; b: dos", got)
}
