package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmcardenas/taller-inventario/internal/application/dto"
	"github.com/dmcardenas/taller-inventario/internal/application/usecase"
	"github.com/dmcardenas/taller-inventario/internal/domain"
)

func TestWarehouseCreate_OK(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	out, err := uc.Create(dto.CreateWarehouseRequest{
		Name:     "Bodega principal",
		Location: "Cali, Valle del Cauca",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Bodega principal", out.Name)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestWarehouseCreate_NombreVacio_Invalido(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	_, err := uc.Create(dto.CreateWarehouseRequest{Location: "Cali"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWarehouseUpdate_Parcial(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega", Location: "Cali"})
	require.NoError(t, err)

	loc := "Palmira"
	out, err := uc.Update(created.ID, dto.UpdateWarehouseRequest{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Palmira", out.Location)
	assert.Equal(t, "Bodega", out.Name, "el nombre no enviado no debe cambiar")
}

func TestWarehouseUpdate_Inexistente_NilNil(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})

	name := "nueva"
	out, err := uc.Update("11111111-1111-4111-8111-111111111111", dto.UpdateWarehouseRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWarehouseList_Paginacion(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})
	for _, name := range []string{"Norte", "Sur", "Centro"} {
		_, err := uc.Create(dto.CreateWarehouseRequest{Name: name, Location: "Cali"})
		require.NoError(t, err)
	}

	out, err := uc.List(dto.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, out.Data, 1, "la última página lleva el resto")
	assert.Equal(t, 3, out.Meta.Total)
	assert.Equal(t, 2, out.Meta.TotalPages)
	assert.True(t, out.Meta.HasPrev)
	assert.False(t, out.Meta.HasNext)
}

// Page/PageSize en cero toman los defaults 1/10.
func TestWarehouseList_DefaultsDePagina(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})
	_, err := uc.Create(dto.CreateWarehouseRequest{Name: "Única", Location: "Cali"})
	require.NoError(t, err)

	out, err := uc.List(dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Meta.Page)
	assert.Equal(t, 10, out.Meta.PageSize)
	assert.Len(t, out.Data, 1)
}

func TestWarehouseDelete(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(&memWarehouseRepo{})
	created, err := uc.Create(dto.CreateWarehouseRequest{Name: "Temporal", Location: "Cali"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}
