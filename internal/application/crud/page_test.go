package crud_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/obra-admin/internal/application/crud"
	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/entity"
)

func itemWithID(i entity.InventoryItem, id string) entity.InventoryItem { i.ID = id; return i }

func inventoryPage(items ...entity.InventoryItem) (*crud.Page[entity.InventoryItem], *fakeResource[entity.InventoryItem]) {
	fake := newFake("inventory", itemWithID, items...)
	return crud.NewPage[entity.InventoryItem](fake, crud.NewViewStore(), crud.NewValidator(), nil), fake
}

func cemento() entity.InventoryItem {
	return entity.InventoryItem{ID: "c1", Name: "Cemento gris", Quantity: decimal.NewFromInt(40)}
}

func TestPage_LoadReemplazaLaVista(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()

	pv, err := page.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, pv.Total)

	fake.items = append(fake.items, entity.InventoryItem{ID: "v1", Name: "Varilla 1/2"})
	pv, err = page.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, pv.Total, "la última carga gana")
}

func TestPage_SearchNoVuelveAlAPI(t *testing.T) {
	page, fake := inventoryPage(cemento(), entity.InventoryItem{ID: "v1", Name: "Varilla corrugada"})
	ctx := context.Background()

	pv, err := page.Search(ctx, "s1", crud.Filter{Query: "VARILLA"})
	require.NoError(t, err)
	assert.Equal(t, 1, pv.Total)
	assert.Equal(t, 1, fake.count("list"), "carga perezosa al primer uso")

	_, err = page.Search(ctx, "s1", crud.Filter{Query: "cemento"})
	require.NoError(t, err)
	_, err = page.Search(ctx, "s1", crud.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("list"))
}

func TestPage_CreateInvalidoNoEnviaPeticion(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()
	_, err := page.Load(ctx, "s1")
	require.NoError(t, err)

	pv, err := page.Create(ctx, "s1", entity.InventoryItem{Name: ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, 0, fake.count("create"))
	assert.Contains(t, pv.FieldErrors, "name")
	require.NotNil(t, pv.Notification)
	assert.Equal(t, dto.NotifyError, pv.Notification.Level)
	assert.Equal(t, 1, pv.Total, "la vista previa sigue intacta")
}

func TestPage_CreateNegativoInvalido(t *testing.T) {
	page, fake := inventoryPage()
	_, err := page.Create(context.Background(), "s1", entity.InventoryItem{Name: "Arena", Quantity: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.Equal(t, 0, fake.count("create"))
	assert.Contains(t, crud.FieldErrors(err), "quantity")
}

func TestPage_CreateReconcilia(t *testing.T) {
	page, _ := inventoryPage(cemento())
	ctx := context.Background()
	_, _ = page.Load(ctx, "s1")

	pv, err := page.Create(ctx, "s1", entity.InventoryItem{Name: "Arena", Quantity: decimal.NewFromInt(3)})
	require.NoError(t, err)
	require.NotNil(t, pv.Item)
	assert.Equal(t, "new-1", pv.Item.ID)
	assert.Equal(t, 2, pv.Total)
	assert.Equal(t, dto.NotifySuccess, pv.Notification.Level)
}

func TestPage_DeleteFallidoConservaElRegistro(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()
	_, _ = page.Load(ctx, "s1")
	fake.failOn["delete"] = fmt.Errorf("DELETE inventory/c1: %w", domain.ErrNetwork)

	pv, err := page.Delete(ctx, "s1", "c1")
	require.Error(t, err)
	assert.Equal(t, 1, pv.Total)
	require.NotNil(t, pv.Notification)
	assert.Equal(t, dto.NotifyError, pv.Notification.Level)
	_, ok := crud.View[entity.InventoryItem](crud.NewViewStore(), "s1", "inventory").Find("c1")
	assert.False(t, ok, "otro store no comparte vistas")
}

func TestPage_DeleteExitoso(t *testing.T) {
	page, _ := inventoryPage(cemento())
	ctx := context.Background()
	_, _ = page.Load(ctx, "s1")

	pv, err := page.Delete(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, pv.Total)
}

func TestPage_LoadFallidoConservaVistaPrevia(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()
	_, _ = page.Load(ctx, "s1")
	fake.failOn["list"] = domain.ErrForbidden

	pv, err := page.Load(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 1, pv.Total)
	assert.Equal(t, "No tiene permisos para realizar esta acción", pv.Notification.Message)
}

func TestPage_GetNoEncontradoSaleDeLaVista(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()
	_, _ = page.Load(ctx, "s1")
	fake.items = nil

	pv, err := page.Get(ctx, "s1", "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, pv.Total)
}

func TestPage_PatchRechazaIDyVacio(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()

	_, err := page.Patch(ctx, "s1", "c1", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = page.Patch(ctx, "s1", "c1", map[string]any{"id": "otro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, fake.count("patch"))
}

func TestPage_PatchInvalidoNoEnviaPeticion(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()

	_, err := page.Load(ctx, "s1")
	require.NoError(t, err)

	pv, err := page.Patch(ctx, "s1", "c1", map[string]any{"name": ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Contains(t, pv.FieldErrors, "name")
	require.Len(t, pv.Items, 1)
	assert.Equal(t, "Cemento gris", pv.Items[0].Name)

	_, err = page.Patch(ctx, "s1", "c1", map[string]any{"quantity": "-2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = page.Patch(ctx, "s1", "c1", map[string]any{"name": 12})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0, fake.count("patch"))
}

func TestPage_PatchValidoCargaLaVistaYEnvia(t *testing.T) {
	page, fake := inventoryPage(cemento())
	fake.patchFn = func(it entity.InventoryItem, f map[string]any) entity.InventoryItem {
		it.Name = f["name"].(string)
		return it
	}

	pv, err := page.Patch(context.Background(), "s1", "c1", map[string]any{"name": "Cemento blanco"})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.count("list"))
	assert.Equal(t, 1, fake.count("patch"))
	require.NotNil(t, pv.Item)
	assert.Equal(t, "Cemento blanco", pv.Item.Name)
}

func TestPage_OptimisticRevierteSiFalla(t *testing.T) {
	page, fake := inventoryPage(cemento())
	ctx := context.Background()
	fake.failOn["patch"] = domain.ErrUpstream

	apply := func(cur entity.InventoryItem) (entity.InventoryItem, map[string]any, error) {
		cur.Quantity = cur.Quantity.Add(decimal.NewFromInt(5))
		return cur, map[string]any{"quantity": cur.Quantity}, nil
	}
	pv, err := page.Optimistic(ctx, "s1", "c1", apply)
	require.Error(t, err)
	require.Len(t, pv.Items, 1)
	assert.True(t, pv.Items[0].Quantity.Equal(decimal.NewFromInt(40)))
}

func TestPage_OptimisticAplica(t *testing.T) {
	page, fake := inventoryPage(cemento())
	fake.patchFn = func(it entity.InventoryItem, f map[string]any) entity.InventoryItem {
		it.Quantity = f["quantity"].(decimal.Decimal)
		return it
	}
	apply := func(cur entity.InventoryItem) (entity.InventoryItem, map[string]any, error) {
		cur.Quantity = cur.Quantity.Sub(decimal.NewFromInt(15))
		return cur, map[string]any{"quantity": cur.Quantity}, nil
	}
	pv, err := page.Optimistic(context.Background(), "s1", "c1", apply)
	require.NoError(t, err)
	assert.True(t, pv.Item.Quantity.Equal(decimal.NewFromInt(25)))
}

func TestPage_OptimisticItemInexistente(t *testing.T) {
	page, fake := inventoryPage(cemento())
	_, err := page.Optimistic(context.Background(), "s1", "zz", func(cur entity.InventoryItem) (entity.InventoryItem, map[string]any, error) {
		return cur, nil, nil
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, fake.count("patch"))
}
