package crud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/obra-admin/internal/application/dto"
	"github.com/jhoicas/obra-admin/internal/domain"
	"github.com/jhoicas/obra-admin/internal/domain/repository"
	"github.com/jhoicas/obra-admin/pkg/logger"
)

// Page opera un recurso del API para la vista de cada sesión.
//
// Todas las operaciones devuelven la vista resultante. Si fallan, la vista es la
// anterior (intacta) con una notificación de error, y además se devuelve el error
// para que el transporte elija el status.
type Page[T Record] struct {
	res       repository.Resource[T]
	store     *ViewStore
	validator *Validator
	log       *logger.Logger
}

// NewPage construye la página del recurso.
func NewPage[T Record](res repository.Resource[T], store *ViewStore, validator *Validator, log *logger.Logger) *Page[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Page[T]{res: res, store: store, validator: validator, log: log.Component("page." + res.Name())}
}

// Name nombre del recurso en el API.
func (p *Page[T]) Name() string { return p.res.Name() }

func (p *Page[T]) view(sessionID string) *Collection[T] {
	return View[T](p.store, sessionID, p.res.Name())
}

// Load trae la colección completa y reemplaza la vista. Se usa al montar la página.
func (p *Page[T]) Load(ctx context.Context, sessionID string) (dto.PageView[T], error) {
	v := p.view(sessionID)
	items, err := p.res.List(ctx)
	if err != nil {
		return p.fail(v, "list", err)
	}
	v.Replace(items)
	return render(v.Snapshot(), nil, nil), nil
}

// Search filtra la vista local. Solo consulta el API si la vista nunca se cargó.
func (p *Page[T]) Search(ctx context.Context, sessionID string, f Filter) (dto.PageView[T], error) {
	v := p.view(sessionID)
	if !v.Loaded() {
		if pv, err := p.Load(ctx, sessionID); err != nil {
			return pv, err
		}
	}
	return render(v.Filter(f), nil, nil), nil
}

// Get trae un registro y lo reconcilia con la vista. Si el API ya no lo tiene, sale de la vista.
func (p *Page[T]) Get(ctx context.Context, sessionID, id string) (dto.PageView[T], error) {
	v := p.view(sessionID)
	item, err := p.res.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			v.Remove(id)
		}
		return p.fail(v, "get", err)
	}
	v.Upsert(item)
	return render(v.Snapshot(), &item, nil), nil
}

// Create valida y crea. Un formulario inválido no genera petición.
func (p *Page[T]) Create(ctx context.Context, sessionID string, item T) (dto.PageView[T], error) {
	v := p.view(sessionID)
	if err := p.validator.Struct(item); err != nil {
		return p.invalid(v, err)
	}
	created, err := p.res.Create(ctx, item)
	if err != nil {
		return p.fail(v, "create", err)
	}
	v.Upsert(created)
	return render(v.Snapshot(), &created, dto.Success("Registro creado")), nil
}

// Update valida y reemplaza el registro id.
func (p *Page[T]) Update(ctx context.Context, sessionID, id string, item T) (dto.PageView[T], error) {
	v := p.view(sessionID)
	if id == "" {
		return p.invalid(v, fmt.Errorf("%w: id vacío", domain.ErrInvalidInput))
	}
	if err := p.validator.Struct(item); err != nil {
		return p.invalid(v, err)
	}
	updated, err := p.res.Update(ctx, id, item)
	if err != nil {
		return p.fail(v, "update", err)
	}
	v.Upsert(updated)
	return render(v.Snapshot(), &updated, dto.Success("Registro actualizado")), nil
}

// Patch actualiza solo los campos dados. El id no se puede cambiar. El registro
// resultante se valida completo antes de enviar la petición.
func (p *Page[T]) Patch(ctx context.Context, sessionID, id string, fields map[string]any) (dto.PageView[T], error) {
	v := p.view(sessionID)
	if id == "" || len(fields) == 0 {
		return p.invalid(v, fmt.Errorf("%w: sin campos para actualizar", domain.ErrInvalidInput))
	}
	if _, ok := fields["id"]; ok {
		return p.invalid(v, fmt.Errorf("%w: el id no es editable", domain.ErrInvalidInput))
	}
	if !v.Loaded() {
		if pv, err := p.Load(ctx, sessionID); err != nil {
			return pv, err
		}
	}
	cur, ok := v.Find(id)
	if !ok {
		got, err := p.res.Get(ctx, id)
		if err != nil {
			return p.fail(v, "get", err)
		}
		cur = got
	}
	merged, err := mergeFields(cur, fields)
	if err != nil {
		return p.invalid(v, err)
	}
	if err := p.validator.Struct(merged); err != nil {
		return p.invalid(v, err)
	}
	updated, err := p.res.Patch(ctx, id, fields)
	if err != nil {
		return p.fail(v, "patch", err)
	}
	v.Upsert(updated)
	return render(v.Snapshot(), &updated, dto.Success("Registro actualizado")), nil
}

// Delete elimina en el API y luego en la vista. Si falla, el registro sigue visible.
func (p *Page[T]) Delete(ctx context.Context, sessionID, id string) (dto.PageView[T], error) {
	v := p.view(sessionID)
	if err := p.res.Delete(ctx, id); err != nil {
		return p.fail(v, "delete", err)
	}
	v.Remove(id)
	return render(v.Snapshot(), nil, dto.Success("Registro eliminado")), nil
}

// Optimistic aplica apply a la copia local antes de enviar el PATCH que devuelve.
// Si el PATCH falla, el registro vuelve a su valor anterior.
func (p *Page[T]) Optimistic(
	ctx context.Context,
	sessionID, id string,
	apply func(cur T) (next T, fields map[string]any, err error),
) (dto.PageView[T], error) {
	v := p.view(sessionID)
	if !v.Loaded() {
		if pv, err := p.Load(ctx, sessionID); err != nil {
			return pv, err
		}
	}
	cur, ok := v.Find(id)
	if !ok {
		return p.fail(v, "patch", fmt.Errorf("%s/%s: %w", p.res.Name(), id, domain.ErrNotFound))
	}
	next, fields, err := apply(cur)
	if err != nil {
		return p.invalid(v, err)
	}
	v.Upsert(next)
	updated, err := p.res.Patch(ctx, id, fields)
	if err != nil {
		v.Upsert(cur)
		return p.fail(v, "patch", err)
	}
	v.Upsert(updated)
	return render(v.Snapshot(), &updated, dto.Success("Registro actualizado")), nil
}

// Current copia local sin ir al API.
func (p *Page[T]) Current(sessionID string) []T {
	return p.view(sessionID).Snapshot()
}

func (p *Page[T]) fail(v *Collection[T], op string, err error) (dto.PageView[T], error) {
	p.log.Warn().Err(err).Str("op", op).Msg("operación sobre el API falló")
	return render(v.Snapshot(), nil, dto.NotificationFromError(err)), err
}

func (p *Page[T]) invalid(v *Collection[T], err error) (dto.PageView[T], error) {
	pv := render(v.Snapshot(), nil, dto.NotificationFromError(err))
	pv.FieldErrors = FieldErrors(err)
	return pv, err
}

// mergeFields aplica fields sobre una copia de cur usando los nombres json.
func mergeFields[T any](cur T, fields map[string]any) (T, error) {
	var out T
	raw, err := json.Marshal(cur)
	if err != nil {
		return out, fmt.Errorf("crud: serializar registro: %w", err)
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return out, fmt.Errorf("crud: serializar registro: %w", err)
	}
	for k, val := range fields {
		doc[k] = val
	}
	if raw, err = json.Marshal(doc); err != nil {
		return out, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("%w: campos con tipo inválido", domain.ErrInvalidInput)
	}
	return out, nil
}

func render[T any](items []T, item *T, n *dto.Notification) dto.PageView[T] {
	return dto.PageView[T]{Items: items, Total: len(items), Item: item, Notification: n}
}
