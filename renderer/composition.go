// renderer/composition.go
// Copyright(c) 2025-2026 mui contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// contributor is the common surface of ModelTransform and ColorFilter: a
// stable identity used for set membership.
type contributor interface {
	ContribID() uint64
}

// orderedSet keeps contributors in insertion order and deduplicates them by
// identity. Adding a member twice and removing an absent member are both
// no-ops.
type orderedSet[T contributor] struct {
	items []T
	ids   map[uint64]bool
}

func (s *orderedSet[T]) add(item T) {
	id := item.ContribID()
	if s.ids[id] {
		return
	}
	if s.ids == nil {
		s.ids = make(map[uint64]bool)
	}
	s.ids[id] = true
	s.items = append(s.items, item)
}

func (s *orderedSet[T]) remove(item T) {
	id := item.ContribID()
	if !s.ids[id] {
		return
	}
	delete(s.ids, id)
	s.items = slices.DeleteFunc(s.items, func(it T) bool { return it.ContribID() == id })
}

func (s *orderedSet[T]) len() int { return len(s.items) }

// Composition pairs one drawable primitive with the ordered sets of model
// transforms and color filters that shape it at draw time. Filters are only
// consumed by textured programs; attaching them to a line geometry is
// harmless but has no effect.
type Composition struct {
	prim    Primitive
	models  orderedSet[ModelTransform]
	filters orderedSet[ColorFilter]
}

// NewComposition returns a Composition drawing the given primitive with no
// transforms or filters attached.
func NewComposition(prim Primitive) *Composition {
	return &Composition{prim: prim}
}

// Primitive returns the drawable this composition was built around.
func (c *Composition) Primitive() Primitive { return c.prim }

// AddModelTransform appends the transform to the model set; no-op if it is
// already a member.
func (c *Composition) AddModelTransform(t ModelTransform) { c.models.add(t) }

// RemoveModelTransform removes the transform from the model set; no-op if it
// is not a member.
func (c *Composition) RemoveModelTransform(t ModelTransform) { c.models.remove(t) }

// AddFilterTransform appends the filter to the filter set; no-op if it is
// already a member.
func (c *Composition) AddFilterTransform(f ColorFilter) { c.filters.add(f) }

// RemoveFilterTransform removes the filter from the filter set; no-op if it
// is not a member.
func (c *Composition) RemoveFilterTransform(f ColorFilter) { c.filters.remove(f) }

// EvaluateModelMatrix folds the model transforms in insertion order: with
// contributors A, B, C the result is C * B * A, each later matrix
// left-multiplied onto the running product. The fold order is a contract;
// compositions built against it depend on it for reproducible results. An
// empty set yields the identity.
func (c *Composition) EvaluateModelMatrix(ctx DrawingContext) mgl32.Mat4 {
	if c.models.len() == 0 {
		return mgl32.Ident4()
	}
	acc := c.models.items[0].ModelMatrix(ctx)
	for _, t := range c.models.items[1:] {
		acc = t.ModelMatrix(ctx).Mul4(acc)
	}
	return acc
}

// EvaluateFilterMatrix folds the color filters the same way
// EvaluateModelMatrix folds transforms; an empty filter set yields the
// identity.
func (c *Composition) EvaluateFilterMatrix(ctx DrawingContext) mgl32.Mat4 {
	if c.filters.len() == 0 {
		return mgl32.Ident4()
	}
	acc := c.filters.items[0].FilterMatrix(ctx)
	for _, f := range c.filters.items[1:] {
		acc = f.FilterMatrix(ctx).Mul4(acc)
	}
	return acc
}

// Release deletes the GPU objects owned by the composition's primitive. The
// composition must not be drawn afterwards.
func (c *Composition) Release() {
	c.prim.Release()
}
