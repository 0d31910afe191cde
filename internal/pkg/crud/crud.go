// Package crud implements the generic resource endpoint factory. Each plain
// collection binds its model and DTO types once and gets the same four
// handlers: list (newest first), create, partial update, delete.
package crud

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/minbarhq/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Mapping glues a resource's DTO types to its model. Build turns a create
// payload into a fresh model; Apply copies only the fields present in an
// update payload onto the stored model.
type Mapping[M any, C any, U any] struct {
	Build func(dto *C) M
	Apply func(dto *U, m *M)
}

// Service runs the storage side of the four operations for one collection.
type Service[M any, C any, U any] struct {
	db      *gorm.DB
	mapping Mapping[M, C, U]
}

func NewService[M any, C any, U any](db *gorm.DB, mapping Mapping[M, C, U]) *Service[M, C, U] {
	return &Service[M, C, U]{db: db, mapping: mapping}
}

// List returns every row, most recently created first. An empty table yields
// an empty slice, not nil.
func (s *Service[M, C, U]) List() ([]M, error) {
	var items []M
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	if items == nil {
		items = []M{}
	}
	return items, nil
}

// GetByID returns (nil, nil) when no row matches; a miss is not an error.
func (s *Service[M, C, U]) GetByID(id string) (*M, error) {
	var m M
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service[M, C, U]) Create(dto *C) (*M, error) {
	m := s.mapping.Build(dto)
	return &m, s.db.Create(&m).Error
}

// Update applies the present fields of dto to the row and returns the row
// after the update, or (nil, nil) when the id matches nothing.
func (s *Service[M, C, U]) Update(id string, dto *U) (*M, error) {
	m, err := s.GetByID(id)
	if err != nil || m == nil {
		return m, err
	}
	s.mapping.Apply(dto, m)
	return m, s.db.Save(m).Error
}

// Delete removes the row if present. Deleting a missing id is a no-op.
func (s *Service[M, C, U]) Delete(id string) error {
	return s.db.Delete(new(M), "id = ?", id).Error
}

// Handler exposes a Service over HTTP.
type Handler[M any, C any, U any] struct {
	svc *Service[M, C, U]
}

func New[M any, C any, U any](db *gorm.DB, mapping Mapping[M, C, U]) *Handler[M, C, U] {
	return &Handler[M, C, U]{svc: NewService(db, mapping)}
}

func (h *Handler[M, C, U]) RegisterRoutes(rg *gin.RouterGroup, base string) {
	g := rg.Group(base)
	g.GET("", h.list)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *Handler[M, C, U]) list(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

func (h *Handler[M, C, U]) create(c *gin.Context) {
	var dto C
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler[M, C, U]) update(c *gin.Context) {
	var dto U
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		// A miss is part of the contract, not a 404.
		response.Null(c)
		return
	}
	response.OK(c, m)
}

func (h *Handler[M, C, U]) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c)
}
