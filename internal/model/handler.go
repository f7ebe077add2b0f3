package model

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/modelstore/internal/pkg/message"
	"github.com/ferdiebergado/modelstore/internal/pkg/web"
)

// Service is the interface for model management.
type Service interface {
	Create(ctx context.Context, params CreateParams) (Model, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Model, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type CreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Version string `json:"version" validate:"required"`
	Data    string `json:"data"`
}

type DeleteRequest struct {
	ID string `json:"id" validate:"required"`
}

type ModelData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	Data       string `json:"data"`
	CreateTime int64  `json:"create_time"`
}

type ListResponse struct {
	Models []ModelData `json:"models"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	params := CreateParams{
		Name:    req.Name,
		Version: req.Version,
		Data:    req.Data,
	}
	m, err := h.svc.Create(r.Context(), params)
	if err != nil {
		web.Fail(w, http.StatusInternalServerError, err, message.CreateFailed, nil)
		return
	}

	slog.Info("Model created.", "id", m.ID, "name", m.Name, "version", m.Version)
	msg := message.CreateSuccess
	web.OK[any](w, http.StatusOK, &msg, nil)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[DeleteRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	if err := h.svc.Delete(r.Context(), req.ID); err != nil {
		web.Fail(w, http.StatusInternalServerError, err, message.DeleteFailed, nil)
		return
	}

	msg := message.DeleteSuccess
	web.OK[any](w, http.StatusOK, &msg, nil)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	models, err := h.svc.List(r.Context())
	if err != nil {
		web.Fail(w, http.StatusInternalServerError, err, message.ListFailed, nil)
		return
	}

	payload := newListResponse(models)
	web.OK(w, http.StatusOK, nil, payload)
}

func transformModel(m Model) ModelData {
	return ModelData{
		ID:         m.ID,
		Name:       m.Name,
		Version:    m.Version,
		Data:       m.Data,
		CreateTime: m.CreateTime,
	}
}

func newListResponse(models []Model) *ListResponse {
	data := make([]ModelData, 0, len(models))
	for _, m := range models {
		data = append(data, transformModel(m))
	}

	return &ListResponse{Models: data}
}
