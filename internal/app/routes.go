package app

import (
	"github.com/ferdiebergado/modelstore/internal/middleware"
	"github.com/ferdiebergado/modelstore/internal/model"
	"github.com/ferdiebergado/modelstore/internal/platform/router"
	"github.com/ferdiebergado/modelstore/internal/platform/validation"
)

func mountModelRoutes(r router.Router, handler *model.Handler, validator validation.Validator, maxBodyBytes int64) {
	r.Get("/model", handler.List)
	r.Post("/model", handler.Create,
		middleware.CheckContentType,
		middleware.DecodePayload[model.CreateRequest](maxBodyBytes),
		middleware.ValidateInput[model.CreateRequest](validator))
	r.Delete("/model", handler.Delete,
		middleware.CheckContentType,
		middleware.DecodePayload[model.DeleteRequest](maxBodyBytes),
		middleware.ValidateInput[model.DeleteRequest](validator))
}
