package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/agro-riego/api/middleware"
	"github.com/agro-riego/api/services"
	"github.com/agro-riego/api/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes the error body with the status matching its category
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		middleware.Logger(ctx).Error("request error", zap.Error(err))
	}
	_ = ctx.Error(err)
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// pathID parses the named path parameter as an id, answering 400 when malformed
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseID(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id inválido: " + ctx.Param(name)})
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body, answering 400 on malformed
// input or a failed binding rule.
// An empty body is accepted when allowEmpty is set.
func bindJSON(ctx *gin.Context, dest interface{}, allowEmpty bool) bool {
	err := ctx.ShouldBindJSON(dest)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	if msg, ok := validationMessage(err); ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return false
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de la petición inválido: " + err.Error()})
	return false
}
