// internal/handlers/common.go
package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventra/inventory-backend/internal/i18n"
	"github.com/inventra/inventory-backend/internal/middleware"
	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

// bindAndValidate decodes the JSON body into req and validates it, writing
// the error response itself when either step fails. An empty body decodes
// as an empty object.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)

	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalidBody))
		return false
	}

	if err := utils.ValidateStruct(req); err != nil {
		if validationErrors := utils.GetValidationErrors(lang, err); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return false
		}
		logrus.WithError(err).Error("Request validation failed unexpectedly")
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalidBody))
		return false
	}
	return true
}

// parseID reads the :id path parameter. resourceKey labels the message.
func parseID(c *gin.Context, resourceKey string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalidID, i18n.T(lang, resourceKey)))
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain errors to their status. Anything else is logged
// and reported with the generic message under genericKey.
func respondError(c *gin.Context, err error, genericKey string) {
	lang := utils.GetLangFromContext(c)

	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		message := i18n.T(lang, svcErr.Key)
		switch svcErr.Kind {
		case services.KindNotFound:
			utils.NotFoundResponse(c, message)
		case services.KindUnauthorized:
			utils.UnauthorizedResponse(c, message)
		case services.KindForbidden:
			utils.ForbiddenResponse(c, message)
		default:
			utils.BadRequestResponse(c, message)
		}
		return
	}

	_ = c.Error(err)
	logrus.WithError(err).
		WithField("path", c.FullPath()).
		WithField("request_id", c.GetString(middleware.RequestIDContextKey)).
		Error("Request failed")
	utils.InternalErrorResponse(c, i18n.T(lang, genericKey))
}
