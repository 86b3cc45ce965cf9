package handlers

import (
	"errors"
	"net/http"

	"weddingconsole/database/repository"
	"weddingconsole/services"
	"weddingconsole/services/auth"
	"weddingconsole/services/hall"
	"weddingconsole/services/provider"
	"weddingconsole/services/workflow"
	"weddingconsole/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var workflowStatus = map[workflow.ErrorCode]int{
	workflow.CodeMissingDate:       http.StatusBadRequest,
	workflow.CodeUnsupportedAction: http.StatusBadRequest,
	workflow.CodeInvalidNumber:     http.StatusBadRequest,
	workflow.CodeDateConflict:      http.StatusConflict,
	workflow.CodeInvalidTransition: http.StatusConflict,
	workflow.CodeAlreadyDecided:    http.StatusConflict,
}

// respondError translates a service error into the JSON error envelope.
func respondError(c *gin.Context, err error) {
	var werr *workflow.Error
	var cerr *workflow.CollaboratorError

	switch {
	case errors.As(err, &werr):
		status, ok := workflowStatus[werr.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		utils.JSONErrorCode(c, status, string(werr.Code), werr.Message, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		utils.JSONErrorCode(c, http.StatusNotFound, "NotFound", "Record not found", err.Error())
	case errors.Is(err, services.ErrForbidden):
		utils.JSONErrorCode(c, http.StatusForbidden, "Forbidden", "You cannot change this record", "")
	case errors.Is(err, hall.ErrInvalidImage), errors.Is(err, provider.ErrNameRequired):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, auth.ErrEmailTaken), errors.Is(err, repository.ErrDuplicate):
		utils.JSONErrorCode(c, http.StatusConflict, "EmailTaken", "Email is already registered", "")
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidSession):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, auth.ErrAccountRejected):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.Is(err, auth.ErrUnsupportedRole):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.As(err, &cerr):
		getLogger(c).Error("Collaborator failure", zap.String("op", cerr.Op), zap.Error(cerr.Err))
		utils.JSONErrorCode(c, http.StatusBadGateway, "CollaboratorError", "A backing service failed, please retry", cerr.Op)
	default:
		getLogger(c).Error("Unhandled error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// respondBindError reports a request body that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	utils.JSONErrorCode(c, http.StatusBadRequest, "InvalidRequest", "Invalid request payload", err.Error())
}
