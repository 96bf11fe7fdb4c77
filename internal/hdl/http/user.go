package http

import (
	"net/http"

	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/hdl"
	mid "github.com/JMURv/device-sessions/internal/hdl/http/middleware"
	"github.com/JMURv/device-sessions/internal/hdl/http/utils"
	"github.com/JMURv/device-sessions/internal/hdl/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) RegisterUserRoutes() {
	auth := mid.Auth(h.au)
	sess := mid.Session(h.sessions)

	h.Router.With(auth, sess).Post("/users/{id}/revoke-sessions", h.revokeUserSessions)
	h.Router.With(auth, sess).Post("/users/revoke-sessions/bulk", h.bulkRevokeSessions)
	h.Router.With(auth).Delete("/users/{id}/device-logs", h.deleteUserDeviceLogs)
}

// revokeUserSessions godoc
//
//	@Summary		Revoke every active session of a user
//	@Description	Only internal accounts can be targeted; failures come back as structured results
//	@Tags			User
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	dto.RevocationResult
//	@Failure		400	{object}	utils.ErrorResponse
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/users/{id}/revoke-sessions [post]
func (h *Handler) revokeUserSessions(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	res := h.ctrl.RevokeAllSessionsForUser(r.Context(), uid, actor, sessionSID(r))
	if res.Logout {
		utils.ClearAuthCookies(w)
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// bulkRevokeSessions godoc
//
//	@Summary		Revoke sessions for many users at once
//	@Description	Each user is processed independently; per-user failures are aggregated
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.BulkRevokeRequest	true	"User ids"
//	@Success		200		{object}	dto.BatchResult
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/users/revoke-sessions/bulk [post]
func (h *Handler) bulkRevokeSessions(w http.ResponseWriter, r *http.Request) {
	req := &dto.BulkRevokeRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := validation.BulkRevoke(req); err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	res := h.ctrl.BulkRevokeForUsers(r.Context(), req.UserIDs, actor, sessionSID(r))
	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// deleteUserDeviceLogs godoc
//
//	@Summary		Delete all device logs of a user
//	@Description	Removes every log row and best-effort drops the backing session blobs
//	@Tags			User
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.ErrorResponse
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/users/{id}/device-logs [delete]
func (h *Handler) deleteUserDeviceLogs(w http.ResponseWriter, r *http.Request) {
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
		return
	}

	deleted, err := h.ctrl.DeleteLogsForUser(r.Context(), uid)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, deleted)
}
