package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/ctrl"
	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/hdl"
	mid "github.com/JMURv/device-sessions/internal/hdl/http/middleware"
	"github.com/JMURv/device-sessions/internal/hdl/http/utils"
	"github.com/JMURv/device-sessions/internal/hdl/validation"
	md "github.com/JMURv/device-sessions/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) RegisterDeviceRoutes() {
	auth := mid.Auth(h.au)
	sess := mid.Session(h.sessions)

	h.Router.With(auth, mid.Device, sess).Post("/devices/activity", h.recordActivity)
	h.Router.With(auth, sess).Get("/devices", h.listDevices)
	h.Router.With(auth).Get("/devices/{id}/ips", h.linkedIPs)
	h.Router.With(auth, sess).Post("/devices/revoke", h.revokeDevices)
	h.Router.With(auth).Delete("/devices/{id}", h.deleteDeviceLog)
}

func sessionSID(r *http.Request) string {
	if s, ok := utils.SessionFromCtx(r.Context()); ok {
		return s.SID
	}
	if cookie, err := r.Cookie(config.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// recordActivity godoc
//
//	@Summary		Record device activity for the caller's session
//	@Description	Refresh the session trace and persist a device log entry
//	@Tags			Devices
//	@Produce		json
//	@Success		200	"Activity recorded"
//	@Failure		400	{object}	utils.ErrorResponse	"no session or device info"
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/devices/activity [post]
func (h *Handler) recordActivity(w http.ResponseWriter, r *http.Request) {
	s, ok := utils.SessionFromCtx(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoSession)
		return
	}

	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	if err := h.ctrl.RecordActivity(r.Context(), s, &d); err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// listDevices godoc
//
//	@Summary		List current devices
//	@Description	Paginated deduplicated device view; is_current reflects the caller's session
//	@Tags			Devices
//	@Produce		json
//	@Param			page	query		int	false	"Page number"	default(1)
//	@Param			size	query		int	false	"Page size"		default(40)
//	@Success		200		{object}	dto.PaginatedDeviceResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/devices [get]
func (h *Handler) listDevices(w http.ResponseWriter, r *http.Request) {
	page, size := utils.ParsePaginationValues(r)
	filters := utils.ParseFiltersByURL(r)

	res, err := h.ctrl.ListCurrentDevices(r.Context(), sessionSID(r), page, size, filters)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// linkedIPs godoc
//
//	@Summary		Linked IP addresses of a device
//	@Description	All distinct IPs ever seen for the device's session fingerprint, newline-joined
//	@Tags			Devices
//	@Produce		json
//	@Param			id	path		int	true	"Device log id"
//	@Success		200	{object}	dto.LinkedIPsResponse
//	@Failure		400	{object}	utils.ErrorResponse
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		404	{object}	utils.ErrorResponse	"device not found"
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/devices/{id}/ips [get]
func (h *Handler) linkedIPs(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	res, err := h.ctrl.LinkedIPAddresses(r.Context(), id)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// revokeDevices godoc
//
//	@Summary		Revoke selected devices
//	@Description	Flags all log rows of the selected sessions revoked and deletes their session blobs
//	@Tags			Devices
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RevokeDevicesRequest	true	"Device ids to revoke"
//	@Success		200		{object}	dto.RevocationResult
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/devices/revoke [post]
func (h *Handler) revokeDevices(w http.ResponseWriter, r *http.Request) {
	req := &dto.RevokeDevicesRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	if err := validation.RevokeDevices(req); err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, err)
		return
	}

	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	res := h.ctrl.Revoke(r.Context(), req.DeviceIDs, actor, sessionSID(r))
	if res.Logout {
		utils.ClearAuthCookies(w)
	}

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// deleteDeviceLog godoc
//
//	@Summary		Delete a device log entry
//	@Tags			Devices
//	@Produce		json
//	@Param			id	path	int	true	"Device log id"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	utils.ErrorResponse
//	@Failure		401	{object}	utils.ErrorResponse
//	@Failure		404	{object}	utils.ErrorResponse
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/devices/{id} [delete]
func (h *Handler) deleteDeviceLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err := h.ctrl.DeleteDeviceLog(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (*md.User, bool) {
	uid, ok := utils.UIDFromCtx(r.Context())
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error())
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return nil, false
	}

	actor, err := h.ctrl.GetUserByID(r.Context(), uid)
	if err != nil {
		utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrUnauthorized)
		return nil, false
	}

	return actor, true
}
