package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/device-sessions/internal/auth"
	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/hdl"
	mid "github.com/JMURv/device-sessions/internal/hdl/http/middleware"
	"github.com/JMURv/device-sessions/internal/hdl/http/utils"
)

func (h *Handler) RegisterAuthRoutes() {
	h.Router.With(mid.Device).Post("/token", h.authenticate)
	h.Router.Post("/refresh", h.refresh)
}

// authenticate godoc
//
//	@Summary		Authenticate using email & password
//	@Description	Verify credentials, issue a token pair and open a tracked session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			User-Agent	header		string						false	"Client User-Agent"
//	@Param			body		body		dto.EmailAndPasswordRequest	true	"Login credentials"
//	@Success		200			{object}	dto.TokenPairResponse
//	@Failure		400			{object}	utils.ErrorResponse
//	@Failure		401			{object}	utils.ErrorResponse
//	@Failure		500			{object}	utils.ErrorResponse
//	@Router			/token [post]
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	req := &dto.EmailAndPasswordRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, s, err := h.ctrl.Authenticate(r.Context(), req, &d)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SetAuthCookies(w, res.AccessToken, res.RefreshToken)
	utils.SetSessionCookie(w, s.SID)
	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}

// refresh godoc
//
//	@Summary		Refresh the access token
//	@Description	Validate a refresh token (body or cookie) and reissue the access token
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	false	"Refresh token"
//	@Success		200		{object}	dto.AccessTokenResponse
//	@Failure		400		{object}	utils.ErrorResponse
//	@Failure		401		{object}	utils.ErrorResponse
//	@Failure		500		{object}	utils.ErrorResponse
//	@Router			/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if err := utils.DecodeOptional(r, req); err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	if req.Token == "" {
		cookie, err := r.Cookie(config.RefreshCookieName)
		if err != nil {
			utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
			return
		}
		req.Token = cookie.Value
	}

	res, err := h.ctrl.Refresh(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    res.AccessToken,
			MaxAge:   int(config.AccessTokenDuration.Seconds()),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)

	utils.SuccessPaginatedResponse(w, http.StatusOK, res)
}
