package http

import (
	"net/http"
	"time"

	mid "github.com/JMURv/device-sessions/internal/hdl/http/middleware"
	"github.com/JMURv/device-sessions/internal/hdl/http/utils"
	metrics "github.com/JMURv/device-sessions/internal/observability/metrics/prometheus"
	ot "github.com/opentracing/opentracing-go"
)

func (h *Handler) RegisterRoutes() {
	h.RegisterAuthRoutes()
	h.RegisterDeviceRoutes()
	h.RegisterUserRoutes()
	h.Router.With(mid.Auth(h.au)).Get("/protected", h.protected)
}

// protected godoc
//
//	@Summary		Authenticated probe
//	@Description	Returns the caller's uid when the access token is valid
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.ErrorResponse	"unauthorized"
//	@Router			/protected [get]
func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	const op = "app.protected.hdl"
	s, c := time.Now(), http.StatusOK
	span, _ := ot.StartSpanFromContext(r.Context(), op)
	defer func() {
		span.Finish()
		metrics.ObserveRequest(time.Since(s), c, op)
	}()

	uid, _ := utils.UIDFromCtx(r.Context())
	utils.SuccessResponse(w, c, uid)
}
