package utils

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/JMURv/device-sessions/internal/config"
	"github.com/JMURv/device-sessions/internal/dto"
	"github.com/JMURv/device-sessions/internal/hdl"
	"github.com/JMURv/device-sessions/internal/session"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessPaginatedResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorResponse{
			Error: err.Error(),
		},
	)
}

// ParseAndValidate decodes the JSON body into dst and runs struct
// validation. It writes the 400 response itself and reports success.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

// DecodeOptional decodes a JSON body into dst. An empty body is not an
// error; dst keeps its zero values.
func DecodeOptional(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	ua, uaOK := ctx.Value(config.UaKey).(string)
	ip, ipOK := ctx.Value(config.IpKey).(string)
	if !uaOK && !ipOK {
		return dto.DeviceRequest{}, false
	}

	return dto.DeviceRequest{UA: ua, IP: ip}, true
}

func UIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	uid, ok := ctx.Value(config.UidKey).(uuid.UUID)
	return uid, ok
}

func SessionFromCtx(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(config.SessionKey).(*session.Session)
	return s, ok
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, size := config.DefaultPage, config.DefaultSize

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}

	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 {
		size = v
	}

	return page, size
}

func ParseFiltersByURL(r *http.Request) map[string]any {
	filters := make(map[string]any)
	for k, v := range r.URL.Query() {
		if k == "page" || k == "size" {
			continue
		}
		if len(v) > 0 {
			filters[k] = v[0]
		}
	}

	return filters
}

func SetAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.AccessCookieName,
			Value:    access,
			MaxAge:   int(config.AccessTokenDuration.Seconds()),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)

	http.SetCookie(
		w, &http.Cookie{
			Name:     config.RefreshCookieName,
			Value:    refresh,
			MaxAge:   int(config.RefreshTokenDuration.Seconds()),
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)
}

func SetSessionCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(
		w, &http.Cookie{
			Name:     config.SessionCookieName,
			Value:    sid,
			HttpOnly: true,
			Secure:   true,
			Path:     "/",
			SameSite: http.SameSiteStrictMode,
		},
	)
}

func ClearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{
		config.AccessCookieName,
		config.RefreshCookieName,
		config.SessionCookieName,
	} {
		http.SetCookie(
			w, &http.Cookie{
				Name:     name,
				Value:    "",
				MaxAge:   -1,
				HttpOnly: true,
				Secure:   true,
				Path:     "/",
				SameSite: http.SameSiteStrictMode,
			},
		)
	}
}
