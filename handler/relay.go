package handler

import (
	"net/http"

	"binance-relay/errors"
	"binance-relay/pkg/logger"
	"binance-relay/pkg/signature"
	"binance-relay/upstream"

	"github.com/gin-gonic/gin"
)

// Credential headers for account-scoped endpoints. The secret is only used
// locally to sign the outbound query; it is never forwarded upstream.
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderAPISecret = "X-API-Secret"
)

// ReshapeFunc transforms a successful upstream body into the relay's
// response payload. status is the upstream HTTP status.
type ReshapeFunc func(status int, body []byte) (interface{}, error)

// Endpoint declares one relayed route: which upstream path it maps to,
// whether it is signed, which inputs are required, and how the success body
// is reshaped. A nil Reshape passes the upstream body through unchanged.
type Endpoint struct {
	UpstreamPath string
	Signed       bool
	Required     []string
	Optional     []string
	Reshape      ReshapeFunc
}

// RelayHandler serves every relayed route through one flow:
// validate input -> (sign) -> dispatch one upstream GET -> map response.
type RelayHandler struct {
	upstream *upstream.Client
}

// NewRelayHandler creates the relay handler around the upstream client.
func NewRelayHandler(up *upstream.Client) *RelayHandler {
	return &RelayHandler{upstream: up}
}

// Relay builds the gin handler for one endpoint descriptor.
func (h *RelayHandler) Relay(ep Endpoint) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := signature.New()

		// Required inputs first, in the declared (and therefore signed) order.
		var missing []string
		for _, name := range ep.Required {
			v := requestParam(c, name)
			if v == "" {
				missing = append(missing, name)
				continue
			}
			params.Set(name, v)
		}
		if len(missing) > 0 {
			errors.RespondWithError(c, http.StatusBadRequest,
				errors.NewMissingParameterError(missing...))
			return
		}

		for _, name := range ep.Optional {
			if v := requestParam(c, name); v != "" {
				params.Set(name, v)
			}
		}

		var (
			body   []byte
			status int
			err    error
		)
		if ep.Signed {
			apiKey := c.GetHeader(HeaderAPIKey)
			secret := c.GetHeader(HeaderAPISecret)
			if apiKey == "" || secret == "" {
				errors.RespondWithError(c, http.StatusBadRequest,
					errors.NewMissingCredentialsError())
				return
			}
			body, status, err = h.upstream.GetSigned(c.Request.Context(), ep.UpstreamPath, apiKey, secret, params)
		} else {
			body, status, err = h.upstream.Get(c.Request.Context(), ep.UpstreamPath, params)
		}
		if err != nil {
			h.respondError(c, err)
			return
		}

		if ep.Reshape == nil {
			c.Data(http.StatusOK, "application/json", body)
			return
		}

		payload, err := ep.Reshape(status, body)
		if err != nil {
			logger.Errorf("Failed to reshape upstream body for %s: %v", ep.UpstreamPath, err)
			errors.RespondWithError(c, http.StatusInternalServerError,
				errors.NewAPIError(errors.ErrTransportFailure, "invalid upstream payload", nil))
			return
		}
		c.JSON(http.StatusOK, payload)
	}
}

// requestParam resolves an input from the route path first, then the query
// string, so /price/:symbol and /price?symbol= behave identically.
func requestParam(c *gin.Context, name string) string {
	if v := c.Param(name); v != "" {
		return v
	}
	return c.Query(name)
}

// respondError maps the outcome of an upstream call: rejections keep the
// upstream's own status code, signing failures and transport failures are
// 500s with well-formed JSON bodies.
func (h *RelayHandler) respondError(c *gin.Context, err error) {
	if ue, ok := upstream.AsError(err); ok {
		errors.RespondWithError(c, ue.StatusCode,
			errors.NewUpstreamRejectedError(ue.StatusCode, ue.Code, ue.Message))
		return
	}

	if signature.IsInvalidInput(err) {
		logger.Errorf("Request signing failed: %v", err)
		errors.RespondWithError(c, http.StatusInternalServerError,
			errors.NewSigningFailureError())
		return
	}

	logger.Errorf("Upstream transport failure: %v", err)
	errors.RespondWithError(c, http.StatusInternalServerError,
		errors.NewTransportFailureError())
}
