package apihandlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"

	"tasktagger/internal/app"
	"tasktagger/internal/models"
)

var errTrailingData = errors.New("unexpected data after JSON value")

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// HealthHandler always reports ok; the service has no dependencies to probe.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.App.CategorizationService.Health())
}

// CategorizeHandler accepts {"text": "..."} as JSON, or a text field as
// urlencoded or multipart form data.
func (h *APIHandler) CategorizeHandler(c *gin.Context) {
	req, err := parseCategorizeRequest(c)
	if err != nil {
		log.WithField("request_id", requestID(c)).Debugf("Rejected categorize request: %v", err)
		Unprocessable(c, err)
		return
	}

	resp, err := h.App.CategorizationService.Categorize(c.Request.Context(), *req.Text)
	if err != nil {
		Internal(c, fmt.Sprintf("CategorizeHandler: failed to categorize: %v", err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// parseCategorizeRequest binds JSON bodies, including ones sent without a
// Content-Type, and leaves form bodies to the decoder selected by Content-Type.
func parseCategorizeRequest(c *gin.Context) (models.CategorizeRequest, error) {
	var req models.CategorizeRequest
	switch c.ContentType() {
	case "", binding.MIMEJSON:
		body, err := c.GetRawData()
		if err != nil {
			return req, err
		}
		if err := requireSingleJSONValue(body); err != nil {
			return req, err
		}
		if err := binding.JSON.BindBody(body, &req); err != nil {
			return req, err
		}
	default:
		if err := c.ShouldBind(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// requireSingleJSONValue rejects bodies with anything but whitespace after the first JSON value.
func requireSingleJSONValue(body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
