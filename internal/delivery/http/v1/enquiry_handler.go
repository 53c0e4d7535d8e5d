package v1

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mfroosh-trade-backend/internal/delivery/http/middleware"
	"mfroosh-trade-backend/internal/delivery/http/response"
	"mfroosh-trade-backend/internal/domain"
	"mfroosh-trade-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	enquiryUC domain.EnquiryUsecase
	log       *slog.Logger
}

// NewEnquiryHandler registers the enquiry routes (public, no auth required)
func NewEnquiryHandler(api *gin.RouterGroup, enquiryUC domain.EnquiryUsecase, log *slog.Logger) {
	handler := &EnquiryHandler{
		enquiryUC: enquiryUC,
		log:       log,
	}

	api.POST("/send-enquiry", handler.SendEnquiry)
}

// SendEnquiry godoc
// @Summary      Submit Product Enquiry
// @Description  Validates an enquiry and relays it to the company inbox. Delivery is best effort: a validated enquiry is always acknowledged.
// @Tags         enquiry
// @Accept       json
// @Produce      json
// @Param        enquiry  body      domain.EnquiryRequest   true  "Enquiry Form Data"
// @Success      200      {object}  domain.EnquiryResponse
// @Failure      400      {object}  domain.EnquiryResponse
// @Failure      500      {object}  domain.EnquiryResponse
// @Router       /send-enquiry [post]
func (h *EnquiryHandler) SendEnquiry(c *gin.Context) {
	var req domain.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if missingStructure(err) {
			c.Error(apperror.BadRequest(domain.MsgMissingFields))
			return
		}
		c.Error(apperror.Internal(domain.MsgProcessingFailed, err))
		return
	}

	receipt, err := h.enquiryUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.log.Info("Enquiry accepted",
		"request_id", c.GetString(middleware.RequestIDKey),
		"delivery_provider", receipt.Delivery.Provider,
		"delivery_status", receipt.Delivery.Status,
	)

	response.Success(c, http.StatusOK, domain.MsgEnquiryAccepted)
}

// missingStructure reports whether the body carries no enquiry object at all:
// an empty body, or valid JSON that is not an object ([] or "x"). Syntax errors
// and wrongly typed fields are not covered.
func missingStructure(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr) && typeErr.Field == ""
}
