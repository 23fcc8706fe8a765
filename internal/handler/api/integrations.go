package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/tenancy/internal/assistant"
	"github.com/dukerupert/tenancy/internal/domain"
	"github.com/dukerupert/tenancy/internal/handler"
	"github.com/dukerupert/tenancy/internal/notify"
	"github.com/dukerupert/tenancy/internal/quickbooks"
	"github.com/dukerupert/tenancy/internal/storage"
	"github.com/dukerupert/tenancy/internal/telemetry"
	"github.com/google/uuid"
)

// QuickBooksHandler completes the QuickBooks OAuth flow for the SPA.
type QuickBooksHandler struct {
	client *quickbooks.Client
	logger *slog.Logger
}

func NewQuickBooksHandler(client *quickbooks.Client, logger *slog.Logger) *QuickBooksHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuickBooksHandler{client: client, logger: logger.With("handler", "quickbooks")}
}

// Connect handles GET /api/quickbooks/connect
//
// The SPA keeps the returned state and checks it on the redirect.
func (h *QuickBooksHandler) Connect(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	url, err := h.client.AuthCodeURL(state)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}
	handler.JSON(w, http.StatusOK, map[string]string{"url": url, "state": state})
}

type quickBooksCallbackRequest struct {
	Code    string `json:"code"`
	RealmID string `json:"realmId"`
	State   string `json:"state,omitempty"`
}

// Callback handles POST /api/quickbooks/callback
func (h *QuickBooksHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var req quickBooksCallbackRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	conn, err := h.client.Exchange(r.Context(), req.Code, req.RealmID)
	if err != nil {
		handler.Fail(w, r, err)
		return
	}

	h.logger.Info("quickbooks connected", "realm_id", conn.RealmID)
	handler.JSON(w, http.StatusOK, conn)
}

// SMSHandler sends ad hoc text messages.
type SMSHandler struct {
	sender  notify.SMSSender
	metrics *telemetry.BusinessMetrics
}

// NewSMSHandler creates an SMS handler. sender may be nil when SMS is not
// configured.
func NewSMSHandler(sender notify.SMSSender, metrics *telemetry.BusinessMetrics) *SMSHandler {
	return &SMSHandler{sender: sender, metrics: metrics}
}

type smsRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send handles POST /api/notifications/sms
func (h *SMSHandler) Send(w http.ResponseWriter, r *http.Request) {
	const op = "notify.sms"

	var req smsRequest
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	var verr error
	if err := notify.ValidatePhone(req.Phone); err != nil {
		verr = domain.AddFieldError(verr, "phone", err.Error())
	}
	if strings.TrimSpace(req.Message) == "" {
		verr = domain.AddFieldError(verr, "message", notify.ErrEmptyMessage.Error())
	}
	if verr != nil {
		handler.Fail(w, r, verr)
		return
	}

	if h.sender == nil {
		handler.ErrorResponse(w, r, notifyError(op, notify.ErrSMSNotConfigured))
		return
	}

	sid, err := h.sender.SendSMS(r.Context(), req.Phone, req.Message)
	h.metrics.SMSResult(err)
	if err != nil {
		handler.ErrorResponse(w, r, notifyError(op, err))
		return
	}

	handler.JSON(w, http.StatusOK, map[string]string{"sid": sid})
}

// notifyError keeps the code of a notify error; anything else is internal.
func notifyError(op string, err error) error {
	var ne *notify.NotifyError
	if errors.As(err, &ne) {
		return &domain.Error{Code: ne.Code, Op: op, Message: ne.Message, Err: err}
	}
	return domain.Internal(err, op, "Failed to send SMS")
}

// DocumentAnalyzer summarizes document text.
type DocumentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, filename, text string) (*assistant.DocumentAnalysis, error)
}

// DocumentHandler stores uploaded documents and summarizes them.
type DocumentHandler struct {
	store    storage.Storage
	analyzer DocumentAnalyzer
	logger   *slog.Logger
	now      func() time.Time
}

// NewDocumentHandler creates a document handler. analyzer may be nil.
func NewDocumentHandler(store storage.Storage, analyzer DocumentAnalyzer, logger *slog.Logger) *DocumentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentHandler{
		store:    store,
		analyzer: analyzer,
		logger:   logger.With("handler", "document"),
		now:      time.Now,
	}
}

// DocumentResponse describes a stored document.
type DocumentResponse struct {
	Key         string                      `json:"key"`
	URL         string                      `json:"url"`
	Filename    string                      `json:"filename"`
	ContentType string                      `json:"content_type"`
	Size        int                         `json:"size"`
	Analysis    *assistant.DocumentAnalysis `json:"analysis,omitempty"`
}

const maxMultipartMemory = 8 << 20

// Upload handles POST /api/documents
//
// Multipart fields: "file" (required) and "text" (optional extracted text).
// Analysis runs on "text" or, for text uploads, the file itself.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "document.upload"
	ctx := r.Context()

	user, err := domain.RequireUser(ctx, op)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handler.ErrorResponse(w, r, domain.Errorf(domain.ETOOLARGE, op, "File too large"))
			return
		}
		handler.ErrorResponse(w, r, domain.WrapError(err, domain.EINVALID, op, "Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handler.Fail(w, r, domain.NewValidationError(op, "file", "is required"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		handler.ErrorResponse(w, r, domain.Internal(err, op, "Failed to read upload"))
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}

	key := storage.DocumentKey(user.ID, header.Filename, h.now())
	url, err := h.store.Put(ctx, key, bytes.NewReader(content), contentType)
	if err != nil {
		handler.ErrorResponse(w, r, domain.WrapError(err, domain.ErrorCode(err), op, "Failed to store document"))
		return
	}

	resp := DocumentResponse{
		Key:         key,
		URL:         url,
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        len(content),
	}

	text := r.FormValue("text")
	if text == "" && strings.HasPrefix(contentType, "text/") {
		text = string(content)
	}
	if h.analyzer != nil && strings.TrimSpace(text) != "" {
		analysis, err := h.analyzer.AnalyzeDocument(ctx, header.Filename, text)
		if err != nil {
			// The document is stored; analysis is best effort.
			h.logger.Warn("document analysis failed", "key", key, "error", err)
			telemetry.CaptureErrorFromContext(ctx, err, map[string]interface{}{"key": key})
		} else {
			resp.Analysis = analysis
		}
	}

	handler.JSON(w, http.StatusCreated, resp)
}
