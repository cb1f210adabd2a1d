package scan

import (
	"errors"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/aiml-healthguard/healthguard/internal/services/web/assessment"
	apperrors "github.com/aiml-healthguard/healthguard/internal/services/web/platform/errors"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/httpx"
	webi18n "github.com/aiml-healthguard/healthguard/internal/services/web/platform/i18n"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/publichandler"
	"github.com/aiml-healthguard/healthguard/internal/services/web/platform/weberror"
	"github.com/aiml-healthguard/healthguard/internal/services/web/routepath"
	webtemplates "github.com/aiml-healthguard/healthguard/internal/services/web/templates"
)

// DefaultMaxUploadBytes caps one multipart upload.
const DefaultMaxUploadBytes int64 = 10 << 20

// multipartMemory is how much of an upload is buffered before spilling to disk.
const multipartMemory = 8 << 20

const fileField = "file"

type handlers struct {
	publichandler.Base
	service  service
	maxBytes int64
}

func newHandlers(s service, base publichandler.Base, maxBytes int64) handlers {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return handlers{Base: base, service: s, maxBytes: maxBytes}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	kind, err := h.service.lookup(r.PathValue("kind"))
	if err != nil {
		h.WriteNotFound(w, r)
		return
	}
	loc, lang := h.Localize(w, r)
	h.writePage(w, r, loc, lang, http.StatusOK, scanView(kind, nil, ""))
}

func (h handlers) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	kind, err := h.service.lookup(r.PathValue("kind"))
	if err != nil {
		h.WriteNotFound(w, r)
		return
	}
	loc, lang := h.Localize(w, r)
	upload, err := h.readUpload(w, r)
	if err != nil {
		h.writeRejected(w, r, loc, lang, apperrors.HTTPStatus(err), scanView(kind, nil, h.message(loc, err)))
		return
	}

	result := h.service.analyze(httpx.RequestContext(r), kind, upload)
	status := http.StatusOK
	message := ""
	if result.err != nil {
		status = apperrors.HTTPStatus(result.err)
		message = h.message(loc, result.err)
	}
	view := scanView(kind, result.state, message)
	if !result.accepted() {
		h.writeRejected(w, r, loc, lang, status, view)
		return
	}
	if httpx.IsHTMXRequest(r) {
		h.WriteFragment(w, r, status, webtemplates.ScanOutcome(view, loc))
		return
	}
	// A full page load drops the chosen file, so analyze stays off until a
	// new one is picked.
	view.SubmitEnabled = false
	h.writePage(w, r, loc, lang, status, view)
}

// handleClear resets preview, file name, result and error together.
func (h handlers) handleClear(w http.ResponseWriter, r *http.Request) {
	kind, err := h.service.lookup(r.PathValue("kind"))
	if err != nil {
		h.WriteNotFound(w, r)
		return
	}
	if !httpx.IsHTMXRequest(r) {
		h.WriteRedirect(w, r, routepath.AssessScan(kind.key))
		return
	}
	loc, _ := h.Localize(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.ScanUploader(scanView(kind, nil, ""), loc))
}

// readUpload returns the submitted file, or nil when none was chosen.
func (h handlers) readUpload(w http.ResponseWriter, r *http.Request) (*assessment.Upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return nil, apperrors.Wrap(apperrors.KindTooLarge, "assessment.error.too_large", err)
		case errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		default:
			return nil, apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.image", err)
		}
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(fileField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.image", err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalidInput, "assessment.error.image", err)
	}
	return &assessment.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func (h handlers) message(loc webi18n.Localizer, err error) string {
	if apperrors.KindOf(err) == apperrors.KindTooLarge {
		return webtemplates.T(loc, "assessment.error.too_large", humanize.IBytes(uint64(h.maxBytes)))
	}
	return weberror.PublicMessage(loc, err)
}

// writeRejected answers an upload that never reached the model. HTMX
// requests get the whole uploader in place of the outcome region so the
// preview and file input reset together.
func (h handlers) writeRejected(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, status int, view webtemplates.ScanView) {
	if httpx.IsHTMXRequest(r) {
		httpx.SetHXRetarget(w, "#"+webtemplates.ScanFormID(view.Key), "outerHTML")
		h.WriteFragment(w, r, status, webtemplates.ScanUploader(view, loc))
		return
	}
	h.writePage(w, r, loc, lang, status, view)
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer, lang string, status int, view webtemplates.ScanView) {
	title := webtemplates.T(loc, "assessment.scan."+view.Key+".page_title")
	h.WritePage(w, r, loc, lang, title, status, webtemplates.ScanPage(view, loc))
}
