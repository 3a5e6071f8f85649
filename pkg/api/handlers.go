package api

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ssargent/catbuffer/pkg/archive"
	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/logging"
	"github.com/ssargent/catbuffer/pkg/wire"
)

var (
	errBadPayload      = errors.New("invalid payload")
	errPayloadTooLarge = errors.New("payload too large")
)

// Server holds the API server state
type Server struct {
	archive EntityArchive
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(archive EntityArchive, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		archive: archive,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleKinds godoc
//
//	@Summary		List entity kinds
//	@Description	List every kind the decoder accepts
//	@Tags			codec
//	@Produce		json
//	@Success		200	{object}	APIResponse{data=[]KindInfo}
//	@Router			/kinds [get]
//	@Security		ApiKeyAuth
func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := entity.Kinds()
	infos := make([]KindInfo, 0, len(kinds))
	for _, k := range kinds {
		infos = append(infos, KindInfo{Name: k.String(), Value: uint8(k)})
	}
	sendSuccess(w, infos)
}

// handleDecode godoc
//
//	@Summary		Decode a payload
//	@Description	Decode one record of the given kind and return its structure
//	@Tags			codec
//	@Accept			octet-stream,json,plain
//	@Produce		json
//	@Param			kind		path		string	true	"Entity kind"
//	@Param			strict		query		bool	false	"Reject declared size mismatches"
//	@Param			trailing	query		bool	false	"Accept bytes after the record"
//	@Success		200			{object}	APIResponse{data=entity.Report}
//	@Failure		400			{object}	APIResponse
//	@Failure		413			{object}	APIResponse
//	@Failure		422			{object}	APIResponse
//	@Router			/decode/{kind} [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	kind, err := entity.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		s.metrics.RecordDecode("unknown", 0, err)
		s.sendFailure(w, err)
		return
	}

	policy, err := s.policy(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	payload, err := s.readPayload(w, r)
	if err != nil {
		s.metrics.RecordDecode(kind.String(), 0, err)
		s.sendFailure(w, err)
		return
	}

	report, err := entity.Inspect(kind, payload, policy)
	s.metrics.RecordDecode(kind.String(), len(payload), err)
	if err != nil {
		s.sendFailure(w, err)
		return
	}
	sendSuccess(w, report)
}

// handleArchivePut godoc
//
//	@Summary		Archive a payload
//	@Description	Validate one record of the given kind and store it
//	@Tags			archive
//	@Accept			octet-stream,json,plain
//	@Produce		json
//	@Param			kind	query		string	true	"Entity kind"
//	@Success		201		{object}	APIResponse{data=StoredResponse}
//	@Failure		400		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/archive [post]
//	@Security		ApiKeyAuth
func (s *Server) handleArchivePut(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	kind, err := entity.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		s.metrics.RecordArchiveOperation("put", false, time.Since(start))
		s.sendFailure(w, err)
		return
	}

	payload, err := s.readPayload(w, r)
	if err != nil {
		s.metrics.RecordArchiveOperation("put", false, time.Since(start))
		s.sendFailure(w, err)
		return
	}

	id, err := s.archive.Put(kind, payload)
	s.metrics.RecordArchiveOperation("put", err == nil, time.Since(start))
	if err != nil {
		s.sendFailure(w, err)
		return
	}

	sendCreated(w, StoredResponse{ID: id.String(), Kind: kind, Size: len(payload)})
}

// handleArchiveGet godoc
//
//	@Summary		Load an archived entity
//	@Tags			archive
//	@Produce		json
//	@Param			id	path		string	true	"Archive id"
//	@Success		200	{object}	APIResponse{data=archive.Item}
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/archive/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveGet(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := archive.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		s.metrics.RecordArchiveOperation("get", false, time.Since(start))
		s.sendFailure(w, err)
		return
	}

	item, err := s.archive.Get(id)
	s.metrics.RecordArchiveOperation("get", err == nil, time.Since(start))
	if err != nil {
		s.sendFailure(w, err)
		return
	}

	if r.URL.Query().Get("format") == "hex" {
		sendSuccess(w, map[string]string{"id": item.ID.String(), "hex": hex.EncodeToString(item.Payload)})
		return
	}
	sendSuccess(w, item)
}

// handleArchiveDelete godoc
//
//	@Summary		Delete an archived entity
//	@Tags			archive
//	@Produce		json
//	@Param			id	path		string	true	"Archive id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/archive/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveDelete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, err := archive.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		s.metrics.RecordArchiveOperation("delete", false, time.Since(start))
		s.sendFailure(w, err)
		return
	}

	err = s.archive.Delete(id)
	s.metrics.RecordArchiveOperation("delete", err == nil, time.Since(start))
	if err != nil {
		s.sendFailure(w, err)
		return
	}
	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"})
}

// handleArchiveList godoc
//
//	@Summary		List archived entities
//	@Tags			archive
//	@Produce		json
//	@Param			kind	query		string	false	"Only list this kind"
//	@Param			limit	query		int		false	"Maximum number of items"
//	@Success		200		{object}	APIResponse{data=[]archive.Item}
//	@Failure		400		{object}	APIResponse
//	@Router			/archive [get]
//	@Security		ApiKeyAuth
func (s *Server) handleArchiveList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	query := r.URL.Query()

	var opts archive.ListOptions
	if name := query.Get("kind"); name != "" {
		kind, err := entity.ParseKind(name)
		if err != nil {
			s.sendFailure(w, err)
			return
		}
		opts.Kind = kind
	}
	if limit := query.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			sendError(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		opts.Limit = n
	}

	items, err := s.archive.List(opts)
	s.metrics.RecordArchiveOperation("list", err == nil, time.Since(start))
	if err != nil {
		s.sendFailure(w, err)
		return
	}
	if items == nil {
		items = []*archive.Item{}
	}
	sendSuccess(w, items)
}

// policy applies the per-request query overrides to the configured policy.
func (s *Server) policy(r *http.Request) (entity.Policy, error) {
	policy := s.config.Policy
	query := r.URL.Query()
	if v := query.Get("strict"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return policy, errors.Newf("invalid strict parameter %q", v)
		}
		policy.StrictSize = strict
	}
	if v := query.Get("trailing"); v != "" {
		trailing, err := strconv.ParseBool(v)
		if err != nil {
			return policy, errors.Newf("invalid trailing parameter %q", v)
		}
		policy.AllowTrailing = trailing
	}
	return policy, nil
}

// readPayload returns the submitted record bytes. JSON bodies carry hex in a
// "hex" field, text bodies are hex, and anything else is raw binary.
func (s *Server) readPayload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body := r.Body
	if s.config.MaxBodySize > 0 {
		body = http.MaxBytesReader(w, r.Body, s.config.MaxBodySize)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.Wrapf(errPayloadTooLarge, "limit is %d bytes", tooLarge.Limit)
		}
		return nil, errors.Wrapf(errBadPayload, "read body: %v", err)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var req DecodeRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, errors.Wrapf(errBadPayload, "json body: %v", err)
		}
		return decodeHex(req.Hex)
	case "text/plain":
		return decodeHex(string(data))
	}
	return data, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(errBadPayload, "hex: %v", err)
	}
	return b, nil
}

// sendFailure maps err onto a status code and, for codec failures, reports
// where in the payload decoding stopped.
func (s *Server) sendFailure(w http.ResponseWriter, err error) {
	status := statusFor(err)
	response := APIResponse{Success: false, Error: err.Error()}
	if kind := wire.KindOf(err); kind != nil {
		detail := &ErrorDetail{Kind: kind.Error()}
		if off := wire.OffsetOf(err); off >= 0 {
			detail.Offset = &off
		}
		response.Details = detail
	}
	if status >= http.StatusInternalServerError {
		logging.Logger().Error("request failed", zap.Error(err))
	}
	sendJSON(w, status, response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadPayload),
		errors.Is(err, entity.ErrUnknownKind),
		errors.Is(err, archive.ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, archive.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, archive.ErrCorruptValue),
		errors.Is(err, wire.ErrUnsupportedWidth):
		return http.StatusInternalServerError
	case errors.Is(err, entity.ErrNetworkMismatch), wire.KindOf(err) != nil:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
