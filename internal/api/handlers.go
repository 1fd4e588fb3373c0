package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/bitai/castforge/internal/config"
	"github.com/bitai/castforge/internal/db"
	"github.com/bitai/castforge/internal/generator"
	"github.com/bitai/castforge/internal/llm"
	"github.com/bitai/castforge/internal/models"
	"github.com/bitai/castforge/internal/personality"
	"github.com/bitai/castforge/internal/scraper"
)

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// Publisher posts casts to Farcaster. The real implementation is
// publisher.Client; nil means publishing is not configured.
type Publisher interface {
	PublishCast(ctx context.Context, signerUUID, text string) (string, error)
}

type Handlers struct {
	cfg       *config.Config
	db        *db.DB
	generator *generator.Generator
	scraper   *scraper.Service
	publisher Publisher
	llm       *llm.Client
}

func NewHandlers(cfg *config.Config, database *db.DB, gen *generator.Generator, scr *scraper.Service, llmClient *llm.Client) *Handlers {
	return &Handlers{
		cfg:       cfg,
		db:        database,
		generator: gen,
		scraper:   scr,
		llm:       llmClient,
	}
}

// SetPublisher enables the publish endpoint
func (h *Handlers) SetPublisher(p Publisher) {
	h.publisher = p
}

// Health handles GET /health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:   "ok",
		Provider: h.checkProvider(),
		Database: h.checkDatabase(),
		Scraper:  h.checkScraper(),
		Version:  "1.0.0",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) checkProvider() string {
	if h.llm == nil {
		return "not configured"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.llm.HealthCheck(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}

func (h *Handlers) checkDatabase() string {
	if h.db == nil {
		return "not configured"
	}
	if err := h.db.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}

func (h *Handlers) checkScraper() string {
	if h.scraper == nil || !h.scraper.Configured() {
		return "degraded"
	}
	return "configured"
}

// resolveProfile picks the personality for a generation request: a template
// looked up by ID, or an inline custom profile normalized through
// NewProfile so omitted settings get defaults.
func (h *Handlers) resolveProfile(personalityID string, custom *personality.Input) (*personality.Profile, string) {
	if personalityID != "" {
		p := personality.TemplateByID(personalityID)
		if p == nil {
			return nil, "unknown personality template: " + personalityID
		}
		return p, ""
	}
	if custom != nil {
		return personality.NewProfile("custom", *custom), ""
	}
	return nil, "personality_id or personality is required"
}

// GenerateHooks handles POST /api/v1/generate/hooks
func (h *Handlers) GenerateHooks(w http.ResponseWriter, r *http.Request) {
	var req models.HooksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "topic is required", "MISSING_TOPIC")
		return
	}

	profile, errMsg := h.resolveProfile(req.PersonalityID, req.Personality)
	if profile == nil {
		writeError(w, http.StatusBadRequest, errMsg, "INVALID_PERSONALITY")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	hooks, err := h.generator.GenerateHooks(ctx, profile, req.Topic, req.ScrapedData)
	if err != nil {
		log.Printf("Hook generation failed for topic %q: %v", req.Topic, err)
		writeError(w, http.StatusBadGateway, "hook generation failed", "PROVIDER_ERROR")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.HooksResponse{
		Success:   true,
		Hooks:     hooks.Hooks,
		Reasoning: hooks.Reasoning,
	})
}

// GenerateContent handles POST /api/v1/generate/content
func (h *Handlers) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req models.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "topic is required", "MISSING_TOPIC")
		return
	}
	if req.SelectedHook == "" {
		writeError(w, http.StatusBadRequest, "selected_hook is required", "MISSING_HOOK")
		return
	}

	profile, errMsg := h.resolveProfile(req.PersonalityID, req.Personality)
	if profile == nil {
		writeError(w, http.StatusBadRequest, errMsg, "INVALID_PERSONALITY")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	post, err := h.generator.GenerateContent(ctx, profile, req.Topic, req.SelectedHook, req.ScrapedData)
	if err != nil {
		log.Printf("Content generation failed for topic %q: %v", req.Topic, err)
		writeError(w, http.StatusBadGateway, "content generation failed", "PROVIDER_ERROR")
		return
	}

	resp := models.ContentResponse{
		Success:          true,
		Content:          post.Content,
		Hashtags:         post.Hashtags,
		CharacterCount:   post.CharacterCount,
		ValidationErrors: post.ValidationErrors,
	}

	// History is best effort: a storage failure never loses the content
	if req.UserAddress != "" {
		id, err := h.db.SaveContent(db.ContentRecord{
			UserAddress:    req.UserAddress,
			Topic:          req.Topic,
			SelectedHook:   req.SelectedHook,
			Content:        post.Content,
			Hashtags:       post.Hashtags,
			CharacterCount: post.CharacterCount,
			Status:         db.StatusGenerated,
		})
		if err != nil {
			log.Printf("Failed to save content history for %s: %v", req.UserAddress, err)
		} else {
			resp.ContentID = id
		}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// ScrapeTopic handles POST /api/v1/scrape/topic
func (h *Handlers) ScrapeTopic(w http.ResponseWriter, r *http.Request) {
	var req models.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.Topic == "" {
		writeError(w, http.StatusBadRequest, "topic is required", "MISSING_TOPIC")
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = scraper.ModeQuick
	}
	if mode != scraper.ModeQuick && mode != scraper.ModeFull {
		writeError(w, http.StatusBadRequest, "mode must be quick or full", "INVALID_MODE")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Minute)
	defer cancel()

	data := h.scraper.ScrapeTopic(ctx, req.Topic, mode)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.ScrapeResponse{
		Success: true,
		Data:    data,
	})
}

// Trending handles GET /api/v1/scrape/trending
func (h *Handlers) Trending(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	topics := h.scraper.TrendingTopics(ctx, region)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.TrendingResponse{
		Success: true,
		Topics:  topics,
	})
}

// Templates handles GET /api/v1/personality/templates
// Query params: id (single template), category (filter)
func (h *Handlers) Templates(w http.ResponseWriter, r *http.Request) {
	if id := r.URL.Query().Get("id"); id != "" {
		tmpl := personality.TemplateByID(id)
		if tmpl == nil {
			writeError(w, http.StatusNotFound, "template not found", "NOT_FOUND")
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.TemplatesResponse{
			Success:  true,
			Template: tmpl,
		})
		return
	}

	var templates []personality.Profile
	if category := r.URL.Query().Get("category"); category != "" {
		templates = personality.TemplatesByCategory(category)
	} else {
		templates = personality.Templates()
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.TemplatesResponse{
		Success:   true,
		Templates: templates,
	})
}

// History handles GET /api/v1/content/history
func (h *Handlers) History(w http.ResponseWriter, r *http.Request) {
	userAddress := r.URL.Query().Get("user_address")
	if userAddress == "" {
		writeError(w, http.StatusBadRequest, "user_address is required", "MISSING_USER")
		return
	}

	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.db.GetHistory(userAddress, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error", "DB_ERROR")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.HistoryResponse{
		Success: true,
		Data:    records,
		Total:   total,
	})
}

// UpdateContent handles POST /api/v1/content/update
func (h *Handlers) UpdateContent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.ContentID == "" {
		writeError(w, http.StatusBadRequest, "content_id is required", "MISSING_CONTENT_ID")
		return
	}
	if req.Status != "" && !validStatus(req.Status) {
		writeError(w, http.StatusBadRequest, "status must be generated, posted or failed", "INVALID_STATUS")
		return
	}

	found, err := h.db.UpdateContent(req.ContentID, req.Status, req.CastHash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error", "DB_ERROR")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "content not found", "NOT_FOUND")
		return
	}

	rec, err := h.db.GetContent(req.ContentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "database error", "DB_ERROR")
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.UpdateContentResponse{
		Success: true,
		Data:    rec,
	})
}

// PublishCast handles POST /api/v1/publish/cast
func (h *Handlers) PublishCast(w http.ResponseWriter, r *http.Request) {
	if h.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, "publishing not configured", "NOT_CONFIGURED")
		return
	}

	var req models.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "INVALID_BODY")
		return
	}

	if req.SignerUUID == "" {
		writeError(w, http.StatusBadRequest, "signer_uuid is required", "MISSING_SIGNER")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required", "MISSING_TEXT")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	hash, err := h.publisher.PublishCast(ctx, req.SignerUUID, req.Text)
	if err != nil {
		log.Printf("Publish failed: %v", err)
		if req.ContentID != "" {
			h.markContent(req.ContentID, db.StatusFailed, "")
		}
		writeError(w, http.StatusBadGateway, "publish failed: "+err.Error(), "PUBLISH_ERROR")
		return
	}

	if req.ContentID != "" {
		h.markContent(req.ContentID, db.StatusPosted, hash)
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(models.PublishResponse{
		Success: true,
		Hash:    hash,
	})
}

func (h *Handlers) markContent(contentID, status, castHash string) {
	found, err := h.db.UpdateContent(contentID, status, castHash)
	if err != nil {
		log.Printf("Failed to update content %s after publish: %v", contentID, err)
		return
	}
	if !found {
		log.Printf("Content %s not found when recording publish result", contentID)
	}
}

func validStatus(status string) bool {
	switch status {
	case db.StatusGenerated, db.StatusPosted, db.StatusFailed:
		return true
	}
	return false
}

func queryInt(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return n
}
