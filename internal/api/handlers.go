package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/adapters/ai"
	"github.com/selivandex/team-pulse/internal/analytics"
	"github.com/selivandex/team-pulse/internal/auth"
	"github.com/selivandex/team-pulse/internal/mood"
	"github.com/selivandex/team-pulse/internal/recommend"
	"github.com/selivandex/team-pulse/internal/records"
	"github.com/selivandex/team-pulse/pkg/logger"
	"github.com/selivandex/team-pulse/pkg/models"
)

// Handlers holds the collaborators behind the HTTP surface. Everything is
// injected at construction so demo deployments swap in canned implementations
// without any special-casing here.
type Handlers struct {
	store      records.Store
	classifier ai.Classifier
	composer   *recommend.Composer
	verifier   auth.Verifier
	events     recommend.Cache
	eventTTL   time.Duration
	batchLimit int
	now        func() time.Time
}

// NewHandlers creates new API handlers. events may be nil when no event
// trail cache is available.
func NewHandlers(
	store records.Store,
	classifier ai.Classifier,
	composer *recommend.Composer,
	verifier auth.Verifier,
	events recommend.Cache,
	eventTTL time.Duration,
	batchLimit int,
) *Handlers {
	return &Handlers{
		store:      store,
		classifier: classifier,
		composer:   composer,
		verifier:   verifier,
		events:     events,
		eventTTL:   eventTTL,
		batchLimit: batchLimit,
		now:        time.Now,
	}
}

// Internal failure detail never reaches the caller; this is the whole
// vocabulary of user-visible errors.
func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

func failed(c *gin.Context, status int) {
	c.JSON(status, gin.H{"error": "failed to process request"})
}

func (h *Handlers) session(c *gin.Context) (*auth.Session, bool) {
	session, err := h.verifier.Session(c.GetHeader("Authorization"))
	if err != nil {
		unauthorized(c)
		return nil, false
	}
	return session, true
}

// Analytics handles GET /api/v1/analytics?teamId=&timeRange=
func (h *Handlers) Analytics(c *gin.Context) {
	if _, ok := h.session(c); !ok {
		return
	}

	teamID := c.Query("teamId")
	timeRange := c.DefaultQuery("timeRange", "7d")

	window := analytics.ResolveWindow(timeRange, h.now().UTC())

	recs, err := h.store.Query(c.Request.Context(), window.Start, window.End, teamID)
	if err != nil {
		logger.Error("analytics query failed",
			zap.String("team_id", teamID),
			zap.String("time_range", timeRange),
			zap.Error(err),
		)
		failed(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, analytics.Compute(recs))
}

// IncomingMessage is one message submitted for sentiment analysis
type IncomingMessage struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	TeamID  string `json:"teamId"`
}

// SentimentRequest is the POST /api/v1/sentiment body
type SentimentRequest struct {
	Messages []IncomingMessage `json:"messages" binding:"required"`
}

// MessageResult is the per-message outcome in the sentiment response
type MessageResult struct {
	MessageID  string           `json:"messageId"`
	Sentiment  models.Sentiment `json:"sentiment"`
	Emotion    string           `json:"emotion"`
	Confidence float64          `json:"confidence"`
}

// Sentiment handles POST /api/v1/sentiment: classify each message, persist
// the record, and report per-message results. A classifier failure degrades
// that message to a neutral zero-confidence substitute; a store failure drops
// the message from the results. Neither aborts the batch.
func (h *Handlers) Sentiment(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failed(c, http.StatusBadRequest)
		return
	}

	messages := req.Messages
	if len(messages) > h.batchLimit {
		messages = messages[:h.batchLimit]
	}

	ctx := c.Request.Context()
	results := make([]MessageResult, 0, len(messages))
	classified := make([]models.SentimentResult, 0, len(messages))

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}

		res, err := h.classifier.Classify(ctx, msg.Content)
		if err != nil {
			logger.Warn("classification failed, substituting neutral",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
			res = models.FailedResult()
		}
		res = res.Normalize()

		rec := models.SentimentRecord{
			UserID:     session.UserID,
			Message:    msg.Content,
			Sentiment:  res.Sentiment,
			Emotion:    res.Emotion,
			Confidence: res.Confidence,
			Timestamp:  h.now().UTC(),
			TeamID:     msg.TeamID,
		}

		if err := h.store.Insert(ctx, &rec); err != nil {
			logger.Error("failed to persist sentiment record",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
			continue
		}

		messageID := msg.ID
		if messageID == "" {
			messageID = uuid.NewString()
		}

		results = append(results, MessageResult{
			MessageID:  messageID,
			Sentiment:  res.Sentiment,
			Emotion:    res.Emotion,
			Confidence: res.Confidence,
		})
		classified = append(classified, res)
	}

	h.recordEvent(c, "sentiment_batch", gin.H{
		"analyzed": len(results),
		"user_id":  session.UserID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analyzed": len(results),
		"results":  results,
		"summary":  analytics.Summarize(classified),
	})
}

// RecommendationRequest is the POST /api/v1/recommendations body
type RecommendationRequest struct {
	Emotions []string `json:"emotions"`
	TeamMood string   `json:"teamMood"`
	UserID   string   `json:"userId"`
}

// Recommendations handles POST /api/v1/recommendations. Team emotions
// dominate the single teamMood label when both are present.
func (h *Handlers) Recommendations(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failed(c, http.StatusBadRequest)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = session.UserID
	}

	var target mood.Target
	if len(req.Emotions) > 0 {
		target = mood.Classify(req.Emotions)
	} else {
		target = mood.Remap(req.TeamMood)
	}

	bundle, err := h.composer.Compose(c.Request.Context(), target, req.Emotions, userID)
	if err != nil {
		logger.Error("recommendation compose failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		failed(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// recordEvent leaves a short-lived trail entry for the activity feed.
// Strictly best-effort.
func (h *Handlers) recordEvent(c *gin.Context, eventType string, data gin.H) {
	if h.events == nil {
		return
	}

	key := fmt.Sprintf("events:%d", h.now().UnixNano())
	payload := gin.H{
		"eventType": eventType,
		"data":      data,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	}

	if err := h.events.SetJSON(c.Request.Context(), key, payload, h.eventTTL); err != nil {
		logger.Warn("event trail write failed", zap.String("event", eventType), zap.Error(err))
	}
}
