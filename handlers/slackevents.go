package handlers

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/samber/mo"
	"github.com/slack-go/slack/slackevents"

	"mentionrelay/core"
	"mentionrelay/models"
)

const (
	seenEventRetention       = 30 * time.Minute
	seenEventCleanupInterval = 5 * time.Minute
)

// PipelineFunc runs one mention event to its terminal outcome
type PipelineFunc func(ctx context.Context, event models.MentionEvent) *models.PostOutcome

type SlackEventsHandler struct {
	signingSecret string
	pipeline      PipelineFunc

	// seenEvents suppresses Slack redeliveries so a retried delivery never
	// triggers a second billable completion.
	seenEvents map[string]time.Time
	mutex      sync.RWMutex
}

func NewSlackEventsHandler(signingSecret string, pipeline PipelineFunc) *SlackEventsHandler {
	handler := &SlackEventsHandler{
		signingSecret: signingSecret,
		pipeline:      pipeline,
		seenEvents:    make(map[string]time.Time),
	}

	// Start cleanup goroutine
	go handler.cleanupLoop()

	return handler
}

// verifySlackSignature verifies the authenticity of a Slack webhook request
func (h *SlackEventsHandler) verifySlackSignature(r *http.Request, body []byte) error {
	// Extract headers
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	signature := r.Header.Get("X-Slack-Signature")

	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing required headers")
	}

	// Verify timestamp freshness (within 5 minutes)
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp format: %v", err)
	}

	if time.Now().Unix()-ts > 300 { // 5 minutes
		return fmt.Errorf("request timestamp too old")
	}

	// Create signature base string: v0:timestamp:body
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))

	// Compute HMAC-SHA256
	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte(baseString))
	expectedSignature := "v0=" + hex.EncodeToString(mac.Sum(nil))

	// Secure comparison
	if !hmac.Equal([]byte(expectedSignature), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}

	return nil
}

func (h *SlackEventsHandler) HandleSlackEvent(w http.ResponseWriter, r *http.Request) {
	log.Printf("📨 Slack event received from %s", r.RemoteAddr)

	// Read raw body for signature verification
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("❌ Failed to read request body: %v", err)
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	// Verify Slack signature
	if err := h.verifySlackSignature(r, bodyBytes); err != nil {
		log.Printf("❌ Slack signature verification failed: %v", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Parse the envelope into typed events; a malformed body is a client
	// error, not a runtime fault.
	eventsAPIEvent, err := slackevents.ParseEvent(json.RawMessage(bodyBytes), slackevents.OptionNoVerifyToken())
	if err != nil {
		log.Printf("❌ Failed to parse Slack event: %v", err)
		http.Error(w, "failed to parse event", http.StatusBadRequest)
		return
	}

	switch eventsAPIEvent.Type {
	case slackevents.URLVerification:
		h.handleURLVerification(w, bodyBytes)

	case slackevents.CallbackEvent:
		h.handleCallbackEvent(w, eventsAPIEvent)

	default:
		log.Printf("⏭️ Ignoring envelope type: %s", eventsAPIEvent.Type)
		w.WriteHeader(http.StatusOK)
	}
}

func (h *SlackEventsHandler) handleURLVerification(w http.ResponseWriter, body []byte) {
	log.Printf("🔐 Slack URL verification challenge received")

	var challenge slackevents.ChallengeResponse
	if err := json.Unmarshal(body, &challenge); err != nil {
		log.Printf("❌ Failed to parse challenge request: %v", err)
		http.Error(w, "failed to parse challenge", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(challenge.Challenge)); err != nil {
		log.Printf("❌ Failed to write challenge response: %v", err)
	}
}

func (h *SlackEventsHandler) handleCallbackEvent(w http.ResponseWriter, eventsAPIEvent slackevents.EventsAPIEvent) {
	eventID := ""
	if callback, ok := eventsAPIEvent.Data.(*slackevents.EventsAPICallbackEvent); ok {
		eventID = callback.EventID
	}
	if eventID == "" {
		eventID = core.NewID("ev")
	}

	mention, ok := eventsAPIEvent.InnerEvent.Data.(*slackevents.AppMentionEvent)
	if !ok {
		log.Printf("⏭️ Ignoring event type: %s", eventsAPIEvent.InnerEvent.Type)
		w.WriteHeader(http.StatusOK)
		return
	}

	if h.alreadySeen(eventID) {
		log.Printf("🔄 Event %s already processed, acking redelivery", eventID)
		w.WriteHeader(http.StatusOK)
		return
	}
	h.markSeen(eventID)

	threadTS := mo.None[string]()
	if mention.ThreadTimeStamp != "" {
		threadTS = mo.Some(mention.ThreadTimeStamp)
	}

	event := models.MentionEvent{
		ID:        eventID,
		ChannelID: mention.Channel,
		UserID:    mention.User,
		RawText:   mention.Text,
		ThreadTS:  threadTS,
	}

	log.Printf("📨 Bot mentioned by %s in %s (event %s)", event.UserID, event.ChannelID, event.ID)

	// Ack Slack right away and run the pipeline off the request goroutine:
	// a slow completion must not trip Slack's delivery timeout, and each
	// in-flight event stays independent.
	go func() {
		outcome := h.pipeline(context.Background(), event)
		if !outcome.Success {
			log.Printf("❌ Mention event %s ended in failure: %s", outcome.EventID, outcome.Error)
		}
	}()

	w.WriteHeader(http.StatusOK)
}

func (h *SlackEventsHandler) alreadySeen(eventID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	_, seen := h.seenEvents[eventID]
	return seen
}

func (h *SlackEventsHandler) markSeen(eventID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.seenEvents[eventID] = time.Now()
}

func (h *SlackEventsHandler) cleanupLoop() {
	ticker := time.NewTicker(seenEventCleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		h.mutex.Lock()
		cutoff := time.Now().Add(-seenEventRetention)
		for eventID, seenAt := range h.seenEvents {
			if seenAt.Before(cutoff) {
				delete(h.seenEvents, eventID)
			}
		}
		h.mutex.Unlock()
	}
}

func (h *SlackEventsHandler) SetupEndpoints(router *mux.Router) {
	log.Printf("🚀 Registering Slack webhook endpoints")

	router.HandleFunc("/slack/events", h.HandleSlackEvent).Methods("POST")
	log.Printf("✅ POST /slack/events endpoint registered")
}
