package mentions

import (
	"context"
	"log"
	"time"

	"mentionrelay/core"
	"mentionrelay/models"
	"mentionrelay/services"
	slackutils "mentionrelay/utils/slack"
)

// defaultBackoffDelays gives retryable failures two extra attempts per
// outbound call: one after 1s, one after 3s more.
var defaultBackoffDelays = []time.Duration{1 * time.Second, 3 * time.Second}

type MentionsUseCase struct {
	completionsService services.CompletionsService
	repliesService     services.RepliesService

	// emptyMentionReply short-circuits the completion request when
	// normalization leaves no text. Empty means the empty message is still
	// forwarded to the model.
	emptyMentionReply string

	backoffDelays []time.Duration
}

func NewMentionsUseCase(
	completionsService services.CompletionsService,
	repliesService services.RepliesService,
	emptyMentionReply string,
) *MentionsUseCase {
	return &MentionsUseCase{
		completionsService: completionsService,
		repliesService:     repliesService,
		emptyMentionReply:  emptyMentionReply,
		backoffDelays:      defaultBackoffDelays,
	}
}

// ProcessMentionEvent runs one event through normalize → complete → post and
// converts every stage failure into a terminal PostOutcome. Nothing escapes
// to the caller, so one bad event can never affect another in-flight event.
func (u *MentionsUseCase) ProcessMentionEvent(ctx context.Context, event models.MentionEvent) *models.PostOutcome {
	log.Printf("📋 Starting to process mention event %s from %s in %s", event.ID, event.UserID, event.ChannelID)

	text := slackutils.NormalizeMentionText(event.RawText)

	var reply string
	if text == "" && u.emptyMentionReply != "" {
		log.Printf("⏭️ Mention event %s is empty after normalization, using canned reply", event.ID)
		reply = u.emptyMentionReply
	} else {
		var err error
		reply, err = u.requestCompletionWithRetry(ctx, event.ID, text)
		if err != nil {
			log.Printf("❌ Mention event %s failed at completion stage (%s): %v", event.ID, core.KindOf(err), err)
			return &models.PostOutcome{EventID: event.ID, Error: err.Error()}
		}
	}

	timestamp, err := u.postReplyWithRetry(ctx, event, reply)
	if err != nil {
		log.Printf("❌ Mention event %s failed at posting stage (%s): %v", event.ID, core.KindOf(err), err)
		return &models.PostOutcome{EventID: event.ID, Error: err.Error()}
	}

	log.Printf("✅ Mention event %s replied in channel %s at %s", event.ID, event.ChannelID, timestamp)
	return &models.PostOutcome{EventID: event.ID, Success: true, Timestamp: timestamp}
}

func (u *MentionsUseCase) requestCompletionWithRetry(ctx context.Context, eventID, text string) (string, error) {
	var reply string
	err := u.retryOn(ctx, eventID, "completion", func() error {
		var err error
		reply, err = u.completionsService.RequestCompletion(ctx, text)
		return err
	})
	return reply, err
}

func (u *MentionsUseCase) postReplyWithRetry(ctx context.Context, event models.MentionEvent, reply string) (string, error) {
	var timestamp string
	err := u.retryOn(ctx, event.ID, "post", func() error {
		var err error
		timestamp, err = u.repliesService.PostReply(ctx, event.ChannelID, reply, event.ThreadTS)
		return err
	})
	return timestamp, err
}

// retryOn runs op under the bounded retry policy: retryable kinds get one
// extra attempt per backoff delay, every other kind is terminal after the
// first attempt.
func (u *MentionsUseCase) retryOn(ctx context.Context, eventID, stage string, op func() error) error {
	var lastErr error
	for attempt := 0; attempt <= len(u.backoffDelays); attempt++ {
		if attempt > 0 {
			delay := u.backoffDelays[attempt-1]
			log.Printf("🔄 Retrying %s stage for event %s in %s (attempt %d of %d)",
				stage, eventID, delay, attempt+1, len(u.backoffDelays)+1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return core.NewClassifiedError(core.ErrorKindServiceUnavailable, ctx.Err())
			}
		}

		err := op()
		if err == nil {
			return nil
		}
		lastErr = err

		if !core.IsRetryable(core.KindOf(err)) {
			return err
		}
	}
	return lastErr
}
