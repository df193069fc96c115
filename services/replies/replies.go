package replies

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/samber/mo"
	slackapi "github.com/slack-go/slack"

	"mentionrelay/clients"
	"mentionrelay/core"
)

type RepliesService struct {
	slackClient clients.SlackClient
}

func NewRepliesService(slackClient clients.SlackClient) *RepliesService {
	return &RepliesService{
		slackClient: slackClient,
	}
}

// PostReply posts one message to the channel. A present threadTS is
// forwarded unchanged so the reply lands inside the originating thread; an
// absent one produces a new top-level message.
func (s *RepliesService) PostReply(
	ctx context.Context,
	channelID, text string,
	threadTS mo.Option[string],
) (string, error) {
	log.Printf("📋 Starting to post reply to channel %s", channelID)

	options := []clients.SlackMessageOption{clients.WithText(text)}
	if ts, present := threadTS.Get(); present {
		options = append(options, clients.WithThreadTS(ts))
	}

	response, err := s.slackClient.PostMessage(ctx, channelID, options...)
	if err != nil {
		classified := classifyPostError(err)
		log.Printf("❌ Failed to post reply to channel %s (%s): %v", channelID, core.KindOf(classified), err)
		return "", classified
	}

	log.Printf("✅ Posted reply to channel %s at %s", response.Channel, response.Timestamp)
	return response.Timestamp, nil
}

// classifyPostError maps slack-go failures onto the pipeline's error kinds.
// The Slack Web API reports most failures as a bare error-code string.
func classifyPostError(err error) error {
	var rateLimited *slackapi.RateLimitedError
	if errors.As(err, &rateLimited) {
		return core.NewClassifiedError(core.ErrorKindRateLimited, err)
	}

	var statusCode slackapi.StatusCodeError
	if errors.As(err, &statusCode) && statusCode.Code >= http.StatusInternalServerError {
		return core.NewClassifiedError(core.ErrorKindServiceUnavailable, err)
	}

	switch err.Error() {
	case "invalid_auth", "not_authed", "token_revoked", "account_inactive":
		return core.NewClassifiedError(core.ErrorKindAuth, err)
	case "channel_not_found", "thread_not_found":
		return core.NewClassifiedError(core.ErrorKindChannelNotFound, err)
	case "not_in_channel", "is_archived", "restricted_action", "ekm_access_denied":
		return core.NewClassifiedError(core.ErrorKindPermissionDenied, err)
	case "rate_limited", "ratelimited":
		return core.NewClassifiedError(core.ErrorKindRateLimited, err)
	case "msg_too_long", "no_text":
		return core.NewClassifiedError(core.ErrorKindInvalidRequest, err)
	}

	// Transport failures and unrecognized codes: treat as the service being
	// unavailable so the bounded retry gets a chance.
	return core.NewClassifiedError(core.ErrorKindServiceUnavailable, err)
}
