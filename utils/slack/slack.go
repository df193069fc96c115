package slack

import (
	"regexp"
	"strings"
)

// mentionRegex matches mention tokens in the format <@U123456>, covering
// both regular users and the bot's own mention.
var mentionRegex = regexp.MustCompile(`<@([UW][A-Z0-9]+)>`)

// NormalizeMentionText strips mention tokens from raw Slack message text
// before it is forwarded to the language model, then trims the leading and
// trailing whitespace the removal leaves behind. Everything else - emoji
// codes, links, formatting - passes through untouched; this is a surface
// strip, not a markup parser.
func NormalizeMentionText(raw string) string {
	return strings.TrimSpace(mentionRegex.ReplaceAllString(raw, ""))
}

// ContainsMention reports whether text still carries a mention token
func ContainsMention(text string) bool {
	return mentionRegex.MatchString(text)
}
