package clients

// SlackAuthTestResponse represents the response from Slack's auth.test API
type SlackAuthTestResponse struct {
	UserID string
	TeamID string
}

// SlackPostMessageResponse represents the response from posting a message to Slack
type SlackPostMessageResponse struct {
	Channel   string
	Timestamp string
}

// SlackMessageConfig collects message options before they are mapped to SDK options
type SlackMessageConfig struct {
	Text     string
	ThreadTS string
}

// SlackMessageOption configures one aspect of an outgoing Slack message
type SlackMessageOption interface {
	Apply(*SlackMessageConfig)
}

type textOption string

func (o textOption) Apply(c *SlackMessageConfig) {
	c.Text = string(o)
}

// WithText sets the message text
func WithText(text string) SlackMessageOption {
	return textOption(text)
}

type threadTSOption string

func (o threadTSOption) Apply(c *SlackMessageConfig) {
	c.ThreadTS = string(o)
}

// WithThreadTS anchors the message to an existing thread
func WithThreadTS(ts string) SlackMessageOption {
	return threadTSOption(ts)
}
