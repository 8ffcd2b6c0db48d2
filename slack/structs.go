package slack

// Channel describes Slack conversation
type Channel struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NameNorm   string    `json:"name_normalized,omitempty"`
	Created    int64     `json:"created,omitempty"`
	Creator    string    `json:"creator,omitempty"`
	IsArchived bool      `json:"is_archived"`
	IsPrivate  bool      `json:"is_private"`
	IsMember   bool      `json:"is_member"`
	Topic      TopicInfo `json:"topic"`
	Purpose    TopicInfo `json:"purpose"`
	// skipping all other fields intentionally
}

// TopicInfo describes topic or purpose
type TopicInfo struct {
	Value   string `json:"value"`
	Creator string `json:"creator"`
	LastSet int64  `json:"last_set"`
}

// User describes Slack user
type User struct {
	ID       string      `json:"id"`
	TeamID   string      `json:"team_id,omitempty"`
	Name     string      `json:"name"`
	RealName string      `json:"real_name,omitempty"`
	Deleted  bool        `json:"deleted"`
	IsBot    bool        `json:"is_bot"`
	Profile  UserProfile `json:"profile"`
}

// DisplayName returns the name shown in the Slack UI
func (u User) DisplayName() string {
	return u.Profile.DisplayName
}

// UserProfile describes Slack user profile
type UserProfile struct {
	Title           string `json:"title,omitempty"`
	RealName        string `json:"real_name"`
	RealNameNorm    string `json:"real_name_normalized,omitempty"`
	DisplayName     string `json:"display_name"`
	DisplayNameNorm string `json:"display_name_normalized,omitempty"`
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	// skipping all other fields intentionally
}

// Team describes Slack workspace
type Team struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

// Identity describes the owner of the API token
type Identity struct {
	UserID string `json:"user_id"`
	User   string `json:"user"`
	TeamID string `json:"team_id"`
	Team   string `json:"team"`
	URL    string `json:"url"`
}

// Message describes Slack messages
type Message struct {
	Type     string `json:"type"`
	Subtype  string `json:"subtype,omitempty"`
	User     string `json:"user,omitempty"`
	BotID    string `json:"bot_id,omitempty"`
	Username string `json:"username,omitempty"`
	Text     string `json:"text"`
	TS       string `json:"ts"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

// Mention is a user reference embedded in the message text
type Mention struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
}

// PostResponse describes a successfully posted message
type PostResponse struct {
	Channel string  `json:"channel"`
	TS      string  `json:"ts"`
	Message Message `json:"message"`
}

// response is the envelope shared by every Web API response
type response struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func (r *response) envelope() *response { return r }

type enveloper interface {
	envelope() *response
}

type responseMetadata struct {
	NextCursor string `json:"next_cursor"`
}
