package slack_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/nezorflame/slack-directory/slack"
)

func TestNew(t *testing.T) {
	tr := newFakeTransport()

	tests := []struct {
		n  string
		c  slack.Config
		tr slack.Transport
		e  string
	}{
		{n: "no_token", tr: tr, e: "token can't be empty"},
		{n: "no_transport", c: slack.Config{Token: testToken}, e: "must provide a transport"},
		{n: "defaults", c: slack.Config{Token: testToken}, tr: tr},
	}

	for _, tt := range tests {
		t.Run(tt.n, func(t *testing.T) {
			c, err := slack.New(tt.c, tt.tr, nil)
			if tt.e != "" {
				gt.Error(t, err)
				gt.S(t, err.Error()).Contains(tt.e)
				return
			}
			gt.NoError(t, err).Required()
			gt.V(t, c).NotNil()
		})
	}
}

func TestClient_Defaults(t *testing.T) {
	tr := newFakeTransport().on("conversations.list", pages(t, "channels",
		[]interface{}{channel("C1", "my-room")},
	))
	c, err := slack.New(slack.Config{Token: testToken, APIURL: "https://slack.test/api"}, tr, nil)
	gt.NoError(t, err).Required()

	_, err = c.FindChannel("my-room")
	gt.NoError(t, err).Required()

	p := tr.calls[0].Params
	gt.Equal(t, tr.calls[0].Method, "conversations.list")
	gt.Equal(t, p["limit"], "200")
	gt.Equal(t, p["types"], slack.DefaultChannelTypes)
}

func TestAPIError(t *testing.T) {
	gt.Equal(t, (&slack.APIError{Code: "name_taken"}).Error(), "API error: name_taken")
	gt.Equal(t, (&slack.APIError{Method: "conversations.create", Code: "name_taken"}).Error(),
		"conversations.create: API error: name_taken")
	gt.Equal(t, (&slack.APIError{}).Error(), "API error: unknown")
	gt.False(t, slack.IsAPIError(nil, ""))
	gt.True(t, slack.IsAPIError(&slack.APIError{Code: "x"}, ""))
	gt.False(t, slack.IsAPIError(&slack.APIError{Code: "x"}, "y"))
}

func TestTeamAndIdentity(t *testing.T) {
	tr := newFakeTransport().
		on("team.info", func(map[string]string) (interface{}, error) {
			return ok(map[string]interface{}{"team": map[string]string{"id": "T1", "name": "Acme", "domain": "acme"}}), nil
		}).
		on("auth.test", func(map[string]string) (interface{}, error) {
			return ok(map[string]interface{}{"user_id": "U0000BOT0", "user": "slackdir", "team_id": "T1"}), nil
		})
	c, _ := newTestClient(t, tr, slack.Config{})

	team, err := c.Team()
	gt.NoError(t, err).Required()
	gt.Equal(t, *team, slack.Team{ID: "T1", Name: "Acme", Domain: "acme"})
	gt.Equal(t, slack.ChannelLink(team, &slack.Channel{ID: "C1"}), "https://acme.slack.com/archives/C1")

	id, err := c.AuthTest()
	gt.NoError(t, err).Required()
	gt.Equal(t, id.UserID, "U0000BOT0")
	gt.Equal(t, id.TeamID, "T1")
	gt.Equal(t, tr.last("auth.test").Params["token"], testToken)
}
