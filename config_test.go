package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/spf13/viper"

	"github.com/nezorflame/slack-directory/slack"
)

func TestParseConfig(t *testing.T) {
	newViper := func(set map[string]interface{}) *viper.Viper {
		v := viper.New()
		gt.NoError(t, loadConfig(v, "slackdir-missing-config")).Required()
		for k, val := range set {
			v.Set(k, val)
		}
		return v
	}

	t.Run("defaults", func(t *testing.T) {
		c, err := parseConfig(newViper(map[string]interface{}{"slack.token": "xoxb-1"}))
		gt.NoError(t, err).Required()
		gt.Equal(t, c.Slack.Token, "xoxb-1")
		gt.Equal(t, c.Slack.APIURL, slack.DefaultAPIURL)
		gt.Equal(t, c.Slack.PageLimit, slack.DefaultPageLimit)
		gt.Equal(t, c.Slack.MaxPages, slack.DefaultMaxPages)
		gt.Equal(t, c.Slack.ChannelTypes, slack.DefaultChannelTypes)
		gt.Equal(t, c.Slack.ServiceUserID, "")
		gt.Equal(t, c.Timeout, slack.DefaultTimeout)
	})

	testCases := []struct {
		name string
		set  map[string]interface{}
		err  string
	}{
		{"no token", map[string]interface{}{}, "slack.token can't be empty"},
		{"zero page limit", map[string]interface{}{"slack.token": "x", "slack.page_limit": 0}, "slack.page_limit must be positive"},
		{"negative max pages", map[string]interface{}{"slack.token": "x", "slack.max_pages": -1}, "slack.max_pages must be positive"},
		{"zero timeout", map[string]interface{}{"slack.token": "x", "slack.timeout": "0s"}, "slack.timeout must be positive"},
		{"empty API URL", map[string]interface{}{"slack.token": "x", "slack.api_url": ""}, "slack.api_url can't be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig(newViper(tc.set))
			gt.Error(t, err)
			gt.S(t, err.Error()).Contains(tc.err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`[slack]
token = "xoxb-file"
service_user_id = "U0000BOT0"
max_pages = 7
timeout = "2s"
`)
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "slackdir.toml"), content, 0600)).Required()

	v := viper.New()
	v.AddConfigPath(dir)
	gt.NoError(t, loadConfig(v, "slackdir")).Required()

	c, err := parseConfig(v)
	gt.NoError(t, err).Required()
	gt.Equal(t, c.Slack.Token, "xoxb-file")
	gt.Equal(t, c.Slack.ServiceUserID, "U0000BOT0")
	gt.Equal(t, c.Slack.MaxPages, 7)
	gt.Equal(t, c.Timeout, 2*time.Second)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("SLACKDIR_SLACK_TOKEN", "xoxb-env")
	t.Setenv("SLACKDIR_SLACK_PAGE_LIMIT", "25")

	v := viper.New()
	gt.NoError(t, loadConfig(v, "slackdir-missing-config")).Required()

	c, err := parseConfig(v)
	gt.NoError(t, err).Required()
	gt.Equal(t, c.Slack.Token, "xoxb-env")
	gt.Equal(t, c.Slack.PageLimit, 25)
}
