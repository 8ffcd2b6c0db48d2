package main

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/nezorflame/slack-directory/slack"
)

const envPrefix = "SLACKDIR"

type config struct {
	Slack   slack.Config
	Timeout time.Duration
}

// loadConfig reads the .env file, the config file and the environment into v
func loadConfig(v *viper.Viper, name string) error {
	if err := godotenv.Load(); err != nil {
		logrus.Debugln("No .env file loaded")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("slack.api_url", slack.DefaultAPIURL)
	v.SetDefault("slack.page_limit", slack.DefaultPageLimit)
	v.SetDefault("slack.max_pages", slack.DefaultMaxPages)
	v.SetDefault("slack.channel_types", slack.DefaultChannelTypes)
	v.SetDefault("slack.timeout", slack.DefaultTimeout)

	v.SetConfigName(name)
	v.AddConfigPath("/etc/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError, viper.UnsupportedConfigError:
			logrus.Debugln("Config file not found, using environment only")
		default:
			return errors.Wrap(err, "unable to read config")
		}
	}

	return nil
}

func parseConfig(v *viper.Viper) (c *config, err error) {
	c = &config{}

	if c.Slack.Token = v.GetString("slack.token"); c.Slack.Token == "" {
		err = errors.New("slack.token can't be empty")
		return
	}

	if c.Slack.APIURL = v.GetString("slack.api_url"); c.Slack.APIURL == "" {
		err = errors.New("slack.api_url can't be empty")
		return
	}

	if c.Slack.PageLimit = v.GetInt("slack.page_limit"); c.Slack.PageLimit <= 0 {
		err = errors.New("slack.page_limit must be positive")
		return
	}

	if c.Slack.MaxPages = v.GetInt("slack.max_pages"); c.Slack.MaxPages <= 0 {
		err = errors.New("slack.max_pages must be positive")
		return
	}

	if c.Timeout = v.GetDuration("slack.timeout"); c.Timeout <= 0 {
		err = errors.New("slack.timeout must be positive")
		return
	}

	c.Slack.ChannelTypes = v.GetString("slack.channel_types")

	// resolved with auth.test when empty
	c.Slack.ServiceUserID = v.GetString("slack.service_user_id")

	return
}
