package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nezorflame/slack-directory/slack"
)

type app struct {
	viper     *viper.Viper
	transport slack.Transport

	cfg    *config
	client *slack.Client
}

func newRootCmd(a *app) *cobra.Command {
	var (
		cfgName string
		debug   bool
	)

	root := &cobra.Command{
		Use:           "slackdir",
		Short:         "Find, create and manage Slack channels and users",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if debug {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
			return a.init(cfgName)
		},
	}
	root.PersistentFlags().StringVar(&cfgName, "config", "config", "config file name")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug level for logs")

	root.AddCommand(a.channelCmd(), a.userCmd(), a.inviteCmd(), a.postCmd(), a.whoamiCmd())
	return root
}

func (a *app) init(cfgName string) (err error) {
	if a.viper == nil {
		a.viper = viper.New()
	}
	if err = loadConfig(a.viper, cfgName); err != nil {
		return err
	}
	if a.cfg, err = parseConfig(a.viper); err != nil {
		return errors.Wrap(err, "unable to init config")
	}
	if a.transport == nil {
		a.transport = slack.NewHTTPTransport(a.cfg.Timeout)
	}
	return a.newClient()
}

func (a *app) newClient() (err error) {
	a.client, err = slack.New(a.cfg.Slack, a.transport, logrus.StandardLogger())
	return errors.Wrap(err, "unable to create Slack client")
}

// serviceUser fills in the service account ID from auth.test if it isn't configured
func (a *app) serviceUser() error {
	if a.cfg.Slack.ServiceUserID != "" {
		return nil
	}

	id, err := a.client.AuthTest()
	if err != nil {
		return err
	}
	logrus.WithField("user", id.UserID).Debugln("Resolved service account")
	a.cfg.Slack.ServiceUserID = id.UserID
	return a.newClient()
}

func (a *app) channelCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "channel", Short: "Channel operations"}

	find := &cobra.Command{
		Use:   "find NAME",
		Short: "Find a channel by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := a.client.FindChannel(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ch)
		},
	}

	var private bool
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a channel or return the existing one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := a.client.CreateChannel(strings.Join(args, " "), private)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ch)
		},
	}
	create.Flags().BoolVar(&private, "private", false, "create a private channel")

	archive := &cobra.Command{
		Use:   "archive NAME",
		Short: "Archive a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.ArchiveChannel(args[0]); err != nil {
				return err
			}
			logrus.Infof("Channel %s archived", slack.CanonicalChannelName(args[0]))
			return nil
		},
	}

	var opts slack.HistoryOptions
	history := &cobra.Command{
		Use:   "history NAME",
		Short: "Print channel messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msgs, err := a.client.RoomHistory(args[0], opts)
			if err != nil {
				if slack.IsNotFound(err) {
					logrus.Warnf("Channel %s not found", args[0])
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), msgs)
		},
	}
	history.Flags().IntVar(&opts.Count, "count", 0, "maximum number of messages")
	history.Flags().StringVar(&opts.Latest, "latest", "", "end of the time range")
	history.Flags().StringVar(&opts.Oldest, "oldest", "", "start of the time range")
	history.Flags().BoolVar(&opts.Inclusive, "inclusive", false, "include the range boundaries")

	link := &cobra.Command{
		Use:   "link NAME",
		Short: "Print the browser URL of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := a.client.FindChannel(args[0])
			if err != nil {
				return err
			}
			team, err := a.client.Team()
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), slack.ChannelLink(team, ch)+"\n")
			return err
		},
	}

	cmd.AddCommand(find, create, archive, history, link)
	return cmd
}

func (a *app) userCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "User operations"}
	cmd.AddCommand(&cobra.Command{
		Use:   "find NAME",
		Short: "Find a user by display name or handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.client.FindUser(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), u)
		},
	})
	return cmd
}

func (a *app) inviteCmd() *cobra.Command {
	var (
		user, channel slack.Ref
		notify        bool
	)

	cmd := &cobra.Command{
		Use:   "invite",
		Short: "Invite a user into a channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if user.ID == "" && user.Name == "" {
				return errors.New("either --user or --user-id is required")
			}
			if channel.ID == "" && channel.Name == "" {
				return errors.New("either --channel or --channel-id is required")
			}

			if !notify {
				ch, err := a.client.Invite(user, channel)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), ch)
			}

			if err := a.serviceUser(); err != nil {
				return err
			}
			u := &slack.User{ID: user.ID}
			if u.ID == "" {
				var err error
				if u, err = a.client.FindUser(user.Name); err != nil {
					return errors.Wrapf(err, "unable to find user %s", user.Name)
				}
			}
			ch := &slack.Channel{ID: channel.ID}
			if ch.ID == "" {
				var err error
				if ch, err = a.client.FindChannel(channel.Name); err != nil {
					return errors.Wrapf(err, "unable to find channel %s", channel.Name)
				}
			}

			notified, err := a.client.InviteAndNotify(*u, *ch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"user":     u.ID,
				"channel":  ch.ID,
				"notified": notified,
			})
		},
	}
	cmd.Flags().StringVar(&user.Name, "user", "", "user display name or handle")
	cmd.Flags().StringVar(&user.ID, "user-id", "", "user ID")
	cmd.Flags().StringVar(&channel.Name, "channel", "", "channel name")
	cmd.Flags().StringVar(&channel.ID, "channel-id", "", "channel ID")
	cmd.Flags().BoolVar(&notify, "notify", false, "post a notice if the user is already a member")
	return cmd
}

func (a *app) postCmd() *cobra.Command {
	var (
		msg        slack.OutgoingMessage
		mention    string
		attachment slack.Attachment
	)

	cmd := &cobra.Command{
		Use:   "post CHANNEL TEXT...",
		Short: "Post a message into a channel",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg.Channel = args[0]
			msg.Text = slack.MentionText(mention, strings.Join(args[1:], " "))
			if attachment.Text != "" || attachment.Title != "" {
				attachment.Fallback = attachment.Text
				msg.Attachments = []slack.Attachment{attachment}
			}

			resp, err := a.client.PostMessage(msg)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&mention, "mention", "", "ID of the user to mention first")
	cmd.Flags().StringVar(&msg.Username, "username", "", "bot username")
	cmd.Flags().StringVar(&msg.IconEmoji, "icon-emoji", "", "bot icon emoji")
	cmd.Flags().StringVar(&msg.IconURL, "icon-url", "", "bot icon URL")
	cmd.Flags().BoolVar(&msg.LinkNames, "link-names", false, "link channel and user names")
	cmd.Flags().StringVar(&msg.ThreadTS, "thread", "", "parent message timestamp")
	cmd.Flags().StringVar(&attachment.Title, "attachment-title", "", "attachment title")
	cmd.Flags().StringVar(&attachment.Text, "attachment-text", "", "attachment text")
	cmd.Flags().StringVar(&attachment.Color, "attachment-color", "", "attachment color")
	return cmd
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the identity of the configured token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.client.AuthTest()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), id)
		},
	}
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to marshal output")
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
