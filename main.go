/*
slackdir - Slack directory client: channel and user lookup, invites and messages over the Web API
*/

package main // import "github.com/nezorflame/slack-directory"

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		logrus.WithError(err).Errorln("Command failed")
		os.Exit(1)
	}
}
