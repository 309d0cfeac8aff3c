package cli

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	liveinfra "campusAdmin/internal/modules/live/infrastructure"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [resource]",
		Short: "Stream live change events until interrupted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource := ""
			if len(args) == 1 {
				resource = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			feedURL := strings.TrimSuffix(a.client.BaseURL(), "/api") + "/ws/live"
			sub, err := liveinfra.Subscribe(ctx, feedURL, resource)
			if err != nil {
				return err
			}
			defer sub.Close()

			for {
				select {
				case event, ok := <-sub.Events():
					if !ok {
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s/%s\n",
						event.At.Format("15:04:05"), event.Type, event.Resource, event.ID)
				case <-ctx.Done():
					return nil
				}
			}
		},
	}
}
