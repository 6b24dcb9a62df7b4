package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"slicer-runner/config"
	"slicer-runner/service/dispatch"
	"slicer-runner/service/host"
	"slicer-runner/service/runner"
)

var executeCmd = &cobra.Command{
	Use:   "execute [script]",
	Short: "Send a script (or stdin) to the configured Slicer server",
	Long: "Runs " + config.CommandID + ": posts the script as text/plain to the configured " +
		"serverUrl and prints the server's response under \"" + config.OutputChannelName + "\".",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		notifier := host.NewTerminalNotifier(os.Stderr)

		var editor *host.DocumentEditor
		var err error
		if len(args) == 1 {
			editor, err = host.OpenFile(args[0])
		} else {
			editor, err = host.OpenStdin(os.Stdin)
		}
		if err != nil {
			slog.Error("failed to open script", "err", err)
			notifier.Error("An error occurred: " + err.Error())
			os.Exit(1)
		}

		events := runner.NewEvents()
		events.Subscribe(func(ev runner.Event) {
			if ev.Outcome == nil {
				slog.Debug("dispatch state", "state", ev.Type, "invocation", ev.InvocationID, "url", ev.URL)
				return
			}
			slog.Debug("dispatch state", "state", ev.Type, "invocation", ev.InvocationID, "url", ev.URL,
				"failed", dispatch.IsFailure(ev.Outcome))
		})

		r := &runner.Runner{
			Editor:     editor,
			Settings:   loader(cmd),
			Notifier:   notifier,
			Progress:   host.NewTerminalProgress(os.Stderr),
			Display:    host.NewTerminalDisplay(os.Stdout),
			Dispatcher: dispatch.New(nil),
			Events:     events,
		}
		out, err := r.Execute(cmd.Context())
		if err != nil || dispatch.IsFailure(out) {
			os.Exit(1)
		}
	},
}

func init() {
	executeCmd.Flags().String("server-url", "", "override the configured serverUrl")
}
