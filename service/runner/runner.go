package runner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"slicer-runner/config"
	"slicer-runner/service/dispatch"
	"slicer-runner/service/host"
)

// Precondition failures. They are reported to the user and never reach the
// network.
var (
	ErrMissingEditor    = errors.New("No active editor found. Please open a script file.")
	ErrEmptyScript      = errors.New("The editor is empty. Please write a script to execute.")
	ErrMissingServerURL = errors.New("Slicer server URL is not configured. Please set it in your settings.")
)

type Dispatcher interface {
	Dispatch(ctx context.Context, payload dispatch.ScriptPayload, destination dispatch.Destination) dispatch.Outcome
}

// Runner is the execute command. It holds no per-invocation state, so
// overlapping Execute calls run independent cycles.
type Runner struct {
	Editor     host.Editor
	Settings   host.Settings
	Notifier   host.Notifier
	Progress   host.Progress
	Display    host.Display
	Dispatcher Dispatcher
	Events     *Events
}

// Execute runs one invocation. Every path ends in exactly one message to the
// user; the returned error is the precondition that stopped it, if any, and
// is for callers that want an exit status.
func (r *Runner) Execute(ctx context.Context) (dispatch.Outcome, error) {
	text, ok := r.Editor.ActiveText()
	if !ok {
		r.Notifier.Warn(ErrMissingEditor.Error())
		return nil, ErrMissingEditor
	}
	payload := dispatch.ScriptPayload(text)
	if payload.Blank() {
		r.Notifier.Warn(ErrEmptyScript.Error())
		return nil, ErrEmptyScript
	}

	url, err := r.Settings.ServerURL()
	if err != nil {
		slog.Error("failed to read settings", "err", err)
	}
	destination := dispatch.Destination(url)
	if destination.Empty() {
		r.Notifier.Error(ErrMissingServerURL.Error())
		return nil, ErrMissingServerURL
	}

	id := uuid.NewString()
	logger := slog.With("command", config.CommandID, "invocation", id)
	logger.Info("dispatching script", "url", url, "language", r.Editor.LanguageID(), "length", len(text))
	r.emit(Event{Type: EventInFlight, InvocationID: id, URL: url})

	var out dispatch.Outcome
	r.Progress.Run(config.ProgressTitle, false, func() {
		out = r.Dispatcher.Dispatch(ctx, payload, destination)
	})

	r.report(out)
	r.emit(Event{Type: EventSettled, InvocationID: id, URL: url, Outcome: out})
	switch {
	case out == nil:
		logger.Warn("script dispatch failed", "outcome", dispatch.UnknownMessage)
	case dispatch.IsFailure(out):
		logger.Warn("script dispatch failed", "outcome", out.Message())
	default:
		logger.Info("script dispatched")
	}
	return out, nil
}

func (r *Runner) report(out dispatch.Outcome) {
	switch o := out.(type) {
	case dispatch.Success:
		r.Notifier.Info(o.Message())
		if o.HasBody {
			r.Display.OutputChannel(config.OutputChannelName).AppendAndShow(o.Body)
		}
	case dispatch.TransportFailure, dispatch.GenericFailure, dispatch.UnknownFailure:
		r.Notifier.Error(o.Message())
	default:
		r.Notifier.Error(dispatch.UnknownMessage)
	}
}

func (r *Runner) emit(ev Event) {
	if r.Events != nil {
		r.Events.publish(ev)
	}
}
