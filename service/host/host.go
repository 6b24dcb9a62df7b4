// Package host holds the narrow interfaces the command uses to talk to its
// environment, plus terminal implementations of them.
package host

// Editor exposes the active document. ok is false when there is no active
// editor at all.
type Editor interface {
	ActiveText() (text string, ok bool)
	LanguageID() string
}

// Settings is read fresh on every call.
type Settings interface {
	ServerURL() (string, error)
}

type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Progress shows title while fn runs.
type Progress interface {
	Run(title string, cancellable bool, fn func())
}

type Display interface {
	OutputChannel(name string) OutputChannel
}

// OutputChannel is an append-only named panel. AppendAndShow does both
// steps as one operation so concurrent writers never show each other's lines.
type OutputChannel interface {
	AppendLine(line string)
	Show()
	AppendAndShow(line string)
}
