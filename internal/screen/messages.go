package screen

// InputChangedMsg signals that the input CSV was modified on disk while
// a session is running. Decisions keep applying to the loaded copy; the
// user is warned so they can restart when it matters.
type InputChangedMsg struct {
	Path string
}

// WatchErrorMsg carries a file watcher failure. Watching is best effort,
// so these are logged and otherwise ignored.
type WatchErrorMsg struct {
	Err error
}

// clearFlashMsg removes the transient status bar message.
type clearFlashMsg struct{}
