package ports

// Watcher monitors a single measurement sheet and reports when it changes.
// The adapter (fsnotify) watches the file's parent directory so that editors
// which save by rename-and-replace keep triggering events. Only one Watch call
// should be active at a time.
type Watcher interface {
	// Watch starts monitoring path. onChange is called with the absolute path
	// of the sheet after every (debounced) write, create or rename. The callback
	// may be invoked from any goroutine. Returns an error if the parent
	// directory doesn't exist or permissions are insufficient.
	Watch(path string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
