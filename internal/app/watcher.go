package app

import (
	"context"
	"sync"

	"github.com/corey/inch/internal/ports"
)

// RenderFunc receives a freshly converted sheet, or the error that prevented it.
type RenderFunc func(report *Report, err error)

// Watch renders the sheet at path once, then again after every change
// reported by w, until ctx is cancelled. Renders never overlap.
func (a *App) Watch(ctx context.Context, path string, w ports.Watcher, render RenderFunc) error {
	var mu sync.Mutex
	refresh := func() {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		render(a.ConvertSheet(path))
	}

	if err := w.Watch(path, func(string) {
		a.log.Debug("sheet changed", "path", path)
		refresh()
	}); err != nil {
		return err
	}
	refresh()

	<-ctx.Done()
	return w.Stop()
}
