package main

import (
	"context"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/polyfloyd/glwindow/device"
)

// watchSources resolves the includes of the files and sends them over out
// each time one of them changes. Bursts of changes are collapsed into a
// single reload.
func watchSources(ctx context.Context, filenames []string, out chan<- []device.SourceFile) {
	for ctx.Err() == nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			log.Println(err)
			return
		}

		files, err := device.Includes(filenames...)
		if err != nil {
			log.Println(err)
			// Watch the files we were asked for, the one that is broken is
			// likely among them.
			for _, f := range filenames {
				watcher.Add(f)
			}
		} else {
			for _, f := range files {
				watcher.Add(f.Filename)
			}
			select {
			case out <- files:
			case <-ctx.Done():
				watcher.Close()
				return
			}
		}

		select {
		case <-watcher.Events:
			t := time.NewTimer(time.Millisecond * 20)
		outer:
			for {
				select {
				case <-watcher.Events:
				case <-t.C:
					break outer
				}
			}
		case err := <-watcher.Errors:
			log.Println(err)
		case <-ctx.Done():
		}
		watcher.Close()
	}
}
