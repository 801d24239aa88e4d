package watch

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long to wait after the last relevant event before
// firing the callback.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches a tree for document and inventory changes.
type Watcher struct {
	fw       *fsnotify.Watcher
	ext      string
	invPath  string
	onChange func()
	errOut   io.Writer

	// Debounce may be shortened before Run starts (tests do this).
	Debounce time.Duration
}

// New creates a watcher over the tree rooted at root. onChange fires,
// debounced, whenever a file with ext or the inventory file changes.
func New(root, ext, invPath string, onChange func(), errOut io.Writer) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fw:       fw,
		ext:      ext,
		invPath:  filepath.Clean(invPath),
		onChange: onChange,
		errOut:   errOut,
		Debounce: DefaultDebounce,
	}

	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", root, err)
	}
	return w, nil
}

// addTree registers every directory under root; fsnotify watches are not
// recursive.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fw.Add(path)
		}
		return nil
	})
}

// Run blocks, dispatching debounced change callbacks until Stop is called.
func (w *Watcher) Run() {
	delay := time.NewTimer(time.Hour)
	delay.Stop()

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}

			// New subdirectories need their own watches.
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						fmt.Fprintf(w.errOut, "Could not watch %s: %v\n", ev.Name, err)
					}
				}
			}

			if w.relevant(ev.Name) {
				delay.Reset(w.Debounce)
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(w.errOut, "Watch error: %v\n", err)

		case <-delay.C:
			w.onChange()
		}
	}
}

// Stop terminates the watcher; Run returns shortly after.
func (w *Watcher) Stop() {
	w.fw.Close()
}

func (w *Watcher) relevant(path string) bool {
	return strings.HasSuffix(path, w.ext) || filepath.Clean(path) == w.invPath
}
