package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/committools/hookman/cli"
	"github.com/committools/hookman/manifest"
)

// debounceWindow absorbs the write bursts editors produce on save.
const debounceWindow = 100 * time.Millisecond

// NewWatchCmd re-checks the manifest whenever it changes on disk.
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-validate the manifest whenever it changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := cli.GetOptions(cmd)
			logger := cli.GetLogger(cmd)

			path, err := cli.ResolveManifestPath(opts.ManifestFile)
			if err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			// Watch the directory, not the file: editors replace files on
			// save, which drops a direct file watch.
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return err
			}

			checkManifest(path, logger)

			var timer *time.Timer
			events := make(chan struct{}, 1)

			go func() {
				for {
					select {
					case event, ok := <-watcher.Events:
						if !ok {
							return
						}
						if filepath.Clean(event.Name) != filepath.Clean(path) {
							continue
						}
						if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
							continue
						}
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(debounceWindow, func() {
							select {
							case events <- struct{}{}:
							default:
							}
						})
					case err, ok := <-watcher.Errors:
						if !ok {
							return
						}
						logger.WithError(err).Warn("Watcher error")
					}
				}
			}()

			fmt.Printf("watching %s (ctrl-c to stop)\n", path)
			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case <-events:
					checkManifest(path, logger)
				}
			}
		},
	}
}

func checkManifest(path string, logger *logrus.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.WithError(err).Error("Failed to read manifest")
		return
	}

	findings, err := manifest.Lint(data)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return
	}

	for _, f := range findings {
		fmt.Printf("%s: %s\n", path, f)
	}

	if manifest.HasErrors(findings) {
		return
	}

	m, err := manifest.LoadFromBytes(data)
	if err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return
	}
	if err := m.Validate(); err != nil {
		fmt.Printf("%s: %v\n", path, err)
		return
	}

	fmt.Printf("%s: valid (%d hooks across %d repos)\n", path, m.HookCount(), m.RepoCount())
}
