package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/relink-tools/relink/internal/restore"
	"github.com/relink-tools/relink/internal/watch"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Restore links whenever documents or the inventory change",
	Long: `Run a restore pass, then keep watching the document tree and re-run
whenever a document or the inventory file changes. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := restoreOptions()
		fsys := afero.NewOsFs()
		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()

		// A pass that writes documents retriggers the watcher once; the
		// follow-up pass finds nothing left to change and settles.
		pass := func() {
			sum, err := restore.Run(fsys, opts, out, errOut)
			if err != nil {
				// Keep watching; the inventory may come back.
				fmt.Fprintf(errOut, "Error: %v\n", err)
				return
			}
			if len(sum.Modified) > 0 {
				fmt.Fprintln(out, sum.Totals())
			}
		}

		// The initial pass fails the command outright so a typo'd
		// inventory path is caught before we settle in.
		sum, err := restore.Run(fsys, opts, out, errOut)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sum.Totals())

		w, err := watch.New(opts.Root, opts.Ext, opts.Inventory, pass, errOut)
		if err != nil {
			return err
		}
		defer w.Stop()
		go w.Run()

		fmt.Fprintf(out, "Watching %s for changes. Press Ctrl-C to stop.\n", opts.Root)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}
