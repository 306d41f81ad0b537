package command

import (
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// report is the tabular result of scheduling one input file.
type report struct {
	header []string
	rows   [][]string
}

// runBatch schedules every file with run, at most cl.workers at a time, and
// renders the reports in argument order once all of them succeeded.
func (cl *Commandline) runBatch(cmd *cobra.Command, files []string, run func(name string) (report, error)) error {
	reports := xsync.NewMapOf[string, report]()

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cl.workers)
	for _, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rep, err := run(name)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			reports.Store(name, rep)
			cl.log.Debug("file scheduled", "file", name, "rows", len(rep.rows))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, name := range files {
		rep, _ := reports.Load(name)
		if err := cl.render(out, name, rep, i, len(files)); err != nil {
			return err
		}
	}

	return nil
}
