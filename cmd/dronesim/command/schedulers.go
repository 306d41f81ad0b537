package command

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-drones/container"
	"github.com/arloliu/go-drones/drone"
	"github.com/arloliu/go-drones/sword"
)

func (cl *Commandline) swordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "swords FILE...",
		Short: "Compute the time each sword request is filled and how long it waited",
		Long: `Each input file starts with the header "n m t", followed by the cleaning
times of the first min(n, m) swords and then m request times.

Prints one "filled wait" line per request, in request order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sword.NewScheduler(
				sword.WithLogger(cl.log),
				sword.WithContainerOptions(container.WithLogger(cl.log)),
			)

			return cl.runBatch(cmd, args, func(name string) (report, error) {
				times, err := s.CleaningTimesFromFile(name)
				if err != nil {
					return report{}, err
				}

				rep := report{header: []string{"filled", "wait"}}
				for _, ct := range times {
					rep.rows = append(rep.rows, []string{
						strconv.FormatInt(ct.Filled, 10),
						strconv.FormatInt(ct.Wait, 10),
					})
				}

				return rep, nil
			})
		},
	}
}

func (cl *Commandline) itemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "items FILE...",
		Short: "Compute the time each item request is delivered",
		Long: `Each input file starts with the header "count t", where t is the one-way
travel time to an item, followed by the request times.

Prints one "index filled" line per request, in delivery order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := drone.NewScheduler(
				drone.WithLogger(cl.log),
				drone.WithContainerOptions(container.WithLogger(cl.log)),
			)

			return cl.runBatch(cmd, args, func(name string) (report, error) {
				times, err := s.RetrievalTimesFromFile(name)
				if err != nil {
					return report{}, err
				}

				rep := report{header: []string{"index", "filled"}}
				for _, rt := range times {
					rep.rows = append(rep.rows, []string{
						strconv.Itoa(rt.Index),
						strconv.FormatInt(rt.Filled, 10),
					})
				}

				return rep, nil
			})
		},
	}
}
