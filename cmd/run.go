package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmate/internal/scheduler"
)

// runCompanion is the default command: a long-running loop that pops a
// question at a random interval within the configured bounds.
func runCompanion(cmd *cobra.Command) error {
	d, err := openDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	immediate, _ := cmd.Flags().GetBool("now")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The scheduler fires on its own goroutine; the question window must
	// run on this one, so fires are funneled through a channel.
	fires := make(chan struct{}, 1)
	timing := d.settings.Get().Timing
	sched := scheduler.New(timing.MinInterval(), timing.MaxInterval(), func() {
		select {
		case fires <- struct{}{}:
		default:
		}
	})
	defer sched.Stop()

	if immediate {
		fires <- struct{}{}
	} else {
		sched.Schedule()
		announceNext(sched)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fires:
			if err := d.askOnce(ctx, d.prefs()); err != nil {
				return err
			}
			// Settings may have changed between questions.
			timing = d.settings.Get().Timing
			sched.SetInterval(timing.MinInterval(), timing.MaxInterval())
			sched.Schedule()
			announceNext(sched)
		}
	}
}

func announceNext(sched *scheduler.Scheduler) {
	if next := sched.NextAt(); !next.IsZero() {
		fmt.Printf("Next question at %s. Ctrl+C to quit.\n", next.Format("15:04:05"))
	}
}

func init() {
	rootCmd.Flags().Bool("now", false, "Show the first question immediately instead of waiting")
}
