package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mergington/activities/pkg/actmodel"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List activities and their participants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		activities, err := newClient().ListActivities()
		if err != nil {
			return err
		}

		printActivities(cmd.OutOrStdout(), activities)
		return nil
	},
}

func printActivities(w io.Writer, activities map[string]actmodel.Activity) {
	names := make([]string, 0, len(activities))
	for name := range activities {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		a := activities[name]
		_, _ = fmt.Fprintf(w, "%s (%d/%d, %d spots left)\n", name, len(a.Participants), a.MaxParticipants, a.SpotsLeft())
		_, _ = fmt.Fprintf(w, "  %s\n  %s\n", a.Description, a.Schedule)
		if len(a.Participants) > 0 {
			_, _ = fmt.Fprintf(w, "  participants: %s\n", strings.Join(a.Participants, ", "))
		}
	}
}
