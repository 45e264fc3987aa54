package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"roomdesigner/internal/config"
)

func newDesignsCmd(cfg *config.Config) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "designs",
		Short: "List the designs owned by a user",
		RunE: func(c *cobra.Command, args []string) error {
			e, err := openEnv(c.Context(), *cfg)
			if err != nil {
				return err
			}
			defer e.Close()

			if userID == "" {
				u, ok := e.users.Current()
				if !ok {
					return fmt.Errorf("no signed-in user: pass --user")
				}
				userID = u.ID
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tROOM\tITEMS\tUPDATED")
			for _, d := range e.store.GetUserDesigns(userID) {
				r := d.RoomSettings
				fmt.Fprintf(w, "%s\t%s\t%gx%gx%g\t%d\t%s\n",
					d.ID, d.Name, r.Width, r.Length, r.Height, len(d.Furniture), d.UpdatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&userID, "user", "u", "", "Owner id (defaults to the signed-in user)")
	return cmd
}
