package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the session",
	Long: `Clear the active candidate and any running timer. With --all, destroy
every candidate record as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		a := mustApp(cmd)
		wipe, _ := cmd.Flags().GetBool("all")

		if wipe {
			fmt.Print("This deletes every candidate session. Continue? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Aborted.")
				return
			}
		}

		a.Engine.Reset(wipe)
		if wipe {
			fmt.Println("All candidate sessions deleted.")
		} else {
			fmt.Println("Session reset; candidate records kept.")
		}
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Also delete all candidate records")
	rootCmd.AddCommand(resetCmd)
}
