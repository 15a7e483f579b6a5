package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the connection to Freelo",
	Long:  `Check that Freelo is reachable with the configured credentials and display basic account information.`,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Printf("Checking connection to Freelo as %s...\n", cfg.Freelo.Email)

	ctx := context.Background()
	if err := client.CheckConnection(ctx); err != nil {
		return fmt.Errorf("connection check failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")

	// Get some basic stats
	users, err := client.GetUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to get users: %w", err)
	}

	projects, err := client.GetProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}

	states, err := client.GetStates(ctx)
	if err != nil {
		return fmt.Errorf("failed to get task states: %w", err)
	}

	fmt.Printf("\nFreelo Account:\n")
	fmt.Printf("- Users: %d\n", len(users))
	fmt.Printf("- Projects: %d\n", len(projects))

	if len(projects) > 0 {
		fmt.Printf("\nProjects:\n")
		for _, project := range projects {
			fmt.Printf("  • %s (ID: %d)\n", project.Name, project.ID)
		}
	}

	if len(states) > 0 {
		fmt.Printf("\nTask states:\n")
		for _, state := range states {
			fmt.Printf("  • %s (ID: %d)\n", state.State, state.ID)
		}
	}

	return nil
}
