package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/freelodev/freelo-mcp/config"
)

// defaultUpdateRepo is the GitHub repository releases are fetched from
// when no config overrides it.
const defaultUpdateRepo = "freelodev/freelo-mcp"

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update freelo-mcp to the latest release",
	Long:  `Download the latest GitHub release and replace the running binary with it.`,
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if _, err := semver.ParseTolerant(version); err != nil {
		return fmt.Errorf("could not parse version %q, only release builds can self-update: %w", version, err)
	}

	// Credentials are not needed to update; honor a configured repo
	// override when a valid config happens to be present.
	repo := defaultUpdateRepo
	if loaded, err := config.Load(cfgFile); err == nil && loaded.Update.Repo != "" {
		repo = loaded.Update.Repo
	}

	logger.Info().Str("repo", repo).Str("current", version).Msg("Checking for updates")

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s/%s could not be found in %s", runtime.GOOS, runtime.GOARCH, repo)
	}

	if latest.LessOrEqual(version) {
		fmt.Printf("Current version %s is the latest\n", version)
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return errors.New("could not locate executable path")
	}

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}
