package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"lightbox/internal/library"
	"lightbox/internal/service"
)

var (
	dbPathFlag string
	lib        *library.Library
	svc        *service.Service
)

func cliLogger(msg string) {
	log.Printf("[lightbox-cli] %s", msg)
}

// NewRootCmd creates the root command for the CLI application.
// It takes a function `getServiceAndLib` which is responsible for initializing
// and returning the service and library instances. This allows tests to inject
// test-specific instances.
func NewRootCmd(getServiceAndLib func(dbPath string, logger library.LoggerFunc) (*service.Service, *library.Library, error)) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "lightbox-cli",
		Short: "Lightbox CLI - manage the media metadata library",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			svc, lib, err = getServiceAndLib(dbPathFlag, cliLogger)
			if err != nil {
				return fmt.Errorf("failed to initialize service and library: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if lib != nil {
				lib.Close()
			}
		},
	}

	// Scan command
	scanCmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory and ingest its media files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			added, err := svc.ScanDirectory(dir)
			if err != nil {
				return err
			}
			cmd.Printf("Added %d media files from %s\n", added, dir)
			return nil
		},
	}
	rootCmd.AddCommand(scanCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all media identifiers in collection order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := svc.ListMedia()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				cmd.Println("No media found in the library.")
				return nil
			}
			for _, id := range ids {
				cmd.Println(id)
			}
			return nil
		},
	}
	rootCmd.AddCommand(listCmd)

	// Info command
	infoCmd := &cobra.Command{
		Use:   "info [media]",
		Short: "Show stored metadata for a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			info, err := svc.Info(id)
			if err != nil {
				return err
			}
			cmd.Printf("Label:   %s\n", info.DisplayLabel)
			cmd.Printf("Created: %s\n", info.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
	rootCmd.AddCommand(infoCmd)

	// Remove command
	removeCmd := &cobra.Command{
		Use:   "remove [media]",
		Short: "Remove a media file's record from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			return svc.RemoveMedia(id)
		},
	}
	rootCmd.AddCommand(removeCmd)

	// Clean command
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove records whose backing files no longer exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := svc.CleanLibrary()
			if err != nil {
				return err
			}
			cmd.Printf("Removed %d stale records\n", removed)
			return nil
		},
	}
	rootCmd.AddCommand(cleanCmd)

	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "dbpath", "", "Path to the library database file (defaults to the user config dir)")

	return rootCmd
}

// defaultServiceAndLib is the production initializer.
func defaultServiceAndLib(dbPath string, logger library.LoggerFunc) (*service.Service, *library.Library, error) {
	l, err := library.Open(dbPath, logger)
	if err != nil {
		return nil, nil, err
	}
	s := service.NewService(l, service.FSScanner{}, logger)
	return s, l, nil
}

var rootCmd = NewRootCmd(defaultServiceAndLib)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
