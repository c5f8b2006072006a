// sgac-admin runs maintenance tasks against the SGAC database.
//
// Usage:
//
//	sgac-admin <command> [flags]
//
// Commands:
//
//	migrate       Create or update the database schema
//	seed          Create the evaluation indicators
//	create-user   Create an API account
//	purge-tokens  Drop expired revoked tokens
//	report        Export an accreditation workbook
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"sgac_app_go/config"
	"sgac_app_go/db"
	"sgac_app_go/logger"
	"sgac_app_go/models"
	"sgac_app_go/services"
	"sgac_app_go/services/jobs"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "sgac-admin",
		Short:         "SGAC maintenance commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return connect()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			db.Close()
		},
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newSeedCmd(),
		newCreateUserCmd(),
		newPurgeTokensCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// connect loads configuration and opens the database
func connect() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if _, err := logger.Init(cfg.LogLevel, cfg.Environment, cfg.LogFormat); err != nil {
		return err
	}
	return db.Initialize(cfg)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.AutoMigrate(models.All()...); err != nil {
				return err
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the evaluation indicators",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := services.SeedIndicators(db.DB)
			if err != nil {
				return err
			}
			fmt.Printf("%d indicators created\n", created)
			return nil
		},
	}
}

func newCreateUserCmd() *cobra.Command {
	var email string
	var staff bool

	cmd := &cobra.Command{
		Use:   "create-user <username>",
		Short: "Create an API account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword()
			if err != nil {
				return err
			}

			user, err := services.CreateUser(db.DB, args[0], email, password, staff)
			if err != nil {
				if errors.Is(err, services.ErrConflict) {
					return fmt.Errorf("user %q already exists", args[0])
				}
				return err
			}

			fmt.Printf("Created user %s (id %d, staff %t)\n", user.Username, user.ID, user.IsStaff)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().BoolVar(&staff, "staff", true, "Allow the account to modify data")
	return cmd
}

// readPassword prompts twice on a terminal, or reads one line from piped stdin
func readPassword() (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Print("Password: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Password (again): ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}

func newPurgeTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-tokens",
		Short: "Drop revoked tokens that expired",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs.PurgeRevokedTokens(context.Background(), services.NewDBRevocationStore(db.DB))
			return nil
		},
	}
}

func newReportCmd() *cobra.Command {
	var careerID uint
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export the professors workbook, or a career workbook with --career",
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, name, err := buildReport(careerID)
			if err != nil {
				return err
			}
			if output == "" {
				output = name
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			fmt.Println("Wrote", output)
			return nil
		},
	}

	cmd.Flags().UintVar(&careerID, "career", 0, "Career id")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file")
	return cmd
}

func buildReport(careerID uint) (*bytes.Buffer, string, error) {
	if careerID == 0 {
		buf, err := services.ProfessorsReport(db.DB)
		return buf, "professors.xlsx", err
	}

	career, err := services.GetCareer(db.DB, careerID)
	if err != nil {
		return nil, "", fmt.Errorf("career %d: %w", careerID, err)
	}
	buf, err := services.CareerReport(db.DB, career)
	return buf, fmt.Sprintf("career_%d.xlsx", career.ID), err
}
