package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"praxis/internal/bootstrap"
	"praxis/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, apiURL string

	root := &cobra.Command{
		Use:           "praxis",
		Short:         "Practice admin terminal client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL")

	root.AddCommand(newTUICmd(&configPath, &apiURL))
	root.AddCommand(newLoginCmd(&configPath, &apiURL))
	root.AddCommand(newLogoutCmd(&configPath, &apiURL))
	root.AddCommand(newWhoamiCmd(&configPath, &apiURL))
	root.AddCommand(newSessionCmd(&configPath, &apiURL))
	root.AddCommand(newNoteCmd(&configPath, &apiURL))
	return root
}

func loadApp(configPath, apiURL string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configPath, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run praxis terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(configPath, apiURL *string) *cobra.Command {
	var username, password string
	login := &cobra.Command{
		Use:   "login --username <name> --password <password>",
		Short: "Sign in and store the session cookie",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			out := app.AuthCLI.Login(context.Background(), username, password)
			if !out.Success {
				return fmt.Errorf("%s", out.Message)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s\n", out.Username)
			return nil
		},
	}
	login.Flags().StringVarP(&username, "username", "u", "", "account username")
	login.Flags().StringVarP(&password, "password", "p", "", "account password")
	return login
}

func newLogoutCmd(configPath, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the session cookie",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			app.AuthCLI.Logout(context.Background())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(configPath, apiURL *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			out := app.AuthCLI.Status(context.Background())
			if !out.Authenticated {
				return fmt.Errorf("not signed in")
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Username)
			return nil
		},
	}
}

func newSessionCmd(configPath, apiURL *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Client session records"}

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List client sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			sessions, err := app.SessionsCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", s.ID, s.SessionDate, s.ClientName)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a client session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			s, err := app.SessionsCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\nclient: %s\ndate: %s\ncreated: %s\nnotes:\n%s\n", s.ID, s.ClientName, s.SessionDate, s.CreatedAt, s.Notes)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "session id")
	session.AddCommand(show)

	var clientName, sessionDate, notes string
	add := &cobra.Command{
		Use:   "add --client <name> --date <YYYY-MM-DD>",
		Short: "Record a client session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionsCLI.Create(context.Background(), clientName, sessionDate, notes); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session created")
			return nil
		},
	}
	add.Flags().StringVar(&clientName, "client", "", "client name")
	add.Flags().StringVar(&sessionDate, "date", "", "session date (YYYY-MM-DD)")
	add.Flags().StringVar(&notes, "notes", "", "session notes")
	session.AddCommand(add)

	var editID, editClient, editDate, editNotes string
	edit := &cobra.Command{
		Use:   "edit --id <id> --client <name> --date <YYYY-MM-DD>",
		Short: "Update a client session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(editID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionsCLI.Update(context.Background(), editID, editClient, editDate, editNotes); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session updated")
			return nil
		},
	}
	edit.Flags().StringVar(&editID, "id", "", "session id")
	edit.Flags().StringVar(&editClient, "client", "", "client name")
	edit.Flags().StringVar(&editDate, "date", "", "session date (YYYY-MM-DD)")
	edit.Flags().StringVar(&editNotes, "notes", "", "session notes")
	session.AddCommand(edit)

	var rmID string
	rm := &cobra.Command{
		Use:   "rm --id <id>",
		Short: "Delete a client session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rmID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionsCLI.Delete(context.Background(), rmID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session deleted")
			return nil
		},
	}
	rm.Flags().StringVar(&rmID, "id", "", "session id")
	session.AddCommand(rm)

	return session
}

func newNoteCmd(configPath, apiURL *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Personal notes"}

	note.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List personal notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			notes, err := app.NotesCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no notes")
				return nil
			}
			for _, n := range notes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", n.ID, n.CreatedAt, n.Title)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a personal note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			n, err := app.NotesCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %s\ntitle: %s\ncreated: %s\n\n%s\n", n.ID, n.Title, n.CreatedAt, n.Content)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "note id")
	note.AddCommand(show)

	var title, content string
	add := &cobra.Command{
		Use:   "add --title <title>",
		Short: "Create a personal note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.NotesCLI.Create(context.Background(), title, content); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "note created")
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "note title")
	add.Flags().StringVar(&content, "content", "", "note content")
	note.AddCommand(add)

	var editID, editTitle, editContent string
	edit := &cobra.Command{
		Use:   "edit --id <id> --title <title>",
		Short: "Update a personal note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(editID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.NotesCLI.Update(context.Background(), editID, editTitle, editContent); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "note updated")
			return nil
		},
	}
	edit.Flags().StringVar(&editID, "id", "", "note id")
	edit.Flags().StringVar(&editTitle, "title", "", "note title")
	edit.Flags().StringVar(&editContent, "content", "", "note content")
	note.AddCommand(edit)

	var rmID string
	rm := &cobra.Command{
		Use:   "rm --id <id>",
		Short: "Delete a personal note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(rmID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configPath, *apiURL)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.NotesCLI.Delete(context.Background(), rmID); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "note deleted")
			return nil
		},
	}
	rm.Flags().StringVar(&rmID, "id", "", "note id")
	note.AddCommand(rm)

	return note
}
