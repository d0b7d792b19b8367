package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:     "server",
	Short:   "Manage named server profiles",
	GroupID: "system",
	// All server subcommands are local file operations.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

var serverAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Add or update a named server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, url := args[0], args[1]

		cfg, err := loadServersConfig()
		if err != nil {
			return err
		}
		cfg.Servers[name] = Server{URL: url}
		if err := saveServersConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("server %q added (%s)\n", name, url)
		return nil
	},
}

var serverRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a named server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := loadServersConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Servers[name]; !ok {
			return fmt.Errorf("server %q not found", name)
		}
		delete(cfg.Servers, name)
		if cfg.Active == name {
			cfg.Active = ""
		}
		if err := saveServersConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("server %q removed\n", name)
		return nil
	},
}

var serverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all servers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadServersConfig()
		if err != nil {
			return err
		}
		if len(cfg.Servers) == 0 {
			fmt.Println("no servers configured")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tURL")
		for name, s := range cfg.Servers {
			marker := "  "
			if name == cfg.Active {
				marker = "* "
			}
			fmt.Fprintf(w, "%s%s\t%s\n", marker, name, s.URL)
		}
		return w.Flush()
	},
}

var serverUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := loadServersConfig()
		if err != nil {
			return err
		}
		if _, ok := cfg.Servers[name]; !ok {
			return fmt.Errorf("server %q not found", name)
		}
		cfg.Active = name
		if err := saveServersConfig(cfg); err != nil {
			return err
		}
		fmt.Printf("active server set to %q\n", name)
		return nil
	},
}

var serverShowCmd = &cobra.Command{
	Use:   "show [<name>]",
	Short: "Show details for a server (defaults to active)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadServersConfig()
		if err != nil {
			return err
		}

		name := cfg.Active
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			return fmt.Errorf("no active server; specify a name or run 'trailmark server use <name>'")
		}

		s, ok := cfg.Servers[name]
		if !ok {
			return fmt.Errorf("server %q not found", name)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		active := ""
		if name == cfg.Active {
			active = " (active)"
		}
		fmt.Fprintf(w, "name:\t%s%s\n", name, active)
		fmt.Fprintf(w, "url:\t%s\n", s.URL)
		return w.Flush()
	},
}

func init() {
	serverCmd.AddCommand(serverAddCmd)
	serverCmd.AddCommand(serverRemoveCmd)
	serverCmd.AddCommand(serverListCmd)
	serverCmd.AddCommand(serverUseCmd)
	serverCmd.AddCommand(serverShowCmd)
}
