package cmd

import (
	"fmt"

	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/config"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/finals"
	"github.com/Amorelli-Matthew/Final-Schedule-Generator/pkg/matcher"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage finalsgen configuration",
	Long:  "View or edit your local configuration settings (finals page URL, default matching policy, default output path).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setURL, _ := cmd.Flags().GetString("set-url")
		setPolicy, _ := cmd.Flags().GetString("set-policy")
		setOutput, _ := cmd.Flags().GetString("set-output")

		changed := false
		if setURL != "" {
			cfg.FinalsURL = setURL
			changed = true
		}
		if setPolicy != "" {
			if _, err := matcher.ParsePolicy(setPolicy); err != nil {
				return err
			}
			cfg.DefaultPolicy = setPolicy
			changed = true
		}
		if setOutput != "" {
			cfg.DefaultOutput = setOutput
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("Configuration saved.")
			return nil
		}

		// No flags: just show the effective settings.
		url := cfg.FinalsURL
		if url == "" {
			url = finals.DefaultURL + " (default)"
		}
		policy := cfg.DefaultPolicy
		if policy == "" {
			policy = "tolerant (default)"
		}
		output := cfg.DefaultOutput
		if output == "" {
			output = "finals_schedule.csv (default)"
		}

		fmt.Printf("Finals page URL: %s\n", url)
		fmt.Printf("Matching policy: %s\n", policy)
		fmt.Printf("Output path:     %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().String("set-url", "", "Set the finals schedule page URL")
	configCmd.Flags().String("set-policy", "", "Set the default matching policy (exact or tolerant)")
	configCmd.Flags().String("set-output", "", "Set the default CSV output path")
}
