package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new inkwell site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		fmt.Printf("Creating new inkwell site: %s\n\n", dir)
		created, err := scaffold.New(dir, time.Now())
		for _, f := range created {
			fmt.Printf("  created %s\n", f)
		}
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("Done! Next steps:")
		fmt.Println()
		fmt.Printf("  cd %s\n", dir)
		fmt.Println("  inkwell serve")
		fmt.Println()
		fmt.Println("Edit config.yaml to set the site title, URL and comment repository.")
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <title>",
	Short: "Create a new post in the content directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		path, err := inkwell.NewPostFile(appConfig.ContentDir, args[0], time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("created %s\n", path)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the inkwell version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inkwell %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(newCmd, postCmd, versionCmd)
}
