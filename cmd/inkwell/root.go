package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eringen/inkwell"
	"github.com/eringen/inkwell/markdown"
	"github.com/eringen/inkwell/style"
	"github.com/eringen/inkwell/views"
)

var (
	cfgFile   string
	verbose   bool
	appConfig inkwell.SiteConfig
)

var rootCmd = &cobra.Command{
	Use:   "inkwell",
	Short: "inkwell - a static blog generator built with Go, Echo, and templ",
	Long: `inkwell turns a directory of Markdown posts into a static blog: an index
page, one page per post with navigation, sharing and comments, a sitemap
and an RSS feed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
}

// loadConfig reads the site configuration. A missing default config file is
// not an error; defaults and INKWELL_* environment variables apply.
func loadConfig() error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("INKWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{
		"title", "author", "description", "url", "lang",
		"contentDir", "staticDir", "outputDir", "databasePath", "addr",
		"excerptLength", "maxImageWidth", "postCacheTTL",
		"comments.repo", "comments.issueTerm", "comments.label", "comments.theme",
	} {
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var cfg inkwell.SiteConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	appConfig = cfg
	return nil
}

func newLogger() inkwell.Logger {
	l := inkwell.NewLogger()
	if verbose {
		l.SetLevel(log.DEBUG)
	}
	return l
}

func siteViews() inkwell.ViewFuncs {
	return views.Funcs(views.Options{Theme: style.Default(), Comments: appConfig.Comments})
}

func converter() *markdown.Renderer {
	return markdown.New(style.Default())
}
