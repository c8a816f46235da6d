// Package main provides the readmefeed CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/shrivarsha/readmefeed/internal/blog"
	"github.com/shrivarsha/readmefeed/internal/config"
	"github.com/shrivarsha/readmefeed/internal/readme"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags-injected version and falls back to
// module build info so `go install ...@version` still reports a version.
func resolveVersion(ldflagsVersion string, info *debug.BuildInfo) string {
	if ldflagsVersion != "dev" {
		return ldflagsVersion
	}
	if info == nil || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}

func currentVersion() string {
	info, _ := debug.ReadBuildInfo()
	return resolveVersion(version, info)
}

// newRootCmd creates the root command for the readmefeed CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "readmefeed",
		Short:   "Keep a README blog post section in sync with an RSS feed",
		Long:    "Readmefeed fetches the latest posts from a blog RSS feed and rewrites the marker-delimited blog post section of a README file.",
		Version: currentVersion(),
	}

	rootCmd.SetVersionTemplate("readmefeed version {{.Version}}\n")

	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig resolves configuration and applies any flag overrides.
func loadConfig(cmd *cobra.Command, feedURL, readmePath string, maxPosts, timeoutSeconds int) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("feed") {
		cfg.FeedURL = feedURL
	}
	if cmd.Flags().Changed("readme") {
		cfg.ReadmePath = readmePath
	}
	if cmd.Flags().Changed("max-posts") {
		cfg.MaxPosts = maxPosts
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = time.Duration(timeoutSeconds) * time.Second
	}
	return cfg, nil
}

// newUpdateCmd creates the update subcommand, the main pipeline: fetch the
// feed, render the post list, and splice it into the README.
func newUpdateCmd() *cobra.Command {
	var feedURL string
	var readmePath string
	var maxPosts int
	var timeoutSeconds int
	var createSection bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rewrite the README blog post section from the feed",
		Long:  "Fetch the latest posts from the RSS feed and splice them into the managed section of the README file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, feedURL, readmePath, maxPosts, timeoutSeconds)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
			defer cancel()

			// Feed failures degrade to an empty post list; the README
			// still gets the placeholder block.
			client := blog.NewClient(blog.WithTimeout(cfg.Timeout))
			posts, err := client.FetchPosts(ctx, cfg.FeedURL, cfg.MaxPosts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error fetching feed: %v\n", err)
				posts = nil
			}
			if len(posts) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No blog posts found in the feed\n")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Found %d blog posts\n", len(posts))
			}

			block := readme.RenderBlock(posts)
			changed, err := readme.NewUpdater(cfg.ReadmePath).Update(block, createSection)
			if errors.Is(err, readme.ErrMarkersNotFound) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: blog post markers not found in %s\n", cfg.ReadmePath)
				return nil
			}
			if err != nil {
				return err
			}

			if changed {
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s with %d blog posts\n", cfg.ReadmePath, len(posts))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already up to date\n", cfg.ReadmePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&feedURL, "feed", "f", "", "RSS feed URL")
	cmd.Flags().StringVarP(&readmePath, "readme", "r", "", "Path to the README file")
	cmd.Flags().IntVarP(&maxPosts, "max-posts", "n", 0, "Maximum number of posts to list")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Feed fetch timeout in seconds")
	cmd.Flags().BoolVar(&createSection, "create-section", false, "Create the blog post section when the markers are missing")

	return cmd
}

// newPreviewCmd creates the preview subcommand: fetch and list posts
// without touching any file.
func newPreviewCmd() *cobra.Command {
	var feedURL string
	var maxPosts int
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Fetch the feed and list the posts without updating anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, feedURL, "", maxPosts, timeoutSeconds)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
			defer cancel()

			client := blog.NewClient(blog.WithTimeout(cfg.Timeout))
			posts, err := client.FetchPosts(ctx, cfg.FeedURL, cfg.MaxPosts)
			if err != nil {
				return err
			}

			if len(posts) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No blog posts found in the feed\n")
				return nil
			}
			for i, post := range posts {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, post.Title, post.Published)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&feedURL, "feed", "f", "", "RSS feed URL")
	cmd.Flags().IntVarP(&maxPosts, "max-posts", "n", 0, "Maximum number of posts to list")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Feed fetch timeout in seconds")

	return cmd
}

// newCheckCmd creates the check subcommand: a connectivity probe that
// reports the feed's HTTP status and a short body preview.
func newCheckCmd() *cobra.Command {
	var feedURL string
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the RSS feed is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, feedURL, "", 0, timeoutSeconds)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
			defer cancel()

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.FeedURL, nil)
			if err != nil {
				return fmt.Errorf("failed to create request: %w", err)
			}
			httpClient := &http.Client{Timeout: cfg.Timeout}
			resp, err := httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("feed is not reachable: %w", err)
			}
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read feed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Status code: %d\n", resp.StatusCode)
			fmt.Fprintf(cmd.OutOrStdout(), "Content length: %d bytes\n", len(body))

			preview := body
			if len(preview) > 500 {
				preview = preview[:500]
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nContent preview:\n%s\n", preview)
			return nil
		},
	}

	cmd.Flags().StringVarP(&feedURL, "feed", "f", "", "RSS feed URL")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Feed fetch timeout in seconds")

	return cmd
}

// newConfigCmd creates the config subcommand.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Feed URL:    %s\n", cfg.FeedURL)
			fmt.Fprintf(cmd.OutOrStdout(), "README path: %s\n", cfg.ReadmePath)
			fmt.Fprintf(cmd.OutOrStdout(), "Max posts:   %d\n", cfg.MaxPosts)
			fmt.Fprintf(cmd.OutOrStdout(), "Timeout:     %s\n", cfg.Timeout)
			return nil
		},
	}

	return cmd
}
