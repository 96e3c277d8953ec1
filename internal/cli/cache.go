package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnconv/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheInfoCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand. Only the file
// backend can be cleared; Redis and MongoDB entries expire on their own.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if b := c.config.Cache.Backend; b != backendFile {
				printInfo("Cache backend %s is not cleared locally", StyleHighlight.Render(b))
				return nil
			}
			dir, err := fileCacheDir(c.config.Cache)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return err
			}
			count := fc.Len()
			if err := fc.Clear(); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := fileCacheDir(c.config.Cache)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// cacheInfoCommand reports the configured backend and, for the file
// backend, how many entries it holds.
func (c *CLI) cacheInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the configured cache backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config.Cache
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "backend: %s\n", cfg.Backend)
			switch cfg.Backend {
			case backendRedis:
				fmt.Fprintf(w, "addr:    %s\ndb:      %d\nprefix:  %s\n", cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.Prefix)
			case backendMongo:
				fmt.Fprintf(w, "database: %s\ncollection: %s\n", cfg.Mongo.Database, cfg.Mongo.Collection)
			case backendFile:
				dir, err := fileCacheDir(cfg)
				if err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				n := 0
				if _, err := os.Stat(dir); err == nil {
					fc, err := cache.NewFileCache(dir)
					if err != nil {
						return err
					}
					n = fc.Len()
				}
				fmt.Fprintf(w, "dir:     %s\nentries: %d\n", dir, n)
			}
			return nil
		},
	}
}
