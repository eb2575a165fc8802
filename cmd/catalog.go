package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/yt-player/cmd/player"
	"github.com/Taichi-iskw/yt-player/internal/catalog"
	"github.com/Taichi-iskw/yt-player/internal/config"
	"github.com/Taichi-iskw/yt-player/internal/model"
	"github.com/Taichi-iskw/yt-player/internal/repository/video"
	"github.com/Taichi-iskw/yt-player/internal/service/common"
	"github.com/Taichi-iskw/yt-player/migrations"
)

const fetchTimeout = 5 * time.Minute

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Video catalog operations",
	Long:  `Inspect the configured catalog, manage the catalog database and build catalogs from YouTube channels.`,
}

// catalogListCmd prints every video of the configured catalog
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the videos of the catalog",
	Long: `Load the configured catalog (or --catalog FILE) and print all videos sorted by title.

With --limit the catalog database is read one page at a time, ordered by video ID.
Paging needs the postgres catalog source.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath, _ := cmd.Flags().GetString("catalog")
		output, _ := cmd.Flags().GetString("output")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		formatter, err := player.NewFormatter(output)
		if err != nil {
			return err
		}
		if limit < 0 || offset < 0 {
			return fmt.Errorf("--limit and --offset must not be negative")
		}
		if offset > 0 && limit == 0 {
			return fmt.Errorf("--offset requires --limit")
		}

		factory := player.NewServiceFactory()
		cfg, log, err := factory.LoadConfig(catalogPath)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		var videos []*model.Video
		if limit > 0 {
			if cfg.Catalog.Source != config.SourcePostgres {
				return fmt.Errorf("paging reads the catalog database, but the catalog source is %q", cfg.Catalog.Source)
			}
			videoRepo, closeRepo, err := openVideoRepository(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeRepo()

			if videos, err = videoRepo.List(cmd.Context(), limit, offset); err != nil {
				return fmt.Errorf("failed to list videos: %w", err)
			}
		} else {
			c, err := factory.LoadCatalog(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			videos = c.All()
		}

		result, err := formatter.Format(videos)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), result)
		return nil
	},
}

// catalogMigrateCmd applies the catalog database schema
var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the catalog database schema",
	Long:  `Apply the embedded schema migrations to the database at database_url.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		dbConfig, err := cfg.ParseDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to parse database config: %w", err)
		}

		applied, err := migrations.Up(dbConfig.MigrationURL())
		if err != nil {
			return err
		}

		if applied {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog database schema migrated.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog database schema is up to date.")
		}
		return nil
	},
}

// catalogImportCmd copies a catalog file into the database
var catalogImportCmd = &cobra.Command{
	Use:   "import [FILE]",
	Short: "Import a catalog file into the database",
	Long:  `Load a text or YAML catalog file, validate it and copy its videos into the catalog database.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := player.NewServiceFactory()
		cfg, log, err := factory.LoadConfig("")
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		c, err := catalog.Load(ctx, catalog.NewFileLoader(args[0]), log)
		if err != nil {
			return err
		}

		videoRepo, closeRepo, err := openVideoRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := videoRepo.CreateBatch(ctx, c.All()); err != nil {
			return fmt.Errorf("failed to import videos: %w", err)
		}

		log.With("file", args[0], "videos", c.Len()).Info("catalog imported")
		fmt.Fprintf(cmd.OutOrStdout(), "%d video(s) imported successfully.\n", c.Len())
		return nil
	},
}

// catalogAddCmd stores a single video in the database
var catalogAddCmd = &cobra.Command{
	Use:   "add [VIDEO_ID] [TITLE] [TAG...]",
	Short: "Add a video to the catalog database",
	Long:  `Validate one video the way catalog files are validated and insert it into the catalog database.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := player.NewServiceFactory()
		cfg, log, err := factory.LoadConfig("")
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		c, err := catalog.New([]*model.Video{{ID: args[0], Title: args[1], Tags: args[2:]}})
		if err != nil {
			return err
		}
		v := c.All()[0]

		videoRepo, closeRepo, err := openVideoRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := videoRepo.Create(ctx, v); err != nil {
			return fmt.Errorf("failed to add video: %w", err)
		}

		log.With("video_id", v.ID).Info("video added")
		fmt.Fprintf(cmd.OutOrStdout(), "Added video: %s (%s)\n", v.Title, v.ID)
		return nil
	},
}

// catalogRemoveCmd deletes a video from the database
var catalogRemoveCmd = &cobra.Command{
	Use:   "remove [VIDEO_ID]",
	Short: "Remove a video from the catalog database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		factory := player.NewServiceFactory()
		cfg, log, err := factory.LoadConfig("")
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		videoRepo, closeRepo, err := openVideoRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		v, err := videoRepo.GetByID(ctx, args[0])
		if err != nil {
			return err
		}
		if err := videoRepo.Delete(ctx, v.ID); err != nil {
			return fmt.Errorf("failed to remove video: %w", err)
		}

		log.With("video_id", v.ID).Info("video removed")
		fmt.Fprintf(cmd.OutOrStdout(), "Removed video: %s\n", v.Title)
		return nil
	},
}

// catalogFetchCmd builds a catalog file from a YouTube channel
var catalogFetchCmd = &cobra.Command{
	Use:   "fetch [CHANNEL_ID]",
	Short: "Build a catalog from a YouTube channel",
	Long: `Fetch the video list of a YouTube channel using yt-dlp and write it in the catalog text format.

The channel is listed flat by default, which is fast but carries no tags.
Use --tags to resolve every video page and keep its tags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		outputPath, _ := cmd.Flags().GetString("output")
		withTags, _ := cmd.Flags().GetBool("tags")

		ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
		defer cancel()

		factory := player.NewServiceFactory()
		_, log, err := factory.LoadConfig("")
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		loader := catalog.NewYtDlpLoader(common.NewCmdRunner(), args[0], limit, withTags)
		c, err := catalog.Load(ctx, loader, log)
		if err != nil {
			return fmt.Errorf("failed to fetch videos: %w", err)
		}

		if c.Len() == 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), "No videos found for this channel.")
			return nil
		}

		var w io.Writer = cmd.OutOrStdout()
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := catalog.WriteText(w, c.All()); err != nil {
			return fmt.Errorf("failed to write catalog: %w", err)
		}

		if outputPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d video(s) to %s\n", c.Len(), outputPath)
		}
		return nil
	},
}

// openVideoRepository connects to the catalog database; the returned func closes the pool
func openVideoRepository(ctx context.Context, cfg *config.Config) (video.Repository, func(), error) {
	dbPool, err := config.NewDatabasePool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return video.NewRepository(dbPool), dbPool.Close, nil
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogMigrateCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)
	catalogCmd.AddCommand(catalogFetchCmd)

	catalogListCmd.Flags().String("catalog", "", "Catalog file to load instead of the configured source")
	catalogListCmd.Flags().StringP("output", "o", "text", "Output format (text, json, yaml)")
	catalogListCmd.Flags().IntP("limit", "l", 0, "Page size when reading the catalog database (0 = whole catalog)")
	catalogListCmd.Flags().Int("offset", 0, "Number of videos to skip before the page")

	catalogFetchCmd.Flags().IntP("limit", "l", 0, "Maximum number of videos to fetch (0 = all)")
	catalogFetchCmd.Flags().String("output", "", "Write the catalog to this file instead of stdout")
	catalogFetchCmd.Flags().Bool("tags", false, "Resolve every video to include its tags (slower)")
}
