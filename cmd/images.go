package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter"
	"github.com/birdwatchers/birdhunter/birdhunter/services"
	"github.com/birdwatchers/birdhunter/internal/domain/catalog"
	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage species artwork in object storage",
}

var imagesUploadCmd = &cobra.Command{
	Use:   "upload <dir>",
	Short: "Upload <species_id>.jpg files from a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		images, err := imageService(cmd.Context())
		if err != nil {
			return err
		}
		return uploadDir(cmd.Context(), images, args[0])
	},
}

var imagesMissingCmd = &cobra.Command{
	Use:   "missing",
	Short: "List species without artwork",
	RunE: func(cmd *cobra.Command, args []string) error {
		images, err := imageService(cmd.Context())
		if err != nil {
			return err
		}
		for _, sp := range catalog.AllSpecies() {
			if !images.HasImage(cmd.Context(), sp) {
				fmt.Fprintln(cmd.OutOrStdout(), images.Key(sp))
			}
		}
		return nil
	},
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete <species_id>",
	Short: "Remove a species' artwork",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, ok := catalog.SpeciesByID(args[0])
		if !ok {
			return fmt.Errorf("unknown species %q", args[0])
		}
		images, err := imageService(cmd.Context())
		if err != nil {
			return err
		}
		if err := images.Delete(cmd.Context(), sp); err != nil {
			return err
		}
		slog.Info("Image deleted",
			slog.String("type", "sys"),
			slog.String("bucket", images.GetBucket()),
			slog.String("key", images.Key(sp)))
		return nil
	},
}

func init() {
	imagesCmd.AddCommand(imagesUploadCmd, imagesMissingCmd, imagesDeleteCmd)
	rootCmd.AddCommand(imagesCmd)
}

func imageService(ctx context.Context) (*services.BirdImageService, error) {
	slog.SetDefault(slog.New(loggerFor(nil)))
	cfg, err := birdhunter.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(loggerFor(cfg)))
	if !cfg.Spaces.Enabled() {
		return nil, errors.New("spaces.key, spaces.secret and spaces.bucket must be set")
	}
	return services.NewBirdImageService(ctx,
		cfg.Spaces.Key, cfg.Spaces.Secret, cfg.Spaces.Region, cfg.Spaces.Bucket, cfg.Spaces.BirdRoot)
}

// uploadDir uploads every file whose base name is a known species id. Unknown names are skipped.
func uploadDir(ctx context.Context, images *services.BirdImageService, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var uploaded int
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		sp, ok := catalog.SpeciesByID(id)
		if !ok {
			slog.Warn("Skipping unknown species image", slog.String("type", "sys"), slog.String("file", entry.Name()))
			continue
		}
		if err := uploadFile(ctx, images, sp, filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		uploaded++
	}

	slog.Info("Image upload finished",
		slog.String("type", "sys"),
		slog.String("bucket", images.GetBucket()),
		slog.Int("uploaded", uploaded),
		slog.Int("failed", len(errs)))
	return errors.Join(errs...)
}

func uploadFile(ctx context.Context, images *services.BirdImageService, sp catalog.Species, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return images.Upload(ctx, sp, f)
}
