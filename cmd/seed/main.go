// Command seed loads the video catalog and quote collection from a JSON
// file. The catalog is static at runtime; this is how it gets into the
// database in the first place.
//
// Usage: seed -file catalog.json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"time"

	"webfitpro/backend/internal/config"
	"webfitpro/backend/internal/domain"
	"webfitpro/backend/internal/repository"
	"webfitpro/backend/internal/repository/mongo"

	"go.uber.org/zap"
)

type seedFile struct {
	Videos []domain.Video `json:"videos"`
	Quotes []domain.Quote `json:"quotes"`
	// Remove lists video URLs to prune from the catalog.
	Remove []string `json:"remove"`
}

func main() {
	file := flag.String("file", "catalog.json", "path to the seed JSON file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("could not read seed file", zap.Error(err))
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		logger.Fatal("could not parse seed file", zap.Error(err))
	}

	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	if err := mongo.EnsureVideoIndexes(ctx, appDB.Collection("Videos")); err != nil {
		logger.Warn("video index creation failed", zap.Error(err))
	}

	videoRepo := mongo.NewMongoVideoRepository(appDB)
	quoteRepo := mongo.NewMongoQuoteRepository(appDB)

	inserted, skipped := 0, 0
	for i := range seed.Videos {
		err := videoRepo.Create(ctx, &seed.Videos[i])
		if errors.Is(err, repository.ErrDuplicate) {
			skipped++
			continue
		}
		if err != nil {
			logger.Fatal("could not insert video", zap.String("url", seed.Videos[i].URL), zap.Error(err))
		}
		inserted++
	}
	logger.Info("videos seeded", zap.Int("inserted", inserted), zap.Int("skipped", skipped))

	removed := 0
	for _, url := range seed.Remove {
		err := videoRepo.DeleteByURL(ctx, url)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			logger.Fatal("could not remove video", zap.String("url", url), zap.Error(err))
		}
		removed++
	}
	if len(seed.Remove) > 0 {
		logger.Info("videos removed", zap.Int("removed", removed))
	}

	for i := range seed.Quotes {
		if err := quoteRepo.Create(ctx, &seed.Quotes[i]); err != nil {
			logger.Fatal("could not insert quote", zap.String("name", seed.Quotes[i].Name), zap.Error(err))
		}
	}
	logger.Info("quotes seeded", zap.Int("inserted", len(seed.Quotes)))
}
