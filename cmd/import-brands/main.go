// Command import-brands creates brands from a CSV file through the same
// validation and duplicate checks as the dashboard form.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/apperrors"
	"github.com/ArowuTest/brandhub-admin-backend/internal/config"
	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	mongorepo "github.com/ArowuTest/brandhub-admin-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/brandhub-admin-backend/internal/services"
	"github.com/ArowuTest/brandhub-admin-backend/internal/utils"
	"github.com/ArowuTest/brandhub-admin-backend/internal/validation"
	"github.com/ArowuTest/brandhub-admin-backend/pkg/mongodb"
	"go.uber.org/zap"
)

type brandCreator interface {
	CreateBrand(ctx context.Context, in services.CreateBrandInput) (*models.Brand, error)
}

type summary struct {
	Created    int
	Duplicates int
	Invalid    int
	Failed     int
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import-brands <file.csv>")
		os.Exit(2)
	}

	cfg, err := config.Load(".")
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	file, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal("failed to open CSV file", zap.Error(err))
	}
	defer file.Close()

	rows, err := utils.ReadBrandCSV(file)
	if err != nil {
		log.Fatal("failed to parse CSV file", zap.Error(err))
	}

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, cfg.MongoDB.URI, cfg.MongoDB.Database, cfg.MongoDB.Timeout)
	if err != nil {
		log.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	brandRepo := mongorepo.NewBrandRepository(client.Database())
	if err := brandRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("failed to create brand indexes", zap.Error(err))
	}

	// imported rows carry no logo, so no media host is needed
	media := services.NewMediaService(nil, nil, nil, nil, log, services.MediaOptions{MaxFileSize: cfg.Media.MaxFileSize})
	brandService := services.NewBrandService(brandRepo, media, validation.New(time.Now), log)

	s := importBrands(ctx, brandService, rows, log)
	log.Info("brand import finished",
		zap.Int("rows", len(rows)),
		zap.Int("created", s.Created),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("invalid", s.Invalid),
		zap.Int("failed", s.Failed),
	)
	if s.Failed > 0 {
		os.Exit(1)
	}
}

// importBrands runs every readable row through the create flow and counts outcomes
func importBrands(ctx context.Context, svc brandCreator, rows []utils.BrandRow, log *zap.Logger) summary {
	var s summary
	for _, row := range rows {
		if row.Err != nil {
			s.Invalid++
			log.Warn("skipping unreadable row", zap.Int("line", row.Line), zap.Error(row.Err))
			continue
		}

		_, err := svc.CreateBrand(ctx, services.CreateBrandInput{Form: row.Form})
		var verr *apperrors.ValidationError
		switch {
		case err == nil:
			s.Created++
		case errors.Is(err, services.ErrDuplicateBrandEmail):
			s.Duplicates++
			log.Info("brand already exists", zap.Int("line", row.Line), zap.String("email", row.Form.Email))
		case errors.As(err, &verr):
			s.Invalid++
			log.Warn("invalid brand row", zap.Int("line", row.Line), zap.Any("fields", verr.Fields))
		default:
			s.Failed++
			log.Error("failed to create brand", zap.Int("line", row.Line), zap.Error(err))
		}
	}
	return s
}
