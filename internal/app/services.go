package app

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/kvbuilders/app/config"
	"github.com/kvbuilders/app/internal/cache"
	"github.com/kvbuilders/app/internal/repo"
	"github.com/kvbuilders/app/internal/service/inquiry"
	"github.com/kvbuilders/app/internal/service/notify"
	"github.com/kvbuilders/app/internal/service/status"
	"github.com/kvbuilders/app/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideInquiryRepo,
		ProvideStatusCheckRepo,
		ProvideInquiryCache,
		ProvideNotifyService,
		ProvideInquiryService,
		ProvideStatusService,
	),
)

func ProvideInquiryRepo(db *mongo.Database) repo.InquiryRepo {
	return repo.NewInquiryRepo(db)
}

func ProvideStatusCheckRepo(db *mongo.Database) repo.StatusCheckRepo {
	return repo.NewStatusCheckRepo(db)
}

func ProvideInquiryCache(rdb *goredis.Client) cache.InquiryCache {
	return cache.NewRedisCache(rdb)
}

func ProvideNotifyService(client *email.Client, cfg *config.Config) notify.Service {
	return notify.New(client, email.FromCentralConfig(cfg.Email))
}

func ProvideInquiryService(
	inquiries repo.InquiryRepo,
	c cache.InquiryCache,
	notifier notify.Service,
	cfg *config.Config,
) inquiry.Service {
	return inquiry.New(inquiries, c, notifier, inquiry.Options{
		Cooldown:      time.Duration(cfg.Contact.CooldownDays) * 24 * time.Hour,
		ListingTTL:    time.Duration(cfg.Contact.ListingTTLMinutes) * time.Minute,
		DefaultRegion: cfg.Contact.DefaultRegion,
	})
}

func ProvideStatusService(checks repo.StatusCheckRepo) status.Service {
	return status.New(checks)
}
