package app

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/repo"
	"github.com/proflink/proflink_backend/internal/service/appointment"
	"github.com/proflink/proflink_backend/internal/service/auth"
	"github.com/proflink/proflink_backend/internal/service/directory"
	"github.com/proflink/proflink_backend/internal/service/notification"
	"github.com/proflink/proflink_backend/internal/service/profile"
	"github.com/proflink/proflink_backend/internal/service/user"
	"github.com/proflink/proflink_backend/pkg/authorize"
	"github.com/proflink/proflink_backend/pkg/email"
	pasetotoken "github.com/proflink/proflink_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideUserService,
		ProvideAuthService,
		ProvideProfileService,
		ProvideDirectoryService,
		ProvideAppointmentService,
		ProvideNotificationService,
		ProvidePasetoManager,
	),
)

func ProvideUserService(db *repo.Client) user.Service {
	return user.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mailer, paseto, authz, cfg)
}

func ProvideProfileService(db *repo.Client, nc *nats.Conn) profile.Service {
	return profile.New(db, nc)
}

func ProvideDirectoryService(db *repo.Client) directory.Service {
	return directory.New(db)
}

func ProvideAppointmentService(db *repo.Client, nc *nats.Conn, cfg *config.Config) appointment.Service {
	return appointment.New(db, nc, cfg)
}

func ProvideNotificationService(db *repo.Client) notification.Service {
	return notification.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
