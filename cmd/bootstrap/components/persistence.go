package components

import (
	"foodshare/internal/infra/db"
	"foodshare/internal/infra/readstore"
	"foodshare/internal/infra/uow"
	"foodshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewDonationReadStore,
			fx.As(new(queries.DonationReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewPerishableReadStore,
			fx.As(new(queries.PerishableReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
