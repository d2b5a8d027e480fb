package components

import (
	"guri24/internal/infra/readstore"
	sqlc "guri24/internal/infra/sqlc/generated"
	"guri24/internal/infra/uow"
	"guri24/internal/usecase/commands"
	"guri24/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Property
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyViewQueries)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
			fx.As(new(commands.PropertyViewReader)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Inquiry
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.InquiryViewQueries)),
		),
		fx.Annotate(
			readstore.NewInquiryReadStore,
			fx.As(new(queries.InquiryReadStore)),
		),
	),
)

// Write repositories are bound per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
