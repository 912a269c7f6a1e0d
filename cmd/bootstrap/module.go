package bootstrap

import (
	"field-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the full graph behind the serve command.
var Module = fx.Options(
	ConfigModule,
	DBModule,
	LoggerModule,
	JWTModule,
	EventsModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
