package bootstrap

import (
	"orbital-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is shared by the API server and the reconcile CLI.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	TracingModule,
	DBModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.WorkerModule,
	components.HandlerModule,
)

var ReconcileModule = fx.Options(
	CoreModule,
	RedisModule,
	components.ReconcileModule,
)
