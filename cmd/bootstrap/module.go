package bootstrap

import (
	"table-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
