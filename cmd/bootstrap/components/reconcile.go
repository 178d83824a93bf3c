package components

import (
	"orbital-booking/internal/pkg/clock"
	"orbital-booking/internal/pkg/config"
	"orbital-booking/internal/usecase/reconcile"
	"orbital-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ReconcileModule = fx.Module("reconcile",
	fx.Provide(
		NewGuard,
	),
)

func NewGuard(uow shared.UnitOfWork, locker reconcile.RouteLocker, clk clock.Clock, cfg config.Config) *reconcile.Guard {
	return reconcile.NewGuard(uow, locker, clk, cfg.Reconcile)
}
