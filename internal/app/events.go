package app

import (
	"go.uber.org/zap"

	"github.com/glowcart/catalog/internal/domain"
)

// registerEventSubscribers attaches the audit log to catalog mutation
// events published by the REST handlers.
func (a *Application) registerEventSubscribers() {
	_ = a.bus.Subscribe(domain.EventProductCreated, func(p domain.Product) {
		zap.L().Info("audit: product created",
			zap.Int64("id", p.ID), zap.String("name", p.Name), zap.Float64("price", p.Price))
	})
	_ = a.bus.Subscribe(domain.EventProductUpdated, func(p domain.Product) {
		zap.L().Info("audit: product updated",
			zap.Int64("id", p.ID), zap.String("name", p.Name))
	})
	_ = a.bus.Subscribe(domain.EventProductDeleted, func(p domain.Product) {
		zap.L().Info("audit: product deleted", zap.Int64("id", p.ID))
	})
}
