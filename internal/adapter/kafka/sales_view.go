package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lovoo/goka"

	"github.com/crushcollection/storefront/internal/core/port"
)

var _ port.SalesReader = (*SalesView)(nil)

// SalesView is the read side of the units-sold group table. It backs
// the cosmetic "N sold" hint and never gates cart mutations.
type SalesView struct {
	gv *goka.View
}

func NewSalesView(seedBrokers []string, group string) (SalesView, error) {
	const op = "NewSalesView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(group)),
		UnitsValueCodec{},
	)
	if err != nil {
		return SalesView{}, fmt.Errorf("%s: %w", op, err)
	}
	return SalesView{gv}, nil
}

func (v SalesView) Run(ctx context.Context) {
	const op = "SalesView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (v SalesView) UnitsSold(productID string) (int64, error) {
	const op = "SalesView.UnitsSold"

	val, err := v.gv.Get(productID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if val == nil {
		return 0, nil
	}
	return int64(val.(UnitsValue)), nil
}

// NopSalesReader reports zero units sold; wired when no seed brokers
// are configured.
type NopSalesReader struct{}

var _ port.SalesReader = NopSalesReader{}

func (NopSalesReader) UnitsSold(string) (int64, error) { return 0, nil }
