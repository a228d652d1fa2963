package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
)

var _ port.OrderEventsProducer = (*OrderPlacedProducer)(nil)

// OrderPlacedProducer publishes one record per placed order, keyed by
// order id.
type OrderPlacedProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrderPlacedProducer(opts ...ProducerOpt) (OrderPlacedProducer, error) {
	const op = "NewOrderPlacedProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrderPlacedProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return OrderPlacedProducer{options.cl, options.encoder}, nil
}

func (p OrderPlacedProducer) Close() {
	const op = "OrderPlacedProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrderPlacedProducer) ProduceOrderPlaced(
	ctx context.Context, order domain.PlacedOrder,
) error {
	const op = "OrderPlacedProducer.ProduceOrderPlaced"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s := orderToSchemaV1(order)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r := &kgo.Record{Key: []byte(s.OrderID), Value: v}
	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// NopOrderEventsProducer discards order events. It is wired when no
// seed brokers are configured so the storefront runs standalone.
type NopOrderEventsProducer struct{}

var _ port.OrderEventsProducer = NopOrderEventsProducer{}

func (NopOrderEventsProducer) ProduceOrderPlaced(
	context.Context, domain.PlacedOrder,
) error {
	return nil
}

func (NopOrderEventsProducer) Close() {}
