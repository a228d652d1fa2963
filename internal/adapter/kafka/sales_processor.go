package kafka

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lovoo/goka"

	"github.com/crushcollection/storefront/pkg/schema"
)

// OrderEventCodec decodes order-placed records from the event stream.
type OrderEventCodec struct {
	serde Serde
}

func NewOrderEventCodec(s Serde) OrderEventCodec {
	return OrderEventCodec{s}
}

func (c OrderEventCodec) Encode(v any) ([]byte, error) {
	const op = "OrderEventCodec.Encode"
	if _, ok := v.(schema.OrderPlacedV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c OrderEventCodec) Decode(data []byte) (any, error) {
	const op = "OrderEventCodec.Decode"
	var s schema.OrderPlacedV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// UnitsValue is the per-product units-sold counter kept in the group
// table.
type UnitsValue int64

type UnitsValueCodec struct{}

func (UnitsValueCodec) Encode(v any) ([]byte, error) {
	const op = "UnitsValueCodec.Encode"
	uv, ok := v.(UnitsValue)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return strconv.AppendInt([]byte(nil), int64(uv), 10), nil
}

func (UnitsValueCodec) Decode(data []byte) (any, error) {
	const op = "UnitsValueCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return UnitsValue(n), nil
}

// SalesProcessor folds order lines into a units-sold-per-product group
// table. Order records are keyed by order id, so each line is looped
// back under its product id before it is persisted.
type SalesProcessor struct {
	gp *goka.Processor
}

func NewSalesProcessor(
	seedBrokers []string, stream, group string, orderSerde Serde,
) (SalesProcessor, error) {
	const op = "NewSalesProcessor"
	p := SalesProcessor{}

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(goka.Stream(stream), NewOrderEventCodec(orderSerde), p.spreadLines),
		goka.Loop(UnitsValueCodec{}, p.accumulate),
		goka.Persist(UnitsValueCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return SalesProcessor{}, fmt.Errorf("%s: %w", op, err)
	}

	return SalesProcessor{gp}, nil
}

func (p SalesProcessor) Run(ctx context.Context) {
	const op = "SalesProcessor.Run"
	log := slog.With("op", op)

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p SalesProcessor) Close() {
	const op = "SalesProcessor.Close"
	log := slog.With("op", op)

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

func (p SalesProcessor) spreadLines(ctx goka.Context, msg any) {
	order, ok := msg.(schema.OrderPlacedV1)
	if !ok {
		return
	}
	for _, line := range order.Lines {
		ctx.Loopback(line.ProductID, UnitsValue(line.Quantity))
	}
}

func (p SalesProcessor) accumulate(ctx goka.Context, msg any) {
	add, ok := msg.(UnitsValue)
	if !ok {
		return
	}

	var current UnitsValue
	if v := ctx.Value(); v != nil {
		current = v.(UnitsValue)
	}
	ctx.SetValue(current + add)
}
