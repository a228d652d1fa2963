package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lovoo/goka"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/pkg/schema"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(v domain.PlacedOrder) (s schema.OrderPlacedV1) {
	s.OrderID = v.OrderID
	s.PlacedAt = v.PlacedAt.Format("2006-01-02T15:04:05Z07:00")
	s.PaymentMethod = string(v.Method)
	s.Pricing.Subtotal = v.Pricing.Subtotal
	s.Pricing.Shipping = v.Pricing.Shipping
	s.Pricing.Tax = v.Pricing.Tax
	s.Pricing.CODSurcharge = v.Pricing.CODSurcharge
	s.Pricing.GrandTotal = v.Pricing.GrandTotal
	s.ShipTo.City = v.Shipping.City
	s.ShipTo.State = v.Shipping.State
	s.ShipTo.Pincode = v.Shipping.Pincode

	s.Lines = make([]schema.OrderLineV1, len(v.Items))
	for i, it := range v.Items {
		s.Lines[i].ProductID = it.Product.ProductID
		s.Lines[i].Name = it.Product.Name
		s.Lines[i].Size = it.SelectedSize
		s.Lines[i].Color = it.SelectedColor
		s.Lines[i].Quantity = it.Quantity
		s.Lines[i].UnitPrice = it.Product.Price
	}
	return s
}
