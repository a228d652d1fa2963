package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crushcollection/storefront/internal/adapter/memstore"
	"github.com/crushcollection/storefront/internal/core/domain"
	"github.com/crushcollection/storefront/internal/core/port"
	"github.com/crushcollection/storefront/internal/core/service"
)

type MockOrderEventsProducer struct {
	mock.Mock
}

func (m *MockOrderEventsProducer) ProduceOrderPlaced(
	ctx context.Context, order domain.PlacedOrder,
) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

const testDelay = time.Millisecond

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Address:   "14 MG Road",
		City:      "Bengaluru",
		State:     "Karnataka",
		Pincode:   "560001",
	}
}

func newCheckout(
	events port.OrderEventsProducer,
) (*service.Checkout, port.SessionProvider) {
	sessions := memstore.NewSessionRegistry()
	return service.NewCheckout(sessions, events, testDelay), sessions
}

// fillCart puts three tee units in the session cart, subtotal 1500.
func fillCart(t *testing.T, sessions port.SessionProvider, sid string) {
	t.Helper()
	sessions.Session(sid).Cart().AddItem(tee, "M", "Black", 3)
}

func TestStartCheckout(t *testing.T) {
	const sid = "visitor-1"

	t.Run("RefusesEmptyCart", func(t *testing.T) {
		c, _ := newCheckout(nil)

		_, err := c.StartCheckout(sid)
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrEmptyCart)

		_, err = c.CheckoutState(sid)
		assert.ErrorIs(t, err, service.ErrNoCheckout)
	})

	t.Run("OpensOnShippingWithCardDefault", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		view, err := c.StartCheckout(sid)
		require.NoError(t, err)

		assert.Equal(t, domain.StageShipping, view.Stage)
		assert.Equal(t, domain.PaymentCard, view.Draft.Payment.Method)
		assert.True(t, view.Errors.Valid())
		assert.Equal(t, 1500.0, view.Pricing.Subtotal)
		assert.Equal(t, 0.0, view.Pricing.Shipping)
	})

	t.Run("RestartResetsToShipping", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)
		require.NoError(t, c.SetShipping(sid, validShipping()))
		view, err := c.Next(sid)
		require.NoError(t, err)
		require.Equal(t, domain.StagePayment, view.Stage)

		view, err = c.StartCheckout(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StageShipping, view.Stage)
		assert.Empty(t, view.Draft.Shipping.FirstName)
	})
}

func TestCheckoutGates(t *testing.T) {
	const sid = "visitor-1"

	t.Run("BlankShippingFieldBlocksAdvance", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)

		s := validShipping()
		s.FirstName = "   "
		require.NoError(t, c.SetShipping(sid, s))

		view, err := c.Next(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StageShipping, view.Stage)
		assert.Equal(t, "First name is required", view.Errors["firstName"])
	})

	t.Run("FixingTheFieldClearsErrorsAndAdvances", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)
		require.NoError(t, c.SetShipping(sid, domain.ShippingInfo{}))

		_, err = c.Next(sid)
		require.NoError(t, err)

		require.NoError(t, c.SetShipping(sid, validShipping()))
		view, err := c.CheckoutState(sid)
		require.NoError(t, err)
		assert.True(t, view.Errors.Valid())

		view, err = c.Next(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StagePayment, view.Stage)
	})

	t.Run("IncompleteCardBlocksReview", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)
		require.NoError(t, c.SetShipping(sid, validShipping()))
		_, err = c.Next(sid)
		require.NoError(t, err)

		view, err := c.Next(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StagePayment, view.Stage)
		assert.Contains(t, view.Errors, "cardNumber")

		require.NoError(t, c.SetPayment(sid, domain.PaymentInfo{
			Method: domain.PaymentUPI,
		}))
		view, err = c.Next(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StageReview, view.Stage)
	})

	t.Run("SetPaymentRejectsUnknownMethod", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)

		err = c.SetPayment(sid, domain.PaymentInfo{Method: "barter"})
		assert.ErrorIs(t, err, service.ErrInvalidPaymentMethod)
	})

	t.Run("BackStepsOneStage", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)
		require.NoError(t, c.SetShipping(sid, validShipping()))
		_, err = c.Next(sid)
		require.NoError(t, err)

		view, err := c.Back(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StageShipping, view.Stage)

		view, err = c.Back(sid)
		require.NoError(t, err)
		assert.Equal(t, domain.StageShipping, view.Stage)
	})
}

func TestPlaceOrder(t *testing.T) {
	const sid = "visitor-1"
	ctx := context.Background()

	advanceToReview := func(
		t *testing.T, c *service.Checkout, payment domain.PaymentInfo,
	) {
		t.Helper()
		_, err := c.StartCheckout(sid)
		require.NoError(t, err)
		require.NoError(t, c.SetShipping(sid, validShipping()))
		_, err = c.Next(sid)
		require.NoError(t, err)
		require.NoError(t, c.SetPayment(sid, payment))
		view, err := c.Next(sid)
		require.NoError(t, err)
		require.Equal(t, domain.StageReview, view.Stage)
	}

	t.Run("OnlyAtReview", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)

		_, err := c.StartCheckout(sid)
		require.NoError(t, err)

		_, err = c.PlaceOrder(ctx, sid)
		assert.ErrorIs(t, err, service.ErrNotReviewStage)
	})

	t.Run("NoCheckoutInProgress", func(t *testing.T) {
		c, _ := newCheckout(nil)

		_, err := c.PlaceOrder(ctx, sid)
		assert.ErrorIs(t, err, service.ErrNoCheckout)
	})

	t.Run("ConfirmsClearsAndDiscards", func(t *testing.T) {
		events := new(MockOrderEventsProducer)
		events.On("ProduceOrderPlaced", mock.Anything, mock.Anything).Return(nil)

		c, sessions := newCheckout(events)
		fillCart(t, sessions, sid)
		advanceToReview(t, c, domain.PaymentInfo{Method: domain.PaymentCOD})

		conf, err := c.PlaceOrder(ctx, sid)
		require.NoError(t, err)

		assert.NotEmpty(t, conf.OrderID)
		assert.Equal(t, 1500.0, conf.Pricing.Subtotal)
		assert.Equal(t, 50.0, conf.Pricing.CODSurcharge)
		assert.Equal(t, 1820.0, conf.Pricing.GrandTotal)
		assert.False(t, conf.PlacedAt.IsZero())

		assert.Empty(t, sessions.Session(sid).Cart().Items())
		_, err = c.CheckoutState(sid)
		assert.ErrorIs(t, err, service.ErrNoCheckout)

		events.AssertCalled(t, "ProduceOrderPlaced", mock.Anything,
			mock.MatchedBy(func(o domain.PlacedOrder) bool {
				return o.OrderID == conf.OrderID &&
					len(o.Items) == 1 &&
					o.Method == domain.PaymentCOD
			}),
		)
	})

	t.Run("BrokerOutageNeverFailsConfirmation", func(t *testing.T) {
		events := new(MockOrderEventsProducer)
		events.On("ProduceOrderPlaced", mock.Anything, mock.Anything).
			Return(assert.AnError)

		c, sessions := newCheckout(events)
		fillCart(t, sessions, sid)
		advanceToReview(t, c, domain.PaymentInfo{Method: domain.PaymentUPI})

		conf, err := c.PlaceOrder(ctx, sid)
		require.NoError(t, err)
		assert.NotEmpty(t, conf.OrderID)

		events.AssertNumberOfCalls(t, "ProduceOrderPlaced", 3)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		c, sessions := newCheckout(nil)
		fillCart(t, sessions, sid)
		advanceToReview(t, c, domain.PaymentInfo{
			Method:     domain.PaymentCard,
			CardNumber: "4111111111111111",
			ExpiryDate: "12/27",
			CVV:        "123",
			NameOnCard: "Asha Rao",
		})

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.PlaceOrder(canceled, sid)
		assert.ErrorIs(t, err, context.Canceled)

		assert.NotEmpty(t, sessions.Session(sid).Cart().Items())
	})
}
