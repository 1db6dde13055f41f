package payments

import (
	"context"
	"fmt"
	"log"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Preference is the checkout handle attached to a booking.
type Preference struct {
	ID          string
	CheckoutURL string
}

// Client creates MercadoPago checkout preferences for bookings. A nil
// *Client (no access token configured) skips payment setup entirely;
// bookings are still created, they just carry no preference id.
type Client struct {
	prefs preference.Client
}

func New(accessToken string) *Client {
	if accessToken == "" {
		return nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("mercadopago misconfigured, payments disabled: %v", err)
		return nil
	}

	return &Client{prefs: preference.NewClient(cfg)}
}

func (c *Client) CreateBookingPreference(
	ctx context.Context,
	bookingID uint,
	serviceName string,
	amount float64,
) (*Preference, error) {

	if c == nil {
		return nil, nil
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     serviceName,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: fmt.Sprintf("booking-%d", bookingID),
	}

	res, err := c.prefs.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return &Preference{
		ID:          res.ID,
		CheckoutURL: res.InitPoint,
	}, nil
}
