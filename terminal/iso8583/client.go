package iso8583

import (
	"fmt"
	"io"

	"github.com/cardops/magstripe/bankcard"
	connection "github.com/moov-io/iso8583-connection"
	"github.com/moov-io/iso8583/network"
	"github.com/moov-io/iso8583/specs"
	"golang.org/x/exp/slog"
)

const responseCodeApproved = "00"

// Client submits authorization requests built from decoded swipes to an
// ISO 8583 host over a persistent connection.
type Client struct {
	addr   string
	logger *slog.Logger
	conn   *connection.Connection
}

func NewClient(logger *slog.Logger, addr string) *Client {
	return &Client{
		addr:   addr,
		logger: logger.With(slog.String("iso8583_host", addr)),
	}
}

func (c *Client) Connect() error {
	conn, err := connection.New(c.addr, specs.Spec87ASCII, readMessageLength, writeMessageLength)
	if err != nil {
		return fmt.Errorf("creating iso8583 connection: %w", err)
	}

	if err := conn.Connect(); err != nil {
		return fmt.Errorf("connecting to iso8583 host: %w", err)
	}

	c.conn = conn
	c.logger.Info("connected to iso8583 host")

	return nil
}

// Authorize builds an 0100 request for the card and waits for the response.
// It returns the host's response code; "00" means approved.
func (c *Client) Authorize(card bankcard.BankCard) (string, error) {
	if c.conn == nil {
		return "", fmt.Errorf("not connected")
	}

	msg, err := BuildAuthorizationRequest(card)
	if err != nil {
		return "", fmt.Errorf("building authorization request: %w", err)
	}

	response, err := c.conn.Send(msg)
	if err != nil {
		return "", fmt.Errorf("sending authorization request: %w", err)
	}

	responseCode, err := response.GetString(39)
	if err != nil {
		return "", fmt.Errorf("getting response code: %w", err)
	}

	c.logger.Info("authorization response",
		slog.String("pan", card.PrimaryAccountNumber().Masked()),
		slog.String("response_code", responseCode),
		slog.Bool("approved", responseCode == responseCodeApproved),
	)

	return responseCode, nil
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// The host frames messages with a binary 2-byte length header.
func readMessageLength(r io.Reader) (int, error) {
	header := network.NewBinary2BytesHeader()
	n, err := header.ReadFrom(r)
	if err != nil {
		return n, err
	}
	return header.Length(), nil
}

func writeMessageLength(w io.Writer, length int) (int, error) {
	header := network.NewBinary2BytesHeader()
	header.SetLength(length)
	return header.WriteTo(w)
}
