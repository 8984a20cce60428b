package infra

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tbmobb813/ciwatch/pkg/domain/interfaces"
)

type Clients struct {
	actions    interfaces.ActionsAPI
	httpClient HTTPClient
	output     io.Writer
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		// Log archives can be large; this client is only used for the
		// archive download, so it carries the long timeout.
		httpClient: &http.Client{Timeout: 120 * time.Second},
		output:     os.Stdout,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Actions() interfaces.ActionsAPI {
	return x.actions
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}
func (x *Clients) Output() io.Writer {
	return x.output
}

func WithActions(client interfaces.ActionsAPI) Option {
	return func(x *Clients) {
		x.actions = client
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}

func WithOutput(w io.Writer) Option {
	return func(x *Clients) {
		x.output = w
	}
}
