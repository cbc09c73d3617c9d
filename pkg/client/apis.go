package client

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/schmitt/pkg/config"
	"github.com/charlie0129/schmitt/pkg/design"
	"github.com/charlie0129/schmitt/pkg/events"
)

// Design asks the daemon to run a design. Fields missing from req are taken
// from the daemon config. A *spec.ValidationError is returned as is.
func (c *Client) Design(req design.Request) (*design.Report, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	ret, err := c.Post("/design", string(payload))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to run design")
	}

	var r design.Report
	if err := json.Unmarshal([]byte(ret), &r); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal design report")
	}

	return &r, nil
}

// Validate asks the daemon to validate req against its config.
func (c *Client) Validate(req design.Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	_, err = c.Post("/validate", string(payload))
	return err
}

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

// SetConfig updates the default specification stored by the daemon.
func (c *Client) SetConfig(req design.Request) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	return c.Put("/config", string(payload))
}

func (c *Client) GetSeries() ([]float64, error) {
	ret, err := c.Get("/series")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get series")
	}

	var values []float64
	if err := json.Unmarshal([]byte(ret), &values); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal series")
	}
	return values, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

// SubscribeEvents streams daemon events until ctx is done or the daemon
// closes the stream. The returned channel is closed afterwards.
func (c *Client) SubscribeEvents(ctx context.Context) (<-chan events.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://unix/events", nil)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to create request")
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to subscribe to events")
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, statusError(resp.StatusCode, nil)
	}

	ch := make(chan events.Event, 16)
	go func() {
		defer close(ch)
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logrus.Debugf("failed to close event stream: %v", err)
			}
		}()

		var ev events.Event
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			switch {
			case line == "":
				if ev.Name == "" && len(ev.Data) == 0 {
					continue
				}
				select {
				case ch <- ev:
				case <-ctx.Done():
					return
				}
				ev = events.Event{}
			case strings.HasPrefix(line, "event:"):
				ev.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
			case strings.HasPrefix(line, "data:"):
				ev.Data = append(ev.Data, strings.TrimPrefix(line, "data:")...)
			}
		}
		if err := scanner.Err(); err != nil && ctx.Err() == nil {
			logrus.Warnf("event stream ended: %v", err)
		}
	}()

	return ch, nil
}
