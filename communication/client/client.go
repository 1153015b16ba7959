// Package client talks to a game server.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"cerke/absolute"
	"cerke/communication"
	"cerke/game"
	"cerke/perspective"
)

// StatusError carries a non-2xx reply.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server replied %d: %s", e.Code, e.Message)
}

type Client struct {
	serverURL string
	http      *http.Client
}

func New(serverURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL: serverURL,
		http:      httpClient,
	}
}

func (c *Client) NewGame() (communication.GameResponse, error) {
	var out communication.GameResponse
	err := c.do(http.MethodPost, "/games", nil, &out)
	return out, err
}

func (c *Client) Game(id string) (communication.GameResponse, error) {
	var out communication.GameResponse
	err := c.do(http.MethodGet, "/games/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) RelativeField(id string, p perspective.Perspective) (communication.RelativeField, error) {
	var out communication.RelativeField
	path := "/games/" + url.PathEscape(id) + "?perspective=" + url.QueryEscape(p.String())
	err := c.do(http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) Play(id string, move game.Move[absolute.Coord], side game.AbsoluteSide) (communication.GameResponse, error) {
	var out communication.GameResponse
	err := c.do(http.MethodPost, "/games/"+url.PathEscape(id)+"/moves", communication.NewMoveRequest(move, side), &out)
	return out, err
}

func (c *Client) do(method, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	req, err := http.NewRequest(method, c.serverURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &StatusError{Code: resp.StatusCode, Message: e.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
