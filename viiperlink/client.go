package viiperlink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ApiError is an RFC 7807 style problem returned by the server.
type ApiError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (e *ApiError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// Device describes a device attached to a VIIPER bus.
type Device struct {
	BusID uint32 `json:"busId"`
	DevID string `json:"devId"`
	Vid   string `json:"vid"`
	Pid   string `json:"pid"`
	Type  string `json:"type"`
}

type busCreateResponse struct {
	BusID uint32 `json:"busId"`
}

type deviceCreateRequest struct {
	Type string `json:"type"`
}

// Client is a thin VIIPER management API client.
type Client struct {
	transport *Transport
}

func New(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransport(addr, cfg)}
}

func busParams(busID uint32) map[string]string {
	return map[string]string{"id": strconv.FormatUint(uint64(busID), 10)}
}

// CreateBus creates a bus with the given id. Zero lets the server pick.
func (c *Client) CreateBus(ctx context.Context, busID uint32) (uint32, error) {
	var payload any
	if busID != 0 {
		payload = strconv.FormatUint(uint64(busID), 10)
	}
	raw, err := c.transport.Do(ctx, "bus/create", payload, nil)
	if err != nil {
		return 0, err
	}
	resp, err := parse[busCreateResponse](raw)
	if err != nil {
		return 0, err
	}
	return resp.BusID, nil
}

// AddDevice attaches a new device of devType to the bus.
func (c *Client) AddDevice(ctx context.Context, busID uint32, devType string) (*Device, error) {
	raw, err := c.transport.Do(ctx, "bus/{id}/add", deviceCreateRequest{Type: devType}, busParams(busID))
	if err != nil {
		return nil, err
	}
	return parse[Device](raw)
}

// RemoveDevice detaches a device from the bus.
func (c *Client) RemoveDevice(ctx context.Context, busID uint32, devID string) error {
	raw, err := c.transport.Do(ctx, "bus/{id}/remove", devID, busParams(busID))
	if err != nil {
		return err
	}
	if problem := asProblem(raw); problem != nil {
		return problem
	}
	return nil
}

// OpenStream connects to the input/feedback stream of an existing device.
func (c *Client) OpenStream(ctx context.Context, busID uint32, devID string) (*Stream, error) {
	conn, err := c.transport.dial(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintf(conn, "bus/%d/%s\x00", busID, devID); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write stream path: %w", err)
	}
	return NewStream(conn), nil
}

// Attach adds a DualShock 4 to the bus and opens its stream.
func (c *Client) Attach(ctx context.Context, busID uint32) (*Stream, *Device, error) {
	dev, err := c.AddDevice(ctx, busID, DeviceType)
	if err != nil {
		return nil, nil, err
	}
	s, err := c.OpenStream(ctx, busID, dev.DevID)
	if err != nil {
		return nil, dev, err
	}
	return s, dev, nil
}

func asProblem(raw string) *ApiError {
	var problem ApiError
	if err := json.Unmarshal([]byte(raw), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return &problem
	}
	return nil
}

func parse[T any](raw string) (*T, error) {
	if raw == "" {
		return nil, errors.New("empty response")
	}
	if problem := asProblem(raw); problem != nil {
		return nil, problem
	}
	var out T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
