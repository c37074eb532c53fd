package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/eliegoudout/zevent-place-client/pkg/canvas"
)

// GraphQL operation served by the Place API for single-pixel level queries.
const (
	operationGetPixelLevel = "getPixelLevel"

	pixelLevelQuery = "query getPixelLevel($pixel: PixelUpgradeInput!) " +
		"{getPixelLevel(pixel: $pixel) {x y level coloredBy upgradedBy __typename}}"
)

// wirePixel is a pixel coordinate in the Place API's own convention.
type wirePixel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// toWirePixel translates an internal coordinate to the wire convention.
// The Place API inverts x and y relative to this client (their x runs
// horizontally, ours vertically). This is a protocol requirement, not a bug,
// and the swap lives in exactly this one function.
func toWirePixel(c canvas.Coordinate) wirePixel {
	return wirePixel{X: c.Y, Y: c.X}
}

// pixelLevelRequest is the JSON body of a getPixelLevel query.
type pixelLevelRequest struct {
	OperationName string `json:"operationName"`
	Variables     struct {
		Pixel wirePixel `json:"pixel"`
	} `json:"variables"`
	Query string `json:"query"`
}

// pixelLevelResponse mirrors the nested GraphQL response. Pointer fields let
// the decoder distinguish a missing level from a level of zero: a malformed
// response must trigger a retry, not silently read as level 0.
type pixelLevelResponse struct {
	Data *struct {
		GetPixelLevel *struct {
			Level *int `json:"level"`
		} `json:"getPixelLevel"`
	} `json:"data"`
}

// newLevelRequest builds the POST request querying one pixel's level.
func (c *Client) newLevelRequest(ctx context.Context, coord canvas.Coordinate) (*http.Request, error) {
	body := pixelLevelRequest{
		OperationName: operationGetPixelLevel,
		Query:         pixelLevelQuery,
	}
	body.Variables.Pixel = toWirePixel(coord)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode pixel query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+c.config.Path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	// The transport negotiates compressed transfer (Accept-Encoding) and
	// decodes transparently; spelling the header out here would disable that.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.config.AuthToken)
	for key, value := range c.config.ExtraHeaders {
		req.Header.Set(key, value)
	}
	if c.config.Host != "" {
		req.Host = c.config.Host
	}

	return req, nil
}

// decodeLevel extracts the level integer from a response body.
func decodeLevel(body []byte) (int, error) {
	var resp pixelLevelResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}
	if resp.Data == nil || resp.Data.GetPixelLevel == nil || resp.Data.GetPixelLevel.Level == nil {
		return 0, fmt.Errorf("malformed response: missing data.getPixelLevel.level")
	}
	return *resp.Data.GetPixelLevel.Level, nil
}
