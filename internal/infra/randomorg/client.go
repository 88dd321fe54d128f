// Package randomorg calls the random.org JSON-RPC API for signed integer draws.
package randomorg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	methodGenerateSignedIntegers = "generateSignedIntegers"
	maxResponseBytes             = 1 << 20
)

// 401-403 mean the key cannot serve more requests today.
const (
	codeKeyNotRunning      = 401
	codeRequestsExhausted  = 402
	codeBitsExhausted      = 403
	codeServiceUnavailable = 100
	codeInternalError      = -32603
	codeServerErrorLow     = -32099
	codeServerErrorHigh    = -32000
)

type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

type rpcRequest struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params"`
	ID      string         `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result *struct {
		Random       json.RawMessage `json:"random"`
		Signature    string          `json:"signature"`
		RequestsLeft int64           `json:"requestsLeft"`
	} `json:"result"`
	Error *rpcError `json:"error"`
}

// randomFields are the parts of the signed object read back for bookkeeping.
// The object itself is kept verbatim.
type randomFields struct {
	Data           []int  `json:"data"`
	CompletionTime string `json:"completionTime"`
	SerialNumber   int64  `json:"serialNumber"`
	HashedAPIKey   string `json:"hashedApiKey"`
}

// GenerateSignedIntegers draws n distinct integers in [low, high].
func (c *Client) GenerateSignedIntegers(ctx context.Context, apiKey string, n, low, high int) (*raffle.RandomnessProof, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  methodGenerateSignedIntegers,
		Params: map[string]any{
			"apiKey":      apiKey,
			"n":           n,
			"min":         low,
			"max":         high,
			"replacement": false,
			"base":        10,
		},
		ID: uuid.NewString(),
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "encode request"), errs.ErrProviderError)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build request"), errs.ErrProviderError)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errs.Mark(errs.Wrap(err, "random.org unreachable"), errs.ErrTransientFailure)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read response"), errs.ErrTransientFailure)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, errs.Mark(errs.New(fmt.Sprintf("random.org returned HTTP %d", resp.StatusCode)), errs.ErrTransientFailure)
	case resp.StatusCode != http.StatusOK:
		return nil, errs.Mark(errs.New(fmt.Sprintf("random.org returned HTTP %d", resp.StatusCode)), errs.ErrProviderError)
	}

	var out rpcResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed response"), errs.ErrTransientFailure)
	}
	if out.Error != nil {
		return nil, classifyRPCError(out.Error)
	}
	if out.Result == nil || len(out.Result.Random) == 0 {
		return nil, errs.Mark(errs.New("response has no result"), errs.ErrTransientFailure)
	}

	var fields randomFields
	if err := json.Unmarshal(out.Result.Random, &fields); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed random object"), errs.ErrProviderError)
	}

	return &raffle.RandomnessProof{
		RangeLow:       low,
		RangeHigh:      high,
		Numbers:        fields.Data,
		SerialNumber:   fields.SerialNumber,
		CompletionTime: fields.CompletionTime,
		HashedAPIKey:   fields.HashedAPIKey,
		Random:         out.Result.Random,
		Signature:      out.Result.Signature,
	}, nil
}

func classifyRPCError(e *rpcError) error {
	err := errs.New(fmt.Sprintf("random.org error %d: %s", e.Code, e.Message))
	switch {
	case e.Code == codeKeyNotRunning, e.Code == codeRequestsExhausted, e.Code == codeBitsExhausted:
		return errs.Mark(err, errs.ErrQuotaExhausted)
	case e.Code == codeServiceUnavailable, e.Code == codeInternalError,
		e.Code >= codeServerErrorLow && e.Code <= codeServerErrorHigh:
		return errs.Mark(err, errs.ErrTransientFailure)
	default:
		return errs.Mark(err, errs.ErrProviderError)
	}
}
