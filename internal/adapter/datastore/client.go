// Package datastore is the client side of the record service: it lists,
// creates, fetches and deletes collection records over GraphQL-over-HTTP.
// Every failure is reported as domain.ErrStoreUnavailable; there is a single
// attempt per call and no retry.
package datastore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/validator/rules"

	"github.com/heartmarshall/cellar-backend/internal/config"
	"github.com/heartmarshall/cellar-backend/internal/domain"
	"github.com/heartmarshall/cellar-backend/internal/transport/graphql/schema"
)

// maxResponseBytes caps the body read from the service.
const maxResponseBytes = 32 << 20

// Client talks to the record service.
type Client struct {
	endpoint   string
	token      string
	fetchLimit int
	http       *http.Client
	log        *slog.Logger
}

// New creates a Client. Operation documents are validated against the
// embedded schema so a mismatch fails here instead of at request time.
// A nil httpClient means a default client with cfg.Timeout.
func New(log *slog.Logger, cfg config.ClientConfig, httpClient *http.Client) (*Client, error) {
	s, err := schema.Load()
	if err != nil {
		return nil, fmt.Errorf("datastore: load schema: %w", err)
	}
	for _, op := range allOperations {
		if _, errs := gqlparser.LoadQueryWithRules(s, op.document, rules.NewDefaultRules()); len(errs) > 0 {
			return nil, fmt.Errorf("datastore: operation %s: %w", op.name, errs)
		}
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		fetchLimit: cfg.FetchLimit,
		http:       httpClient,
		log:        log.With("adapter", "datastore"),
	}, nil
}

// List fetches up to the configured fetch limit of records of kind in a
// single query.
func (c *Client) List(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	vars := map[string]any{"limit": c.fetchLimit}

	switch kind {
	case domain.KindWine:
		var conn connectionJSON[wineJSON]
		if err := c.do(ctx, opListWines, vars, &conn); err != nil {
			return nil, err
		}
		out := make([]domain.Record, 0, len(conn.Items))
		for _, w := range conn.Items {
			rec, err := w.toDomain()
			if err != nil {
				return nil, unavailable(err)
			}
			out = append(out, rec)
		}
		return out, nil

	case domain.KindSpirit:
		var conn connectionJSON[spiritJSON]
		if err := c.do(ctx, opListSpirits, vars, &conn); err != nil {
			return nil, err
		}
		out := make([]domain.Record, 0, len(conn.Items))
		for _, s := range conn.Items {
			rec, err := s.toDomain()
			if err != nil {
				return nil, unavailable(err)
			}
			out = append(out, rec)
		}
		return out, nil
	}
	return nil, unknownKind(kind)
}

// Create persists rec and returns the stored record carrying the
// server-assigned id and timestamps.
func (c *Client) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	switch r := rec.(type) {
	case *domain.Wine:
		var out wineJSON
		if err := c.do(ctx, opCreateWine, map[string]any{"input": wineInput(r)}, &out); err != nil {
			return nil, err
		}
		w, err := out.toDomain()
		if err != nil {
			return nil, unavailable(err)
		}
		return w, nil

	case *domain.Spirit:
		var out spiritJSON
		if err := c.do(ctx, opCreateSpirit, map[string]any{"input": spiritInput(r)}, &out); err != nil {
			return nil, err
		}
		s, err := out.toDomain()
		if err != nil {
			return nil, unavailable(err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("datastore: unsupported record type %T", rec)
}

// Get fetches one record. A missing record yields domain.ErrNotFound.
func (c *Client) Get(ctx context.Context, kind domain.Kind, id uuid.UUID) (domain.Record, error) {
	vars := map[string]any{"id": id.String()}

	switch kind {
	case domain.KindWine:
		var out *wineJSON
		if err := c.do(ctx, opGetWine, vars, &out); err != nil {
			return nil, err
		}
		if out == nil {
			return nil, domain.ErrNotFound
		}
		w, err := out.toDomain()
		if err != nil {
			return nil, unavailable(err)
		}
		return w, nil

	case domain.KindSpirit:
		var out *spiritJSON
		if err := c.do(ctx, opGetSpirit, vars, &out); err != nil {
			return nil, err
		}
		if out == nil {
			return nil, domain.ErrNotFound
		}
		s, err := out.toDomain()
		if err != nil {
			return nil, unavailable(err)
		}
		return s, nil
	}
	return nil, unknownKind(kind)
}

// Delete removes one record.
func (c *Client) Delete(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	vars := map[string]any{"id": id.String()}

	var op operation
	switch kind {
	case domain.KindWine:
		op = opDeleteWine
	case domain.KindSpirit:
		op = opDeleteSpirit
	default:
		return unknownKind(kind)
	}

	var deleted uuid.UUID
	return c.do(ctx, op, vars, &deleted)
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors gqlerror.List              `json:"errors"`
}

// do executes op and decodes the root field op.field into out.
func (c *Client) do(ctx context.Context, op operation, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: op.document, OperationName: op.name, Variables: vars})
	if err != nil {
		return unavailable(fmt.Errorf("encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return unavailable(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "request failed", slog.String("operation", op.name), slog.String("error", err.Error()))
		return unavailable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return unavailable(fmt.Errorf("read response: %w", err))
	}

	c.log.DebugContext(ctx, "graphql call",
		slog.String("operation", op.name),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	var gr response
	if err := json.Unmarshal(raw, &gr); err != nil {
		if resp.StatusCode != http.StatusOK {
			return unavailable(fmt.Errorf("http status %d", resp.StatusCode))
		}
		return unavailable(fmt.Errorf("decode response: %w", err))
	}

	if len(gr.Errors) > 0 {
		return serviceError(gr.Errors)
	}
	if resp.StatusCode != http.StatusOK {
		return unavailable(fmt.Errorf("http status %d", resp.StatusCode))
	}

	field, ok := gr.Data[op.field]
	if !ok {
		return unavailable(fmt.Errorf("response missing field %q", op.field))
	}
	if err := json.Unmarshal(field, out); err != nil {
		return unavailable(fmt.Errorf("decode %s: %w", op.field, err))
	}
	return nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

// serviceError wraps the GraphQL error list. When every error is NOT_FOUND
// the result also matches domain.ErrNotFound.
func serviceError(errs gqlerror.List) error {
	allNotFound := true
	for _, e := range errs {
		if code, _ := e.Extensions["code"].(string); code != "NOT_FOUND" {
			allNotFound = false
			break
		}
	}
	if allNotFound {
		return unavailable(errors.Join(domain.ErrNotFound, errs))
	}
	return unavailable(errs)
}

func unknownKind(kind domain.Kind) error {
	return fmt.Errorf("datastore: unknown record kind %q", kind)
}
