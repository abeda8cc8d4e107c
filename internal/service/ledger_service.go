// Package service exposes the ledger operations as a Connect RPC service.
package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ledgerwise/internal/ledger"
	"github.com/mmynk/ledgerwise/internal/metrics"
	"github.com/mmynk/ledgerwise/internal/middleware"
	"github.com/mmynk/ledgerwise/internal/models"
)

// ValidateEntryRequest asks whether a single entry is admissible.
type ValidateEntryRequest struct {
	Entry models.Entry `json:"entry"`
}

// EntryError is the first rule an entry failed.
type EntryError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidateEntryResponse reports the validation outcome. Error is nil when
// the entry is valid.
type ValidateEntryResponse struct {
	Valid bool        `json:"valid"`
	Error *EntryError `json:"error,omitempty"`
}

// EntriesRequest carries a caller-owned batch of entries.
type EntriesRequest struct {
	Entries []models.Entry `json:"entries"`
}

// GetExtremesRequest asks for the extreme entries of one identifier.
type GetExtremesRequest struct {
	Identifier string         `json:"identifier"`
	Entries    []models.Entry `json:"entries"`
}

type BalancesResponse struct {
	Balances []models.Balance `json:"balances"`
}

type ExtremesResponse struct {
	Records []models.Balance `json:"records"`
}

type AveragesResponse struct {
	Averages []models.Average `json:"averages"`
}

// LedgerService implements LedgerServiceHandler. It keeps no state between
// calls; every batch is admitted before it is aggregated.
type LedgerService struct {
	metrics *metrics.Metrics
}

var _ LedgerServiceHandler = (*LedgerService)(nil)

// NewLedgerService creates a LedgerService that records admissions in m.
func NewLedgerService(m *metrics.Metrics) *LedgerService {
	return &LedgerService{metrics: m}
}

// ValidateEntry checks one entry. An invalid entry is a successful call with
// Valid set to false.
func (s *LedgerService) ValidateEntry(ctx context.Context, req *connect.Request[ValidateEntryRequest]) (*connect.Response[ValidateEntryResponse], error) {
	err := ledger.Validate(req.Msg.Entry)
	s.metrics.ObserveAdmission(err)
	if err == nil {
		return connect.NewResponse(&ValidateEntryResponse{Valid: true}), nil
	}

	var verr *ledger.ValidationError
	if !errors.As(err, &verr) {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	slog.Debug("Entry rejected",
		"request_id", middleware.GetRequestID(ctx),
		"kind", ledger.KindOf(err),
		"reason", verr.Message,
	)
	return connect.NewResponse(&ValidateEntryResponse{
		Error: &EntryError{Kind: ledger.KindOf(err), Message: verr.Message},
	}), nil
}

// GetBalances returns one balance per identifier in first-seen order.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[EntriesRequest]) (*connect.Response[BalancesResponse], error) {
	entries, err := s.admit(ctx, req.Msg.Entries)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&BalancesResponse{Balances: ledger.Balances(entries)}), nil
}

// GetExtremes returns the minimum and maximum entry of an identifier.
func (s *LedgerService) GetExtremes(ctx context.Context, req *connect.Request[GetExtremesRequest]) (*connect.Response[ExtremesResponse], error) {
	entries, err := s.admit(ctx, req.Msg.Entries)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&ExtremesResponse{
		Records: ledger.Extremes(req.Msg.Identifier, entries),
	}), nil
}

// GetTopBalances returns the three largest balances.
func (s *LedgerService) GetTopBalances(ctx context.Context, req *connect.Request[EntriesRequest]) (*connect.Response[BalancesResponse], error) {
	entries, err := s.admit(ctx, req.Msg.Entries)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&BalancesResponse{Balances: ledger.TopBalances(entries)}), nil
}

// GetTopAverages returns the three largest mean entry values.
func (s *LedgerService) GetTopAverages(ctx context.Context, req *connect.Request[EntriesRequest]) (*connect.Response[AveragesResponse], error) {
	entries, err := s.admit(ctx, req.Msg.Entries)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&AveragesResponse{Averages: ledger.TopAverages(entries)}), nil
}

// admit validates a whole batch. The first invalid entry fails the call.
func (s *LedgerService) admit(ctx context.Context, raw []models.Entry) ([]ledger.ValidatedEntry, error) {
	entries, err := ledger.AdmitAll(raw)
	if err != nil {
		var batchErr *ledger.BatchError
		if !errors.As(err, &batchErr) {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		s.metrics.ObserveBatch(batchErr.Index, batchErr.Err)
		slog.Warn("Batch rejected",
			"request_id", middleware.GetRequestID(ctx),
			"subject", middleware.GetSubject(ctx),
			"index", batchErr.Index,
			"kind", ledger.KindOf(err),
		)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	s.metrics.ObserveBatch(len(entries), nil)
	slog.Debug("Batch admitted",
		"request_id", middleware.GetRequestID(ctx),
		"subject", middleware.GetSubject(ctx),
		"entries", len(entries),
	)
	return entries, nil
}
