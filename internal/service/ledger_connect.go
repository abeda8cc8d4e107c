package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the ledger service.
const LedgerServiceName = "ledgerwise.v1.LedgerService"

// Procedure paths of the ledger service.
const (
	LedgerServiceValidateEntryProcedure  = "/ledgerwise.v1.LedgerService/ValidateEntry"
	LedgerServiceGetBalancesProcedure    = "/ledgerwise.v1.LedgerService/GetBalances"
	LedgerServiceGetExtremesProcedure    = "/ledgerwise.v1.LedgerService/GetExtremes"
	LedgerServiceGetTopBalancesProcedure = "/ledgerwise.v1.LedgerService/GetTopBalances"
	LedgerServiceGetTopAveragesProcedure = "/ledgerwise.v1.LedgerService/GetTopAverages"
)

// LedgerServiceHandler is implemented by the ledger service.
type LedgerServiceHandler interface {
	ValidateEntry(context.Context, *connect.Request[ValidateEntryRequest]) (*connect.Response[ValidateEntryResponse], error)
	GetBalances(context.Context, *connect.Request[EntriesRequest]) (*connect.Response[BalancesResponse], error)
	GetExtremes(context.Context, *connect.Request[GetExtremesRequest]) (*connect.Response[ExtremesResponse], error)
	GetTopBalances(context.Context, *connect.Request[EntriesRequest]) (*connect.Response[BalancesResponse], error)
	GetTopAverages(context.Context, *connect.Request[EntriesRequest]) (*connect.Response[AveragesResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for every procedure of svc.
// It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	validateEntry := connect.NewUnaryHandler(LedgerServiceValidateEntryProcedure, svc.ValidateEntry, opts...)
	getBalances := connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...)
	getExtremes := connect.NewUnaryHandler(LedgerServiceGetExtremesProcedure, svc.GetExtremes, opts...)
	getTopBalances := connect.NewUnaryHandler(LedgerServiceGetTopBalancesProcedure, svc.GetTopBalances, opts...)
	getTopAverages := connect.NewUnaryHandler(LedgerServiceGetTopAveragesProcedure, svc.GetTopAverages, opts...)

	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceValidateEntryProcedure:
			validateEntry.ServeHTTP(w, r)
		case LedgerServiceGetBalancesProcedure:
			getBalances.ServeHTTP(w, r)
		case LedgerServiceGetExtremesProcedure:
			getExtremes.ServeHTTP(w, r)
		case LedgerServiceGetTopBalancesProcedure:
			getTopBalances.ServeHTTP(w, r)
		case LedgerServiceGetTopAveragesProcedure:
			getTopAverages.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// LedgerServiceClient calls the ledger service over Connect with JSON payloads.
type LedgerServiceClient struct {
	validateEntry  *connect.Client[ValidateEntryRequest, ValidateEntryResponse]
	getBalances    *connect.Client[EntriesRequest, BalancesResponse]
	getExtremes    *connect.Client[GetExtremesRequest, ExtremesResponse]
	getTopBalances *connect.Client[EntriesRequest, BalancesResponse]
	getTopAverages *connect.Client[EntriesRequest, AveragesResponse]
}

// NewLedgerServiceClient creates a client for the service at baseURL
// (for example, http://localhost:8080).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	// Clients use the last codec registered.
	opts = append(append([]connect.ClientOption{}, opts...), connect.WithCodec(JSONCodec{}))

	return &LedgerServiceClient{
		validateEntry: connect.NewClient[ValidateEntryRequest, ValidateEntryResponse](
			httpClient, baseURL+LedgerServiceValidateEntryProcedure, opts...),
		getBalances: connect.NewClient[EntriesRequest, BalancesResponse](
			httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		getExtremes: connect.NewClient[GetExtremesRequest, ExtremesResponse](
			httpClient, baseURL+LedgerServiceGetExtremesProcedure, opts...),
		getTopBalances: connect.NewClient[EntriesRequest, BalancesResponse](
			httpClient, baseURL+LedgerServiceGetTopBalancesProcedure, opts...),
		getTopAverages: connect.NewClient[EntriesRequest, AveragesResponse](
			httpClient, baseURL+LedgerServiceGetTopAveragesProcedure, opts...),
	}
}

func (c *LedgerServiceClient) ValidateEntry(ctx context.Context, req *connect.Request[ValidateEntryRequest]) (*connect.Response[ValidateEntryResponse], error) {
	return c.validateEntry.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[EntriesRequest]) (*connect.Response[BalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetExtremes(ctx context.Context, req *connect.Request[GetExtremesRequest]) (*connect.Response[ExtremesResponse], error) {
	return c.getExtremes.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetTopBalances(ctx context.Context, req *connect.Request[EntriesRequest]) (*connect.Response[BalancesResponse], error) {
	return c.getTopBalances.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetTopAverages(ctx context.Context, req *connect.Request[EntriesRequest]) (*connect.Response[AveragesResponse], error) {
	return c.getTopAverages.CallUnary(ctx, req)
}
