package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/ledgerwise/internal/models"
)

func TestJSONCodecWritesAmountsAsNumbers(t *testing.T) {
	data, err := JSONCodec{}.Marshal(&BalancesResponse{
		Balances: []models.Balance{{Identifier: "52998224725", Amount: decimal.RequireFromString("2.50")}},
	})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	want := `{"balances":[{"identifier":"52998224725","amount":2.5}]}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back BalancesResponse
	if err := (JSONCodec{}).Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Balances[0].Amount.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("amount = %s, want 2.5", back.Balances[0].Amount)
	}
}

func TestJSONCodecKeepsEntryAmountsExact(t *testing.T) {
	var req EntriesRequest
	body := `{"entries":[{"identifier":"52998224725","amount":0.1},{"identifier":"52998224725","amount":"7"}]}`
	if err := (JSONCodec{}).Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if n, ok := req.Entries[0].Amount.(json.Number); !ok || n.String() != "0.1" {
		t.Errorf("numeric amount = %#v, want json.Number 0.1", req.Entries[0].Amount)
	}
	if s, ok := req.Entries[1].Amount.(string); !ok || s != "7" {
		t.Errorf("textual amount = %#v, want string 7", req.Entries[1].Amount)
	}
}

func TestJSONCodecRejectsUnknownFields(t *testing.T) {
	var req EntriesRequest
	err := JSONCodec{}.Unmarshal([]byte(`{"entries":[],"extra":1}`), &req)
	if err == nil || !strings.Contains(err.Error(), "extra") {
		t.Errorf("expected unknown field error, got %v", err)
	}
}
