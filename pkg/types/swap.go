package types

import "time"

// SwapRequest represents a user's swap command
type SwapRequest struct {
	Amount          string
	SourceToken     string
	DestToken       string
	SourceChain     string
	DestChain       string
	OriginAddr      string
	DestinationAddr string

	// Custom token overrides replace the symbol used for price lookups
	// when the user supplies an asset outside the built-in menus.
	CustomSourceToken *CustomToken
	CustomDestToken   *CustomToken
}

// CustomToken describes a user-supplied asset. Address carries the
// contract address, policy ID or asset ID depending on the chain.
type CustomToken struct {
	Symbol  string `json:"symbol" validate:"required"`
	Name    string `json:"name"`
	Address string `json:"address" validate:"required"`
}

// SourceSymbol returns the symbol used for pricing the source side.
func (r *SwapRequest) SourceSymbol() string {
	if r.CustomSourceToken != nil {
		return r.CustomSourceToken.Symbol
	}
	return r.SourceToken
}

// DestSymbol returns the symbol used for pricing the destination side.
func (r *SwapRequest) DestSymbol() string {
	if r.CustomDestToken != nil {
		return r.CustomDestToken.Symbol
	}
	return r.DestToken
}

// QuoteResult is a synthetic, time-boxed estimate of a cross-chain
// exchange outcome. It is ephemeral: pages hold it in local state and
// may pass it along as the navigation payload, but it is never stored.
type QuoteResult struct {
	ID              string    `json:"id"`
	SourceAmount    string    `json:"from_amount"`
	SourceToken     string    `json:"from_token"`
	SourceChain     string    `json:"from_chain"`
	DestToken       string    `json:"to_token"`
	DestChain       string    `json:"to_chain"`
	ExpectedAmount  string    `json:"expected_amount"`
	Rate            string    `json:"rate"`
	DepositAddress  string    `json:"deposit_address"`
	Memo            string    `json:"memo"`
	OriginAddr      string    `json:"origin_address"`
	DestinationAddr string    `json:"destination_address"`
	BridgeFee       string    `json:"fee"`
	PlatformFee     string    `json:"platform_fee"`
	PlatformFeeAmt  string    `json:"platform_fee_amount"`
	EstimatedTime   string    `json:"estimated_time"`
	ExpirySeconds   int       `json:"expiry_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

// TxStatus defines the state of a ledger record
type TxStatus string

const (
	TxCompleted TxStatus = "completed"
	TxPending   TxStatus = "pending"
	TxFailed    TxStatus = "failed"
)

// TransactionRecord is a single entry in the session transaction ledger.
// Records seeded at startup have Temporary=false; records appended by
// user actions have Temporary=true and are the only ones a clear removes.
type TransactionRecord struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	SourceChain  string    `json:"from_chain"`
	SourceToken  string    `json:"from_token"`
	SourceAmount string    `json:"from_amount"`
	DestChain    string    `json:"to_chain"`
	DestToken    string    `json:"to_token"`
	DestAmount   string    `json:"to_amount"`
	Status       TxStatus  `json:"status"`
	TxHash       string    `json:"tx_hash"`
	USDValue     string    `json:"value"`
	Temporary    bool      `json:"temporary"`
}

// WalletSession is the mock wallet connection state. Address and
// WalletType are always set or cleared together.
type WalletSession struct {
	Connected  bool   `json:"connected"`
	Address    string `json:"address,omitempty"`
	WalletType string `json:"wallet_type,omitempty"`
}
