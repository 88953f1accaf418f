package quote

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/apd/v3"

	"bridgeswap/pkg/catalog"
	swaperr "bridgeswap/pkg/errors"
	"bridgeswap/pkg/types"
)

const (
	// PlatformFeeRate is the fixed platform fee applied to every swap (0.01%)
	PlatformFeeRate = "0.0001"

	// PlatformFeeLabel and BridgeFeeLabel are the fee percentages shown to users
	PlatformFeeLabel = "0.01%"
	BridgeFeeLabel   = "0.3%"

	// DefaultExpirySeconds is how long a quote stays valid
	DefaultExpirySeconds = 600

	// EstimatedTime is the displayed completion estimate for indirect swaps
	EstimatedTime = "3-5 minutes"

	// The randomized bridge-slippage factor is drawn uniformly from
	// [slippageFloor, slippageFloor+slippageRange), i.e. the quoted
	// amount lands between 90% and 100% of the fee-adjusted
	// theoretical amount.
	slippageFloor = 0.90
	slippageRange = 0.10

	// directFeeMultiplier covers the 0.01% platform fee plus the ~0.3%
	// bridge fee applied on the deterministic direct-swap path.
	directFeeMultiplier = 0.9969
)

// Calculator produces synthetic swap quotes. It is pure with respect to
// its inputs apart from the injected randomness and clock, and safe for
// concurrent use.
type Calculator struct {
	mu     sync.Mutex // guards r
	r      *rand.Rand
	now    func() time.Time
	expiry int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithRand injects the randomness source, letting tests pin outcomes.
func WithRand(r *rand.Rand) Option {
	return func(c *Calculator) { c.r = r }
}

// WithNow injects the clock used for quote timestamps.
func WithNow(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithExpiry overrides the quote expiry countdown in seconds.
func WithExpiry(seconds int) Option {
	return func(c *Calculator) { c.expiry = seconds }
}

// NewCalculator creates a quote calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		r:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
		expiry: DefaultExpirySeconds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParseAmount validates that input is a positive finite decimal.
func ParseAmount(input string) (*apd.Decimal, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, swaperr.New(swaperr.KindInvalidAmount, "amount is required")
	}
	d, _, err := apd.NewFromString(trimmed)
	if err != nil {
		return nil, swaperr.Wrap(swaperr.KindInvalidAmount, fmt.Sprintf("invalid amount '%s'", trimmed), err)
	}
	if d.Form != apd.Finite || d.Sign() <= 0 {
		return nil, swaperr.Newf(swaperr.KindInvalidAmount, "amount must be greater than 0, got '%s'", trimmed)
	}
	return d, nil
}

// FeeBreakdown computes the exact platform fee and the fee-adjusted
// amount: fee = amount * 0.0001, afterFee = amount - fee.
func FeeBreakdown(amount *apd.Decimal) (fee, afterFee *apd.Decimal, err error) {
	ctx := apd.BaseContext.WithPrecision(34)
	rate, _, err := apd.NewFromString(PlatformFeeRate)
	if err != nil {
		return nil, nil, err
	}
	fee = new(apd.Decimal)
	if _, err = ctx.Mul(fee, amount, rate); err != nil {
		return nil, nil, err
	}
	afterFee = new(apd.Decimal)
	if _, err = ctx.Sub(afterFee, amount, fee); err != nil {
		return nil, nil, err
	}
	return fee, afterFee, nil
}

// Quote produces a randomized-magnitude estimate for an indirect swap.
// Both origin and destination addresses are required before a quote may
// be requested.
func (c *Calculator) Quote(req types.SwapRequest) (*types.QuoteResult, error) {
	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.OriginAddr) == "" {
		return nil, swaperr.New(swaperr.KindMissingAddress, "origin address is required")
	}
	if strings.TrimSpace(req.DestinationAddr) == "" {
		return nil, swaperr.New(swaperr.KindMissingAddress, "destination address is required")
	}

	fee, afterFee, err := FeeBreakdown(amount)
	if err != nil {
		return nil, err
	}

	amountF, _ := amount.Float64()
	afterFeeF, _ := afterFee.Float64()
	feeF, _ := fee.Float64()

	srcSym := req.SourceSymbol()
	dstSym := req.DestSymbol()
	ratio := catalog.Price(srcSym) / catalog.Price(dstSym)

	c.mu.Lock()
	factor := slippageFloor + slippageRange*c.r.Float64()
	id := NewQuoteID(c.r)
	depositAddr := MockDepositAddress(c.r, req.DestChain)
	memo := NewMemo(c.r)
	c.mu.Unlock()

	expected := afterFeeF * ratio * factor

	return &types.QuoteResult{
		ID:              id,
		SourceAmount:    strings.TrimSpace(req.Amount),
		SourceToken:     srcSym,
		SourceChain:     req.SourceChain,
		DestToken:       dstSym,
		DestChain:       req.DestChain,
		ExpectedAmount:  FormatAmount(expected),
		Rate:            fmt.Sprintf("1 %s = %s %s", srcSym, FormatAmount(expected/amountF), dstSym),
		DepositAddress:  depositAddr,
		Memo:            memo,
		OriginAddr:      req.OriginAddr,
		DestinationAddr: req.DestinationAddr,
		BridgeFee:       BridgeFeeLabel,
		PlatformFee:     PlatformFeeLabel,
		PlatformFeeAmt:  fmt.Sprintf("%.6f", feeF),
		EstimatedTime:   EstimatedTime,
		ExpirySeconds:   c.expiry,
		CreatedAt:       c.now(),
	}, nil
}

// EstimateDirect computes the deterministic direct-swap outcome:
// amount * priceRatio * 0.9969.
func EstimateDirect(amount float64, sourceToken, destToken string) float64 {
	ratio := catalog.Price(sourceToken) / catalog.Price(destToken)
	return amount * ratio * directFeeMultiplier
}

// PriceImpact returns the displayed price-impact percentage for a
// direct swap of the given source amount.
func PriceImpact(amount float64) float64 {
	switch {
	case amount > 1000:
		return 3.2
	case amount > 500:
		return 1.8
	case amount > 100:
		return 0.8
	default:
		return 0.3
	}
}

// FormatAmount renders an amount with precision scaled to its
// magnitude: large values get fewer decimals.
func FormatAmount(v float64) string {
	switch {
	case v > 1000:
		return fmt.Sprintf("%.2f", v)
	case v > 1:
		return fmt.Sprintf("%.4f", v)
	default:
		return fmt.Sprintf("%.6f", v)
	}
}

// FormatUSD renders a dollar value with thousands separators.
func FormatUSD(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// USDValue prices an amount of a token in display dollars.
func USDValue(amount float64, symbol string) string {
	return FormatUSD(amount * catalog.Price(symbol))
}
