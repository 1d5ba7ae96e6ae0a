package entity

import "github.com/shopspring/decimal"

// DecimalFrom formats an exact decimal back into its textual form.
func DecimalFrom(v decimal.Decimal) Decimal {
	return Decimal(v.String())
}

// Sign returns -1, 0 or +1. Missing or unparseable values count as 0.
func (d Decimal) Sign() int {
	v, err := d.Value()
	if err != nil {
		return 0
	}
	return v.Sign()
}

// TradeSummary aggregates the realized P&L of a list of trades.
type TradeSummary struct {
	Count     int     `json:"count"`
	Winning   int     `json:"winning"`
	Losing    int     `json:"losing"`
	TotalPnL  Decimal `json:"total_pnl"`
	TotalFees Decimal `json:"total_fees"`
	NetPnL    Decimal `json:"net_pnl"`
}

// SummarizeTrades sums P&L and fees exactly.
func SummarizeTrades(trades []BotTrade) (TradeSummary, error) {
	summary := TradeSummary{Count: len(trades)}
	pnls := make([]Decimal, 0, len(trades))
	fees := make([]Decimal, 0, len(trades))
	for _, t := range trades {
		switch t.PnL.Sign() {
		case 1:
			summary.Winning++
		case -1:
			summary.Losing++
		}
		pnls = append(pnls, t.PnL)
		fees = append(fees, t.Fees)
	}

	totalPnL, err := SumDecimals(pnls...)
	if err != nil {
		return TradeSummary{}, err
	}
	totalFees, err := SumDecimals(fees...)
	if err != nil {
		return TradeSummary{}, err
	}
	summary.TotalPnL = DecimalFrom(totalPnL)
	summary.TotalFees = DecimalFrom(totalFees)
	summary.NetPnL = DecimalFrom(totalPnL.Sub(totalFees))
	return summary, nil
}
