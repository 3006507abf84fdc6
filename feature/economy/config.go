package economy

// Config holds the economy rules.
type Config struct {
	// StartingBalance is credited in coins when an account is first opened.
	StartingBalance float64 `mapstructure:"starting_balance" default:"100"`
	// MaxBalance caps any single balance. Zero disables the cap.
	MaxBalance float64 `mapstructure:"max_balance" default:"0"`
	// CoinSymbol is shown in balance summaries.
	CoinSymbol string `mapstructure:"coin_symbol" default:"$"`
	// CashSymbol is shown in balance summaries.
	CashSymbol string `mapstructure:"cash_symbol" default:"C"`
	// PlayerShopTax is the share of each player shop sale withheld from the receiver.
	PlayerShopTax float64 `mapstructure:"player_shop_tax" default:"0.05"`
	// TaxAccount receives withheld tax. Empty burns it.
	TaxAccount string `mapstructure:"tax_account" default:""`
}
