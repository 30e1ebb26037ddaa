package domain

// CurrencyCode identifies one of the currencies supported for display.
// The set is closed; amounts are always stored in EUR and converted at
// render time.
type CurrencyCode string

const (
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyRUB CurrencyCode = "RUB"
)

// SymbolPosition says where a currency symbol sits relative to the amount.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "prefix"
	SymbolSuffix SymbolPosition = "suffix"
)

// CurrencyConfig describes how a supported currency is rendered.
type CurrencyConfig struct {
	Code     CurrencyCode   `json:"code"`
	Name     string         `json:"name"`
	Locale   string         `json:"locale"` // BCP 47 tag used for digit grouping
	Symbol   string         `json:"symbol"`
	Position SymbolPosition `json:"position"`
}

// ConfigForCurrency returns the rendering config for a supported currency.
// The switch keeps the set closed: adding a currency is a compile-visible
// change here, not a runtime map edit.
func ConfigForCurrency(code CurrencyCode) (CurrencyConfig, bool) {
	switch code {
	case CurrencyEUR:
		return CurrencyConfig{Code: CurrencyEUR, Name: "Euro", Locale: "de-DE", Symbol: "€", Position: SymbolSuffix}, true
	case CurrencyGBP:
		return CurrencyConfig{Code: CurrencyGBP, Name: "British Pound", Locale: "en-GB", Symbol: "£", Position: SymbolPrefix}, true
	case CurrencyUSD:
		return CurrencyConfig{Code: CurrencyUSD, Name: "US Dollar", Locale: "en-US", Symbol: "$", Position: SymbolPrefix}, true
	case CurrencyRUB:
		return CurrencyConfig{Code: CurrencyRUB, Name: "Russian Ruble", Locale: "ru-RU", Symbol: "₽", Position: SymbolSuffix}, true
	}
	return CurrencyConfig{}, false
}

// SupportedCurrencies lists the configs of every supported currency in a
// stable order.
func SupportedCurrencies() []CurrencyConfig {
	codes := []CurrencyCode{CurrencyEUR, CurrencyGBP, CurrencyUSD, CurrencyRUB}
	configs := make([]CurrencyConfig, 0, len(codes))
	for _, code := range codes {
		cfg, _ := ConfigForCurrency(code)
		configs = append(configs, cfg)
	}
	return configs
}

// ParseCurrencyCode validates a raw string against the closed currency set.
func ParseCurrencyCode(raw string) (CurrencyCode, bool) {
	code := CurrencyCode(raw)
	if _, ok := ConfigForCurrency(code); !ok {
		return "", false
	}
	return code, true
}
