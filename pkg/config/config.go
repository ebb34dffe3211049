package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App  AppConfig
	JWT  JWTConfig
	HTTP HTTPConfig
	Sim  SimConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SimConfig valores por defecto de la simulación. Porcentajes planos (6 = 6%).
type SimConfig struct {
	FunderAnnualPercent   decimal.Decimal
	PlatformAnnualPercent decimal.Decimal
	IncludeIncomeTax      bool
	FunderRegion          string
	RetailerRegion        string

	Platform PlatformDefaults
	Trader   TraderDefaults
	Regions  map[string]RegionDefaults // clave: tibet | mainland
}

// PlatformDefaults datos de la plataforma central.
type PlatformDefaults struct {
	ID                 string
	Name               string
	Region             string
	Taxpayer           string
	MarkupPercent      decimal.Decimal
	WarehousingPercent decimal.Decimal
	LogisticsPercent   decimal.Decimal
	ManagementPercent  decimal.Decimal
	OtherPercent       decimal.Decimal
}

// TraderDefaults datos del comercializador intermedio opcional.
type TraderDefaults struct {
	Name            string
	Region          string
	Taxpayer        string
	MarkupPercent   decimal.Decimal
	PaymentTermDays int
}

// RegionDefaults política tributaria de una región.
type RegionDefaults struct {
	SurchargePercent       decimal.Decimal
	IncomeTaxPercent       decimal.Decimal
	VATRefundPercent       decimal.Decimal
	IncomeTaxRefundPercent decimal.Decimal
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, SIM_*, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "tradechain-api"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "tradechain-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	var err error
	dec := func(key, def string) decimal.Decimal {
		if err != nil {
			return decimal.Zero
		}
		var d decimal.Decimal
		d, err = getDecimal(v, key, def)
		return d
	}

	cfg.Sim = SimConfig{
		FunderAnnualPercent:   dec("SIM_FUNDER_ANNUAL_PERCENT", "6"),
		PlatformAnnualPercent: dec("SIM_PLATFORM_ANNUAL_PERCENT", "4.35"),
		IncludeIncomeTax:      getBool(v, "SIM_INCLUDE_INCOME_TAX", true),
		FunderRegion:          getString(v, "SIM_FUNDER_REGION", "tibet"),
		RetailerRegion:        getString(v, "SIM_RETAILER_REGION", "mainland"),
		Platform: PlatformDefaults{
			ID:                 getString(v, "SIM_PLATFORM_ID", "platform"),
			Name:               getString(v, "SIM_PLATFORM_NAME", "藏境平台"),
			Region:             getString(v, "SIM_PLATFORM_REGION", "tibet"),
			Taxpayer:           getString(v, "SIM_PLATFORM_TAXPAYER", "general"),
			MarkupPercent:      dec("SIM_PLATFORM_MARKUP_PERCENT", "10"),
			WarehousingPercent: dec("SIM_PLATFORM_WAREHOUSING_PERCENT", "1"),
			LogisticsPercent:   dec("SIM_PLATFORM_LOGISTICS_PERCENT", "2"),
			ManagementPercent:  dec("SIM_PLATFORM_MANAGEMENT_PERCENT", "1"),
			OtherPercent:       dec("SIM_PLATFORM_OTHER_PERCENT", "0.5"),
		},
		Trader: TraderDefaults{
			Name:            getString(v, "SIM_TRADER_NAME", "Comercializador intermedio"),
			Region:          getString(v, "SIM_TRADER_REGION", "mainland"),
			Taxpayer:        getString(v, "SIM_TRADER_TAXPAYER", "general"),
			MarkupPercent:   dec("SIM_TRADER_MARKUP_PERCENT", "5"),
			PaymentTermDays: getInt(v, "SIM_TRADER_PAYMENT_TERM_DAYS", 0),
		},
		Regions: map[string]RegionDefaults{
			"tibet": {
				SurchargePercent:       dec("SIM_TIBET_SURCHARGE_PERCENT", "1"),
				IncomeTaxPercent:       dec("SIM_TIBET_INCOME_TAX_PERCENT", "15"),
				VATRefundPercent:       dec("SIM_TIBET_VAT_REFUND_PERCENT", "0"),
				IncomeTaxRefundPercent: dec("SIM_TIBET_INCOME_TAX_REFUND_PERCENT", "0"),
			},
			"mainland": {
				SurchargePercent:       dec("SIM_MAINLAND_SURCHARGE_PERCENT", "12"),
				IncomeTaxPercent:       dec("SIM_MAINLAND_INCOME_TAX_PERCENT", "25"),
				VATRefundPercent:       dec("SIM_MAINLAND_VAT_REFUND_PERCENT", "0"),
				IncomeTaxRefundPercent: dec("SIM_MAINLAND_INCOME_TAX_REFUND_PERCENT", "0"),
			},
		},
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

// getDecimal lee el valor como texto para no pasar por float64.
func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := def
	if v.IsSet(key) {
		raw = strings.TrimSpace(v.GetString(key))
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido (%q): %w", key, raw, err)
	}
	return d, nil
}
