// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr                 string `env:"BIND_ADDR"                          flag:"bind-addr"                          flagDesc:"Bind address"`
	MongoDBURL               string `env:"MONGODB_URL"                        flag:"mongodb-url"                        flagDesc:"MongoDB server URL"`
	Database                 string `env:"MONGODB_DATABASE"                   flag:"mongodb-database"                   flagDesc:"MongoDB database for data"`
	PaymentsCollection       string `env:"MONGODB_PAYMENTS_COLLECTION"        flag:"mongodb-payments-collection"        flagDesc:"MongoDB collection for payment data"`
	PaymentMethodsCollection string `env:"MONGODB_PAYMENT_METHODS_COLLECTION" flag:"mongodb-payment-methods-collection" flagDesc:"MongoDB collection for payment method data"`
	UsersCollection          string `env:"MONGODB_USERS_COLLECTION"           flag:"mongodb-users-collection"           flagDesc:"MongoDB collection for user data"`
	FeeRate                  string `env:"FEE_RATE"                           flag:"fee-rate"                           flagDesc:"Fraction of each charge retained as a processing fee"`
	Currency                 string `env:"CURRENCY"                           flag:"currency"                           flagDesc:"Three letter currency code used for all charges"`
	PaymentProvider          string `env:"PAYMENT_PROVIDER"                   flag:"payment-provider"                   flagDesc:"Payment provider to route charges through (gateway or paypal)"`
	GatewayURL               string `env:"GATEWAY_URL"                        flag:"gateway-url"                        flagDesc:"URL used to make calls to the payment gateway"`
	GatewayBearerToken       string `env:"GATEWAY_BEARER_TOKEN"               flag:"gateway-bearer-token"               flagDesc:"Bearer Token used to authenticate API calls with the payment gateway"`
	PaypalEnv                string `env:"PAYPAL_ENV"                         flag:"paypal-env"                         flagDesc:"PayPal environment (live or test)"`
	PaypalClientID           string `env:"PAYPAL_CLIENT_ID"                   flag:"paypal-client-id"                   flagDesc:"Client ID used to authenticate API calls with PayPal"`
	PaypalSecret             string `env:"PAYPAL_SECRET"                      flag:"paypal-secret"                      flagDesc:"Secret used to authenticate API calls with PayPal"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:                 "payments",
		PaymentsCollection:       "payments",
		PaymentMethodsCollection: "payment_methods",
		UsersCollection:          "users",
		FeeRate:                  "0.02",
		Currency:                 "NGN",
		PaymentProvider:          "gateway",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
