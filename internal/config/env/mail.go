package envconfig

import "github.com/caarlos0/env/v11"

type mailEnv struct {
	Recipient string `env:"ORDER_EMAIL_TO" envDefault:"warehouse_houthalen@unit-t.eu"`
	Subject   string `env:"ORDER_EMAIL_SUBJECT" envDefault:"Commande de matériel"`
	Body      string `env:"ORDER_EMAIL_BODY" envDefault:"Bonjour, veuillez trouver la commande de matériel en pièce jointe."`
}

type mail struct {
	raw mailEnv
}

func NewMailConfig() (*mail, error) {
	var raw mailEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &mail{raw: raw}, nil
}

func (cfg *mail) Recipient() string { return cfg.raw.Recipient }
func (cfg *mail) Subject() string   { return cfg.raw.Subject }
func (cfg *mail) Body() string      { return cfg.raw.Body }
