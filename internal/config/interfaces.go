package config

type Catalog interface {
	Path() string
}

type Documents interface {
	TemplatesDir() string
	OutputDir() string
}

type Mail interface {
	Recipient() string
	Subject() string
	Body() string
}

type Settings interface {
	Path() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}
