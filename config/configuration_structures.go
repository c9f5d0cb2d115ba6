package config

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// FormFillConfig : доступ к движку генерации PDF-форм
type FormFillConfig struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Timeout  string `yaml:"timeout"`
	// StaticFieldLocations : формы, координаты подписей которых известны заранее
	// и не запрашиваются у движка
	StaticFieldLocations map[string]StaticFieldLocations `yaml:"static_field_locations"`
}

type StaticFieldLocations struct {
	SignFields         []StaticField `yaml:"sign_fields"`
	SignDateFields     []StaticField `yaml:"sign_date_fields"`
	SignInitialsFields []StaticField `yaml:"sign_initials_fields"`
}

type StaticField struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Page int     `yaml:"page"`
	Role string  `yaml:"role"`
}

// ESignConfig : доступ к провайдеру электронной подписи
type ESignConfig struct {
	AuthHost       string `yaml:"auth_host"`
	IntegrationKey string `yaml:"integration_key"`
	ClientSecret   string `yaml:"client_secret"`
	UserID         string `yaml:"user_id"`
	PrivateKey     string `yaml:"private_key"`
	Scope          string `yaml:"scope"`
	APIBaseURL     string `yaml:"api_base_url"`
	Timeout        string `yaml:"timeout"`
}

// TTL : значения в секундах
type TTL struct {
	DownloadURL int `yaml:"download_url"`
	TokenSafety int `yaml:"token_safety"`
}
