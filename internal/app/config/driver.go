package config

type (
	DriverConfig struct {
		PostgresDB PostgresDB
		MongoDB    MongoDB
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
	}
	PostgresDB struct {
		Host                 string
		Port                 string
		Username             string
		Password             string
		DBName               string
		SSLMode              string
		MaxOpenConnections   int
		MaxIdleConnections   int
		ConnMaxLifetimeInMin int
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DBName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)
