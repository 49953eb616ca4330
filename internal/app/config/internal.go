package config

type (
	InternalConfig struct {
		App   App
		JWT   JWT
		Minio MinioInternal
	}
	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int

		// CrisisScaleThreshold is the mood scale value at or below which a
		// crisis alert job is published for the user's emergency contacts.
		CrisisScaleThreshold     int
		RabbitMQCrisisAlertQueue string

		// Credential endpoints get a tighter per-IP budget than the rest of
		// the API to slow down brute-force attempts.
		AuthRequestsPerSecond float64
		AuthRequestsBurst     int
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	MinioInternal struct {
		ProfilePictureMaxUploadSizeInMB int64
		PresignedURLExpiryInHour        int
	}
)
